// Package cards holds card display helpers shared by the live and mock
// tokenization paths.
package cards

import "strings"

// BrandFromType maps a gateway card-type string onto a display brand.
func BrandFromType(cardType string) string {
	switch strings.ToLower(cardType) {
	case "visa":
		return "Visa"
	case "mastercard", "mc":
		return "Mastercard"
	case "amex", "americanexpress":
		return "American Express"
	case "discover":
		return "Discover"
	case "jcb":
		return "JCB"
	default:
		return "Unknown"
	}
}

// DefaultNickname builds the fallback label for a vaulted card.
func DefaultNickname(brand, last4 string) string {
	return brand + " ending in " + last4
}
