// Package gateway isolates the card-payment gateway behind a small client
// interface so the SDK's error signaling never leaks into the services.
package gateway

import (
	"context"
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotConfigured means no live gateway credentials are present.
	ErrNotConfigured = errors.New("gateway credentials not configured")
	// ErrTimeout means the gateway call exceeded its deadline. Timed-out
	// payment operations are never retried.
	ErrTimeout = errors.New("gateway request timed out")
)

// Address is the billing address sent for AVS verification.
type Address struct {
	StreetAddress string
	City          string
	State         string
	PostalCode    string
	Country       string
}

// ChargeRequest describes a single charge against a token. Setting
// RequestMultiUseToken asks the gateway to promote a single-use token to a
// vault token as part of the captured charge.
type ChargeRequest struct {
	Token                string
	Amount               decimal.Decimal
	Currency             string
	RequestMultiUseToken bool
	CardHolderName       string
	Address              *Address
}

// ChargeResponse carries the gateway's response fields verbatim.
type ChargeResponse struct {
	ResponseCode    string
	ResponseMessage string
	TransactionID   string
	Token           string
	AuthCode        string
	ReferenceNumber string
}

// Approved reports whether the gateway captured the charge.
func (r *ChargeResponse) Approved() bool {
	return r.ResponseCode == "00"
}

// Client executes charges against the live gateway.
type Client interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
}

var postalCodePattern = regexp.MustCompile("[^a-zA-Z0-9-]")

// SanitizePostalCode removes characters the gateway rejects, keeping
// alphanumerics and hyphens and capping the length at 10. This handles both
// US (12345, 12345-6789) and international postal codes.
func SanitizePostalCode(postalCode string) string {
	sanitized := postalCodePattern.ReplaceAllString(postalCode, "")
	if len(sanitized) > 10 {
		return sanitized[:10]
	}
	return sanitized
}
