package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PaymentMethod is a vaulted card reference. VaultToken is the gateway-issued
// multi-use token; the record never holds a card number.
type PaymentMethod struct {
	ID          string       `gorm:"primarykey" json:"id"`
	VaultToken  string       `gorm:"not null" json:"-"`
	CardBrand   string       `gorm:"not null" json:"brand"`
	Last4       string       `gorm:"not null" json:"last4"`
	ExpiryMonth string       `gorm:"not null" json:"expiryMonth"`
	ExpiryYear  string       `gorm:"not null" json:"expiryYear"`
	Nickname    string       `json:"nickname"`
	IsDefault   bool         `gorm:"default:false" json:"isDefault"`
	Customer    CustomerData `gorm:"type:jsonb" json:"-"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Expiry formats the display expiry as MM/YY.
func (m *PaymentMethod) Expiry() string {
	return m.ExpiryMonth + "/" + m.ExpiryYear
}

// Summary returns the non-sensitive view exposed over the API.
func (m *PaymentMethod) Summary() PaymentMethodSummary {
	return PaymentMethodSummary{
		ID:        m.ID,
		Type:      "card",
		Last4:     m.Last4,
		Brand:     m.CardBrand,
		Expiry:    m.Expiry(),
		IsDefault: m.IsDefault,
		Nickname:  m.Nickname,
	}
}

// PaymentMethodSummary is the list/display shape for a vaulted card.
type PaymentMethodSummary struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	Brand     string `json:"brand"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"isDefault"`
	Nickname  string `json:"nickname"`
}

// CustomerData is the billing/contact snapshot captured when a card is
// vaulted. It is immutable after creation and stored as a JSON column.
type CustomerData struct {
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	BillingZip    string `json:"billing_zip,omitempty"`
	Country       string `json:"country,omitempty"`
}

// Value implements the driver.Valuer interface.
func (c CustomerData) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface.
func (c *CustomerData) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("unsupported customer data column type")
	}
}

// CardDetails is the client-side tokenization metadata sent with a
// single-use token.
type CardDetails struct {
	CardType    string `json:"cardType"`
	CardLast4   string `json:"cardLast4"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
}

// UpdatePaymentMethodInput carries the editable fields. Nil pointers mean
// "leave unchanged".
type UpdatePaymentMethodInput struct {
	Nickname  *string `json:"nickname,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// PaymentMethodRequest is the POST /payment-methods body. It covers both the
// create shape (payment_token + cardDetails) and the edit shape (id); the
// handler dispatches on which keys are present. Customer fields arrive either
// nested under customerData or flat at the top level.
type PaymentMethodRequest struct {
	ID           string        `json:"id,omitempty"`
	PaymentToken string        `json:"payment_token,omitempty"`
	CardDetails  *CardDetails  `json:"cardDetails,omitempty"`
	CustomerData *CustomerData `json:"customerData,omitempty"`
	Nickname     *string       `json:"nickname,omitempty"`
	IsDefault    *bool         `json:"isDefault,omitempty"`

	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	BillingZip    string `json:"billing_zip,omitempty"`
	Country       string `json:"country,omitempty"`
}

// Customer normalizes the flat-vs-nested customer fields into one snapshot.
// A nested customerData object wins over the flat fields.
func (r *PaymentMethodRequest) Customer() CustomerData {
	if r.CustomerData != nil {
		return *r.CustomerData
	}
	return CustomerData{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		BillingZip:    r.BillingZip,
		Country:       r.Country,
	}
}
