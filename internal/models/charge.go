package models

import "time"

// ChargeResult is the normalized outcome of a charge, identical in shape for
// the live and mock paths. It is transient and never persisted.
type ChargeResult struct {
	TransactionID   string            `json:"transactionId"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	Status          string            `json:"status"`
	ResponseCode    string            `json:"responseCode"`
	ResponseMessage string            `json:"responseMessage"`
	Timestamp       time.Time         `json:"timestamp"`
	GatewayResponse GatewayResponse   `json:"gatewayResponse"`
	PaymentMethod   PaymentMethodInfo `json:"paymentMethod"`
	MockMode        bool              `json:"mockMode"`
}

// Charge statuses.
const (
	ChargeStatusApproved = "approved"
	ChargeStatusDeclined = "declined"
)

// GatewayResponse carries the gateway's own identifiers verbatim.
type GatewayResponse struct {
	AuthCode        string `json:"authCode"`
	ReferenceNumber string `json:"referenceNumber"`
}

// PaymentMethodInfo identifies the charged method for display.
type PaymentMethodInfo struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	Nickname string `json:"nickname"`
}

// ChargeRequest is the POST /charge body.
type ChargeRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
}
