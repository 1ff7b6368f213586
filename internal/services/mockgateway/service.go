// Package mockgateway generates plausible gateway responses without any
// external calls. It is stateless and safe for concurrent use.
package mockgateway

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"vaultpay/internal/cards"
	"vaultpay/internal/models"
)

// Service is the deterministic-shape transaction generator used whenever the
// live gateway is disabled or unavailable.
type Service interface {
	Tokenize(singleUseToken string, card models.CardDetails, customer models.CustomerData) *models.MultiUseTokenResult
	Charge(amount float64, currency string, method *models.PaymentMethod) *models.ChargeResult
	Decline(reason string) DeclineResult
}

// DeclineResult is a synthetic decline for test/demo paths only; the main
// charge flow never produces one.
type DeclineResult struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	ErrorCode       string `json:"error_code"`
}

var declineReasons = map[string]DeclineResult{
	"insufficient_funds": {ResponseCode: "51", ResponseMessage: "Insufficient funds", ErrorCode: "CARD_DECLINED"},
	"expired_card":       {ResponseCode: "54", ResponseMessage: "Expired card", ErrorCode: "EXPIRED_CARD"},
	"invalid_card":       {ResponseCode: "14", ResponseMessage: "Invalid card number", ErrorCode: "INVALID_CARD"},
}

type service struct{}

// NewService creates the mock engine.
func NewService() Service {
	return &service{}
}

// Tokenize echoes the single-use token as the vault token and derives the
// display metadata from the caller-supplied card details.
func (s *service) Tokenize(singleUseToken string, card models.CardDetails, customer models.CustomerData) *models.MultiUseTokenResult {
	return &models.MultiUseTokenResult{
		MultiUseToken: singleUseToken,
		Brand:         cards.BrandFromType(card.CardType),
		Last4:         card.CardLast4,
		ExpiryMonth:   card.ExpiryMonth,
		ExpiryYear:    card.ExpiryYear,
		Customer:      customer,
	}
}

// Charge synthesizes an always-approved transaction for the given method.
func (s *service) Charge(amount float64, currency string, method *models.PaymentMethod) *models.ChargeResult {
	now := time.Now().UTC()
	return &models.ChargeResult{
		TransactionID:   fmt.Sprintf("txn_%d_%s", now.Unix(), randomString(8)),
		Amount:          amount,
		Currency:        currency,
		Status:          models.ChargeStatusApproved,
		ResponseCode:    "00",
		ResponseMessage: "APPROVAL",
		Timestamp:       now,
		GatewayResponse: models.GatewayResponse{
			AuthCode:        randomString(6),
			ReferenceNumber: fmt.Sprintf("ref_%d_%s", now.Unix(), randomString(6)),
		},
		PaymentMethod: models.PaymentMethodInfo{
			ID:       method.ID,
			Brand:    method.CardBrand,
			Last4:    method.Last4,
			Nickname: method.Nickname,
		},
		MockMode: true,
	}
}

// Decline looks up a synthetic decline by reason; unknown reasons map to a
// generic "do not honor".
func (s *service) Decline(reason string) DeclineResult {
	if d, ok := declineReasons[reason]; ok {
		return d
	}
	return DeclineResult{ResponseCode: "05", ResponseMessage: "Do not honor", ErrorCode: "GENERIC_DECLINE"}
}

const authCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand is documented never to fail on supported platforms;
		// a fixed suffix beats panicking in a demo path.
		return strings.Repeat("0", length)
	}
	for i, b := range bytes {
		bytes[i] = authCodeChars[int(b)%len(authCodeChars)]
	}
	return string(bytes)
}
