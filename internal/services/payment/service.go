// Package payment is the charge orchestrator: it picks the live or mock path
// for a stored method and normalizes the result.
package payment

import (
	"context"
	"fmt"
	"time"

	"vaultpay/internal/gateway"
	"vaultpay/internal/models"
	"vaultpay/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	repo    repositories.PaymentMethodRepository
	gateway gateway.Client
	mock    MockCharger
	mode    ModeChecker
}

// NewService creates the charge orchestrator. gw may be nil when the live
// gateway is unconfigured; charges then always take the mock path.
func NewService(repo repositories.PaymentMethodRepository, gw gateway.Client, mock MockCharger, mode ModeChecker) Service {
	return &service{repo: repo, gateway: gw, mock: mock, mode: mode}
}

// Charge looks up the method and charges it. Declines come back as declined
// results carrying the gateway's own code and message; gateway failures are
// returned as errors. Neither is ever converted to a mock approval; a
// charge outcome is financially significant and must stay visible.
func (s *service) Charge(ctx context.Context, paymentMethodID string, amount float64, currency string) (*models.ChargeResult, error) {
	method, err := s.repo.Find(ctx, paymentMethodID)
	if err != nil {
		return nil, err
	}

	if s.gateway == nil || s.mode.Enabled(ctx) {
		return s.mock.Charge(amount, currency, method), nil
	}

	response, err := s.gateway.Charge(ctx, gateway.ChargeRequest{
		Token:    method.VaultToken,
		Amount:   decimal.NewFromFloat(amount),
		Currency: currency,
	})
	if err != nil {
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	status := models.ChargeStatusDeclined
	if response.Approved() {
		status = models.ChargeStatusApproved
	}

	return &models.ChargeResult{
		TransactionID:   response.TransactionID,
		Amount:          amount,
		Currency:        currency,
		Status:          status,
		ResponseCode:    response.ResponseCode,
		ResponseMessage: response.ResponseMessage,
		Timestamp:       time.Now().UTC(),
		GatewayResponse: models.GatewayResponse{
			AuthCode:        response.AuthCode,
			ReferenceNumber: response.ReferenceNumber,
		},
		PaymentMethod: models.PaymentMethodInfo{
			ID:       method.ID,
			Brand:    method.CardBrand,
			Last4:    method.Last4,
			Nickname: method.Nickname,
		},
		MockMode: false,
	}, nil
}
