package payment

import (
	"context"

	"vaultpay/internal/models"
)

// Service charges stored payment methods.
type Service interface {
	Charge(ctx context.Context, paymentMethodID string, amount float64, currency string) (*models.ChargeResult, error)
}

// Dependencies required by the payment service.

// MockCharger is the mock engine's charge path.
type MockCharger interface {
	Charge(amount float64, currency string, method *models.PaymentMethod) *models.ChargeResult
}

// ModeChecker reports the mock-vs-live policy.
type ModeChecker interface {
	Enabled(ctx context.Context) bool
}
