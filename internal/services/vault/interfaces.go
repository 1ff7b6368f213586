package vault

import (
	"context"

	"vaultpay/internal/models"
)

// Service manages the vault: creation (with tokenization), listing and edits.
type Service interface {
	Create(ctx context.Context, req *models.PaymentMethodRequest) (*CreateResult, error)
	List(ctx context.Context) []models.PaymentMethodSummary
	Update(ctx context.Context, id string, input models.UpdatePaymentMethodInput) (*models.PaymentMethod, error)
	SetDefault(ctx context.Context, id string) error
}

// CreateResult reports the stored record and whether the mock tokenizer
// produced it. UsedMock is per-request; a fallback never flips the
// process-wide mode.
type CreateResult struct {
	Method   *models.PaymentMethod
	UsedMock bool
}

// Dependencies required by the vault service.

// TokenExchanger is the live token exchange; nil when the gateway is
// unconfigured.
type TokenExchanger interface {
	Exchange(ctx context.Context, singleUseToken string, customer models.CustomerData, card models.CardDetails) (*models.MultiUseTokenResult, error)
}

// MockTokenizer is the mock engine's tokenization path.
type MockTokenizer interface {
	Tokenize(singleUseToken string, card models.CardDetails, customer models.CustomerData) *models.MultiUseTokenResult
}

// ModeChecker reports the mock-vs-live policy.
type ModeChecker interface {
	Enabled(ctx context.Context) bool
}
