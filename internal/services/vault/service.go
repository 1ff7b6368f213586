// Package vault orchestrates payment-method creation and edits against the
// vault store.
package vault

import (
	"context"
	"errors"
	"log"

	"vaultpay/internal/cards"
	"vaultpay/internal/models"
	"vaultpay/internal/repositories"
)

// ErrMissingCardDetails is returned when a create request lacks the
// client-side tokenization metadata.
var ErrMissingCardDetails = errors.New("card details are required")

type service struct {
	repo   repositories.PaymentMethodRepository
	tokens TokenExchanger
	mock   MockTokenizer
	mode   ModeChecker
}

// NewService creates the vault service. tokens may be nil when no live
// gateway is configured; creation then always takes the mock path.
func NewService(repo repositories.PaymentMethodRepository, tokens TokenExchanger, mock MockTokenizer, mode ModeChecker) Service {
	return &service{repo: repo, tokens: tokens, mock: mock, mode: mode}
}

// Create runs the token exchange when live tokenization is possible and
// falls back to the mock tokenizer otherwise. A failed exchange degrades
// this request only; the persisted mode flag is never touched here.
func (s *service) Create(ctx context.Context, req *models.PaymentMethodRequest) (*CreateResult, error) {
	if req.CardDetails == nil {
		return nil, ErrMissingCardDetails
	}
	customer := req.Customer()

	var result *models.MultiUseTokenResult
	usedMock := true

	if s.tokens != nil && !s.mode.Enabled(ctx) {
		exchanged, err := s.tokens.Exchange(ctx, req.PaymentToken, customer, *req.CardDetails)
		if err != nil {
			log.Printf("token exchange failed, falling back to mock tokenization: %v", err)
		} else {
			result = exchanged
			usedMock = false
		}
	}
	if result == nil {
		result = s.mock.Tokenize(req.PaymentToken, *req.CardDetails, customer)
	}

	nickname := cards.DefaultNickname(result.Brand, result.Last4)
	if req.Nickname != nil && *req.Nickname != "" {
		nickname = *req.Nickname
	}

	method := &models.PaymentMethod{
		VaultToken:  result.MultiUseToken,
		CardBrand:   result.Brand,
		Last4:       result.Last4,
		ExpiryMonth: result.ExpiryMonth,
		ExpiryYear:  result.ExpiryYear,
		Nickname:    nickname,
		IsDefault:   req.IsDefault != nil && *req.IsDefault,
		Customer:    customer,
	}
	if err := s.repo.Create(ctx, method); err != nil {
		return nil, err
	}

	return &CreateResult{Method: method, UsedMock: usedMock}, nil
}

// List returns display summaries in creation order. A storage failure is
// logged and reads as an empty vault; the collection is not safety-critical.
func (s *service) List(ctx context.Context) []models.PaymentMethodSummary {
	methods, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("failed to load payment methods: %v", err)
		return []models.PaymentMethodSummary{}
	}

	summaries := make([]models.PaymentMethodSummary, 0, len(methods))
	for i := range methods {
		summaries = append(summaries, methods[i].Summary())
	}
	return summaries
}

func (s *service) Update(ctx context.Context, id string, input models.UpdatePaymentMethodInput) (*models.PaymentMethod, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *service) SetDefault(ctx context.Context, id string) error {
	return s.repo.SetDefault(ctx, id)
}
