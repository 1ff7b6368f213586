package payment

import (
	"context"
	"errors"
	"testing"

	"vaultpay/internal/gateway"
	"vaultpay/internal/models"
	"vaultpay/internal/repositories"
	"vaultpay/internal/services/mockgateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) List(ctx context.Context) ([]models.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *models.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Find(ctx context.Context, id string) (*models.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Update(ctx context.Context, id string, input models.UpdatePaymentMethodInput) (*models.PaymentMethod, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) SetDefault(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.ChargeResponse), args.Error(1)
}

type stubMode struct {
	enabled bool
}

func (s stubMode) Enabled(ctx context.Context) bool { return s.enabled }

func storedMethod() *models.PaymentMethod {
	return &models.PaymentMethod{
		ID:         "pm_1",
		VaultToken: "mupt_abc",
		CardBrand:  "Visa",
		Last4:      "4242",
		Nickname:   "Visa ending in 4242",
	}
}

func TestChargeLive(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	gw := new(MockGatewayClient)
	repo.On("Find", mock.Anything, "pm_1").Return(storedMethod(), nil)
	gw.On("Charge", mock.Anything, mock.MatchedBy(func(req gateway.ChargeRequest) bool {
		return req.Token == "mupt_abc" && req.Currency == "USD" && !req.RequestMultiUseToken
	})).Return(&gateway.ChargeResponse{
		ResponseCode:    "00",
		ResponseMessage: "APPROVAL",
		TransactionID:   "1618",
		AuthCode:        "A1B2C3",
		ReferenceNumber: "ref001",
	}, nil)

	svc := NewService(repo, gw, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Charge(context.Background(), "pm_1", 25.00, "USD")

	assert.NoError(t, err)
	assert.Equal(t, models.ChargeStatusApproved, result.Status)
	assert.Equal(t, "1618", result.TransactionID)
	assert.Equal(t, "A1B2C3", result.GatewayResponse.AuthCode)
	assert.Equal(t, "ref001", result.GatewayResponse.ReferenceNumber)
	assert.Equal(t, "pm_1", result.PaymentMethod.ID)
	assert.False(t, result.MockMode)
	repo.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestChargeMockModeSkipsGateway(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	gw := new(MockGatewayClient)
	repo.On("Find", mock.Anything, "pm_1").Return(storedMethod(), nil)

	svc := NewService(repo, gw, mockgateway.NewService(), stubMode{enabled: true})
	result, err := svc.Charge(context.Background(), "pm_1", 25.00, "USD")

	assert.NoError(t, err)
	assert.Equal(t, models.ChargeStatusApproved, result.Status)
	assert.True(t, result.MockMode)
	gw.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestChargeNilGatewayUsesMock(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	repo.On("Find", mock.Anything, "pm_1").Return(storedMethod(), nil)

	svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Charge(context.Background(), "pm_1", 25.00, "USD")

	assert.NoError(t, err)
	assert.True(t, result.MockMode)
	assert.Equal(t, "00", result.ResponseCode)
}

func TestChargeDeclineSurfacedVerbatim(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	gw := new(MockGatewayClient)
	repo.On("Find", mock.Anything, "pm_1").Return(storedMethod(), nil)
	gw.On("Charge", mock.Anything, mock.Anything).Return(&gateway.ChargeResponse{
		ResponseCode:    "51",
		ResponseMessage: "DECLINE: INSUFFICIENT FUNDS",
		TransactionID:   "1619",
	}, nil)

	svc := NewService(repo, gw, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Charge(context.Background(), "pm_1", 25.00, "USD")

	assert.NoError(t, err, "a decline is a result, not an error")
	assert.Equal(t, models.ChargeStatusDeclined, result.Status)
	assert.Equal(t, "51", result.ResponseCode)
	assert.Equal(t, "DECLINE: INSUFFICIENT FUNDS", result.ResponseMessage)
	assert.False(t, result.MockMode, "a live decline must never be relabeled as mock")
}

func TestChargeGatewayErrorReturned(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	gw := new(MockGatewayClient)
	repo.On("Find", mock.Anything, "pm_1").Return(storedMethod(), nil)
	gw.On("Charge", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	svc := NewService(repo, gw, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Charge(context.Background(), "pm_1", 25.00, "USD")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "payment processing failed")
}

func TestChargeUnknownMethod(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	gw := new(MockGatewayClient)
	repo.On("Find", mock.Anything, "pm_missing").Return(nil, repositories.ErrPaymentMethodNotFound)

	svc := NewService(repo, gw, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Charge(context.Background(), "pm_missing", 25.00, "USD")

	assert.ErrorIs(t, err, repositories.ErrPaymentMethodNotFound)
	assert.Nil(t, result)
	gw.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}
