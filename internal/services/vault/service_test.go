package vault

import (
	"context"
	"errors"
	"testing"

	"vaultpay/internal/models"
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
	method.ID = "pm_created"
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

type MockTokenExchanger struct {
	mock.Mock
}

func (m *MockTokenExchanger) Exchange(ctx context.Context, singleUseToken string, customer models.CustomerData, card models.CardDetails) (*models.MultiUseTokenResult, error) {
	args := m.Called(ctx, singleUseToken, customer, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MultiUseTokenResult), args.Error(1)
}

type stubMode struct {
	enabled bool
}

func (s stubMode) Enabled(ctx context.Context) bool { return s.enabled }

func createRequest() *models.PaymentMethodRequest {
	return &models.PaymentMethodRequest{
		PaymentToken: "supt_1",
		CardDetails: &models.CardDetails{
			CardType:    "visa",
			CardLast4:   "4242",
			ExpiryMonth: "12",
			ExpiryYear:  "28",
		},
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestCreateLiveExchange(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	exchanger := new(MockTokenExchanger)
	exchanger.On("Exchange", mock.Anything, "supt_1", mock.Anything, mock.Anything).Return(&models.MultiUseTokenResult{
		MultiUseToken: "mupt_abc",
		Brand:         "Visa",
		Last4:         "4242",
		ExpiryMonth:   "12",
		ExpiryYear:    "28",
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, exchanger, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Create(context.Background(), createRequest())

	assert.NoError(t, err)
	assert.False(t, result.UsedMock)
	assert.Equal(t, "mupt_abc", result.Method.VaultToken)
	assert.Equal(t, "Visa ending in 4242", result.Method.Nickname)
	exchanger.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateExchangeFailureFallsBackToMock(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	exchanger := new(MockTokenExchanger)
	exchanger.On("Exchange", mock.Anything, "supt_1", mock.Anything, mock.Anything).Return(nil, errors.New("gateway timeout"))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, exchanger, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Create(context.Background(), createRequest())

	assert.NoError(t, err, "a failed exchange degrades the request, it does not fail it")
	assert.True(t, result.UsedMock)
	assert.Equal(t, "supt_1", result.Method.VaultToken, "mock path stores the single-use token")
	assert.Equal(t, "Visa", result.Method.CardBrand)
}

func TestCreateMockModeSkipsExchanger(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	exchanger := new(MockTokenExchanger)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, exchanger, mockgateway.NewService(), stubMode{enabled: true})
	result, err := svc.Create(context.Background(), createRequest())

	assert.NoError(t, err)
	assert.True(t, result.UsedMock)
	exchanger.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateNilExchanger(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Create(context.Background(), createRequest())

	assert.NoError(t, err)
	assert.True(t, result.UsedMock)
}

func TestCreateMissingCardDetails(t *testing.T) {
	repo := new(MockPaymentMethodRepository)

	svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Create(context.Background(), &models.PaymentMethodRequest{PaymentToken: "supt_1"})

	assert.ErrorIs(t, err, ErrMissingCardDetails)
	assert.Nil(t, result)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateNicknameHandling(t *testing.T) {
	custom := "Work card"
	empty := ""

	tests := []struct {
		name     string
		nickname *string
		want     string
	}{
		{"defaulted from brand and last4", nil, "Visa ending in 4242"},
		{"empty string still defaulted", &empty, "Visa ending in 4242"},
		{"caller nickname wins", &custom, "Work card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaymentMethodRepository)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil)

			req := createRequest()
			req.Nickname = tt.nickname

			svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
			result, err := svc.Create(context.Background(), req)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, result.Method.Nickname)
		})
	}
}

func TestCreateCustomerNormalization(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := createRequest()
	req.FirstName = "Flat"
	req.CustomerData = &models.CustomerData{FirstName: "Nested", LastName: "Wins"}

	svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
	result, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Nested", result.Method.Customer.FirstName)
	assert.Equal(t, "Wins", result.Method.Customer.LastName)
}

func TestListAbsorbsStorageFailure(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection lost"))

	svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
	summaries := svc.List(context.Background())

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestListSummaries(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	repo.On("List", mock.Anything).Return([]models.PaymentMethod{
		{ID: "pm_1", CardBrand: "Visa", Last4: "4242", ExpiryMonth: "12", ExpiryYear: "28", IsDefault: true, Nickname: "Main"},
		{ID: "pm_2", CardBrand: "Mastercard", Last4: "5780", ExpiryMonth: "01", ExpiryYear: "30"},
	}, nil)

	svc := NewService(repo, nil, mockgateway.NewService(), stubMode{enabled: false})
	summaries := svc.List(context.Background())

	assert.Len(t, summaries, 2)
	assert.Equal(t, "pm_1", summaries[0].ID)
	assert.Equal(t, "card", summaries[0].Type)
	assert.Equal(t, "12/28", summaries[0].Expiry)
	assert.True(t, summaries[0].IsDefault)
	assert.False(t, summaries[1].IsDefault)
}
