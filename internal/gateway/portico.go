package gateway

import (
	"context"
	"errors"
	"time"

	"vaultpay/internal/config"

	"github.com/globalpayments/go-sdk/api"
	"github.com/globalpayments/go-sdk/api/entities/base"
	"github.com/globalpayments/go-sdk/api/entities/transactions"
	"github.com/globalpayments/go-sdk/api/paymentmethods"
	"github.com/globalpayments/go-sdk/api/serviceconfigs"
	"github.com/globalpayments/go-sdk/api/utils/stringutils"
)

// PorticoClient is the live Global Payments adapter.
type PorticoClient struct {
	timeout time.Duration
}

// NewPorticoClient configures the Global Payments SDK and returns a client
// bound to it. ErrNotConfigured is returned when credentials are missing.
func NewPorticoClient(cfg config.GatewayConfig) (*PorticoClient, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	sdkConfig := serviceconfigs.NewPorticoConfig()
	sdkConfig.SecretApiKey = cfg.SecretAPIKey
	sdkConfig.DeveloperId = cfg.DeveloperID
	sdkConfig.VersionNumber = cfg.VersionNumber
	sdkConfig.ServiceUrl = cfg.ServiceURL

	if err := api.ConfigureService(sdkConfig, "default"); err != nil {
		return nil, err
	}

	return &PorticoClient{timeout: cfg.Timeout}, nil
}

// Charge executes a single charge under the client's deadline. Duplicates
// are allowed because the demo charges fixed amounts back to back; retries
// are the caller's responsibility and the policy is zero.
func (c *PorticoClient) Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	card := paymentmethods.NewCreditCardDataWithToken(req.Token)
	if req.CardHolderName != "" {
		card.CardHolderName = req.CardHolderName
	}

	amount, err := stringutils.ToDecimalAmount(req.Amount.StringFixed(2))
	if err != nil {
		return nil, err
	}

	builder := card.ChargeWithAmount(amount)
	builder.WithAllowDuplicates(true)
	builder.WithCurrency(req.Currency)
	if req.RequestMultiUseToken {
		builder.WithRequestMultiUseToken(true)
	}
	if req.Address != nil {
		// Portico AVS verifies on the postal code.
		builder.WithAddress(base.NewAddress(SanitizePostalCode(req.Address.PostalCode)))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := api.ExecuteGateway[transactions.Transaction](ctx, builder)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}

	authCode := ""
	if ref := response.GetTransactionReference(); ref != nil {
		authCode = ref.GetAuthCode()
	}

	return &ChargeResponse{
		ResponseCode:    response.GetResponseCode(),
		ResponseMessage: response.GetResponseMessage(),
		TransactionID:   response.GetTransactionId(),
		Token:           response.GetToken(),
		AuthCode:        authCode,
		ReferenceNumber: response.GetReferenceNumber(),
	}, nil
}
