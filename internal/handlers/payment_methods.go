package handlers

import (
	"errors"

	"vaultpay/internal/models"
	"vaultpay/internal/repositories"
	"vaultpay/internal/services/vault"
	"vaultpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentMethodHandler struct {
	vault vault.Service
}

func NewPaymentMethodHandler(vaultService vault.Service) *PaymentMethodHandler {
	return &PaymentMethodHandler{vault: vaultService}
}

func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	return response.Success(c, "Payment methods retrieved successfully", h.vault.List(c.Context()))
}

// CreateOrEdit dispatches on the request shape: an id means an edit, a
// payment_token plus cardDetails means a create.
func (h *PaymentMethodHandler) CreateOrEdit(c *fiber.Ctx) error {
	var req models.PaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID != "" {
		return h.edit(c, &req)
	}

	if req.PaymentToken == "" {
		return response.BadRequest(c, "Missing required payment_token")
	}
	if req.CardDetails == nil {
		return response.BadRequest(c, "Missing required cardDetails")
	}
	return h.create(c, &req)
}

func (h *PaymentMethodHandler) create(c *fiber.Ctx, req *models.PaymentMethodRequest) error {
	result, err := h.vault.Create(c.Context(), req)
	if err != nil {
		if errors.Is(err, vault.ErrMissingCardDetails) {
			return response.BadRequest(c, "Missing required cardDetails")
		}
		return response.ServerError(c, "Payment method creation failed")
	}

	method := result.Method
	return response.Success(c, "Payment method created and saved successfully", fiber.Map{
		"id":         method.ID,
		"vaultToken": method.VaultToken,
		"type":       "card",
		"last4":      method.Last4,
		"brand":      method.CardBrand,
		"expiry":     method.Expiry(),
		"nickname":   method.Nickname,
		"isDefault":  method.IsDefault,
		"mockMode":   result.UsedMock,
	})
}

func (h *PaymentMethodHandler) edit(c *fiber.Ctx, req *models.PaymentMethodRequest) error {
	input := models.UpdatePaymentMethodInput{
		Nickname:  req.Nickname,
		IsDefault: req.IsDefault,
	}

	method, err := h.vault.Update(c.Context(), req.ID, input)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return response.NotFound(c, "Payment method not found")
		}
		return response.ServerError(c, "Payment method update failed")
	}

	return response.Success(c, "Payment method updated successfully", fiber.Map{
		"id":        method.ID,
		"type":      "card",
		"last4":     method.Last4,
		"brand":     method.CardBrand,
		"expiry":    method.Expiry(),
		"nickname":  method.Nickname,
		"isDefault": method.IsDefault,
		"updatedAt": method.UpdatedAt,
	})
}
