package handlers

import (
	"errors"
	"log"

	"vaultpay/internal/models"
	"vaultpay/internal/repositories"
	"vaultpay/internal/services/payment"
	"vaultpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// The demo charges a fixed amount; real integrations would take it from the
// request.
const (
	demoChargeAmount   = 25.00
	demoChargeCurrency = "USD"
)

type ChargeHandler struct {
	payments payment.Service
}

func NewChargeHandler(payments payment.Service) *ChargeHandler {
	return &ChargeHandler{payments: payments}
}

func (h *ChargeHandler) Charge(c *fiber.Ctx) error {
	var req models.ChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.PaymentMethodID == "" {
		return response.BadRequest(c, "Payment method ID is required")
	}

	result, err := h.payments.Charge(c.Context(), req.PaymentMethodID, demoChargeAmount, demoChargeCurrency)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentMethodNotFound) {
			return response.NotFound(c, "Payment method not found")
		}
		log.Printf("charge failed: %v", err)
		return response.Error(c, fiber.StatusBadGateway, err.Error(), "PAYMENT_FAILED")
	}

	if result.Status == models.ChargeStatusDeclined {
		// The gateway's own code and message travel with the result.
		return response.ErrorWithData(c, fiber.StatusBadRequest,
			result.ResponseMessage, "PAYMENT_DECLINED", result)
	}

	return response.Success(c, "Payment processed successfully", result)
}
