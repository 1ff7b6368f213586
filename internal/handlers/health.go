package handlers

import (
	"vaultpay/internal/repositories"
	"vaultpay/internal/services/mockmode"
	"vaultpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	repo              repositories.PaymentMethodRepository
	mode              mockmode.Service
	gatewayConfigured bool
}

func NewHealthHandler(repo repositories.PaymentMethodRepository, mode mockmode.Service, gatewayConfigured bool) *HealthHandler {
	return &HealthHandler{repo: repo, mode: mode, gatewayConfigured: gatewayConfigured}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	count, err := h.repo.Count(c.Context())
	storageHealthy := err == nil

	return response.Success(c, "System is healthy and ready", fiber.Map{
		"status":  "healthy",
		"service": "vaultpay",
		"version": "1.0.0",
		"storage": fiber.Map{
			"driver":              "postgres",
			"healthy":             storageHealthy,
			"paymentMethodsCount": count,
		},
		"capabilities": fiber.Map{
			"payment_method_creation": true,
			"immediate_payments":      true,
			"vault_tokenization":      h.gatewayConfigured,
			"mock_fallback":           true,
		},
		"mockMode": h.mode.Enabled(c.Context()),
	})
}
