package handlers

import (
	"vaultpay/internal/models"
	"vaultpay/internal/services/mockmode"
	"vaultpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MockModeHandler struct {
	mode mockmode.Service
}

func NewMockModeHandler(mode mockmode.Service) *MockModeHandler {
	return &MockModeHandler{mode: mode}
}

func (h *MockModeHandler) Get(c *fiber.Ctx) error {
	enabled := h.mode.Enabled(c.Context())
	return response.Success(c, "Mock mode is "+modeText(enabled), fiber.Map{
		"isEnabled": enabled,
	})
}

func (h *MockModeHandler) Set(c *fiber.Ctx) error {
	var req models.MockModeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid JSON format")
	}
	if req.IsEnabled == nil {
		return response.BadRequest(c, "isEnabled field is required and must be boolean")
	}

	cfg, err := h.mode.Set(c.Context(), *req.IsEnabled)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError,
			"Failed to update mock mode configuration", "CONFIG_ERROR")
	}

	return response.Success(c, "Mock mode "+modeText(cfg.IsEnabled)+" successfully", fiber.Map{
		"isEnabled": cfg.IsEnabled,
	})
}

func modeText(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
