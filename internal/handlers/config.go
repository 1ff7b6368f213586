package handlers

import (
	"log"
	"time"

	"vaultpay/internal/config"
	"vaultpay/internal/services/mockmode"
	"vaultpay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type ConfigHandler struct {
	gatewayCfg config.GatewayConfig
	mode       mockmode.Service
	jwtSecret  string
}

func NewConfigHandler(gatewayCfg config.GatewayConfig, mode mockmode.Service, jwtSecret string) *ConfigHandler {
	return &ConfigHandler{gatewayCfg: gatewayCfg, mode: mode, jwtSecret: jwtSecret}
}

// Get issues the client-side tokenization credential: the public API key
// when the gateway is configured, otherwise a short-lived demo session token
// so the front end still works in mock mode.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	if h.gatewayCfg.PublicAPIKey != "" {
		return response.Success(c, "Configuration retrieved successfully", fiber.Map{
			"publicApiKey": h.gatewayCfg.PublicAPIKey,
		})
	}

	if h.mode.Enabled(c.Context()) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "demo-session",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		})
		signed, err := token.SignedString([]byte(h.jwtSecret))
		if err != nil {
			log.Printf("failed to sign demo session token: %v", err)
			return response.Error(c, fiber.StatusInternalServerError, "Error loading configuration", "CONFIG_ERROR")
		}
		return response.Success(c, "Configuration retrieved successfully", fiber.Map{
			"accessToken": signed,
			"mockMode":    true,
		})
	}

	return response.Error(c, fiber.StatusInternalServerError,
		"Error loading configuration: gateway credentials missing", "CONFIG_ERROR")
}
