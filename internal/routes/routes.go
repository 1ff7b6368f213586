// Package routes wires repositories, services and handlers onto the Fiber
// app.
package routes

import (
	"log"

	"vaultpay/internal/config"
	"vaultpay/internal/gateway"
	"vaultpay/internal/handlers"
	"vaultpay/internal/repositories"
	"vaultpay/internal/services/mockgateway"
	"vaultpay/internal/services/mockmode"
	"vaultpay/internal/services/payment"
	"vaultpay/internal/services/tokens"
	"vaultpay/internal/services/vault"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes builds the dependency graph and registers all endpoints.
func SetupRoutes(app *fiber.App) {
	gatewayCfg := config.LoadGatewayConfig()

	// Repositories
	methodRepo := repositories.NewPaymentMethodRepository(repositories.DB, repositories.CacheService)
	modeRepo := repositories.NewMockModeRepository(repositories.DB, repositories.CacheService)

	// Services
	modeService := mockmode.NewService(modeRepo)
	mockEngine := mockgateway.NewService()

	var gatewayClient gateway.Client
	var tokenService tokens.Service
	if gatewayCfg.Configured() {
		client, err := gateway.NewPorticoClient(gatewayCfg)
		if err != nil {
			log.Printf("gateway configuration failed, running without live gateway: %v", err)
		} else {
			gatewayClient = client
			tokenService = tokens.NewService(client)
		}
	} else {
		log.Println("no gateway credentials configured, charges will use the mock engine")
	}

	vaultService := vault.NewService(methodRepo, tokenService, mockEngine, modeService)
	paymentService := payment.NewService(methodRepo, gatewayClient, mockEngine, modeService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(methodRepo, modeService, gatewayCfg.Configured())
	configHandler := handlers.NewConfigHandler(gatewayCfg, modeService, config.GetEnv("JWT_SECRET", "vaultpay-demo"))
	mockModeHandler := handlers.NewMockModeHandler(modeService)
	methodHandler := handlers.NewPaymentMethodHandler(vaultService)
	chargeHandler := handlers.NewChargeHandler(paymentService)

	app.Get("/health", healthHandler.Check)
	app.Get("/config", configHandler.Get)
	app.Get("/mock-mode", mockModeHandler.Get)
	app.Post("/mock-mode", mockModeHandler.Set)
	app.Get("/payment-methods", methodHandler.List)
	app.Post("/payment-methods", methodHandler.CreateOrEdit)
	app.Post("/charge", chargeHandler.Charge)
}
