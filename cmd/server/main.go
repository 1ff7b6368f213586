// Package main is the entry point for the vault payment server. It loads
// configuration, connects storage and starts the HTTP listener.
package main

import (
	"context"
	"log"
	"time"

	"vaultpay/internal/config"
	"vaultpay/internal/repositories"
	"vaultpay/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Clear stale cache entries on startup
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush cache: %v", err)
		}
	}

	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("Failed to close database connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	app := fiber.New()

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	// Request logging
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Payment endpoints are rate limited; charges must not be hammered.
	paymentLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests. Please try again later.",
			})
		},
	})
	app.Use("/charge", paymentLimiter)
	app.Use("/payment-methods", paymentLimiter)

	// Routes
	routes.SetupRoutes(app)

	// Demo front end, when present
	app.Static("/", "./static")

	port := config.GetEnv("PORT", "8000")
	log.Printf("Server starting on http://localhost:%s", port)
	log.Fatal(app.Listen("0.0.0.0:" + port))
}
