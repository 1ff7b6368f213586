package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// GatewayConfig holds the Global Payments (Portico) credentials and settings.
type GatewayConfig struct {
	SecretAPIKey  string
	PublicAPIKey  string
	ServiceURL    string
	DeveloperID   string
	VersionNumber string
	Timeout       time.Duration
}

// LoadGatewayConfig reads the gateway settings from the environment.
// Payment operations are never retried, so the timeout is the only
// failure-handling knob the gateway gets.
func LoadGatewayConfig() GatewayConfig {
	timeout, err := time.ParseDuration(GetEnv("GP_API_TIMEOUT", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}

	return GatewayConfig{
		SecretAPIKey:  GetEnv("GP_SECRET_API_KEY", ""),
		PublicAPIKey:  GetEnv("GP_PUBLIC_API_KEY", ""),
		ServiceURL:    GetEnv("GP_SERVICE_URL", "https://cert.api2.heartlandportico.com"),
		DeveloperID:   GetEnv("GP_DEVELOPER_ID", "000000"),
		VersionNumber: GetEnv("GP_VERSION_NUMBER", "0000"),
		Timeout:       timeout,
	}
}

// Configured reports whether live gateway credentials are present.
func (c GatewayConfig) Configured() bool {
	return c.SecretAPIKey != ""
}
