// Package repositories provides the data access layer. It owns the vault
// collection and the persisted mock-mode flag.
package repositories

import (
	"log"
	"os"
	"time"

	"vaultpay/internal/config"
	"vaultpay/internal/models"
	"vaultpay/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// CacheService is the shared Redis cache, nil when Redis is disabled.
var CacheService *cache.Service

// InitDB initializes the Postgres connection, runs migrations and wires the
// Redis cache.
func InitDB() error {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "vaultpay") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=disable"

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}
	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 100))
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.AutoMigrate(&models.PaymentMethod{}, &models.MockModeConfig{}); err != nil {
		return err
	}

	if config.GetEnv("REDIS_DISABLED", "") == "" {
		redisCfg := &cache.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		}
		CacheService = cache.NewService(cache.NewRedisClient(redisCfg), 24*time.Hour)
	}

	log.Println("database connected, migrations applied")
	return nil
}
