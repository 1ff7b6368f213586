package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"vaultpay/internal/models"
	"vaultpay/internal/repositories/cache"

	"gorm.io/gorm"
)

type mockModeRepository struct {
	db    *gorm.DB
	cache *cache.Service
}

// NewMockModeRepository creates the persisted mock-mode store. The cache may
// be nil.
func NewMockModeRepository(db *gorm.DB, cacheSvc *cache.Service) MockModeRepository {
	return &mockModeRepository{db: db, cache: cacheSvc}
}

func (r *mockModeRepository) Get(ctx context.Context) (*models.MockModeConfig, error) {
	if r.cache != nil {
		if cfg, found, err := r.cache.GetMockMode(ctx); err == nil && found {
			return cfg, nil
		}
	}

	var cfg models.MockModeConfig
	if err := r.db.WithContext(ctx).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.MockModeConfig{IsEnabled: false}, nil
		}
		return nil, fmt.Errorf("failed to read mock mode: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.CacheMockMode(ctx, &cfg); err != nil {
			log.Printf("mock mode cache write failed: %v", err)
		}
	}
	return &cfg, nil
}

func (r *mockModeRepository) Set(ctx context.Context, enabled bool) (*models.MockModeConfig, error) {
	var cfg models.MockModeConfig

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cfg).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cfg = models.MockModeConfig{IsEnabled: enabled, LastUpdated: time.Now().UTC()}
			return tx.Create(&cfg).Error
		}
		cfg.IsEnabled = enabled
		cfg.LastUpdated = time.Now().UTC()
		return tx.Save(&cfg).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist mock mode: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.InvalidateMockMode(ctx); err != nil {
			log.Printf("mock mode cache invalidation failed: %v", err)
		}
	}
	return &cfg, nil
}
