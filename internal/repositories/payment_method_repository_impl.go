package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"vaultpay/internal/models"
	"vaultpay/internal/repositories/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentMethodRepository struct {
	db    *gorm.DB
	cache *cache.Service
}

// NewPaymentMethodRepository creates the GORM-backed vault store. The cache
// may be nil; caching is then skipped entirely.
func NewPaymentMethodRepository(db *gorm.DB, cacheSvc *cache.Service) PaymentMethodRepository {
	return &paymentMethodRepository{db: db, cache: cacheSvc}
}

func (r *paymentMethodRepository) List(ctx context.Context) ([]models.PaymentMethod, error) {
	if r.cache != nil {
		if methods, found, err := r.cache.GetPaymentMethods(ctx); err == nil && found {
			return methods, nil
		}
	}

	var methods []models.PaymentMethod
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.CachePaymentMethods(ctx, methods); err != nil {
			log.Printf("payment method cache write failed: %v", err)
		}
	}
	return methods, nil
}

func (r *paymentMethodRepository) Create(ctx context.Context, method *models.PaymentMethod) error {
	if method.ID == "" {
		method.ID = "pm_" + uuid.NewString()
	}
	now := time.Now().UTC()
	method.CreatedAt = now
	method.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PaymentMethod{}).Count(&count).Error; err != nil {
			return err
		}

		if method.IsDefault {
			if err := tx.Model(&models.PaymentMethod{}).
				Where("is_default = ?", true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		} else if count == 0 {
			// A non-empty store always has a default.
			method.IsDefault = true
		}

		return tx.Create(method).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

func (r *paymentMethodRepository) Find(ctx context.Context, id string) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("failed to find payment method: %w", err)
	}
	return &method, nil
}

func (r *paymentMethodRepository) Update(ctx context.Context, id string, input models.UpdatePaymentMethodInput) (*models.PaymentMethod, error) {
	var updated models.PaymentMethod

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var method models.PaymentMethod
		if err := tx.Where("id = ?", id).First(&method).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentMethodNotFound
			}
			return err
		}

		if input.Nickname != nil {
			method.Nickname = *input.Nickname
		}

		if input.IsDefault != nil {
			if *input.IsDefault {
				if err := tx.Model(&models.PaymentMethod{}).
					Where("id <> ? AND is_default = ?", id, true).
					Update("is_default", false).Error; err != nil {
					return err
				}
				method.IsDefault = true
			} else if method.IsDefault {
				// Turning default off is only honored on the holder;
				// default=false on any other record is a no-op.
				method.IsDefault = false
			}
		}

		method.UpdatedAt = time.Now().UTC()
		if err := tx.Save(&method).Error; err != nil {
			return err
		}
		updated = method
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPaymentMethodNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}

	r.invalidate(ctx)
	return &updated, nil
}

func (r *paymentMethodRepository) SetDefault(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var method models.PaymentMethod
		if err := tx.Where("id = ?", id).First(&method).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentMethodNotFound
			}
			return err
		}

		if err := tx.Model(&models.PaymentMethod{}).
			Where("id <> ? AND is_default = ?", id, true).
			Update("is_default", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.PaymentMethod{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"is_default": true,
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		if errors.Is(err, ErrPaymentMethodNotFound) {
			return err
		}
		return fmt.Errorf("failed to set default payment method: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

func (r *paymentMethodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentMethod{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payment methods: %w", err)
	}
	return count, nil
}

func (r *paymentMethodRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidatePaymentMethods(ctx); err != nil {
		log.Printf("payment method cache invalidation failed: %v", err)
	}
}
