// Package cache provides the Redis-backed read-through cache for vault
// records and the mock-mode flag.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vaultpay/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	paymentMethodsKey = "payment_methods:all"
	mockModeKey       = "mock_mode:flag"
)

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient builds a client from config.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Service wraps a Redis client with JSON marshaling and a default TTL.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService creates a cache service with the given default TTL.
func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{client: client, ttl: defaultTTL}
}

// Set stores a JSON-encoded value under key with the default TTL.
func (s *Service) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get loads a JSON-encoded value into dest. The bool reports whether the key
// was present.
func (s *Service) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

// Delete removes keys.
func (s *Service) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// CachePaymentMethods stores the full ordered collection.
func (s *Service) CachePaymentMethods(ctx context.Context, methods []models.PaymentMethod) error {
	return s.Set(ctx, paymentMethodsKey, methods)
}

// GetPaymentMethods loads the cached collection, if any.
func (s *Service) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, bool, error) {
	var methods []models.PaymentMethod
	found, err := s.Get(ctx, paymentMethodsKey, &methods)
	if err != nil || !found {
		return nil, false, err
	}
	return methods, true, nil
}

// InvalidatePaymentMethods drops the cached collection. Called after every
// vault mutation.
func (s *Service) InvalidatePaymentMethods(ctx context.Context) error {
	return s.Delete(ctx, paymentMethodsKey)
}

// CacheMockMode stores the mock-mode flag.
func (s *Service) CacheMockMode(ctx context.Context, cfg *models.MockModeConfig) error {
	return s.Set(ctx, mockModeKey, cfg)
}

// GetMockMode loads the cached mock-mode flag, if any.
func (s *Service) GetMockMode(ctx context.Context) (*models.MockModeConfig, bool, error) {
	var cfg models.MockModeConfig
	found, err := s.Get(ctx, mockModeKey, &cfg)
	if err != nil || !found {
		return nil, false, err
	}
	return &cfg, true, nil
}

// InvalidateMockMode drops the cached flag.
func (s *Service) InvalidateMockMode(ctx context.Context) error {
	return s.Delete(ctx, mockModeKey)
}

// HealthCheck pings Redis.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// FlushAll flushes all keys from the cache.
func (s *Service) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection.
func (s *Service) Close() error {
	return s.client.Close()
}
