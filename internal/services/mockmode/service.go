// Package mockmode centralizes the mock-vs-live policy. Every component that
// needs to know the mode asks this service; nothing else touches the flag.
package mockmode

import (
	"context"
	"log"

	"vaultpay/internal/models"
	"vaultpay/internal/repositories"
)

// Service exposes the persisted mock-mode toggle.
type Service interface {
	// Enabled reports the current mode. Storage failures read as live.
	Enabled(ctx context.Context) bool
	// Status returns the full persisted flag record.
	Status(ctx context.Context) (*models.MockModeConfig, error)
	// Set persists a new mode.
	Set(ctx context.Context, enabled bool) (*models.MockModeConfig, error)
}

type service struct {
	repo repositories.MockModeRepository
}

// NewService creates the mode controller.
func NewService(repo repositories.MockModeRepository) Service {
	return &service{repo: repo}
}

func (s *service) Enabled(ctx context.Context) bool {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		log.Printf("mock mode read failed, assuming live: %v", err)
		return false
	}
	return cfg.IsEnabled
}

func (s *service) Status(ctx context.Context) (*models.MockModeConfig, error) {
	return s.repo.Get(ctx)
}

func (s *service) Set(ctx context.Context, enabled bool) (*models.MockModeConfig, error) {
	return s.repo.Set(ctx, enabled)
}
