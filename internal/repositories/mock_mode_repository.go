package repositories

import (
	"context"

	"vaultpay/internal/models"
)

// MockModeRepository persists the process-wide mock toggle. A missing row
// reads as disabled; storage failures on read degrade to disabled as well,
// since mock mode is an operational convenience, not safety-critical state.
type MockModeRepository interface {
	Get(ctx context.Context) (*models.MockModeConfig, error)
	Set(ctx context.Context, enabled bool) (*models.MockModeConfig, error)
}
