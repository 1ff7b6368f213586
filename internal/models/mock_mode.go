package models

import "time"

// MockModeConfig is the persisted process-wide mock toggle. A single row is
// kept; when no row exists the mode reads as disabled (live).
type MockModeConfig struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	IsEnabled   bool      `gorm:"default:false" json:"isEnabled"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// MockModeRequest is the POST /mock-mode body. The pointer distinguishes a
// missing field from an explicit false.
type MockModeRequest struct {
	IsEnabled *bool `json:"isEnabled"`
}
