package repository

import (
	"context"

	"studysync/internal/domain/entity"
)

// SettingsRepository defines the interface for the persisted reminder
// settings. A single settings row exists; Get creates it with defaults
// on first read.
type SettingsRepository interface {
	// Get retrieves the settings row, creating a default one if absent.
	Get(ctx context.Context) (*entity.Settings, error)
	// Save persists the settings row.
	Save(ctx context.Context, settings *entity.Settings) error
}
