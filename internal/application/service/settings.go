package service

import (
	"context"

	"studysync/internal/application/dto"
	"studysync/internal/domain/entity"
)

// SettingsProvider defines the interface for the settings collaborator:
// the feature flags and reminder preferences the session service reads
// on every operation.
type SettingsProvider interface {
	// GetSettings retrieves the current settings.
	GetSettings(ctx context.Context) (*entity.Settings, error)
	// UpdateSettings applies a partial update and returns the result.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*entity.Settings, error)
}
