package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studysync/internal/domain/constant"
	"studysync/internal/domain/entity"
	"studysync/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the settings row, creating a default one if absent.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings = entity.Settings{
		RemindersEnabled:       false,
		CalendarSyncEnabled:    false,
		DefaultReminderMinutes: constant.DefaultReminderMinutes,
		QuietHoursEnabled:      false,
		QuietHoursStart:        constant.DefaultQuietHoursStart,
		QuietHoursEnd:          constant.DefaultQuietHoursEnd,
	}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return &settings, nil
}

// Save persists the settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
