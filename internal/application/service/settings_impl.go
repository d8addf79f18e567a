package service

import (
	"context"
	"fmt"

	"studysync/internal/application/dto"
	"studysync/internal/domain/entity"
	"studysync/internal/domain/quiethours"
	"studysync/internal/domain/repository"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	log          logger.Logger
}

// NewSettingsService creates a new instance of SettingsProvider backed
// by the settings repository.
func NewSettingsService(settingsRepo repository.SettingsRepository, log logger.Logger) SettingsProvider {
	return &settingsService{
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// GetSettings retrieves the current settings.
func (s *settingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.log.Error("Failed to load settings", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return settings, nil
}

// UpdateSettings applies a partial update and returns the result.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*entity.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.RemindersEnabled != nil {
		settings.RemindersEnabled = *req.RemindersEnabled
	}
	if req.CalendarSyncEnabled != nil {
		settings.CalendarSyncEnabled = *req.CalendarSyncEnabled
	}
	if req.DefaultReminderMinutes != nil {
		settings.DefaultReminderMinutes = *req.DefaultReminderMinutes
	}
	if req.QuietHoursEnabled != nil {
		settings.QuietHoursEnabled = *req.QuietHoursEnabled
	}
	if req.QuietHoursStart != nil {
		if _, err := quiethours.ParseClock(*req.QuietHoursStart); err != nil {
			return nil, fmt.Errorf("%w: quiet hours start: %v", appErrors.ErrValidation, err)
		}
		settings.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		if _, err := quiethours.ParseClock(*req.QuietHoursEnd); err != nil {
			return nil, fmt.Errorf("%w: quiet hours end: %v", appErrors.ErrValidation, err)
		}
		settings.QuietHoursEnd = *req.QuietHoursEnd
	}
	if req.ReminderDays != nil {
		settings.SetReminderDays(*req.ReminderDays)
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		s.log.Error("Failed to save settings", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return settings, nil
}
