package service

import (
	"context"

	"studysync/internal/application/dto"
	"studysync/internal/domain/entity"
)

// SessionService defines the interface for study session business
// logic: keeping each stored session consistent with its scheduled
// notification and calendar event under the current settings.
type SessionService interface {
	// CreateStudySession creates a session and, per the current feature
	// flags, schedules its reminder notification and calendar event.
	CreateStudySession(ctx context.Context, req dto.CreateSessionRequest) (*entity.StudySession, error)
	// UpdateStudySession merges the given updates into a session and
	// re-links its external side effects.
	UpdateStudySession(ctx context.Context, id string, req dto.UpdateSessionRequest) (*entity.StudySession, error)
	// DeleteStudySession releases a session's external resources and
	// removes the record.
	DeleteStudySession(ctx context.Context, id string) error
	// GetUpcomingSessions lists sessions starting after now, ascending
	// by start time. limit <= 0 means no limit.
	GetUpcomingSessions(ctx context.Context, limit int) ([]*entity.StudySession, error)
	// EnableReminders requests notification permission, flips the flag
	// and backfills notifications for upcoming sessions.
	EnableReminders(ctx context.Context) error
	// DisableReminders cancels every scheduled notification, flips the
	// flag and unlinks notification ids from every stored session.
	DisableReminders(ctx context.Context) error
	// EnableCalendarSync requests calendar permission, flips the flag
	// and backfills calendar events for upcoming sessions.
	EnableCalendarSync(ctx context.Context) error
	// DisableCalendarSync deletes the underlying calendar events,
	// unlinks them from every stored session and flips the flag.
	DisableCalendarSync(ctx context.Context) error
	// SyncWithTimezone recomputes and reapplies external side effects
	// for upcoming sessions under the current locale, leaving the
	// sessions' own stored times untouched.
	SyncWithTimezone(ctx context.Context) error
}
