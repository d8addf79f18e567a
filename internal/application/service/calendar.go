package service

import (
	"context"

	"studysync/internal/domain/entity"
)

// CalendarProvider defines the interface for the device calendar
// consumed by the session service. Each study session maps to at most
// one calendar event.
type CalendarProvider interface {
	// GetPermissionStatus returns the current calendar permission
	// without prompting. Never returns an error.
	GetPermissionStatus() PermissionStatus
	// RequestPermissions prompts for calendar permission. Denial is
	// communicated via the returned status, never an error.
	RequestPermissions() PermissionStatus
	// CreateEvent writes a calendar event for a session and returns its
	// id. The target calendar is resolved before the write.
	CreateEvent(ctx context.Context, session *entity.StudySession) (string, error)
	// UpdateEvent edits an existing event's title, notes and times in
	// place. The event id never changes.
	UpdateEvent(ctx context.Context, eventID string, session *entity.StudySession) error
	// DeleteEvent removes an event. Deleting an id that no longer
	// exists is a no-op.
	DeleteEvent(ctx context.Context, eventID string) error
}
