package service

import (
	"context"
	"time"
)

// NotificationScheduler defines the interface for the platform
// notification scheduler consumed by the session service.
type NotificationScheduler interface {
	// GetPermissionStatus returns the current notification permission
	// without prompting. Never returns an error.
	GetPermissionStatus() PermissionStatus
	// RequestPermissions prompts for notification permission. Denial is
	// communicated via the returned status, never an error.
	RequestPermissions() PermissionStatus
	// Schedule registers a one-shot notification for the given instant
	// and returns its id.
	Schedule(ctx context.Context, title, body string, at time.Time, metadata map[string]string) (string, error)
	// Cancel removes a scheduled notification. Cancelling an id that no
	// longer exists is a no-op; the session service relies on this for
	// idempotent cleanup.
	Cancel(ctx context.Context, notificationID string) error
	// CancelAll removes every scheduled notification.
	CancelAll(ctx context.Context) error
}
