package constant

// PermissionState represents the platform permission status for an
// external side-effect system (notification scheduler or calendar).
type PermissionState string

const (
	// PermissionGranted means the user allowed the capability.
	PermissionGranted PermissionState = "granted"
	// PermissionDenied means the user declined the capability.
	PermissionDenied PermissionState = "denied"
	// PermissionUndetermined means the user has never been asked.
	PermissionUndetermined PermissionState = "undetermined"
)

func (p PermissionState) String() string {
	return string(p)
}

// Scheduling defaults.
const (
	// DefaultReminderMinutes is how many minutes before a session's
	// start time the reminder fires when settings carry no value.
	DefaultReminderMinutes = 30
	// DefaultQuietHoursStart / DefaultQuietHoursEnd seed a fresh
	// settings row. Quiet hours stay disabled until switched on.
	DefaultQuietHoursStart = "22:00"
	DefaultQuietHoursEnd   = "08:00"
)

// AppCalendarTitle is the title of the calendar this application owns.
// Event creation targets it before falling back to a writable default.
const AppCalendarTitle = "StudySync"

// Analytics event names emitted by the session service.
const (
	EventSessionCreated       = "study_session_created"
	EventSessionUpdated       = "study_session_updated"
	EventSessionDeleted       = "study_session_deleted"
	EventRemindersEnabled     = "reminders_enabled"
	EventRemindersDisabled    = "reminders_disabled"
	EventCalendarSyncEnabled  = "calendar_sync_enabled"
	EventCalendarSyncDisabled = "calendar_sync_disabled"
	EventTimezoneSynced       = "timezone_synced"
)
