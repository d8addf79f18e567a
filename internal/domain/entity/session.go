package entity

import "time"

// StudySession represents a user-scheduled study interval with optional
// linked notification and calendar event.
//
// NotificationID and CalendarEventID reference externally-owned
// resources and are maintained independently of each other: one may be
// set while the other is empty. An empty string means no linked
// resource.
type StudySession struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Title           string    `gorm:"column:title"`
	Description     string    `gorm:"column:description;type:text"`
	Subject         string    `gorm:"column:subject"`
	StartTime       time.Time `gorm:"column:start_time;index"`
	EndTime         time.Time `gorm:"column:end_time"`
	NotificationID  string    `gorm:"column:notification_id"`
	CalendarEventID string    `gorm:"column:calendar_event_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the StudySession entity.
func (StudySession) TableName() string {
	return "study_sessions"
}

// HasNotification reports whether a scheduled notification is linked.
func (s *StudySession) HasNotification() bool {
	return s.NotificationID != ""
}

// HasCalendarEvent reports whether a calendar event is linked.
func (s *StudySession) HasCalendarEvent() bool {
	return s.CalendarEventID != ""
}
