package entity

import "time"

// Calendar is a device calendar that can hold study session events.
type Calendar struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title;index"`
	Source    string    `gorm:"column:source"`
	Writable  bool      `gorm:"column:writable"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the Calendar entity.
func (Calendar) TableName() string {
	return "calendars"
}

// CalendarEvent is one calendar entry linked to a study session. Its ID
// is the external reference stored on StudySession.CalendarEventID and
// is stable across in-place updates.
type CalendarEvent struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CalendarID uint      `gorm:"column:calendar_id;index"`
	Title      string    `gorm:"column:title"`
	Notes      string    `gorm:"column:notes;type:text"`
	StartTime  time.Time `gorm:"column:start_time"`
	EndTime    time.Time `gorm:"column:end_time"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the CalendarEvent entity.
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
