package entity

import (
	"strconv"
	"strings"
)

// Settings holds the feature flags and reminder preferences consulted
// by the session service. A single row is persisted; the repository
// creates it with defaults on first read.
type Settings struct {
	ID                     uint   `gorm:"primaryKey"`
	RemindersEnabled       bool   `gorm:"column:reminders_enabled"`
	CalendarSyncEnabled    bool   `gorm:"column:calendar_sync_enabled"`
	DefaultReminderMinutes int    `gorm:"column:default_reminder_minutes"`
	QuietHoursEnabled      bool   `gorm:"column:quiet_hours_enabled"`
	QuietHoursStart        string `gorm:"column:quiet_hours_start"` // "HH:MM" local clock time
	QuietHoursEnd          string `gorm:"column:quiet_hours_end"`   // "HH:MM" local clock time
	ReminderDays           string `gorm:"column:reminder_days"`     // Comma-separated weekday indices; stored, not consulted by scheduling
}

// TableName specifies the table name for the Settings entity.
func (Settings) TableName() string {
	return "reminder_settings"
}

// ReminderDayList parses the stored weekday indices.
func (s *Settings) ReminderDayList() []int {
	if s.ReminderDays == "" {
		return nil
	}
	parts := strings.Split(s.ReminderDays, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}

// SetReminderDays stores the weekday indices.
func (s *Settings) SetReminderDays(days []int) {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	s.ReminderDays = strings.Join(parts, ",")
}
