package dto

import "studysync/internal/domain/entity"

// SettingsResponse is the DTO for sending settings to the client.
type SettingsResponse struct {
	RemindersEnabled       bool   `json:"reminders_enabled"`
	CalendarSyncEnabled    bool   `json:"calendar_sync_enabled"`
	DefaultReminderMinutes int    `json:"default_reminder_minutes"`
	QuietHoursEnabled      bool   `json:"quiet_hours_enabled"`
	QuietHoursStart        string `json:"quiet_hours_start"`
	QuietHoursEnd          string `json:"quiet_hours_end"`
	ReminderDays           []int  `json:"reminder_days"`
}

// ToSettingsResponse converts an entity.Settings to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	return SettingsResponse{
		RemindersEnabled:       s.RemindersEnabled,
		CalendarSyncEnabled:    s.CalendarSyncEnabled,
		DefaultReminderMinutes: s.DefaultReminderMinutes,
		QuietHoursEnabled:      s.QuietHoursEnabled,
		QuietHoursStart:        s.QuietHoursStart,
		QuietHoursEnd:          s.QuietHoursEnd,
		ReminderDays:           s.ReminderDayList(),
	}
}

// UpdateSettingsRequest is the DTO for partially updating settings.
// Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	RemindersEnabled       *bool   `json:"reminders_enabled"`
	CalendarSyncEnabled    *bool   `json:"calendar_sync_enabled"`
	DefaultReminderMinutes *int    `json:"default_reminder_minutes"`
	QuietHoursEnabled      *bool   `json:"quiet_hours_enabled"`
	QuietHoursStart        *string `json:"quiet_hours_start"`
	QuietHoursEnd          *string `json:"quiet_hours_end"`
	ReminderDays           *[]int  `json:"reminder_days"`
}
