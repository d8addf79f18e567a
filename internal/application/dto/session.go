package dto

import (
	"time"

	"studysync/internal/domain/entity"
)

// SessionResponse is the DTO for sending study session information to
// the client.
type SessionResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Subject         string    `json:"subject,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	NotificationID  string    `json:"notification_id,omitempty"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToSessionResponse converts an entity.StudySession to a SessionResponse DTO.
func ToSessionResponse(s *entity.StudySession) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Subject:         s.Subject,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		NotificationID:  s.NotificationID,
		CalendarEventID: s.CalendarEventID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToSessionResponseList converts a slice of entity.StudySession to a
// slice of SessionResponse DTOs.
func ToSessionResponseList(sessions []*entity.StudySession) []SessionResponse {
	list := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		list[i] = ToSessionResponse(s)
	}
	return list
}

// CreateSessionRequest is the DTO for creating a new study session.
type CreateSessionRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// UpdateSessionRequest is the DTO for partially updating a study
// session. Nil fields are left unchanged.
type UpdateSessionRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Subject     *string    `json:"subject"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}
