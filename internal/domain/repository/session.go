package repository

import (
	"context"
	"time"

	"studysync/internal/domain/entity"
)

// SessionRepository defines the interface for study session data
// operations. The repository is pure CRUD; business rules live in the
// application layer.
type SessionRepository interface {
	// FindByID retrieves a session by its ID.
	FindByID(ctx context.Context, id string) (*entity.StudySession, error)
	// FindUpcoming retrieves sessions starting after the given instant,
	// ordered by start time ascending. limit <= 0 means no limit.
	FindUpcoming(ctx context.Context, after time.Time, limit int) ([]*entity.StudySession, error)
	// FindAll retrieves every stored session, past and future.
	FindAll(ctx context.Context) ([]*entity.StudySession, error)
	// Create persists a new session.
	Create(ctx context.Context, session *entity.StudySession) error
	// Update persists changes to an existing session.
	Update(ctx context.Context, session *entity.StudySession) error
	// Delete removes a session by its ID.
	Delete(ctx context.Context, id string) error
	// ClearNotificationRefs blanks the notification id on every stored
	// session, past and future.
	ClearNotificationRefs(ctx context.Context) error
}
