package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studysync/internal/domain/entity"
	"studysync/internal/domain/repository"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// FindByID retrieves a session by its ID.
func (r *sessionRepository) FindByID(ctx context.Context, id string) (*entity.StudySession, error) {
	var session entity.StudySession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find session %s: %w", id, err)
	}
	return &session, nil
}

// FindUpcoming retrieves sessions starting after the given instant,
// ordered by start time ascending.
func (r *sessionRepository) FindUpcoming(ctx context.Context, after time.Time, limit int) ([]*entity.StudySession, error) {
	var sessions []*entity.StudySession
	q := r.db.WithContext(ctx).Where("start_time > ?", after).Order("start_time asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to find upcoming sessions: %w", err)
	}
	return sessions, nil
}

// FindAll retrieves every stored session.
func (r *sessionRepository) FindAll(ctx context.Context) ([]*entity.StudySession, error) {
	var sessions []*entity.StudySession
	if err := r.db.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to find all sessions: %w", err)
	}
	return sessions, nil
}

// Create persists a new session.
func (r *sessionRepository) Create(ctx context.Context, session *entity.StudySession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session %s: %w", session.ID, err)
	}
	return nil
}

// Update persists changes to an existing session.
func (r *sessionRepository) Update(ctx context.Context, session *entity.StudySession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("failed to update session %s: %w", session.ID, err)
	}
	return nil
}

// Delete removes a session by its ID.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entity.StudySession{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// ClearNotificationRefs blanks the notification id on every stored session.
func (r *sessionRepository) ClearNotificationRefs(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Model(&entity.StudySession{}).
		Where("notification_id <> ''").
		Updates(map[string]interface{}{"notification_id": "", "updated_at": time.Now()}).Error
	if err != nil {
		return fmt.Errorf("failed to clear notification refs: %w", err)
	}
	return nil
}
