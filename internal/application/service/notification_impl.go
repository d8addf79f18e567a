package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"studysync/internal/infrastructure/push"
	"studysync/internal/infrastructure/scheduler"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

type notificationService struct {
	cronScheduler *scheduler.Scheduler
	pusher        push.Pusher
	perm          *permissionGate
	log           logger.Logger
	// Maps notification ids to their cron entries.
	mu   sync.Mutex
	jobs map[string]cron.EntryID
}

// NewNotificationService creates the scheduler-backed implementation of
// NotificationScheduler. allowNotifications controls how the emulated
// permission prompt resolves.
func NewNotificationService(
	cronScheduler *scheduler.Scheduler,
	pusher push.Pusher,
	allowNotifications bool,
	log logger.Logger,
) NotificationScheduler {
	return &notificationService{
		cronScheduler: cronScheduler,
		pusher:        pusher,
		perm:          newPermissionGate(allowNotifications),
		log:           log,
		jobs:          make(map[string]cron.EntryID),
	}
}

// GetPermissionStatus returns the current notification permission.
func (s *notificationService) GetPermissionStatus() PermissionStatus {
	return s.perm.current()
}

// RequestPermissions prompts for notification permission.
func (s *notificationService) RequestPermissions() PermissionStatus {
	return s.perm.request()
}

// formatCronSpec generates a cron spec string for a specific time.
func formatCronSpec(t time.Time) string {
	// Seconds Minutes Hours DayOfMonth Month DayOfWeek
	return fmt.Sprintf("%d %d %d %d %d *", t.Second(), t.Minute(), t.Hour(), t.Day(), t.Month())
}

// Schedule registers a one-shot notification for the given instant.
func (s *notificationService) Schedule(ctx context.Context, title, body string, at time.Time, metadata map[string]string) (string, error) {
	notificationID := uuid.NewString()

	// An instant already in the past fires immediately instead of
	// waiting for next year's matching cron slot.
	if !at.After(time.Now()) {
		s.log.Warn(fmt.Sprintf("Notification %s scheduled for past instant %v, delivering now", notificationID, at))
		if err := s.pusher.Push(title, body, metadata); err != nil {
			return "", fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
		}
		return notificationID, nil
	}

	jobFunc := func() {
		if err := s.pusher.Push(title, body, metadata); err != nil {
			s.log.Error(fmt.Sprintf("Failed to deliver notification %s", notificationID), err)
		}
		// One-shot: drop the entry so the spec cannot fire again.
		s.complete(notificationID)
	}

	entryID, err := s.cronScheduler.AddJob(formatCronSpec(at), jobFunc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
	}

	s.mu.Lock()
	s.jobs[notificationID] = entryID
	s.mu.Unlock()

	s.log.Info(fmt.Sprintf("Scheduled notification %s at %v (job %d)", notificationID, at, entryID))
	return notificationID, nil
}

// Cancel removes a scheduled notification. Unknown ids are a no-op.
func (s *notificationService) Cancel(ctx context.Context, notificationID string) error {
	s.mu.Lock()
	entryID, ok := s.jobs[notificationID]
	if ok {
		delete(s.jobs, notificationID)
	}
	s.mu.Unlock()

	if !ok {
		s.log.Debug(fmt.Sprintf("No scheduled notification %s to cancel", notificationID))
		return nil
	}
	s.cronScheduler.RemoveJob(entryID)
	s.log.Info(fmt.Sprintf("Cancelled notification %s (job %d)", notificationID, entryID))
	return nil
}

// CancelAll removes every scheduled notification.
func (s *notificationService) CancelAll(ctx context.Context) error {
	s.mu.Lock()
	entries := make([]cron.EntryID, 0, len(s.jobs))
	for _, entryID := range s.jobs {
		entries = append(entries, entryID)
	}
	s.jobs = make(map[string]cron.EntryID)
	s.mu.Unlock()

	for _, entryID := range entries {
		s.cronScheduler.RemoveJob(entryID)
	}
	s.log.Info(fmt.Sprintf("Cancelled all notifications (%d jobs)", len(entries)))
	return nil
}

// complete removes a fired job from both the id map and the cron runner.
func (s *notificationService) complete(notificationID string) {
	s.mu.Lock()
	entryID, ok := s.jobs[notificationID]
	if ok {
		delete(s.jobs, notificationID)
	}
	s.mu.Unlock()

	if ok {
		s.cronScheduler.RemoveJob(entryID)
	}
}
