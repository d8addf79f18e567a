package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studysync/internal/application/dto"
	"studysync/internal/domain/constant"
	"studysync/internal/domain/entity"
	"studysync/internal/domain/quiethours"
	"studysync/internal/domain/repository"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

// sessionService coordinates the session store, the notification
// scheduler and the calendar provider. It is stateless between calls;
// all state lives in its collaborators. The two external systems fail
// independently: the service never treats them as one transaction.
//
// Persistence follows a single-writer assumption. Concurrent mutations
// of the same session are last-write-wins.
type sessionService struct {
	sessionRepo repository.SessionRepository
	settings    SettingsProvider
	notifier    NotificationScheduler
	calendar    CalendarProvider
	emitter     Emitter
	log         logger.Logger
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	settings SettingsProvider,
	notifier NotificationScheduler,
	calendar CalendarProvider,
	emitter Emitter,
	log logger.Logger,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		settings:    settings,
		notifier:    notifier,
		calendar:    calendar,
		emitter:     emitter,
		log:         log,
	}
}

// computeReminderInstant derives the instant a session's reminder
// fires: the configured number of minutes before the start time,
// pushed out of the quiet window when quiet hours apply.
func (s *sessionService) computeReminderInstant(session *entity.StudySession, settings *entity.Settings) time.Time {
	minutes := settings.DefaultReminderMinutes
	if minutes <= 0 {
		minutes = constant.DefaultReminderMinutes
	}
	base := session.StartTime.Add(-time.Duration(minutes) * time.Minute)

	if !settings.QuietHoursEnabled {
		return base
	}
	startM, err := quiethours.ParseClock(settings.QuietHoursStart)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Ignoring quiet hours, bad start %q: %v", settings.QuietHoursStart, err))
		return base
	}
	endM, err := quiethours.ParseClock(settings.QuietHoursEnd)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Ignoring quiet hours, bad end %q: %v", settings.QuietHoursEnd, err))
		return base
	}
	if quiethours.IsWithin(base, startM, endM) {
		return quiethours.Adjust(base, endM)
	}
	return base
}

// scheduleNotification registers the reminder for a session and
// returns the new notification id.
func (s *sessionService) scheduleNotification(ctx context.Context, session *entity.StudySession, settings *entity.Settings) (string, error) {
	instant := s.computeReminderInstant(session, settings)
	body := fmt.Sprintf("%s starts at %s", session.Title, session.StartTime.Format("15:04"))
	return s.notifier.Schedule(ctx, "Study Session Reminder", body, instant, map[string]string{
		"session_id": session.ID,
	})
}

// CreateStudySession creates a session with its side effects.
//
// A notification scheduling failure aborts the whole operation: it
// happens before anything is persisted. A calendar failure does not;
// the session is persisted with only the side effects that succeeded.
func (s *sessionService) CreateStudySession(ctx context.Context, req dto.CreateSessionRequest) (*entity.StudySession, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, fmt.Errorf("%w: start time %v is not before end time %v", appErrors.ErrValidation, req.StartTime, req.EndTime)
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	session := &entity.StudySession{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if settings.RemindersEnabled {
		notificationID, err := s.scheduleNotification(ctx, session, settings)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to schedule notification for new session %s", session.ID), err)
			return nil, err
		}
		session.NotificationID = notificationID
	}

	if settings.CalendarSyncEnabled {
		eventID, err := s.calendar.CreateEvent(ctx, session)
		if err != nil {
			// Best effort: the session is still persisted without a
			// linked event.
			s.log.Error(fmt.Sprintf("Failed to create calendar event for new session %s", session.ID), err)
		} else {
			session.CalendarEventID = eventID
		}
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist session %s", session.ID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.emitter.Emit(constant.EventSessionCreated, map[string]interface{}{
		"session_id":   session.ID,
		"has_reminder": session.HasNotification(),
		"has_event":    session.HasCalendarEvent(),
	})
	s.log.Info(fmt.Sprintf("Created session %s (%s)", session.ID, session.Title))
	return session, nil
}

// UpdateStudySession merges updates into a session and re-links its
// side effects. The notification is cancelled and recreated (the
// scheduler has no update primitive), so its id always changes; the
// calendar event is updated in place, so its id never does.
func (s *sessionService) UpdateStudySession(ctx context.Context, id string, req dto.UpdateSessionRequest) (*entity.StudySession, error) {
	existing, err := s.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Subject != nil {
		merged.Subject = *req.Subject
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	if !merged.StartTime.Before(merged.EndTime) {
		return nil, fmt.Errorf("%w: start time %v is not before end time %v", appErrors.ErrValidation, merged.StartTime, merged.EndTime)
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if existing.HasNotification() && settings.RemindersEnabled {
		if err := s.notifier.Cancel(ctx, existing.NotificationID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to cancel notification %s for session %s", existing.NotificationID, id), err)
		}
		notificationID, err := s.scheduleNotification(ctx, &merged, settings)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to reschedule notification for session %s", id), err)
			return nil, err
		}
		merged.NotificationID = notificationID
	}

	if existing.HasCalendarEvent() && settings.CalendarSyncEnabled {
		if err := s.calendar.UpdateEvent(ctx, existing.CalendarEventID, &merged); err != nil {
			// Best effort: the linked event id is kept.
			s.log.Error(fmt.Sprintf("Failed to update calendar event %s for session %s", existing.CalendarEventID, id), err)
		}
	}

	merged.UpdatedAt = time.Now()
	if err := s.sessionRepo.Update(ctx, &merged); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist session %s", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.emitter.Emit(constant.EventSessionUpdated, map[string]interface{}{"session_id": id})
	s.log.Info(fmt.Sprintf("Updated session %s", id))
	return &merged, nil
}

// DeleteStudySession releases a session's external resources and
// removes the record. Both releases are tolerant of already-gone ids;
// a genuine release failure is logged and the record is still removed.
func (s *sessionService) DeleteStudySession(ctx context.Context, id string) error {
	session, err := s.loadSession(ctx, id)
	if err != nil {
		return err
	}

	if session.HasNotification() {
		if err := s.notifier.Cancel(ctx, session.NotificationID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to cancel notification %s for session %s", session.NotificationID, id), err)
		}
	}
	if session.HasCalendarEvent() {
		if err := s.calendar.DeleteEvent(ctx, session.CalendarEventID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to delete calendar event %s for session %s", session.CalendarEventID, id), err)
		}
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete session %s", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.emitter.Emit(constant.EventSessionDeleted, map[string]interface{}{"session_id": id})
	s.log.Info(fmt.Sprintf("Deleted session %s", id))
	return nil
}

// GetUpcomingSessions lists sessions starting after now.
func (s *sessionService) GetUpcomingSessions(ctx context.Context, limit int) ([]*entity.StudySession, error) {
	sessions, err := s.sessionRepo.FindUpcoming(ctx, time.Now(), limit)
	if err != nil {
		s.log.Error("Failed to list upcoming sessions", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return sessions, nil
}

// EnableReminders requests permission, flips the flag and backfills
// notifications for upcoming sessions that lack one. A denied
// permission leaves the flag untouched.
func (s *sessionService) EnableReminders(ctx context.Context) error {
	status := s.notifier.RequestPermissions()
	if !status.Granted {
		return fmt.Errorf("%w: notification permission %s", appErrors.ErrPermissionDenied, status.Status)
	}

	enabled := true
	settings, err := s.settings.UpdateSettings(ctx, dto.UpdateSettingsRequest{RemindersEnabled: &enabled})
	if err != nil {
		return err
	}

	upcoming, err := s.GetUpcomingSessions(ctx, 0)
	if err != nil {
		return err
	}
	backfilled := 0
	for _, session := range upcoming {
		if session.HasNotification() {
			continue
		}
		notificationID, err := s.scheduleNotification(ctx, session, settings)
		if err != nil {
			s.log.Error(fmt.Sprintf("Backfill: failed to schedule notification for session %s", session.ID), err)
			continue
		}
		session.NotificationID = notificationID
		if err := s.sessionRepo.Update(ctx, session); err != nil {
			s.log.Error(fmt.Sprintf("Backfill: failed to persist session %s", session.ID), err)
			continue
		}
		backfilled++
	}

	s.emitter.Emit(constant.EventRemindersEnabled, map[string]interface{}{"backfilled": backfilled})
	s.log.Info(fmt.Sprintf("Reminders enabled, backfilled %d sessions", backfilled))
	return nil
}

// DisableReminders cancels every notification, flips the flag and
// unlinks notification ids from every stored session, past included.
func (s *sessionService) DisableReminders(ctx context.Context) error {
	if err := s.notifier.CancelAll(ctx); err != nil {
		s.log.Error("Failed to cancel all notifications", err)
	}

	disabled := false
	if _, err := s.settings.UpdateSettings(ctx, dto.UpdateSettingsRequest{RemindersEnabled: &disabled}); err != nil {
		return err
	}

	if err := s.sessionRepo.ClearNotificationRefs(ctx); err != nil {
		s.log.Error("Failed to clear notification refs", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.emitter.Emit(constant.EventRemindersDisabled, nil)
	s.log.Info("Reminders disabled, notification refs cleared")
	return nil
}

// EnableCalendarSync requests permission, flips the flag and backfills
// calendar events for upcoming sessions that lack one.
func (s *sessionService) EnableCalendarSync(ctx context.Context) error {
	status := s.calendar.RequestPermissions()
	if !status.Granted {
		return fmt.Errorf("%w: calendar permission %s", appErrors.ErrPermissionDenied, status.Status)
	}

	enabled := true
	if _, err := s.settings.UpdateSettings(ctx, dto.UpdateSettingsRequest{CalendarSyncEnabled: &enabled}); err != nil {
		return err
	}

	upcoming, err := s.GetUpcomingSessions(ctx, 0)
	if err != nil {
		return err
	}
	backfilled := 0
	for _, session := range upcoming {
		if session.HasCalendarEvent() {
			continue
		}
		eventID, err := s.calendar.CreateEvent(ctx, session)
		if err != nil {
			s.log.Error(fmt.Sprintf("Backfill: failed to create calendar event for session %s", session.ID), err)
			continue
		}
		session.CalendarEventID = eventID
		if err := s.sessionRepo.Update(ctx, session); err != nil {
			s.log.Error(fmt.Sprintf("Backfill: failed to persist session %s", session.ID), err)
			continue
		}
		backfilled++
	}

	s.emitter.Emit(constant.EventCalendarSyncEnabled, map[string]interface{}{"backfilled": backfilled})
	s.log.Info(fmt.Sprintf("Calendar sync enabled, backfilled %d sessions", backfilled))
	return nil
}

// DisableCalendarSync deletes the underlying calendar events of every
// stored session, unlinks them and flips the flag.
func (s *sessionService) DisableCalendarSync(ctx context.Context) error {
	sessions, err := s.sessionRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list sessions", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	for _, session := range sessions {
		if !session.HasCalendarEvent() {
			continue
		}
		if err := s.calendar.DeleteEvent(ctx, session.CalendarEventID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to delete calendar event %s for session %s", session.CalendarEventID, session.ID), err)
		}
		session.CalendarEventID = ""
		session.UpdatedAt = time.Now()
		if err := s.sessionRepo.Update(ctx, session); err != nil {
			s.log.Error(fmt.Sprintf("Failed to persist session %s", session.ID), err)
		}
	}

	disabled := false
	if _, err := s.settings.UpdateSettings(ctx, dto.UpdateSettingsRequest{CalendarSyncEnabled: &disabled}); err != nil {
		return err
	}

	s.emitter.Emit(constant.EventCalendarSyncDisabled, nil)
	s.log.Info("Calendar sync disabled, calendar events removed")
	return nil
}

// SyncWithTimezone re-derives external side effects for upcoming
// sessions under the current device locale: linked notifications are
// cancelled and rescheduled with a freshly computed reminder instant,
// linked calendar events are refreshed in place. The sessions' own
// stored times are absolute instants and are never touched.
func (s *sessionService) SyncWithTimezone(ctx context.Context) error {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return err
	}

	upcoming, err := s.GetUpcomingSessions(ctx, 0)
	if err != nil {
		return err
	}

	resynced := 0
	for _, session := range upcoming {
		changed := false

		if session.HasNotification() {
			if err := s.notifier.Cancel(ctx, session.NotificationID); err != nil {
				s.log.Error(fmt.Sprintf("Resync: failed to cancel notification %s", session.NotificationID), err)
			}
			notificationID, err := s.scheduleNotification(ctx, session, settings)
			if err != nil {
				// The old notification is gone; drop the stale link.
				s.log.Error(fmt.Sprintf("Resync: failed to reschedule notification for session %s", session.ID), err)
				session.NotificationID = ""
			} else {
				session.NotificationID = notificationID
			}
			changed = true
		}

		if session.HasCalendarEvent() {
			if err := s.calendar.UpdateEvent(ctx, session.CalendarEventID, session); err != nil {
				s.log.Error(fmt.Sprintf("Resync: failed to refresh calendar event %s", session.CalendarEventID), err)
			}
		}

		if changed {
			session.UpdatedAt = time.Now()
			if err := s.sessionRepo.Update(ctx, session); err != nil {
				s.log.Error(fmt.Sprintf("Resync: failed to persist session %s", session.ID), err)
				continue
			}
			resynced++
		}
	}

	s.emitter.Emit(constant.EventTimezoneSynced, map[string]interface{}{"resynced": resynced})
	s.log.Info(fmt.Sprintf("Timezone sync complete, %d sessions resynced", resynced))
	return nil
}

// loadSession fetches a session, mapping a missing record to
// ErrSessionNotFound.
func (s *sessionService) loadSession(ctx context.Context, id string) (*entity.StudySession, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", appErrors.ErrSessionNotFound, id)
		}
		s.log.Error(fmt.Sprintf("Failed to find session %s", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return session, nil
}
