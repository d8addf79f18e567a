package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studysync/internal/domain/constant"
	"studysync/internal/domain/entity"
	"studysync/internal/domain/repository"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

type calendarService struct {
	calendarRepo repository.CalendarRepository
	perm         *permissionGate
	log          logger.Logger
}

// NewCalendarService creates the storage-backed implementation of
// CalendarProvider. allowCalendar controls how the emulated permission
// prompt resolves.
func NewCalendarService(
	calendarRepo repository.CalendarRepository,
	allowCalendar bool,
	log logger.Logger,
) CalendarProvider {
	return &calendarService{
		calendarRepo: calendarRepo,
		perm:         newPermissionGate(allowCalendar),
		log:          log,
	}
}

// GetPermissionStatus returns the current calendar permission.
func (s *calendarService) GetPermissionStatus() PermissionStatus {
	return s.perm.current()
}

// RequestPermissions prompts for calendar permission.
func (s *calendarService) RequestPermissions() PermissionStatus {
	return s.perm.request()
}

// resolveTargetCalendar finds the calendar events are written to: the
// app-owned calendar if present, else any writable calendar, else a
// freshly provisioned app-owned one.
func (s *calendarService) resolveTargetCalendar(ctx context.Context) (*entity.Calendar, error) {
	cal, err := s.calendarRepo.FindCalendarByTitle(ctx, constant.AppCalendarTitle)
	if err == nil {
		return cal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cal, err = s.calendarRepo.FindFirstWritable(ctx)
	if err == nil {
		return cal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s.log.Info(fmt.Sprintf("No writable calendar found, provisioning %q", constant.AppCalendarTitle))
	created := &entity.Calendar{
		Title:    constant.AppCalendarTitle,
		Source:   "local",
		Writable: true,
	}
	if err := s.calendarRepo.CreateCalendar(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// CreateEvent writes a calendar event for a session and returns its id.
func (s *calendarService) CreateEvent(ctx context.Context, session *entity.StudySession) (string, error) {
	cal, err := s.resolveTargetCalendar(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
	}

	event := &entity.CalendarEvent{
		ID:         uuid.NewString(),
		CalendarID: cal.ID,
		Title:      session.Title,
		Notes:      eventNotes(session),
		StartTime:  session.StartTime,
		EndTime:    session.EndTime,
	}
	if err := s.calendarRepo.CreateEvent(ctx, event); err != nil {
		return "", fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
	}
	s.log.Info(fmt.Sprintf("Created calendar event %s in calendar %d for session %s", event.ID, cal.ID, session.ID))
	return event.ID, nil
}

// UpdateEvent edits an existing event in place.
func (s *calendarService) UpdateEvent(ctx context.Context, eventID string, session *entity.StudySession) error {
	event, err := s.calendarRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
	}

	event.Title = session.Title
	event.Notes = eventNotes(session)
	event.StartTime = session.StartTime
	event.EndTime = session.EndTime
	if err := s.calendarRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
	}
	s.log.Debug(fmt.Sprintf("Updated calendar event %s for session %s", eventID, session.ID))
	return nil
}

// DeleteEvent removes an event. Unknown ids are a no-op.
func (s *calendarService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.calendarRepo.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrExternalService, err)
	}
	s.log.Debug(fmt.Sprintf("Deleted calendar event %s", eventID))
	return nil
}

func eventNotes(session *entity.StudySession) string {
	if session.Subject == "" {
		return session.Description
	}
	if session.Description == "" {
		return session.Subject
	}
	return fmt.Sprintf("%s\n\n%s", session.Subject, session.Description)
}
