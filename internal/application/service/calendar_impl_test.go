package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"studysync/internal/domain/constant"
	"studysync/internal/domain/entity"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

type fakeCalendarRepo struct {
	calendars []*entity.Calendar
	events    map[string]*entity.CalendarEvent
	nextCalID uint
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{events: make(map[string]*entity.CalendarEvent)}
}

func (r *fakeCalendarRepo) FindCalendarByTitle(_ context.Context, title string) (*entity.Calendar, error) {
	for _, c := range r.calendars {
		if c.Title == title {
			return c, nil
		}
	}
	return nil, fmt.Errorf("calendar %q not found: %w", title, gorm.ErrRecordNotFound)
}

func (r *fakeCalendarRepo) FindFirstWritable(_ context.Context) (*entity.Calendar, error) {
	for _, c := range r.calendars {
		if c.Writable {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no writable calendar: %w", gorm.ErrRecordNotFound)
}

func (r *fakeCalendarRepo) CreateCalendar(_ context.Context, cal *entity.Calendar) error {
	r.nextCalID++
	cal.ID = r.nextCalID
	r.calendars = append(r.calendars, cal)
	return nil
}

func (r *fakeCalendarRepo) FindEventByID(_ context.Context, id string) (*entity.CalendarEvent, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("calendar event %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	copied := *e
	return &copied, nil
}

func (r *fakeCalendarRepo) CreateEvent(_ context.Context, event *entity.CalendarEvent) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeCalendarRepo) SaveEvent(_ context.Context, event *entity.CalendarEvent) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeCalendarRepo) DeleteEvent(_ context.Context, id string) error {
	delete(r.events, id)
	return nil
}

func testSession(hh int) *entity.StudySession {
	day := time.Date(2030, time.June, 15, 0, 0, 0, 0, time.Local)
	return &entity.StudySession{
		ID:        "session-1",
		Title:     "Physics recap",
		Subject:   "Physics",
		StartTime: time.Date(day.Year(), day.Month(), day.Day(), hh, 0, 0, 0, time.Local),
		EndTime:   time.Date(day.Year(), day.Month(), day.Day(), hh+1, 0, 0, 0, time.Local),
	}
}

func TestCalendarService_CreateEventProvisionsAppCalendar(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := NewCalendarService(repo, true, logger.New())

	eventID, err := svc.CreateEvent(context.Background(), testSession(10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if eventID == "" {
		t.Fatal("empty event id")
	}
	if len(repo.calendars) != 1 || repo.calendars[0].Title != constant.AppCalendarTitle {
		t.Fatalf("app calendar not provisioned: %+v", repo.calendars)
	}
	event := repo.events[eventID]
	if event == nil || event.CalendarID != repo.calendars[0].ID {
		t.Fatalf("event not written to app calendar: %+v", event)
	}
}

func TestCalendarService_CreateEventPrefersAppOwnedCalendar(t *testing.T) {
	repo := newFakeCalendarRepo()
	repo.CreateCalendar(context.Background(), &entity.Calendar{Title: "Personal", Writable: true})
	repo.CreateCalendar(context.Background(), &entity.Calendar{Title: constant.AppCalendarTitle, Source: "local", Writable: true})
	svc := NewCalendarService(repo, true, logger.New())

	eventID, err := svc.CreateEvent(context.Background(), testSession(10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.events[eventID].CalendarID != repo.calendars[1].ID {
		t.Fatalf("event written to calendar %d, want app-owned %d", repo.events[eventID].CalendarID, repo.calendars[1].ID)
	}
}

func TestCalendarService_CreateEventFallsBackToWritableDefault(t *testing.T) {
	repo := newFakeCalendarRepo()
	repo.CreateCalendar(context.Background(), &entity.Calendar{Title: "Personal", Writable: true})
	svc := NewCalendarService(repo, true, logger.New())

	eventID, err := svc.CreateEvent(context.Background(), testSession(10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.events[eventID].CalendarID != repo.calendars[0].ID {
		t.Fatalf("event written to calendar %d, want writable default %d", repo.events[eventID].CalendarID, repo.calendars[0].ID)
	}
	if len(repo.calendars) != 1 {
		t.Fatalf("unexpected calendar provisioning: %+v", repo.calendars)
	}
}

func TestCalendarService_UpdateEventKeepsIDAndEditsInPlace(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := NewCalendarService(repo, true, logger.New())
	ctx := context.Background()

	session := testSession(10)
	eventID, err := svc.CreateEvent(ctx, session)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	session.Title = "Physics recap (moved)"
	session.StartTime = session.StartTime.Add(2 * time.Hour)
	session.EndTime = session.EndTime.Add(2 * time.Hour)
	if err := svc.UpdateEvent(ctx, eventID, session); err != nil {
		t.Fatalf("update: %v", err)
	}

	event := repo.events[eventID]
	if event.Title != "Physics recap (moved)" {
		t.Errorf("title not updated: %q", event.Title)
	}
	if !event.StartTime.Equal(session.StartTime) {
		t.Errorf("start time not updated: %v", event.StartTime)
	}
	if event.ID != eventID {
		t.Errorf("event id changed: %q -> %q", eventID, event.ID)
	}
}

func TestCalendarService_UpdateMissingEventFails(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := NewCalendarService(repo, true, logger.New())

	err := svc.UpdateEvent(context.Background(), "gone", testSession(10))
	if !errors.Is(err, appErrors.ErrExternalService) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
}

func TestCalendarService_DeleteIsTolerantOfMissingEvent(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := NewCalendarService(repo, true, logger.New())

	if err := svc.DeleteEvent(context.Background(), "never-existed"); err != nil {
		t.Fatalf("delete of missing event: %v", err)
	}
}
