package repository

import (
	"context"

	"studysync/internal/domain/entity"
)

// CalendarRepository defines the interface for the calendar storage
// backing the calendar provider.
type CalendarRepository interface {
	// FindCalendarByTitle retrieves a calendar by its title.
	FindCalendarByTitle(ctx context.Context, title string) (*entity.Calendar, error)
	// FindFirstWritable retrieves any writable calendar.
	FindFirstWritable(ctx context.Context) (*entity.Calendar, error)
	// CreateCalendar persists a new calendar.
	CreateCalendar(ctx context.Context, cal *entity.Calendar) error
	// FindEventByID retrieves a calendar event by its ID.
	FindEventByID(ctx context.Context, id string) (*entity.CalendarEvent, error)
	// CreateEvent persists a new calendar event.
	CreateEvent(ctx context.Context, event *entity.CalendarEvent) error
	// SaveEvent persists changes to an existing calendar event.
	SaveEvent(ctx context.Context, event *entity.CalendarEvent) error
	// DeleteEvent removes a calendar event by its ID. Deleting an
	// already-removed event is not an error.
	DeleteEvent(ctx context.Context, id string) error
}
