package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studysync/internal/domain/entity"
	"studysync/internal/domain/repository"
)

type calendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new instance of CalendarRepository.
func NewCalendarRepository(db *gorm.DB) repository.CalendarRepository {
	return &calendarRepository{db: db}
}

// FindCalendarByTitle retrieves a calendar by its title.
func (r *calendarRepository) FindCalendarByTitle(ctx context.Context, title string) (*entity.Calendar, error) {
	var cal entity.Calendar
	if err := r.db.WithContext(ctx).First(&cal, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("calendar %q not found: %w", title, err)
		}
		return nil, fmt.Errorf("failed to find calendar %q: %w", title, err)
	}
	return &cal, nil
}

// FindFirstWritable retrieves any writable calendar.
func (r *calendarRepository) FindFirstWritable(ctx context.Context) (*entity.Calendar, error) {
	var cal entity.Calendar
	if err := r.db.WithContext(ctx).First(&cal, "writable = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no writable calendar: %w", err)
		}
		return nil, fmt.Errorf("failed to find writable calendar: %w", err)
	}
	return &cal, nil
}

// CreateCalendar persists a new calendar.
func (r *calendarRepository) CreateCalendar(ctx context.Context, cal *entity.Calendar) error {
	if err := r.db.WithContext(ctx).Create(cal).Error; err != nil {
		return fmt.Errorf("failed to create calendar %q: %w", cal.Title, err)
	}
	return nil
}

// FindEventByID retrieves a calendar event by its ID.
func (r *calendarRepository) FindEventByID(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	var event entity.CalendarEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("calendar event %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find calendar event %s: %w", id, err)
	}
	return &event, nil
}

// CreateEvent persists a new calendar event.
func (r *calendarRepository) CreateEvent(ctx context.Context, event *entity.CalendarEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create calendar event %s: %w", event.ID, err)
	}
	return nil
}

// SaveEvent persists changes to an existing calendar event.
func (r *calendarRepository) SaveEvent(ctx context.Context, event *entity.CalendarEvent) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return fmt.Errorf("failed to save calendar event %s: %w", event.ID, err)
	}
	return nil
}

// DeleteEvent removes a calendar event by its ID. Deleting an event
// that no longer exists is a no-op.
func (r *calendarRepository) DeleteEvent(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&entity.CalendarEvent{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", id, err)
	}
	return nil
}
