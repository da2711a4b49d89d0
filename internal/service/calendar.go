package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcandidier/workflow/common/id"
	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/store"
)

var ErrEventNotFound = errors.New("event not found")

type CalendarService interface {
	EventsOnYear(ctx context.Context, year int) ([]model.Event, error)
	Create(ctx context.Context, organizerID int64, params CreateEventParams) (*model.Event, error)
	Update(ctx context.Context, eventID int64, params UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, eventID, requesterID int64) (*model.Event, error)
}

type CreateEventParams struct {
	TriggeredAt   time.Time
	Title         string
	Description   string
	RecurringYear *int
}

// UpdateEventParams carries a partial update; nil fields keep their current
// value.
type UpdateEventParams struct {
	Title         *string
	Description   *string
	TriggeredAt   *time.Time
	RecurringYear *int
}

type calendarService struct {
	events store.EventStore
	loc    *time.Location
}

func NewCalendarService(events store.EventStore, loc *time.Location) CalendarService {
	return &calendarService{
		events: events,
		loc:    loc,
	}
}

// EventsOnYear returns events whose trigger time falls inside the calendar
// year in the configured timezone.
func (s *calendarService) EventsOnYear(ctx context.Context, year int) ([]model.Event, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)

	events, err := s.events.ListTriggeredBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing events on year %d: %w", year, err)
	}
	return events, nil
}

func (s *calendarService) Create(ctx context.Context, organizerID int64, params CreateEventParams) (*model.Event, error) {
	event := &model.Event{
		ID:            id.New(),
		OrganizerID:   organizerID,
		Title:         params.Title,
		Description:   params.Description,
		TriggeredAt:   params.TriggeredAt,
		RecurringYear: params.RecurringYear,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	slog.InfoContext(ctx, "event created",
		"event_id", event.ID,
		"organizer_id", organizerID,
	)

	return event, nil
}

func (s *calendarService) Update(ctx context.Context, eventID int64, params UpdateEventParams) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}

	if params.Title != nil {
		event.Title = *params.Title
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.TriggeredAt != nil {
		event.TriggeredAt = *params.TriggeredAt
	}
	if params.RecurringYear != nil {
		event.RecurringYear = params.RecurringYear
	}

	if err := s.events.Update(ctx, event); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("updating event: %w", err)
	}

	return event, nil
}

// Delete removes an event on behalf of its organizer and echoes the deleted
// record. The lookup and the delete both filter on the organizer, so a
// requester who is not the organizer gets ErrEventNotFound and cannot tell
// the event exists.
func (s *calendarService) Delete(ctx context.Context, eventID, requesterID int64) (*model.Event, error) {
	event, err := s.events.GetByIDAndOrganizer(ctx, eventID, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event for delete: %w", err)
	}

	if err := s.events.DeleteByOrganizer(ctx, eventID, requesterID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("deleting event: %w", err)
	}

	slog.InfoContext(ctx, "event deleted",
		"event_id", eventID,
		"organizer_id", requesterID,
	)

	return event, nil
}
