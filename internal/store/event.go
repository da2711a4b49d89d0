package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcandidier/workflow/internal/model"
)

const eventColumns = `id, organizer_id, title, description, triggered_at, recurring_year, created_at, updated_at`

const getEventSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1`

const getEventByOrganizerSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1 AND organizer_id = $2`

const createEventSQL = `
INSERT INTO events (id, organizer_id, title, description, triggered_at, recurring_year, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + eventColumns

const updateEventSQL = `
UPDATE events
SET title = $2, description = $3, triggered_at = $4, recurring_year = $5, updated_at = now()
WHERE id = $1
RETURNING ` + eventColumns

const deleteEventByOrganizerSQL = `
DELETE FROM events
WHERE id = $1 AND organizer_id = $2`

type eventStore struct {
	pool *pgxpool.Pool
}

func newEventStore(pool *pgxpool.Pool) EventStore {
	return &eventStore{pool: pool}
}

func (s *eventStore) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	event, err := scanEvent(s.pool.QueryRow(ctx, getEventSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return event, nil
}

// GetByIDAndOrganizer filters on the organizer at lookup time, so an event
// owned by someone else is indistinguishable from an absent one.
func (s *eventStore) GetByIDAndOrganizer(ctx context.Context, id, organizerID int64) (*model.Event, error) {
	event, err := scanEvent(s.pool.QueryRow(ctx, getEventByOrganizerSQL, id, organizerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting event by organizer: %w", err)
	}
	return event, nil
}

func (s *eventStore) Create(ctx context.Context, event *model.Event) error {
	created, err := scanEvent(s.pool.QueryRow(ctx, createEventSQL,
		event.ID, event.OrganizerID, event.Title, event.Description,
		event.TriggeredAt, event.RecurringYear))
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	*event = *created
	return nil
}

func (s *eventStore) Update(ctx context.Context, event *model.Event) error {
	updated, err := scanEvent(s.pool.QueryRow(ctx, updateEventSQL,
		event.ID, event.Title, event.Description,
		event.TriggeredAt, event.RecurringYear))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("updating event: %w", err)
	}
	*event = *updated
	return nil
}

// DeleteByOrganizer is a single conditional delete; a non-owner deleting an
// existing event gets ErrNotFound, same as deleting a missing one.
func (s *eventStore) DeleteByOrganizer(ctx context.Context, id, organizerID int64) error {
	tag, err := s.pool.Exec(ctx, deleteEventByOrganizerSQL, id, organizerID)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *eventStore) ListCreatedInRange(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	return s.list(ctx, sq.And{
		sq.GtOrEq{"created_at": start},
		sq.LtOrEq{"created_at": end},
	}, "created_at DESC")
}

func (s *eventStore) ListTriggeredBetween(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	return s.list(ctx, sq.And{
		sq.GtOrEq{"triggered_at": start},
		sq.LtOrEq{"triggered_at": end},
	}, "triggered_at ASC")
}

func (s *eventStore) list(ctx context.Context, where sq.Sqlizer, order string) ([]model.Event, error) {
	query, args, err := psql.
		Select("id", "organizer_id", "title", "description",
			"triggered_at", "recurring_year", "created_at", "updated_at").
		From("events").
		Where(where).
		OrderBy(order).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building event list query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	if err := row.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description,
		&e.TriggeredAt, &e.RecurringYear, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
