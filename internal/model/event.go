package model

import "time"

// Event is a scheduled occurrence, visible fleet-wide but mutable only by its
// organizer. TriggeredAt is the scheduled trigger time; RecurringYear, when
// set, marks the year the event recurs on.
type Event struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	TriggeredAt   time.Time `json:"triggered_at"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	RecurringYear *int      `json:"recurring_year,omitempty"`
	ID            int64     `json:"id,string"`
	OrganizerID   int64     `json:"organizer_id,string"`
}
