package model

import "time"

// Report is a daily status record. Immutable once created and owned by the
// user who wrote it.
type Report struct {
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
}
