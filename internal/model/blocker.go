package model

import "time"

// Blocker is an unresolved-issue record attached to exactly one report and
// optionally one project. It is marked fixed elsewhere; this service only
// reads unresolved ones.
type Blocker struct {
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	ProjectID   *int64    `json:"project_id,omitempty"`
	ID          int64     `json:"id,string"`
	ReportID    int64     `json:"report_id,string"`
	IsFixed     bool      `json:"is_fixed"`
}
