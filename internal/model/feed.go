package model

import "time"

// FeedKind tags which record a FeedItem wraps.
type FeedKind string

const (
	FeedKindEvent  FeedKind = "event"
	FeedKindReport FeedKind = "report"
)

// FeedItem is the transient union over reports and events that the feed is
// sorted and paginated on. Exactly one of Report/Event is set, matching Kind.
// Never persisted.
type FeedItem struct {
	CreatedAt time.Time
	Report    *Report
	Event     *Event
	Kind      FeedKind
	ID        int64
}

// PendingIssueGroup is the per-project projection of unresolved blockers.
// Constructed fresh on every request; never persisted.
type PendingIssueGroup struct {
	BlockerIDs []int64 `json:"blocker_ids"`
	ProjectID  int64   `json:"project_id,string"`
}
