package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/store"
)

type NotificationService interface {
	EventsToday(ctx context.Context, ref time.Time) ([]model.Event, error)
	Pending(ctx context.Context, userID int64) ([]model.Blocker, error)
	Grouped(ctx context.Context, userID int64) ([]model.PendingIssueGroup, error)
}

type notificationService struct {
	events   store.EventStore
	blockers store.BlockerStore
	loc      *time.Location
}

func NewNotificationService(events store.EventStore, blockers store.BlockerStore, loc *time.Location) NotificationService {
	return &notificationService{
		events:   events,
		blockers: blockers,
		loc:      loc,
	}
}

// EventsToday returns events whose trigger time falls on ref's calendar day
// in the configured timezone.
func (s *notificationService) EventsToday(ctx context.Context, ref time.Time) ([]model.Event, error) {
	year, month, day := ref.In(s.loc).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	events, err := s.events.ListTriggeredBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing events triggered today: %w", err)
	}
	return events, nil
}

// Pending returns the caller's unresolved blockers: fixed = false and parent
// report owned by userID.
func (s *notificationService) Pending(ctx context.Context, userID int64) ([]model.Blocker, error) {
	blockers, err := s.blockers.ListPendingByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pending blockers: %w", err)
	}
	return blockers, nil
}

// Grouped pivots the caller's unresolved blockers into one group per project.
func (s *notificationService) Grouped(ctx context.Context, userID int64) ([]model.PendingIssueGroup, error) {
	blockers, err := s.blockers.ListPendingByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pending blockers: %w", err)
	}
	return groupByProject(blockers), nil
}

// groupByProject accumulates blockers into per-project groups in a single
// pass over the input. Blockers without a project belong to no group, and a
// project with no qualifying blockers yields no group. Groups keep the order
// their project was first seen in.
func groupByProject(blockers []model.Blocker) []model.PendingIssueGroup {
	index := make(map[int64]int)
	groups := make([]model.PendingIssueGroup, 0)

	for _, b := range blockers {
		if b.ProjectID == nil {
			continue
		}
		pid := *b.ProjectID

		i, ok := index[pid]
		if !ok {
			i = len(groups)
			index[pid] = i
			groups = append(groups, model.PendingIssueGroup{ProjectID: pid})
		}
		groups[i].BlockerIDs = append(groups[i].BlockerIDs, b.ID)
	}

	return groups
}
