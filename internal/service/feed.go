package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mcandidier/workflow/common/window"
	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/pagination"
	"github.com/mcandidier/workflow/internal/store"
)

// feedWindowMonths is the rolling lookback bounding which records are
// eligible for the feed.
const feedWindowMonths = 3

type FeedService interface {
	Feed(ctx context.Context, userID int64, ref time.Time, page, pageSize int) (*FeedPage, error)
}

// FeedPage is one page of the merged report/event stream.
type FeedPage struct {
	Items    []model.FeedItem
	Page     int
	PageSize int
	Total    int
	HasNext  bool
}

type feedService struct {
	reports         store.ReportStore
	events          store.EventStore
	maxPageSize     int
	defaultPageSize int
}

func NewFeedService(reports store.ReportStore, events store.EventStore, maxPageSize, defaultPageSize int) FeedService {
	return &feedService{
		reports:         reports,
		events:          events,
		maxPageSize:     maxPageSize,
		defaultPageSize: defaultPageSize,
	}
}

// Feed merges the caller's reports and all events created inside the rolling
// window into one stream ordered by creation time descending, then pages it.
// Reports are owner-scoped; events are visible fleet-wide. The two fetches are
// independent reads with no snapshot isolation, so items may drift across
// pages under concurrent writes.
func (s *feedService) Feed(ctx context.Context, userID int64, ref time.Time, page, pageSize int) (*FeedPage, error) {
	win, err := window.LastNMonths(feedWindowMonths, ref)
	if err != nil {
		return nil, fmt.Errorf("computing feed window: %w", err)
	}

	reports, err := s.reports.ListByOwnerInRange(ctx, userID, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	events, err := s.events.ListCreatedInRange(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	items := mergeFeedItems(reports, events)

	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	p := pagination.Paginate(items, page, pageSize, s.maxPageSize)

	return &FeedPage{
		Items:    p.Items,
		Page:     p.Number,
		PageSize: p.Size,
		Total:    p.Total,
		HasNext:  p.HasNext,
	}, nil
}

// mergeFeedItems tags both collections and sorts them newest first. Items
// sharing a timestamp order by kind ascending, then ID ascending, so repeated
// calls over the same rows always page identically.
func mergeFeedItems(reports []model.Report, events []model.Event) []model.FeedItem {
	items := make([]model.FeedItem, 0, len(reports)+len(events))

	for i := range reports {
		r := &reports[i]
		items = append(items, model.FeedItem{
			Kind:      model.FeedKindReport,
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			Report:    r,
		})
	}
	for i := range events {
		e := &events[i]
		items = append(items, model.FeedItem{
			Kind:      model.FeedKindEvent,
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			Event:     e,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID < b.ID
	})

	return items
}
