package dto

import (
	"time"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/service"
)

// FeedItemResponse flattens the report/event union: Kind says which of the
// type-specific fields are populated.
type FeedItemResponse struct {
	CreatedAt     time.Time  `json:"created_at"`
	TriggeredAt   *time.Time `json:"triggered_at,omitempty"`
	Kind          string     `json:"kind"`
	Body          string     `json:"body,omitempty"`
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	RecurringYear *int       `json:"recurring_year,omitempty"`
	ID            int64      `json:"id,string"`
	UserID        int64      `json:"user_id,string,omitempty"`
	OrganizerID   int64      `json:"organizer_id,string,omitempty"`
}

type FeedResponse struct {
	Items    []FeedItemResponse `json:"items"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int                `json:"total"`
	HasNext  bool               `json:"has_next"`
}

func ToFeedResponse(page *service.FeedPage) *FeedResponse {
	items := make([]FeedItemResponse, len(page.Items))
	for i, item := range page.Items {
		items[i] = toFeedItemResponse(item)
	}
	return &FeedResponse{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		HasNext:  page.HasNext,
	}
}

func toFeedItemResponse(item model.FeedItem) FeedItemResponse {
	resp := FeedItemResponse{
		Kind:      string(item.Kind),
		ID:        item.ID,
		CreatedAt: item.CreatedAt,
	}

	switch item.Kind {
	case model.FeedKindReport:
		if item.Report != nil {
			resp.Body = item.Report.Body
			resp.UserID = item.Report.UserID
		}
	case model.FeedKindEvent:
		if item.Event != nil {
			resp.Title = item.Event.Title
			resp.Description = item.Event.Description
			triggeredAt := item.Event.TriggeredAt
			resp.TriggeredAt = &triggeredAt
			resp.RecurringYear = item.Event.RecurringYear
			resp.OrganizerID = item.Event.OrganizerID
		}
	}

	return resp
}
