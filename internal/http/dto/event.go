package dto

import (
	"time"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/service"
)

type CreateEventRequest struct {
	TriggeredAt   time.Time `json:"triggered_at" binding:"required"`
	Title         string    `json:"title" binding:"required,min=1,max=255"`
	Description   string    `json:"description" binding:"max=2000"`
	RecurringYear *int      `json:"recurring_year,omitempty" binding:"omitempty,min=1970,max=9999"`
}

func (r *CreateEventRequest) ToParams() service.CreateEventParams {
	return service.CreateEventParams{
		Title:         r.Title,
		Description:   r.Description,
		TriggeredAt:   r.TriggeredAt,
		RecurringYear: r.RecurringYear,
	}
}

type UpdateEventRequest struct {
	Title         *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description   *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	TriggeredAt   *time.Time `json:"triggered_at,omitempty"`
	RecurringYear *int       `json:"recurring_year,omitempty" binding:"omitempty,min=1970,max=9999"`
}

func (r *UpdateEventRequest) ToParams() service.UpdateEventParams {
	return service.UpdateEventParams{
		Title:         r.Title,
		Description:   r.Description,
		TriggeredAt:   r.TriggeredAt,
		RecurringYear: r.RecurringYear,
	}
}

type EventResponse struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	TriggeredAt   time.Time `json:"triggered_at"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	RecurringYear *int      `json:"recurring_year,omitempty"`
	ID            int64     `json:"id,string"`
	OrganizerID   int64     `json:"organizer_id,string"`
}

func ToEventResponse(event *model.Event) *EventResponse {
	return &EventResponse{
		ID:            event.ID,
		OrganizerID:   event.OrganizerID,
		Title:         event.Title,
		Description:   event.Description,
		TriggeredAt:   event.TriggeredAt,
		RecurringYear: event.RecurringYear,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
	}
}

func ToEventResponses(events []model.Event) []EventResponse {
	result := make([]EventResponse, len(events))
	for i := range events {
		result[i] = *ToEventResponse(&events[i])
	}
	return result
}
