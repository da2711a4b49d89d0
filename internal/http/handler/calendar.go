package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/dto"
	"github.com/mcandidier/workflow/internal/service"
)

type CalendarHandler struct {
	calendarService service.CalendarService
	loc             *time.Location
	now             func() time.Time
}

func NewCalendarHandler(calendarService service.CalendarService, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		loc:             loc,
		now:             time.Now,
	}
}

// Events lists events scheduled in the requested year, defaulting to the
// current year.
func (h *CalendarHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	year := h.now().In(h.loc).Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, kindInvalidArgument, "invalid year parameter")
			return
		}
		year = parsed
	}

	events, err := h.calendarService.EventsOnYear(ctx, year)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list events on year", "error", err, "year", year)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to list events")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *CalendarHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, kindUnauthorized, "not authenticated")
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	event, err := h.calendarService.Create(ctx, user.ID, req.ToParams())
	if err != nil {
		slog.ErrorContext(ctx, "failed to create event", "error", err, "organizer_id", user.ID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to create event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *CalendarHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, kindInvalidArgument, "invalid event ID")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	event, err := h.calendarService.Update(ctx, eventID, req.ToParams())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondError(c, http.StatusNotFound, kindNotFound, "event not found")
			return
		}
		slog.ErrorContext(ctx, "failed to update event", "error", err, "event_id", eventID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to update event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Delete removes the caller's event and echoes the deleted record. An event
// organized by someone else yields the same 404 as a missing one.
func (h *CalendarHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, kindUnauthorized, "not authenticated")
		return
	}

	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, kindInvalidArgument, "invalid event ID")
		return
	}

	event, err := h.calendarService.Delete(ctx, eventID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			respondError(c, http.StatusNotFound, kindNotFound, "event not found")
			return
		}
		slog.ErrorContext(ctx, "failed to delete event", "error", err, "event_id", eventID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to delete event")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
