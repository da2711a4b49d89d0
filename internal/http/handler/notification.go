package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/dto"
	"github.com/mcandidier/workflow/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	now                 func() time.Time
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// Events lists the events triggered on the current calendar day.
func (h *NotificationHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.notificationService.EventsToday(ctx, h.now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to list triggered events", "error", err)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to list triggered events")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// Pending lists the caller's unresolved blockers.
func (h *NotificationHandler) Pending(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, kindUnauthorized, "not authenticated")
		return
	}

	blockers, err := h.notificationService.Pending(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list pending blockers", "error", err, "user_id", user.ID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to list pending blockers")
		return
	}

	c.JSON(http.StatusOK, dto.ToBlockerResponses(blockers))
}

// Grouped lists the caller's unresolved blockers grouped per project.
func (h *NotificationHandler) Grouped(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, kindUnauthorized, "not authenticated")
		return
	}

	groups, err := h.notificationService.Grouped(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to group pending blockers", "error", err, "user_id", user.ID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to group pending blockers")
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingIssueGroupResponses(groups))
}
