package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/dto"
	"github.com/mcandidier/workflow/internal/service"
)

type FeedHandler struct {
	feedService service.FeedService
	now         func() time.Time
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		now:         time.Now,
	}
}

func (h *FeedHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, kindUnauthorized, "not authenticated")
		return
	}

	page, err := intQuery(c, "page", 1)
	if err != nil {
		respondError(c, http.StatusBadRequest, kindInvalidArgument, "invalid page parameter")
		return
	}

	pageSize, err := intQuery(c, "page_size", 0)
	if err != nil {
		respondError(c, http.StatusBadRequest, kindInvalidArgument, "invalid page_size parameter")
		return
	}

	feedPage, err := h.feedService.Feed(ctx, user.ID, h.now(), page, pageSize)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build feed", "error", err, "user_id", user.ID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to build feed")
		return
	}

	c.JSON(http.StatusOK, dto.ToFeedResponse(feedPage))
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
