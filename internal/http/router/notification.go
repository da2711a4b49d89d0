package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/handler"
)

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.GET("/events", h.Events)
	rg.GET("/pending", h.Pending)
	rg.GET("/grouped", h.Grouped)
}
