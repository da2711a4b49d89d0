package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/handler"
)

func CalendarRouter(rg *gin.RouterGroup, h *handler.CalendarHandler) {
	rg.GET("/events", h.Events)
	rg.POST("/events", h.Create)
	rg.PATCH("/events/:id", h.Update)
	rg.DELETE("/events/:id", h.Delete)
}
