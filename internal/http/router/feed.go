package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/handler"
)

func FeedRouter(rg *gin.RouterGroup, h *handler.FeedHandler) {
	rg.GET("", h.List)
}
