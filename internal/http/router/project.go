package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/handler"
)

func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}
