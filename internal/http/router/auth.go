package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/me", h.Me)
	rg.POST("/logout", h.Logout)
}
