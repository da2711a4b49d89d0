package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mcandidier/workflow/internal/http/dto"
	"github.com/mcandidier/workflow/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := h.projectService.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list projects", "error", err)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to list projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, kindInvalidArgument, "invalid project ID")
		return
	}

	project, err := h.projectService.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, kindNotFound, "project not found")
			return
		}
		slog.ErrorContext(ctx, "failed to get project", "error", err, "project_id", projectID)
		respondError(c, http.StatusInternalServerError, kindInternal, "failed to get project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}
