package dto

import (
	"time"

	"github.com/mcandidier/workflow/internal/model"
)

type ProjectResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	ID        int64     `json:"id,string"`
}

func ToProjectResponse(project *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt,
	}
}

func ToProjectResponses(projects []model.Project) []ProjectResponse {
	result := make([]ProjectResponse, len(projects))
	for i := range projects {
		result[i] = *ToProjectResponse(&projects[i])
	}
	return result
}
