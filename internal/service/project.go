package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/store"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService is a read-only view over the project catalog; projects are
// provisioned out of band.
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, projectID int64) (*model.Project, error)
}

type projectService struct {
	projects store.ProjectStore
}

func NewProjectService(projects store.ProjectStore) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, projectID int64) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return project, nil
}
