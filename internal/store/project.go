package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcandidier/workflow/internal/model"
)

const projectColumns = `id, name, created_at`

const getProjectSQL = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1`

const listProjectsSQL = `
SELECT ` + projectColumns + `
FROM projects
ORDER BY name ASC`

type projectStore struct {
	pool *pgxpool.Pool
}

func newProjectStore(pool *pgxpool.Pool) ProjectStore {
	return &projectStore{pool: pool}
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	project, err := scanProject(s.pool.QueryRow(ctx, getProjectSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return project, nil
}

func (s *projectStore) List(ctx context.Context) ([]model.Project, error) {
	rows, err := s.pool.Query(ctx, listProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
