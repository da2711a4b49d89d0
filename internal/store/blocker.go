package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcandidier/workflow/internal/model"
)

type blockerStore struct {
	pool *pgxpool.Pool
}

func newBlockerStore(pool *pgxpool.Pool) BlockerStore {
	return &blockerStore{pool: pool}
}

// ListPendingByOwner joins through reports so only blockers whose parent
// report belongs to userID qualify.
func (s *blockerStore) ListPendingByOwner(ctx context.Context, userID int64) ([]model.Blocker, error) {
	query, args, err := psql.
		Select("b.id", "b.report_id", "b.project_id", "b.description", "b.is_fixed", "b.created_at").
		From("blockers b").
		Join("reports r ON r.id = b.report_id").
		Where(sq.Eq{"b.is_fixed": false}).
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("b.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building pending blocker query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing pending blockers: %w", err)
	}
	defer rows.Close()

	var blockers []model.Blocker
	for rows.Next() {
		blocker, err := scanBlocker(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning blocker: %w", err)
		}
		blockers = append(blockers, *blocker)
	}
	return blockers, rows.Err()
}

func scanBlocker(row pgx.Row) (*model.Blocker, error) {
	var b model.Blocker
	if err := row.Scan(&b.ID, &b.ReportID, &b.ProjectID, &b.Description,
		&b.IsFixed, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
