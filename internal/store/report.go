package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcandidier/workflow/internal/model"
)

const reportColumns = `id, user_id, body, created_at`

const getReportSQL = `
SELECT ` + reportColumns + `
FROM reports
WHERE id = $1`

const createReportSQL = `
INSERT INTO reports (id, user_id, body, created_at)
VALUES ($1, $2, $3, now())
RETURNING ` + reportColumns

type reportStore struct {
	pool *pgxpool.Pool
}

func newReportStore(pool *pgxpool.Pool) ReportStore {
	return &reportStore{pool: pool}
}

func (s *reportStore) GetByID(ctx context.Context, id int64) (*model.Report, error) {
	report, err := scanReport(s.pool.QueryRow(ctx, getReportSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return report, nil
}

func (s *reportStore) Create(ctx context.Context, report *model.Report) error {
	created, err := scanReport(s.pool.QueryRow(ctx, createReportSQL,
		report.ID, report.UserID, report.Body))
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	*report = *created
	return nil
}

func (s *reportStore) ListByOwnerInRange(ctx context.Context, userID int64, start, end time.Time) ([]model.Report, error) {
	query, args, err := psql.
		Select("id", "user_id", "body", "created_at").
		From("reports").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building report range query: %w", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reports in range: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, *report)
	}
	return reports, rows.Err()
}

func scanReport(row pgx.Row) (*model.Report, error) {
	var r model.Report
	if err := row.Scan(&r.ID, &r.UserID, &r.Body, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}
