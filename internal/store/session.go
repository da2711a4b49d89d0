package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcandidier/workflow/internal/model"
)

const sessionColumns = `id, user_id, expires_at, created_at`

const getValidSessionSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1 AND expires_at > now()`

const createSessionSQL = `
INSERT INTO sessions (id, user_id, expires_at, created_at)
VALUES ($1, $2, $3, now())
RETURNING ` + sessionColumns

const deleteSessionSQL = `
DELETE FROM sessions
WHERE id = $1`

const deleteExpiredSessionsSQL = `
DELETE FROM sessions
WHERE expires_at <= now()`

type sessionStore struct {
	pool *pgxpool.Pool
}

func newSessionStore(pool *pgxpool.Pool) SessionStore {
	return &sessionStore{pool: pool}
}

// GetValid returns ErrNotFound for expired sessions as well as missing ones.
func (s *sessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	session, err := scanSession(s.pool.QueryRow(ctx, getValidSessionSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	created, err := scanSession(s.pool.QueryRow(ctx, createSessionSQL,
		session.ID, session.UserID, session.ExpiresAt))
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	*session = *created
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *sessionStore) DeleteExpired(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, deleteExpiredSessionsSQL); err != nil {
		return fmt.Errorf("deleting expired sessions: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row) (*model.Session, error) {
	var sess model.Session
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt); err != nil {
		return nil, err
	}
	return &sess, nil
}
