package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcandidier/workflow/internal/model"
)

const userColumns = `id, email, name, avatar_url, created_at`

const getUserSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const createUserSQL = `
INSERT INTO users (id, email, name, avatar_url, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING ` + userColumns

type userStore struct {
	pool *pgxpool.Pool
}

func newUserStore(pool *pgxpool.Pool) UserStore {
	return &userStore{pool: pool}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, getUserSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := scanUser(s.pool.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	created, err := scanUser(s.pool.QueryRow(ctx, createUserSQL,
		user.ID, user.Email, user.Name, user.AvatarURL))
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	*user = *created
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
