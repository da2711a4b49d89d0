package store

import (
	"context"
	"errors"
	"time"

	"github.com/mcandidier/workflow/internal/model"
)

var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

type ReportStore interface {
	GetByID(ctx context.Context, id int64) (*model.Report, error)
	Create(ctx context.Context, report *model.Report) error
	ListByOwnerInRange(ctx context.Context, userID int64, start, end time.Time) ([]model.Report, error)
}

type EventStore interface {
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	GetByIDAndOrganizer(ctx context.Context, id, organizerID int64) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	DeleteByOrganizer(ctx context.Context, id, organizerID int64) error // conditional delete
	ListCreatedInRange(ctx context.Context, start, end time.Time) ([]model.Event, error)
	ListTriggeredBetween(ctx context.Context, start, end time.Time) ([]model.Event, error)
}

type BlockerStore interface {
	ListPendingByOwner(ctx context.Context, userID int64) ([]model.Blocker, error)
}

type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
}
