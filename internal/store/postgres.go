package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds the filtered list queries with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Stores bundles the pgx-backed store implementations sharing one pool.
type Stores struct {
	Users    UserStore
	Sessions SessionStore
	Reports  ReportStore
	Events   EventStore
	Blockers BlockerStore
	Projects ProjectStore
}

func New(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Users:    newUserStore(pool),
		Sessions: newSessionStore(pool),
		Reports:  newReportStore(pool),
		Events:   newEventStore(pool),
		Blockers: newBlockerStore(pool),
		Projects: newProjectStore(pool),
	}
}
