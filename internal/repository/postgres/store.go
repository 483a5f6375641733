// Package postgres is the lib/pq backed Record Store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventsmanager/internal/domain"
)

const uniqueViolation = "23505"

// Store is a domain.Store over a Postgres database. Reads go straight to
// the database; writes are staged and run in one transaction on Commit.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Begin() domain.UnitOfWork {
	u := &unitOfWork{db: s.DB}
	u.developers = &developerRepository{uow: u}
	u.events = &eventRepository{uow: u}
	u.invites = &inviteRepository{uow: u}
	return u
}

// op runs one staged statement inside the commit transaction and reports
// whether a row changed.
type op func(ctx context.Context, tx *sql.Tx) (bool, error)

type unitOfWork struct {
	db         *sql.DB
	ops        []op
	published  []func()
	developers *developerRepository
	events     *eventRepository
	invites    *inviteRepository
}

func (u *unitOfWork) Developers() domain.Repository[domain.Developer, string] { return u.developers }
func (u *unitOfWork) Events() domain.Repository[domain.Event, int64]         { return u.events }
func (u *unitOfWork) Invites() domain.InviteRepository                       { return u.invites }

func (u *unitOfWork) stage(o op) {
	u.ops = append(u.ops, o)
}

// publish defers a write to a caller-owned record until the transaction
// has committed.
func (u *unitOfWork) publish(fn func()) {
	u.published = append(u.published, fn)
}

func (u *unitOfWork) reset() {
	u.ops = nil
	u.published = nil
	u.developers.pending = nil
	u.events.pending = nil
	u.invites.pending = nil
}

func (u *unitOfWork) Commit(ctx context.Context) (changed bool, err error) {
	defer u.reset()
	if len(u.ops) == 0 {
		return false, nil
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, o := range u.ops {
		c, err := o(ctx, tx)
		if err != nil {
			return false, mapError(err)
		}
		changed = changed || c
	}
	if err := tx.Commit(); err != nil {
		return false, mapError(err)
	}
	for _, fn := range u.published {
		fn()
	}
	return changed, nil
}

// mapError turns unique violations into domain.ErrDuplicateKey.
func mapError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, perr.Detail)
	}
	return err
}

func filter[T any](records []*T, pred domain.Predicate[T]) []*T {
	out := make([]*T, 0, len(records))
	for _, r := range records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// rowsAffected reports ErrNotFound when an update matched nothing.
func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, domain.ErrNotFound
	}
	return true, nil
}
