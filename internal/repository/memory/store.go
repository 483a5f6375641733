// Package memory is a map-backed Record Store. It keeps the same unit of
// work semantics as the Postgres store and is used by tests and by
// STORE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"eventsmanager/internal/domain"
)

type tables struct {
	developers  map[string]domain.Developer
	events      map[int64]domain.Event
	invites     map[int64]domain.Invite
	nextEventID int64
	nextInvite  int64
}

func (t *tables) clone() *tables {
	c := &tables{
		developers:  make(map[string]domain.Developer, len(t.developers)),
		events:      make(map[int64]domain.Event, len(t.events)),
		invites:     make(map[int64]domain.Invite, len(t.invites)),
		nextEventID: t.nextEventID,
		nextInvite:  t.nextInvite,
	}
	for k, v := range t.developers {
		c.developers[k] = v
	}
	for k, v := range t.events {
		c.events[k] = v
	}
	for k, v := range t.invites {
		c.invites[k] = v
	}
	return c
}

// Store is an in-memory domain.Store.
type Store struct {
	mu   sync.RWMutex
	data *tables
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: &tables{
		developers:  make(map[string]domain.Developer),
		events:      make(map[int64]domain.Event),
		invites:     make(map[int64]domain.Invite),
		nextEventID: 1,
		nextInvite:  1,
	}}
}

// Begin starts a unit of work.
func (s *Store) Begin() domain.UnitOfWork {
	u := &unitOfWork{store: s}
	u.developers = &developerRepository{uow: u}
	u.events = &eventRepository{uow: u}
	u.invites = &inviteRepository{uow: u}
	return u
}

// op applies one staged change to a copy of the tables and reports whether
// a row changed.
type op func(t *tables) (bool, error)

type unitOfWork struct {
	store      *Store
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

// publish defers a write to a caller-owned record, such as an assigned id,
// until the whole commit has succeeded.
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

func (u *unitOfWork) Commit(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	defer u.reset()
	if len(u.ops) == 0 {
		return false, nil
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	next := u.store.data.clone()
	changed := false
	for _, o := range u.ops {
		c, err := o(next)
		if err != nil {
			return false, err
		}
		changed = changed || c
	}
	u.store.data = next
	for _, fn := range u.published {
		fn()
	}
	return changed, nil
}

// read runs fn against the committed tables under a read lock.
func (u *unitOfWork) read(fn func(t *tables)) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	fn(u.store.data)
}
