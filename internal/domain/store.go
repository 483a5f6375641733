package domain

import "context"

// Include names a related record that a repository attaches to query results.
type Include string

const (
	IncludeEvent     Include = "event"
	IncludeDeveloper Include = "developer"
)

// Predicate selects records in FindWhere.
type Predicate[T any] func(*T) bool

// Repository is keyed and predicate-based access to one record kind.
// Add and Update are staged on the owning UnitOfWork and only become
// durable on Commit. Reads see records staged by Add in the same unit.
type Repository[T any, K comparable] interface {
	// Get returns ErrNotFound when no record has the key.
	Get(ctx context.Context, key K) (*T, error)
	FindWhere(ctx context.Context, pred Predicate[T], includes ...Include) ([]*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	// Add stages an insert. Surrogate ids are written back to record only
	// after Commit succeeds.
	Add(ctx context.Context, record *T) error
	Update(ctx context.Context, record *T) error
}

// InviteRepository adds the keyed lookup used to reject duplicate invites.
type InviteRepository interface {
	Repository[Invite, int64]
	// FindByEventAndDeveloper returns ErrNotFound when the developer has no
	// invite to the event. Invites staged by Add are matched too.
	FindByEventAndDeveloper(ctx context.Context, eventID int64, email string) (*Invite, error)
}

// UnitOfWork groups the repositories used by one operation and the single
// commit point that persists their staged changes.
type UnitOfWork interface {
	Developers() Repository[Developer, string]
	Events() Repository[Event, int64]
	Invites() InviteRepository
	// Commit persists every staged change atomically and reports whether
	// anything was written. On error all staged changes are discarded.
	// Unique-key violations are reported as ErrDuplicateKey.
	Commit(ctx context.Context) (bool, error)
}

// Store hands out units of work. Implementations are safe for concurrent use;
// units of work are not.
type Store interface {
	Begin() UnitOfWork
}
