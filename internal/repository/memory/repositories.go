package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"eventsmanager/internal/domain"
)

func filter[T any](records []*T, pred domain.Predicate[T]) []*T {
	out := make([]*T, 0, len(records))
	for _, r := range records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}

type developerRepository struct {
	uow     *unitOfWork
	pending []*domain.Developer
}

func (r *developerRepository) Get(ctx context.Context, email string) (*domain.Developer, error) {
	for _, d := range r.pending {
		if d.Email == email {
			return d, nil
		}
	}
	var found *domain.Developer
	r.uow.read(func(t *tables) {
		if d, ok := t.developers[email]; ok {
			found = &d
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *developerRepository) FindWhere(ctx context.Context, pred domain.Predicate[domain.Developer], _ ...domain.Include) ([]*domain.Developer, error) {
	var all []*domain.Developer
	r.uow.read(func(t *tables) {
		all = make([]*domain.Developer, 0, len(t.developers)+len(r.pending))
		for _, d := range t.developers {
			all = append(all, &d)
		}
	})
	slices.SortFunc(all, func(a, b *domain.Developer) int { return cmp.Compare(a.Email, b.Email) })
	all = append(all, r.pending...)
	return filter(all, pred), nil
}

func (r *developerRepository) GetAll(ctx context.Context) ([]*domain.Developer, error) {
	return r.FindWhere(ctx, nil)
}

func (r *developerRepository) Add(ctx context.Context, d *domain.Developer) error {
	r.pending = append(r.pending, d)
	r.uow.stage(func(t *tables) (bool, error) {
		if _, ok := t.developers[d.Email]; ok {
			return false, fmt.Errorf("%w: developer %s", domain.ErrDuplicateKey, d.Email)
		}
		t.developers[d.Email] = *d
		return true, nil
	})
	return nil
}

func (r *developerRepository) Update(ctx context.Context, d *domain.Developer) error {
	r.uow.stage(func(t *tables) (bool, error) {
		if _, ok := t.developers[d.Email]; !ok {
			return false, domain.ErrNotFound
		}
		t.developers[d.Email] = *d
		return true, nil
	})
	return nil
}

type eventRepository struct {
	uow     *unitOfWork
	pending []*domain.Event
}

func (r *eventRepository) Get(ctx context.Context, id int64) (*domain.Event, error) {
	var found *domain.Event
	r.uow.read(func(t *tables) {
		if e, ok := t.events[id]; ok {
			found = &e
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *eventRepository) FindWhere(ctx context.Context, pred domain.Predicate[domain.Event], _ ...domain.Include) ([]*domain.Event, error) {
	var all []*domain.Event
	r.uow.read(func(t *tables) {
		all = make([]*domain.Event, 0, len(t.events)+len(r.pending))
		for _, e := range t.events {
			all = append(all, &e)
		}
	})
	slices.SortFunc(all, func(a, b *domain.Event) int { return cmp.Compare(a.ID, b.ID) })
	all = append(all, r.pending...)
	return filter(all, pred), nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return r.FindWhere(ctx, nil)
}

func (r *eventRepository) Add(ctx context.Context, e *domain.Event) error {
	r.pending = append(r.pending, e)
	r.uow.stage(func(t *tables) (bool, error) {
		stored := *e
		stored.ID = t.nextEventID
		t.nextEventID++
		t.events[stored.ID] = stored
		r.uow.publish(func() { e.ID = stored.ID })
		return true, nil
	})
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	r.uow.stage(func(t *tables) (bool, error) {
		if _, ok := t.events[e.ID]; !ok {
			return false, domain.ErrNotFound
		}
		t.events[e.ID] = *e
		return true, nil
	})
	return nil
}

type inviteRepository struct {
	uow     *unitOfWork
	pending []*domain.Invite
}

// attach copies the current event and developer onto inv.
func attach(t *tables, inv *domain.Invite, includes []domain.Include) {
	for _, inc := range includes {
		switch inc {
		case domain.IncludeEvent:
			if e, ok := t.events[inv.EventID]; ok {
				inv.Event = &e
			}
		case domain.IncludeDeveloper:
			if d, ok := t.developers[inv.DeveloperEmail]; ok {
				inv.Developer = &d
			}
		}
	}
}

func (r *inviteRepository) Get(ctx context.Context, id int64) (*domain.Invite, error) {
	var found *domain.Invite
	r.uow.read(func(t *tables) {
		if inv, ok := t.invites[id]; ok {
			found = &inv
			attach(t, found, []domain.Include{domain.IncludeEvent, domain.IncludeDeveloper})
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

// FindByEventAndDeveloper looks up the invite for one (event, developer)
// pair, staged invites included.
func (r *inviteRepository) FindByEventAndDeveloper(ctx context.Context, eventID int64, email string) (*domain.Invite, error) {
	for _, inv := range r.pending {
		if inv.EventID == eventID && inv.DeveloperEmail == email {
			return inv, nil
		}
	}
	var found *domain.Invite
	r.uow.read(func(t *tables) {
		for _, inv := range t.invites {
			if inv.EventID == eventID && inv.DeveloperEmail == email {
				found = &inv
				attach(t, found, []domain.Include{domain.IncludeEvent, domain.IncludeDeveloper})
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (r *inviteRepository) FindWhere(ctx context.Context, pred domain.Predicate[domain.Invite], includes ...domain.Include) ([]*domain.Invite, error) {
	var all []*domain.Invite
	r.uow.read(func(t *tables) {
		all = make([]*domain.Invite, 0, len(t.invites)+len(r.pending))
		for _, inv := range t.invites {
			attach(t, &inv, includes)
			all = append(all, &inv)
		}
	})
	slices.SortFunc(all, func(a, b *domain.Invite) int { return cmp.Compare(a.ID, b.ID) })
	all = append(all, r.pending...)
	return filter(all, pred), nil
}

func (r *inviteRepository) GetAll(ctx context.Context) ([]*domain.Invite, error) {
	return r.FindWhere(ctx, nil)
}

func (r *inviteRepository) Add(ctx context.Context, inv *domain.Invite) error {
	r.pending = append(r.pending, inv)
	r.uow.stage(func(t *tables) (bool, error) {
		if _, ok := t.events[inv.EventID]; !ok {
			return false, fmt.Errorf("invite references unknown event %d", inv.EventID)
		}
		if _, ok := t.developers[inv.DeveloperEmail]; !ok {
			return false, fmt.Errorf("invite references unknown developer %s", inv.DeveloperEmail)
		}
		for _, existing := range t.invites {
			if existing.EventID == inv.EventID && existing.DeveloperEmail == inv.DeveloperEmail {
				return false, fmt.Errorf("%w: invite for event %d and developer %s", domain.ErrDuplicateKey, inv.EventID, inv.DeveloperEmail)
			}
		}
		stored := *inv
		stored.ID = t.nextInvite
		stored.Event, stored.Developer = nil, nil
		t.nextInvite++
		t.invites[stored.ID] = stored
		r.uow.publish(func() { inv.ID = stored.ID })
		return true, nil
	})
	return nil
}

// Update persists the invite status; the event and developer bindings are immutable.
func (r *inviteRepository) Update(ctx context.Context, inv *domain.Invite) error {
	r.uow.stage(func(t *tables) (bool, error) {
		stored, ok := t.invites[inv.ID]
		if !ok {
			return false, domain.ErrNotFound
		}
		stored.Status = inv.Status
		t.invites[inv.ID] = stored
		return true, nil
	})
	return nil
}
