package postgres

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	"eventsmanager/internal/domain"
)

type inviteRepository struct {
	uow     *unitOfWork
	pending []*domain.Invite
}

const inviteSelect = `
	SELECT i.id, i.event_id, i.developer_email, i.status,
		e.id, e.name, e.description, e.date, e.event_type, e.city, e.country, e.latitude, e.longitude,
		d.email, d.name, d.current_city, d.phone_number
	FROM invites i
	JOIN events e ON e.id = i.event_id
	JOIN developers d ON d.email = i.developer_email
`

// scanInvite reads one joined row and attaches the related records asked for.
func scanInvite(s interface{ Scan(...any) error }, includes []domain.Include) (*domain.Invite, error) {
	inv := &domain.Invite{}
	e := &domain.Event{}
	d := &domain.Developer{}
	var cityNull, countryNull sql.NullString
	var latNull, lngNull sql.NullFloat64
	err := s.Scan(
		&inv.ID, &inv.EventID, &inv.DeveloperEmail, &inv.Status,
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Type, &cityNull, &countryNull, &latNull, &lngNull,
		&d.Email, &d.Name, &d.CurrentCity, &d.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}
	if cityNull.Valid {
		e.City = &cityNull.String
	}
	if countryNull.Valid {
		e.Country = &countryNull.String
	}
	if latNull.Valid {
		e.Latitude = &latNull.Float64
	}
	if lngNull.Valid {
		e.Longitude = &lngNull.Float64
	}
	if slices.Contains(includes, domain.IncludeEvent) {
		inv.Event = e
	}
	if slices.Contains(includes, domain.IncludeDeveloper) {
		inv.Developer = d
	}
	return inv, nil
}

func (r *inviteRepository) Get(ctx context.Context, id int64) (*domain.Invite, error) {
	query := inviteSelect + ` WHERE i.id = $1`
	inv, err := scanInvite(r.uow.db.QueryRowContext(ctx, query, id),
		[]domain.Include{domain.IncludeEvent, domain.IncludeDeveloper})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// FindByEventAndDeveloper checks staged invites first, then runs a keyed
// query on the (event_id, developer_email) unique index.
func (r *inviteRepository) FindByEventAndDeveloper(ctx context.Context, eventID int64, email string) (*domain.Invite, error) {
	for _, inv := range r.pending {
		if inv.EventID == eventID && inv.DeveloperEmail == email {
			return inv, nil
		}
	}
	query := inviteSelect + ` WHERE i.event_id = $1 AND i.developer_email = $2`
	inv, err := scanInvite(r.uow.db.QueryRowContext(ctx, query, eventID, email),
		[]domain.Include{domain.IncludeEvent, domain.IncludeDeveloper})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *inviteRepository) FindWhere(ctx context.Context, pred domain.Predicate[domain.Invite], includes ...domain.Include) ([]*domain.Invite, error) {
	rows, err := r.uow.db.QueryContext(ctx, inviteSelect+` ORDER BY i.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []*domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows, includes)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	invs = append(invs, r.pending...)
	return filter(invs, pred), nil
}

func (r *inviteRepository) GetAll(ctx context.Context) ([]*domain.Invite, error) {
	return r.FindWhere(ctx, nil)
}

func (r *inviteRepository) Add(ctx context.Context, inv *domain.Invite) error {
	r.pending = append(r.pending, inv)
	r.uow.stage(func(ctx context.Context, tx *sql.Tx) (bool, error) {
		query := `
			INSERT INTO invites (event_id, developer_email, status)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		var id int64
		if err := tx.QueryRowContext(ctx, query, inv.EventID, inv.DeveloperEmail, inv.Status).Scan(&id); err != nil {
			return false, err
		}
		r.uow.publish(func() { inv.ID = id })
		return true, nil
	})
	return nil
}

// Update persists the invite status; the event and developer bindings are immutable.
func (r *inviteRepository) Update(ctx context.Context, inv *domain.Invite) error {
	r.uow.stage(func(ctx context.Context, tx *sql.Tx) (bool, error) {
		res, err := tx.ExecContext(ctx, `UPDATE invites SET status = $1 WHERE id = $2`, inv.Status, inv.ID)
		if err != nil {
			return false, err
		}
		return rowsAffected(res)
	})
	return nil
}
