package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventsmanager/internal/domain"
)

type eventRepository struct {
	uow     *unitOfWork
	pending []*domain.Event
}

const eventColumns = `id, name, description, date, event_type, city, country, latitude, longitude`

func scanEvent(s interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var cityNull, countryNull sql.NullString
	var latNull, lngNull sql.NullFloat64
	if err := s.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Type,
		&cityNull, &countryNull, &latNull, &lngNull,
	); err != nil {
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
	return e, nil
}

func (r *eventRepository) Get(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.uow.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) FindWhere(ctx context.Context, pred domain.Predicate[domain.Event], _ ...domain.Include) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`
	rows, err := r.uow.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	events = append(events, r.pending...)
	return filter(events, pred), nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return r.FindWhere(ctx, nil)
}

func (r *eventRepository) Add(ctx context.Context, e *domain.Event) error {
	r.pending = append(r.pending, e)
	r.uow.stage(func(ctx context.Context, tx *sql.Tx) (bool, error) {
		query := `
			INSERT INTO events (name, description, date, event_type, city, country, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		var id int64
		err := tx.QueryRowContext(ctx, query,
			e.Name, e.Description, e.Date, e.Type, e.City, e.Country, e.Latitude, e.Longitude,
		).Scan(&id)
		if err != nil {
			return false, err
		}
		r.uow.publish(func() { e.ID = id })
		return true, nil
	})
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	r.uow.stage(func(ctx context.Context, tx *sql.Tx) (bool, error) {
		query := `
			UPDATE events
			SET name = $1, description = $2, date = $3, event_type = $4,
				city = $5, country = $6, latitude = $7, longitude = $8
			WHERE id = $9
		`
		res, err := tx.ExecContext(ctx, query,
			e.Name, e.Description, e.Date, e.Type, e.City, e.Country, e.Latitude, e.Longitude, e.ID,
		)
		if err != nil {
			return false, err
		}
		return rowsAffected(res)
	})
	return nil
}
