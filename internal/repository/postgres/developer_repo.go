package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventsmanager/internal/domain"
)

type developerRepository struct {
	uow     *unitOfWork
	pending []*domain.Developer
}

func scanDeveloper(s interface{ Scan(...any) error }) (*domain.Developer, error) {
	d := &domain.Developer{}
	if err := s.Scan(&d.Email, &d.Name, &d.CurrentCity, &d.PhoneNumber); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *developerRepository) Get(ctx context.Context, email string) (*domain.Developer, error) {
	for _, d := range r.pending {
		if d.Email == email {
			return d, nil
		}
	}
	query := `
		SELECT email, name, current_city, phone_number
		FROM developers
		WHERE email = $1
	`
	d, err := scanDeveloper(r.uow.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *developerRepository) FindWhere(ctx context.Context, pred domain.Predicate[domain.Developer], _ ...domain.Include) ([]*domain.Developer, error) {
	query := `
		SELECT email, name, current_city, phone_number
		FROM developers
		ORDER BY email
	`
	rows, err := r.uow.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devs []*domain.Developer
	for rows.Next() {
		d, err := scanDeveloper(rows)
		if err != nil {
			return nil, err
		}
		devs = append(devs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	devs = append(devs, r.pending...)
	return filter(devs, pred), nil
}

func (r *developerRepository) GetAll(ctx context.Context) ([]*domain.Developer, error) {
	return r.FindWhere(ctx, nil)
}

func (r *developerRepository) Add(ctx context.Context, d *domain.Developer) error {
	r.pending = append(r.pending, d)
	r.uow.stage(func(ctx context.Context, tx *sql.Tx) (bool, error) {
		query := `
			INSERT INTO developers (email, name, current_city, phone_number)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, query, d.Email, d.Name, d.CurrentCity, d.PhoneNumber); err != nil {
			return false, err
		}
		return true, nil
	})
	return nil
}

func (r *developerRepository) Update(ctx context.Context, d *domain.Developer) error {
	r.uow.stage(func(ctx context.Context, tx *sql.Tx) (bool, error) {
		query := `
			UPDATE developers
			SET name = $1, current_city = $2, phone_number = $3
			WHERE email = $4
		`
		res, err := tx.ExecContext(ctx, query, d.Name, d.CurrentCity, d.PhoneNumber, d.Email)
		if err != nil {
			return false, err
		}
		return rowsAffected(res)
	})
	return nil
}
