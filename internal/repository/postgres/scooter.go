package postgres

import (
	"context"
	"database/sql"
	"errors"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/repository"
)

type scooterRepository struct {
	db Queryer
}

func NewScooterRepository(db Queryer) repository.ScooterRepository {
	return &scooterRepository{db: db}
}

func (r *scooterRepository) Create(ctx context.Context, s *domain.Scooter) error {
	query := `INSERT INTO scooters (id, price_per_minute, is_rented) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.PricePerMinute, s.IsRented)
	return err
}

func (r *scooterRepository) GetByID(ctx context.Context, id string) (*domain.Scooter, error) {
	query := `SELECT id, price_per_minute, is_rented FROM scooters WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *scooterRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Scooter, error) {
	query := `SELECT id, price_per_minute, is_rented FROM scooters WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *scooterRepository) get(ctx context.Context, query, id string) (*domain.Scooter, error) {
	s := &domain.Scooter{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.PricePerMinute, &s.IsRented)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scooterRepository) Update(ctx context.Context, s *domain.Scooter) error {
	query := `UPDATE scooters SET price_per_minute = $1, is_rented = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, s.PricePerMinute, s.IsRented, s.ID)
	return err
}

func (r *scooterRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM scooters WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *scooterRepository) List(ctx context.Context) ([]domain.Scooter, error) {
	query := `SELECT id, price_per_minute, is_rented FROM scooters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scooters []domain.Scooter
	for rows.Next() {
		var s domain.Scooter
		if err := rows.Scan(&s.ID, &s.PricePerMinute, &s.IsRented); err != nil {
			return nil, err
		}
		scooters = append(scooters, s)
	}
	return scooters, rows.Err()
}
