package postgres

import (
	"context"
	"database/sql"
	"errors"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/repository"
)

type rentalPeriodRepository struct {
	db Queryer
}

func NewRentalPeriodRepository(db Queryer) repository.RentalPeriodRepository {
	return &rentalPeriodRepository{db: db}
}

func (r *rentalPeriodRepository) Create(ctx context.Context, p *domain.RentalPeriod) error {
	query := `INSERT INTO rental_periods (id, scooter_id, start_time, price_per_minute, end_time) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.ScooterID, p.StartTime, p.PricePerMinute, p.EndTime)
	return err
}

func (r *rentalPeriodRepository) Update(ctx context.Context, p *domain.RentalPeriod) error {
	query := `UPDATE rental_periods SET end_time = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, p.EndTime, p.ID)
	return err
}

func (r *rentalPeriodRepository) FindOpenByScooter(ctx context.Context, scooterID string) (*domain.RentalPeriod, error) {
	query := `SELECT id, scooter_id, start_time, price_per_minute, end_time FROM rental_periods WHERE scooter_id = $1 AND end_time IS NULL`
	p := &domain.RentalPeriod{}
	err := r.db.QueryRowContext(ctx, query, scooterID).
		Scan(&p.ID, &p.ScooterID, &p.StartTime, &p.PricePerMinute, &p.EndTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *rentalPeriodRepository) List(ctx context.Context, filter repository.RentalPeriodFilter) ([]domain.RentalPeriod, error) {
	query := `SELECT id, scooter_id, start_time, price_per_minute, end_time FROM rental_periods`

	var args []any
	if filter.Completed != nil {
		if *filter.Completed {
			query += " WHERE end_time IS NOT NULL"
			if filter.Year != nil {
				query += " AND EXTRACT(YEAR FROM end_time) = $1"
				args = append(args, *filter.Year)
			}
		} else {
			query += " WHERE end_time IS NULL"
			if filter.Year != nil {
				query += " AND EXTRACT(YEAR FROM start_time) = $1"
				args = append(args, *filter.Year)
			}
		}
	}
	query += " ORDER BY start_time, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []domain.RentalPeriod
	for rows.Next() {
		var p domain.RentalPeriod
		if err := rows.Scan(&p.ID, &p.ScooterID, &p.StartTime, &p.PricePerMinute, &p.EndTime); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
