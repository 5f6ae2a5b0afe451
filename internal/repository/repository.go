package repository

import (
	"context"

	"scooter-rental/internal/domain"
)

type ScooterRepository interface {
	Create(ctx context.Context, scooter *domain.Scooter) error
	// GetByID returns (nil, nil) when no scooter matches.
	GetByID(ctx context.Context, id string) (*domain.Scooter, error)
	// GetByIDForUpdate behaves like GetByID but takes a row lock when called
	// inside a transaction, so concurrent rental transitions on the same
	// scooter serialize.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Scooter, error)
	Update(ctx context.Context, scooter *domain.Scooter) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Scooter, error)
}

// RentalPeriodFilter narrows List results. Year is only honored together
// with Completed: it filters on the end time year for completed periods and
// on the start time year for open ones (an open rental's only dated field).
type RentalPeriodFilter struct {
	Completed *bool
	Year      *int
}

type RentalPeriodRepository interface {
	Create(ctx context.Context, period *domain.RentalPeriod) error
	Update(ctx context.Context, period *domain.RentalPeriod) error
	// FindOpenByScooter returns the period with a null end time for the
	// scooter, or (nil, nil) when there is none.
	FindOpenByScooter(ctx context.Context, scooterID string) (*domain.RentalPeriod, error)
	List(ctx context.Context, filter RentalPeriodFilter) ([]domain.RentalPeriod, error)
}

// Repositories is the transactional view handed to a WithinTx callback.
// All repositories in one value share a single database transaction.
type Repositories struct {
	Scooters      ScooterRepository
	RentalPeriods RentalPeriodRepository
}

// Transactor runs a callback inside one transaction. The rental lifecycle
// uses it so the scooter flag and the rental period land atomically.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
