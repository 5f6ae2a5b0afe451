package service

import (
	"context"
	"time"

	"scooter-rental/internal/domain"

	"github.com/shopspring/decimal"
)

type RentalService interface {
	StartRent(ctx context.Context, scooterID string, startTime time.Time) (*domain.RentalPeriod, error)
	EndRent(ctx context.Context, scooterID string, endTime time.Time) (*domain.RentalPeriod, error)
	GetIncome(ctx context.Context, year *int, includeIncompleteRentals bool, currentTime *time.Time) (decimal.Decimal, error)
}

type ScooterService interface {
	AddScooter(ctx context.Context, scooter *domain.Scooter) error
	GetScooter(ctx context.Context, id string) (*domain.Scooter, error)
	DeleteScooter(ctx context.Context, id string) error
	ListScooters(ctx context.Context) ([]domain.Scooter, error)
}
