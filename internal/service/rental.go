package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/pricing"
	"scooter-rental/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rentalService struct {
	store             repository.Transactor
	periodRepo        repository.RentalPeriodRepository
	maxRentCostPerDay decimal.Decimal
}

func NewRentalService(
	store repository.Transactor,
	periodRepo repository.RentalPeriodRepository,
	maxRentCostPerDay decimal.Decimal,
) RentalService {
	return &rentalService{
		store:             store,
		periodRepo:        periodRepo,
		maxRentCostPerDay: maxRentCostPerDay,
	}
}

// StartRent flips the scooter to rented and opens a rental period carrying a
// snapshot of the scooter's current price. Both writes commit atomically; on
// any precondition failure the store is untouched.
func (s *rentalService) StartRent(ctx context.Context, scooterID string, startTime time.Time) (*domain.RentalPeriod, error) {
	var period *domain.RentalPeriod

	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		scooter, err := repos.Scooters.GetByIDForUpdate(ctx, scooterID)
		if err != nil {
			return err
		}
		if scooter == nil {
			return fmt.Errorf("scooter id %s: %w", scooterID, domain.ErrScooterNotFound)
		}
		if scooter.IsRented {
			return fmt.Errorf("scooter id %s: %w", scooterID, domain.ErrScooterAlreadyRented)
		}

		scooter.IsRented = true
		if err := repos.Scooters.Update(ctx, scooter); err != nil {
			return err
		}

		period = &domain.RentalPeriod{
			ID:             uuid.NewString(),
			ScooterID:      scooter.ID,
			StartTime:      startTime,
			PricePerMinute: scooter.PricePerMinute,
		}
		return repos.RentalPeriods.Create(ctx, period)
	})
	if err != nil {
		return nil, err
	}
	return period, nil
}

// EndRent closes the scooter's open rental period at endTime and flips the
// scooter back to available, atomically.
func (s *rentalService) EndRent(ctx context.Context, scooterID string, endTime time.Time) (*domain.RentalPeriod, error) {
	var period *domain.RentalPeriod

	err := s.store.WithinTx(ctx, func(repos repository.Repositories) error {
		scooter, err := repos.Scooters.GetByIDForUpdate(ctx, scooterID)
		if err != nil {
			return err
		}
		if scooter == nil {
			return fmt.Errorf("scooter id %s: %w", scooterID, domain.ErrScooterNotFound)
		}
		if !scooter.IsRented {
			return fmt.Errorf("scooter id %s: %w", scooterID, domain.ErrScooterNotRented)
		}

		period, err = repos.RentalPeriods.FindOpenByScooter(ctx, scooterID)
		if err != nil {
			return err
		}
		if period == nil {
			return domain.ErrMissingRentalPeriod
		}
		if !endTime.After(period.StartTime) {
			return &domain.InvalidEndTimeError{StartTime: period.StartTime, EndTime: endTime}
		}

		period.EndTime = &endTime
		if err := repos.RentalPeriods.Update(ctx, period); err != nil {
			return err
		}

		scooter.IsRented = false
		return repos.Scooters.Update(ctx, scooter)
	})
	if err != nil {
		return nil, err
	}
	return period, nil
}

// GetIncome sums the capped rental cost over completed periods, optionally
// restricted to those ending in year, and optionally adds still-open rentals
// priced through currentTime.
//
// When both year and includeIncompleteRentals are given, open rentals only
// count if their start year equals the report year and that year equals
// currentTime's year. An open rental started in a prior year is therefore
// excluded even though it is still accruing cost.
func (s *rentalService) GetIncome(ctx context.Context, year *int, includeIncompleteRentals bool, currentTime *time.Time) (decimal.Decimal, error) {
	completed := true
	periods, err := s.periodRepo.List(ctx, repository.RentalPeriodFilter{Completed: &completed, Year: year})
	if err != nil {
		return decimal.Zero, err
	}

	income := decimal.Zero
	for _, p := range periods {
		income = income.Add(pricing.RentalCost(p.StartTime, *p.EndTime, p.PricePerMinute, s.maxRentCostPerDay))
	}

	if !includeIncompleteRentals {
		return income, nil
	}
	if currentTime == nil {
		return decimal.Zero, errors.New("current time is required when including incomplete rentals")
	}
	if year != nil && currentTime.Year() != *year {
		return income, nil
	}

	open := false
	openPeriods, err := s.periodRepo.List(ctx, repository.RentalPeriodFilter{Completed: &open, Year: year})
	if err != nil {
		return decimal.Zero, err
	}
	for _, p := range openPeriods {
		income = income.Add(pricing.RentalCost(p.StartTime, *currentTime, p.PricePerMinute, s.maxRentCostPerDay))
	}
	return income, nil
}
