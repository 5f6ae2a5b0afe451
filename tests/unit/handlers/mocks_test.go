package handlers

import (
	"context"
	"time"

	"scooter-rental/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) StartRent(ctx context.Context, scooterID string, startTime time.Time) (*domain.RentalPeriod, error) {
	args := m.Called(ctx, scooterID, startTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPeriod), args.Error(1)
}

func (m *MockRentalService) EndRent(ctx context.Context, scooterID string, endTime time.Time) (*domain.RentalPeriod, error) {
	args := m.Called(ctx, scooterID, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPeriod), args.Error(1)
}

func (m *MockRentalService) GetIncome(ctx context.Context, year *int, includeIncompleteRentals bool, currentTime *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, year, includeIncompleteRentals, currentTime)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockScooterService
type MockScooterService struct {
	mock.Mock
}

func (m *MockScooterService) AddScooter(ctx context.Context, scooter *domain.Scooter) error {
	args := m.Called(ctx, scooter)
	return args.Error(0)
}

func (m *MockScooterService) GetScooter(ctx context.Context, id string) (*domain.Scooter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scooter), args.Error(1)
}

func (m *MockScooterService) DeleteScooter(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScooterService) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scooter), args.Error(1)
}
