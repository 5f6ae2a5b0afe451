package unit

import (
	"context"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockScooterRepo
type MockScooterRepo struct {
	mock.Mock
}

func (m *MockScooterRepo) Create(ctx context.Context, scooter *domain.Scooter) error {
	args := m.Called(ctx, scooter)
	return args.Error(0)
}
func (m *MockScooterRepo) GetByID(ctx context.Context, id string) (*domain.Scooter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scooter), args.Error(1)
}
func (m *MockScooterRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Scooter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scooter), args.Error(1)
}
func (m *MockScooterRepo) Update(ctx context.Context, scooter *domain.Scooter) error {
	args := m.Called(ctx, scooter)
	return args.Error(0)
}
func (m *MockScooterRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockScooterRepo) List(ctx context.Context) ([]domain.Scooter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scooter), args.Error(1)
}

// MockRentalPeriodRepo
type MockRentalPeriodRepo struct {
	mock.Mock
}

func (m *MockRentalPeriodRepo) Create(ctx context.Context, period *domain.RentalPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}
func (m *MockRentalPeriodRepo) Update(ctx context.Context, period *domain.RentalPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}
func (m *MockRentalPeriodRepo) FindOpenByScooter(ctx context.Context, scooterID string) (*domain.RentalPeriod, error) {
	args := m.Called(ctx, scooterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalPeriod), args.Error(1)
}
func (m *MockRentalPeriodRepo) List(ctx context.Context, filter repository.RentalPeriodFilter) ([]domain.RentalPeriod, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalPeriod), args.Error(1)
}

// fakeTransactor runs the callback directly against the mock repositories.
// Transactional boundaries are exercised in the repository tests; here we
// only care about the calls the service makes.
type fakeTransactor struct {
	scooters repository.ScooterRepository
	periods  repository.RentalPeriodRepository
}

func (f *fakeTransactor) WithinTx(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(repository.Repositories{Scooters: f.scooters, RentalPeriods: f.periods})
}
