package service

import (
	"context"
	"fmt"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/repository"
)

type scooterService struct {
	scooterRepo repository.ScooterRepository
}

func NewScooterService(scooterRepo repository.ScooterRepository) ScooterService {
	return &scooterService{scooterRepo: scooterRepo}
}

func (s *scooterService) AddScooter(ctx context.Context, scooter *domain.Scooter) error {
	existing, err := s.scooterRepo.GetByID(ctx, scooter.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("scooter id %s: %w", scooter.ID, domain.ErrScooterExists)
	}
	return s.scooterRepo.Create(ctx, scooter)
}

func (s *scooterService) GetScooter(ctx context.Context, id string) (*domain.Scooter, error) {
	scooter, err := s.scooterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scooter == nil {
		return nil, fmt.Errorf("scooter id %s: %w", id, domain.ErrScooterNotFound)
	}
	return scooter, nil
}

func (s *scooterService) DeleteScooter(ctx context.Context, id string) error {
	scooter, err := s.scooterRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if scooter == nil {
		return fmt.Errorf("scooter id %s: %w", id, domain.ErrScooterNotFound)
	}
	return s.scooterRepo.Delete(ctx, id)
}

func (s *scooterService) ListScooters(ctx context.Context) ([]domain.Scooter, error) {
	return s.scooterRepo.List(ctx)
}
