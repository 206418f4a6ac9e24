package athlete

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
)

type AthleteServicer interface {
	CreateAthlete(ctx context.Context, a *model.Athlete) error
	GetAthlete(ctx context.Context, id uuid.UUID) (*model.Athlete, error)
	UpdateAthlete(ctx context.Context, a *model.Athlete) error
	DeleteAthlete(ctx context.Context, id uuid.UUID) error
	ListAthletes(ctx context.Context, f repository.AthleteFilter) ([]*model.Athlete, error)
}

// Service manages the player registry. Registry entries are written by
// admins only, so there is no moderation flow and no approved-catalog cache.
type Service struct {
	repo repository.AthleteRepository
}

func NewService(repo repository.AthleteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateAthlete(ctx context.Context, a *model.Athlete) error {
	if err := s.validateAthlete(a); err != nil {
		return fmt.Errorf("invalid athlete data: %w", err)
	}
	if a.TitlesWon == nil {
		a.TitlesWon = []string{}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("failed to create athlete: %w", err)
	}
	return nil
}

func (s *Service) GetAthlete(ctx context.Context, id uuid.UUID) (*model.Athlete, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get athlete: %w", err)
	}
	return a, nil
}

func (s *Service) UpdateAthlete(ctx context.Context, a *model.Athlete) error {
	if err := s.validateAthlete(a); err != nil {
		return fmt.Errorf("invalid athlete data: %w", err)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return fmt.Errorf("failed to update athlete: %w", err)
	}
	return nil
}

func (s *Service) DeleteAthlete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to get athlete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}
	return nil
}

func (s *Service) ListAthletes(ctx context.Context, f repository.AthleteFilter) ([]*model.Athlete, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) validateAthlete(a *model.Athlete) error {
	if a.Name == "" {
		return fmt.Errorf("athlete name is required")
	}
	if a.Age < model.MinAthleteAge {
		return fmt.Errorf("athlete age must be at least %d", model.MinAthleteAge)
	}
	if !a.Gender.Valid() {
		return fmt.Errorf("invalid gender: %s", a.Gender)
	}
	if a.Country == "" {
		return fmt.Errorf("athlete country is required")
	}
	if a.HeightCm <= 0 {
		return fmt.Errorf("athlete height must be positive")
	}
	if a.Points < 0 {
		return fmt.Errorf("athlete points must not be negative")
	}
	if a.ImageURL == "" {
		return fmt.Errorf("athlete image is required")
	}
	return nil
}
