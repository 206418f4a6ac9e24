package club

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/courtside/pickleball-api/internal/email"
	"github.com/courtside/pickleball-api/internal/filter"
	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

const (
	entityLabel      = "club"
	approvedCacheKey = "clubs:approved"
)

// Clubs filter on name, location and country only; there is no tier,
// continent or date span on a club record.
var fields = filter.Accessors[*model.Club]{
	Name:     func(c *model.Club) string { return c.Name },
	Location: func(c *model.Club) string { return c.Location },
	Country:  func(c *model.Club) string { return c.Country },
}

type ClubServicer interface {
	CreateClub(ctx context.Context, c *model.Club) error
	GetClub(ctx context.Context, id uuid.UUID) (*model.Club, error)
	UpdateClub(ctx context.Context, c *model.Club) error
	DeleteClub(ctx context.Context, id uuid.UUID) error
	ListClubs(ctx context.Context) ([]*model.Club, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Club, error)

	ListApproved(ctx context.Context, c filter.Criteria) ([]*model.Club, error)
	ApprovedFacets(ctx context.Context) (filter.Facets, error)
	ApprovedMarkers(ctx context.Context, c filter.Criteria) ([]model.Marker, error)
}

type Service struct {
	repo     repository.ClubRepository
	notifier email.Service
	catalog  *cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

func NewService(repo repository.ClubRepository, notifier email.Service, cacheTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		catalog:  cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL: cacheTTL,
		metrics:  m,
	}
}

func (s *Service) CreateClub(ctx context.Context, c *model.Club) error {
	c.Status = model.StatusPending

	if err := s.validateClub(c); err != nil {
		return fmt.Errorf("invalid club data: %w", err)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) GetClub(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return c, nil
}

func (s *Service) UpdateClub(ctx context.Context, c *model.Club) error {
	if err := s.validateClub(c); err != nil {
		return fmt.Errorf("invalid club data: %w", err)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) DeleteClub(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to get club: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) ListClubs(ctx context.Context) ([]*model.Club, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Club, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	payload, err := json.Marshal(model.StatusChangePayload{ID: c.ID, Name: c.Name, Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to encode status event: %w", err)
	}

	event := &model.OutboxEvent{EventType: model.EventClubStatusChanged, Payload: payload}
	if err := s.repo.UpdateStatus(ctx, id, status, event); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	c.Status = status
	s.invalidate()

	if s.notifier != nil {
		if err := s.notifier.SendStatusUpdate(ctx, c.Email, c.Name, status); err != nil {
			log.Warn().Err(err).Str("club_id", id.String()).Msg("status notification failed")
		}
	}

	return c, nil
}

func (s *Service) ListApproved(ctx context.Context, c filter.Criteria) ([]*model.Club, error) {
	clubs, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}

	filtered := fields.Apply(clubs, c)
	s.metrics.FilterEvaluations.WithLabelValues(entityLabel).Inc()
	s.metrics.FilterResultSize.WithLabelValues(entityLabel).Observe(float64(len(filtered)))
	return filtered, nil
}

func (s *Service) ApprovedFacets(ctx context.Context) (filter.Facets, error) {
	clubs, err := s.approved(ctx)
	if err != nil {
		return filter.Facets{}, err
	}
	return filter.ExtractFacets(clubs, fields), nil
}

func (s *Service) ApprovedMarkers(ctx context.Context, c filter.Criteria) ([]model.Marker, error) {
	clubs, err := s.ListApproved(ctx, c)
	if err != nil {
		return nil, err
	}

	markers := make([]model.Marker, 0, len(clubs))
	for _, club := range clubs {
		if m, ok := club.MapMarker(); ok {
			markers = append(markers, m)
		}
	}
	return markers, nil
}

func (s *Service) approved(ctx context.Context) ([]*model.Club, error) {
	if cached, ok := s.catalog.Get(approvedCacheKey); ok {
		s.metrics.CacheHits.WithLabelValues(entityLabel).Inc()
		return cached.([]*model.Club), nil
	}
	s.metrics.CacheMisses.WithLabelValues(entityLabel).Inc()

	clubs, err := s.repo.ListByStatus(ctx, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved clubs: %w", err)
	}
	s.catalog.Set(approvedCacheKey, clubs, s.cacheTTL)
	return clubs, nil
}

func (s *Service) invalidate() {
	s.catalog.Delete(approvedCacheKey)
}

func (s *Service) validateClub(c *model.Club) error {
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("club email is required")
	}
	if c.Location == "" {
		return fmt.Errorf("club location is required")
	}
	if c.Country == "" {
		return fmt.Errorf("club country is required")
	}
	if (c.Lat == nil) != (c.Lng == nil) {
		return fmt.Errorf("coordinates require both latitude and longitude")
	}
	return nil
}
