package court

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/courtside/pickleball-api/internal/filter"
	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

const (
	entityLabel      = "court"
	approvedCacheKey = "courts:approved"
)

var fields = filter.Accessors[*model.Court]{
	Name:     func(c *model.Court) string { return c.Name },
	Location: func(c *model.Court) string { return c.Location },
	Country:  func(c *model.Court) string { return c.Country },
}

type CourtServicer interface {
	CreateCourt(ctx context.Context, c *model.Court) error
	GetCourt(ctx context.Context, id uuid.UUID) (*model.Court, error)
	UpdateCourt(ctx context.Context, c *model.Court) error
	DeleteCourt(ctx context.Context, id uuid.UUID) error
	ListCourts(ctx context.Context) ([]*model.Court, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Court, error)

	ListApproved(ctx context.Context, c filter.Criteria) ([]*model.Court, error)
	ApprovedFacets(ctx context.Context) (filter.Facets, error)
	ApprovedMarkers(ctx context.Context, c filter.Criteria) ([]model.Marker, error)
}

type Service struct {
	repo     repository.CourtRepository
	catalog  *cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

func NewService(repo repository.CourtRepository, cacheTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		catalog:  cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL: cacheTTL,
		metrics:  m,
	}
}

func (s *Service) CreateCourt(ctx context.Context, c *model.Court) error {
	c.Status = model.StatusPending

	if err := s.validateCourt(c); err != nil {
		return fmt.Errorf("invalid court data: %w", err)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) GetCourt(ctx context.Context, id uuid.UUID) (*model.Court, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	return c, nil
}

func (s *Service) UpdateCourt(ctx context.Context, c *model.Court) error {
	if err := s.validateCourt(c); err != nil {
		return fmt.Errorf("invalid court data: %w", err)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) DeleteCourt(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to get court: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) ListCourts(ctx context.Context) ([]*model.Court, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Court, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}

	payload, err := json.Marshal(model.StatusChangePayload{ID: c.ID, Name: c.Name, Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to encode status event: %w", err)
	}

	event := &model.OutboxEvent{EventType: model.EventCourtStatusChanged, Payload: payload}
	if err := s.repo.UpdateStatus(ctx, id, status, event); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	c.Status = status
	s.invalidate()

	return c, nil
}

func (s *Service) ListApproved(ctx context.Context, c filter.Criteria) ([]*model.Court, error) {
	courts, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}

	filtered := fields.Apply(courts, c)
	s.metrics.FilterEvaluations.WithLabelValues(entityLabel).Inc()
	s.metrics.FilterResultSize.WithLabelValues(entityLabel).Observe(float64(len(filtered)))
	return filtered, nil
}

func (s *Service) ApprovedFacets(ctx context.Context) (filter.Facets, error) {
	courts, err := s.approved(ctx)
	if err != nil {
		return filter.Facets{}, err
	}
	return filter.ExtractFacets(courts, fields), nil
}

func (s *Service) ApprovedMarkers(ctx context.Context, c filter.Criteria) ([]model.Marker, error) {
	courts, err := s.ListApproved(ctx, c)
	if err != nil {
		return nil, err
	}

	markers := make([]model.Marker, 0, len(courts))
	for _, court := range courts {
		if m, ok := court.MapMarker(); ok {
			markers = append(markers, m)
		}
	}
	return markers, nil
}

func (s *Service) approved(ctx context.Context) ([]*model.Court, error) {
	if cached, ok := s.catalog.Get(approvedCacheKey); ok {
		s.metrics.CacheHits.WithLabelValues(entityLabel).Inc()
		return cached.([]*model.Court), nil
	}
	s.metrics.CacheMisses.WithLabelValues(entityLabel).Inc()

	courts, err := s.repo.ListByStatus(ctx, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved courts: %w", err)
	}
	s.catalog.Set(approvedCacheKey, courts, s.cacheTTL)
	return courts, nil
}

func (s *Service) invalidate() {
	s.catalog.Delete(approvedCacheKey)
}

func (s *Service) validateCourt(c *model.Court) error {
	if c.Name == "" {
		return fmt.Errorf("court name is required")
	}
	if c.Location == "" {
		return fmt.Errorf("court location is required")
	}
	if c.Country == "" {
		return fmt.Errorf("court country is required")
	}
	if c.CourtCount < 1 {
		return fmt.Errorf("court count must be at least 1")
	}
	if (c.Lat == nil) != (c.Lng == nil) {
		return fmt.Errorf("coordinates require both latitude and longitude")
	}
	return nil
}
