package tournament

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/courtside/pickleball-api/internal/email"
	"github.com/courtside/pickleball-api/internal/filter"
	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

const (
	entityLabel      = "tournament"
	approvedCacheKey = "tournaments:approved"
)

// fields binds the generic filter engine to the tournament record shape.
// Clubs and courts bind their own subset; the predicate logic is shared.
var fields = filter.Accessors[*model.Tournament]{
	Name:      func(t *model.Tournament) string { return t.Name },
	Location:  func(t *model.Tournament) string { return t.Location },
	Country:   func(t *model.Tournament) string { return t.Country },
	Continent: func(t *model.Tournament) string { return t.Continent },
	Tier:      func(t *model.Tournament) int { return t.Tier },
	Span: func(t *model.Tournament) filter.Interval {
		return filter.NewInterval(t.StartDate, t.EndDate)
	},
}

type TournamentServicer interface {
	CreateTournament(ctx context.Context, t *model.Tournament) error
	GetTournament(ctx context.Context, id uuid.UUID) (*model.Tournament, error)
	UpdateTournament(ctx context.Context, t *model.Tournament) error
	DeleteTournament(ctx context.Context, id uuid.UUID) error
	ListTournaments(ctx context.Context) ([]*model.Tournament, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Tournament, error)

	ListApproved(ctx context.Context, c filter.Criteria) (*FilteredResult, error)
	ApprovedFacets(ctx context.Context) (*CatalogFacets, error)
	ApprovedMarkers(ctx context.Context, c filter.Criteria) ([]model.Marker, error)
}

// FilteredResult is one filtered view over the approved catalog: the
// matching records plus the summary chips and the catalog date bounds the
// client needs to render its controls.
type FilteredResult struct {
	Tournaments []*model.Tournament `json:"tournaments"`
	Total       int                 `json:"total"`
	DateRange   filter.DateRange    `json:"date_range"`
	Chips       []filter.Chip       `json:"chips"`
	// Filtered tells the client whether any criterion is narrowing the
	// catalog, so it can decide to show or hide the summary strip.
	Filtered bool `json:"filtered"`
}

// CatalogFacets carries the dropdown option sets plus the date bounds.
type CatalogFacets struct {
	Facets    filter.Facets    `json:"facets"`
	DateRange filter.DateRange `json:"date_range"`
}

type Service struct {
	repo     repository.TournamentRepository
	notifier email.Service
	catalog  *cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

func NewService(repo repository.TournamentRepository, notifier email.Service, cacheTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		catalog:  cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL: cacheTTL,
		metrics:  m,
	}
}

func (s *Service) CreateTournament(ctx context.Context, t *model.Tournament) error {
	// Public submissions always enter the moderation queue.
	t.Status = model.StatusPending

	if err := s.validateTournament(t); err != nil {
		return fmt.Errorf("invalid tournament data: %w", err)
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) GetTournament(ctx context.Context, id uuid.UUID) (*model.Tournament, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

func (s *Service) UpdateTournament(ctx context.Context, t *model.Tournament) error {
	if err := s.validateTournament(t); err != nil {
		return fmt.Errorf("invalid tournament data: %w", err)
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("failed to update tournament: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) DeleteTournament(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to get tournament: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}

	s.invalidate()
	return nil
}

func (s *Service) ListTournaments(ctx context.Context) ([]*model.Tournament, error) {
	return s.repo.List(ctx)
}

// UpdateStatus records a moderation decision. The status change and its
// outbox event commit together in the repository, and the approved catalog
// is invalidated so the change is visible on the next reload; directory
// views never see live mutations. The organizer is notified best-effort.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Tournament, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	payload, err := json.Marshal(model.StatusChangePayload{ID: t.ID, Name: t.Name, Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to encode status event: %w", err)
	}

	event := &model.OutboxEvent{EventType: model.EventTournamentStatusChanged, Payload: payload}
	if err := s.repo.UpdateStatus(ctx, id, status, event); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	t.Status = status
	s.invalidate()

	if s.notifier != nil {
		if err := s.notifier.SendStatusUpdate(ctx, t.OrganizerEmail, t.Name, status); err != nil {
			log.Warn().Err(err).Str("tournament_id", id.String()).Msg("status notification failed")
		}
	}

	return t, nil
}

// ListApproved loads the approved catalog and applies the composite filter.
// An unset date interval defaults to the catalog's full span; a half-set one
// (only start_date or only end_date on the request) has its missing boundary
// filled from the catalog bounds so it reads as open-ended.
func (s *Service) ListApproved(ctx context.Context, c filter.Criteria) (*FilteredResult, error) {
	tournaments, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}

	dr := s.dateRange(tournaments)
	switch {
	case c.Dates.IsZero():
		c.Dates = dr.Selection
	case c.Dates.Start.IsZero():
		c.Dates.Start = dr.Min
	case c.Dates.End.IsZero():
		c.Dates.End = dr.Max
	}

	timer := prometheus.NewTimer(s.metrics.FilterLatency.WithLabelValues(entityLabel))
	filtered := fields.Apply(tournaments, c)
	timer.ObserveDuration()

	s.metrics.FilterEvaluations.WithLabelValues(entityLabel).Inc()
	s.metrics.FilterResultSize.WithLabelValues(entityLabel).Observe(float64(len(filtered)))

	return &FilteredResult{
		Tournaments: filtered,
		Total:       len(filtered),
		DateRange:   dr,
		Chips:       filter.Chips(c, dr),
		Filtered:    filter.Active(c, dr),
	}, nil
}

func (s *Service) ApprovedFacets(ctx context.Context) (*CatalogFacets, error) {
	tournaments, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogFacets{
		Facets:    filter.ExtractFacets(tournaments, fields),
		DateRange: s.dateRange(tournaments),
	}, nil
}

// ApprovedMarkers projects the filtered catalog onto the map view. Records
// without coordinates are omitted, not errors.
func (s *Service) ApprovedMarkers(ctx context.Context, c filter.Criteria) ([]model.Marker, error) {
	result, err := s.ListApproved(ctx, c)
	if err != nil {
		return nil, err
	}

	markers := make([]model.Marker, 0, len(result.Tournaments))
	for _, t := range result.Tournaments {
		if m, ok := t.MapMarker(); ok {
			markers = append(markers, m)
		}
	}
	return markers, nil
}

func (s *Service) approved(ctx context.Context) ([]*model.Tournament, error) {
	if cached, ok := s.catalog.Get(approvedCacheKey); ok {
		s.metrics.CacheHits.WithLabelValues(entityLabel).Inc()
		return cached.([]*model.Tournament), nil
	}
	s.metrics.CacheMisses.WithLabelValues(entityLabel).Inc()

	tournaments, err := s.repo.ListByStatus(ctx, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved tournaments: %w", err)
	}
	s.catalog.Set(approvedCacheKey, tournaments, s.cacheTTL)
	return tournaments, nil
}

func (s *Service) dateRange(tournaments []*model.Tournament) filter.DateRange {
	spans := make([]filter.Interval, len(tournaments))
	for i, t := range tournaments {
		spans[i] = fields.Span(t)
	}
	return filter.NewDateRange(spans)
}

func (s *Service) invalidate() {
	s.catalog.Delete(approvedCacheKey)
}

func (s *Service) validateTournament(t *model.Tournament) error {
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Location == "" {
		return fmt.Errorf("tournament location is required")
	}
	if t.Country == "" {
		return fmt.Errorf("tournament country is required")
	}
	if t.Continent == "" {
		return fmt.Errorf("tournament continent is required")
	}
	if t.Tier <= 0 {
		return fmt.Errorf("tournament tier must be positive")
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("tournament dates are required")
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("end date must not precede start date")
	}
	if (t.Lat == nil) != (t.Lng == nil) {
		return fmt.Errorf("coordinates require both latitude and longitude")
	}
	return nil
}
