package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/courtside/pickleball-api/internal/config"
	"github.com/courtside/pickleball-api/pkg/circuitbreaker"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

// Place is one forward-geocoding hit: a display label plus coordinates
// suitable for centering the map.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type GeocodeServicer interface {
	Search(ctx context.Context, query string) ([]Place, error)
}

// Service proxies the map search box to a Nominatim-style provider.
// Results are cached and the provider is wrapped in a circuit breaker;
// provider failures degrade to empty results upstream, never a filtering
// error.
type Service struct {
	baseURL string
	client  *http.Client
	cb      *circuitbreaker.CircuitBreaker
	results *cache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewService(cfg config.GeocoderConfig, m *metrics.Metrics) *Service {
	return &Service{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "geocoder",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
		results: cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		ttl:     cfg.CacheTTL,
		metrics: m,
	}
}

// nominatimPlace mirrors the provider's response shape; coordinates arrive
// as strings.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (s *Service) Search(ctx context.Context, query string) ([]Place, error) {
	if query == "" {
		return nil, nil
	}

	if cached, ok := s.results.Get(query); ok {
		s.metrics.GeocodeRequests.WithLabelValues("cached").Inc()
		return cached.([]Place), nil
	}

	var places []Place
	err := s.cb.Execute(func() error {
		var execErr error
		places, execErr = s.fetch(ctx, query)
		return execErr
	})
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	s.metrics.GeocodeRequests.WithLabelValues("ok").Inc()
	s.results.Set(query, places, s.ttl)
	return places, nil
}

func (s *Service) fetch(ctx context.Context, query string) ([]Place, error) {
	u := fmt.Sprintf("%s/search?format=json&limit=5&q=%s", s.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "pickleball-api")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode provider returned %d", resp.StatusCode)
	}

	var raw []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	places := make([]Place, 0, len(raw))
	for _, p := range raw {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lng, lngErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		places = append(places, Place{DisplayName: p.DisplayName, Lat: lat, Lng: lng})
	}
	return places, nil
}
