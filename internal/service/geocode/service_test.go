package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/pickleball-api/internal/config"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

var metricsRegistry = metrics.NewMetrics("geocode_service_test")

func newTestService(baseURL string) *Service {
	return NewService(config.GeocoderConfig{
		BaseURL:  baseURL,
		Timeout:  time.Second,
		CacheTTL: time.Minute,
	}, metricsRegistry)
}

func TestSearchParsesProviderResponse(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "berlin", r.URL.Query().Get("q"))
		w.Write([]byte(`[
			{"display_name": "Berlin, Germany", "lat": "52.5200", "lon": "13.4050"},
			{"display_name": "Berlin, NH, USA", "lat": "44.4687", "lon": "-71.1850"}
		]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)

	places, err := svc.Search(context.Background(), "berlin")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Berlin, Germany", places[0].DisplayName)
	assert.InDelta(t, 52.52, places[0].Lat, 0.001)
	assert.InDelta(t, 13.405, places[0].Lng, 0.001)
}

func TestSearchCachesResults(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"display_name": "Austin, TX", "lat": "30.2672", "lon": "-97.7431"}]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)

	_, err := svc.Search(context.Background(), "austin")
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), "austin")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSearchSkipsMalformedCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"display_name": "Good", "lat": "1.0", "lon": "2.0"},
			{"display_name": "Bad", "lat": "not-a-number", "lon": "2.0"}
		]`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)

	places, err := svc.Search(context.Background(), "somewhere")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Good", places[0].DisplayName)
}

func TestSearchProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)

	_, err := svc.Search(context.Background(), "anywhere")
	assert.Error(t, err)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestService("http://unused.invalid")

	places, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, places)
}
