package tournament

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/pickleball-api/internal/filter"
	"github.com/courtside/pickleball-api/internal/model"
	tournamentService "github.com/courtside/pickleball-api/internal/service/tournament"
)

type stubService struct {
	approved     []*model.Tournament
	created      *model.Tournament
	lastCriteria filter.Criteria
	statusUpdate model.Status
}

func (s *stubService) CreateTournament(_ context.Context, t *model.Tournament) error {
	t.ID = uuid.New()
	t.Status = model.StatusPending
	s.created = t
	return nil
}

func (s *stubService) GetTournament(_ context.Context, id uuid.UUID) (*model.Tournament, error) {
	for _, t := range s.approved {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tournament not found")
}

func (s *stubService) UpdateTournament(_ context.Context, _ *model.Tournament) error { return nil }
func (s *stubService) DeleteTournament(_ context.Context, _ uuid.UUID) error         { return nil }

func (s *stubService) ListTournaments(_ context.Context) ([]*model.Tournament, error) {
	return s.approved, nil
}

func (s *stubService) UpdateStatus(_ context.Context, id uuid.UUID, status model.Status) (*model.Tournament, error) {
	t, err := s.GetTournament(context.Background(), id)
	if err != nil {
		return nil, err
	}
	t.Status = status
	s.statusUpdate = status
	return t, nil
}

func (s *stubService) ListApproved(_ context.Context, c filter.Criteria) (*tournamentService.FilteredResult, error) {
	s.lastCriteria = c
	return &tournamentService.FilteredResult{
		Tournaments: s.approved,
		Total:       len(s.approved),
	}, nil
}

func (s *stubService) ApprovedFacets(_ context.Context) (*tournamentService.CatalogFacets, error) {
	return &tournamentService.CatalogFacets{}, nil
}

func (s *stubService) ApprovedMarkers(_ context.Context, _ filter.Criteria) ([]model.Marker, error) {
	var markers []model.Marker
	for _, t := range s.approved {
		if m, ok := t.MapMarker(); ok {
			markers = append(markers, m)
		}
	}
	return markers, nil
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterAdminRoutes(api.Group("/admin"))
	return r
}

func TestListApprovedEndpoint(t *testing.T) {
	svc := &stubService{approved: []*model.Tournament{
		{Name: "Summer Slam", Country: "USA"},
	}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/tournaments/approved?country=USA&tier=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "USA", svc.lastCriteria.Country)
	assert.Equal(t, "1", svc.lastCriteria.Tier)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Data.Total)
}

func TestCreateTournamentEndpoint(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	body := `{
		"name": "Summer Slam",
		"organizer": "Org",
		"organizer_email": "org@example.com",
		"location": "Austin, Texas",
		"country": "USA",
		"continent": "North America",
		"tier": 1,
		"start_date": "2026-06-10",
		"end_date": "2026-06-14"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tournaments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, model.StatusPending, svc.created.Status)
	assert.Equal(t, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC), svc.created.StartDate)
}

func TestCreateTournamentRejectsInvertedDates(t *testing.T) {
	r := setupRouter(&stubService{})

	body := `{
		"name": "Backwards Cup",
		"organizer": "Org",
		"organizer_email": "org@example.com",
		"location": "Nowhere",
		"country": "USA",
		"continent": "North America",
		"tier": 1,
		"start_date": "2026-06-14",
		"end_date": "2026-06-10"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tournaments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTournamentRejectsMissingFields(t *testing.T) {
	r := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/tournaments", strings.NewReader(`{"name": "Incomplete"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	existing := &model.Tournament{
		Base:   model.Base{ID: uuid.New()},
		Name:   "Summer Slam",
		Status: model.StatusPending,
	}
	svc := &stubService{approved: []*model.Tournament{existing}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH",
		"/api/v1/admin/tournaments/"+existing.ID.String()+"/status",
		strings.NewReader(`{"status": "approved"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.StatusApproved, svc.statusUpdate)
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	r := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH",
		"/api/v1/admin/tournaments/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status": "MAYBE"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
