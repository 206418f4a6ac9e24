package club

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/pickleball-api/internal/filter"
	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/pkg/metrics"
)

type stubRepo struct {
	clubs map[uuid.UUID]*model.Club
}

func newStubRepo(clubs ...*model.Club) *stubRepo {
	r := &stubRepo{clubs: make(map[uuid.UUID]*model.Club)}
	for _, c := range clubs {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.clubs[c.ID] = c
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, c *model.Club) error {
	c.ID = uuid.New()
	r.clubs[c.ID] = c
	return nil
}

func (r *stubRepo) Get(_ context.Context, id uuid.UUID) (*model.Club, error) {
	c, ok := r.clubs[id]
	if !ok {
		return nil, fmt.Errorf("club not found")
	}
	return c, nil
}

func (r *stubRepo) Update(_ context.Context, c *model.Club) error {
	r.clubs[c.ID] = c
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clubs, id)
	return nil
}

func (r *stubRepo) List(_ context.Context) ([]*model.Club, error) {
	out := make([]*model.Club, 0, len(r.clubs))
	for _, c := range r.clubs {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubRepo) ListByStatus(_ context.Context, status model.Status) ([]*model.Club, error) {
	var out []*model.Club
	for _, c := range r.clubs {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.Status, _ *model.OutboxEvent) error {
	c, ok := r.clubs[id]
	if !ok {
		return fmt.Errorf("club not found")
	}
	c.Status = status
	return nil
}

var metricsRegistry = metrics.NewMetrics("club_service_test")

func approvedClub(name, location, country string) *model.Club {
	return &model.Club{
		Name:     name,
		Email:    "club@example.com",
		Contact:  "555-0100",
		Location: location,
		Country:  country,
		Status:   model.StatusApproved,
	}
}

func TestListApprovedFiltersOnClubFacets(t *testing.T) {
	repo := newStubRepo(
		approvedClub("Riverside Picklers", "Austin, Texas", "USA"),
		approvedClub("Berlin Dinkers", "Berlin", "Germany"),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	clubs, err := svc.ListApproved(context.Background(), filter.Criteria{Search: "dinkers"})
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Berlin Dinkers", clubs[0].Name)

	clubs, err = svc.ListApproved(context.Background(), filter.Criteria{Location: "texas"})
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Riverside Picklers", clubs[0].Name)
}

func TestClubIgnoresTournamentOnlyFacets(t *testing.T) {
	repo := newStubRepo(
		approvedClub("Riverside Picklers", "Austin, Texas", "USA"),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	// Tier and period facets have no club accessor and must not exclude
	// anything.
	clubs, err := svc.ListApproved(context.Background(), filter.Criteria{
		Tier:  "1",
		Month: "6",
		Year:  "2026",
	})
	require.NoError(t, err)
	assert.Len(t, clubs, 1)
}

func TestClubFacetsOmitTiersAndYears(t *testing.T) {
	repo := newStubRepo(
		approvedClub("Riverside Picklers", "Austin, Texas", "USA"),
		approvedClub("Berlin Dinkers", "Berlin", "Germany"),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	facets, err := svc.ApprovedFacets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Germany", "USA"}, facets.Countries)
	assert.Empty(t, facets.Tiers)
	assert.Empty(t, facets.Years)
}

func TestCreateClubEntersModerationQueue(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	c := approvedClub("New Club", "Osaka", "Japan")
	require.NoError(t, svc.CreateClub(context.Background(), c))
	assert.Equal(t, model.StatusPending, c.Status)

	// Not visible until approved.
	clubs, err := svc.ListApproved(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Empty(t, clubs)
}

func TestClubMarkersRequireCoordinates(t *testing.T) {
	located := approvedClub("Riverside Picklers", "Austin, Texas", "USA")
	lat, lng := 30.2672, -97.7431
	located.Lat, located.Lng = &lat, &lng

	repo := newStubRepo(located, approvedClub("Berlin Dinkers", "Berlin", "Germany"))
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	markers, err := svc.ApprovedMarkers(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "Riverside Picklers", markers[0].Name)
}
