package tournament

import (
	"context"
	"encoding/json"
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
	tournaments   map[uuid.UUID]*model.Tournament
	listByStatus  int
	failListCalls bool
	events        []*model.OutboxEvent
}

func newStubRepo(ts ...*model.Tournament) *stubRepo {
	r := &stubRepo{tournaments: make(map[uuid.UUID]*model.Tournament)}
	for _, t := range ts {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		r.tournaments[t.ID] = t
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, t *model.Tournament) error {
	t.ID = uuid.New()
	r.tournaments[t.ID] = t
	return nil
}

func (r *stubRepo) Get(_ context.Context, id uuid.UUID) (*model.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, fmt.Errorf("tournament not found")
	}
	return t, nil
}

func (r *stubRepo) Update(_ context.Context, t *model.Tournament) error {
	r.tournaments[t.ID] = t
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tournaments, id)
	return nil
}

func (r *stubRepo) List(_ context.Context) ([]*model.Tournament, error) {
	out := make([]*model.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		out = append(out, t)
	}
	return out, nil
}

func (r *stubRepo) ListByStatus(_ context.Context, status model.Status) ([]*model.Tournament, error) {
	r.listByStatus++
	if r.failListCalls {
		return nil, fmt.Errorf("database unavailable")
	}
	var out []*model.Tournament
	for _, t := range r.tournaments {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error {
	t, ok := r.tournaments[id]
	if !ok {
		return fmt.Errorf("tournament not found")
	}
	t.Status = status
	r.events = append(r.events, event)
	return nil
}

type stubNotifier struct {
	sent []string
}

func (n *stubNotifier) SendStatusUpdate(_ context.Context, to, _ string, _ model.Status) error {
	n.sent = append(n.sent, to)
	return nil
}

var metricsRegistry = metrics.NewMetrics("tournament_service_test")

func testDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approvedTournament(name, country, continent string, tier int, start, end time.Time) *model.Tournament {
	return &model.Tournament{
		Name:           name,
		Organizer:      "Org",
		OrganizerEmail: "org@example.com",
		Location:       name + " venue",
		Country:        country,
		Continent:      continent,
		Tier:           tier,
		StartDate:      start,
		EndDate:        end,
		Status:         model.StatusApproved,
	}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	in := approvedTournament("Summer Slam", "USA", "North America", 1,
		testDay(2026, time.June, 10), testDay(2026, time.June, 14))
	in.Status = model.StatusApproved

	require.NoError(t, svc.CreateTournament(context.Background(), in))
	assert.Equal(t, model.StatusPending, in.Status)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newStubRepo(), nil, time.Minute, metricsRegistry)

	err := svc.CreateTournament(context.Background(), &model.Tournament{Name: "No Location"})
	assert.Error(t, err)
}

func TestListApprovedFilters(t *testing.T) {
	repo := newStubRepo(
		approvedTournament("Summer Slam", "USA", "North America", 1,
			testDay(2026, time.June, 10), testDay(2026, time.June, 14)),
		approvedTournament("Berlin Open", "Germany", "Europe", 2,
			testDay(2026, time.July, 1), testDay(2026, time.July, 3)),
	)
	pending := approvedTournament("Hidden Cup", "USA", "North America", 1,
		testDay(2026, time.June, 1), testDay(2026, time.June, 2))
	pending.Status = model.StatusPending
	require.NoError(t, repo.Create(context.Background(), pending))

	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	// Unfiltered: only approved records.
	result, err := svc.ListApproved(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Empty(t, result.Chips)
	assert.False(t, result.Filtered)

	result, err = svc.ListApproved(context.Background(), filter.Criteria{Country: "Germany"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Berlin Open", result.Tournaments[0].Name)
	assert.Equal(t, []filter.Chip{{Label: "Country", Value: "Germany"}}, result.Chips)
	assert.True(t, result.Filtered)
}

func TestListApprovedDateBounds(t *testing.T) {
	repo := newStubRepo(
		approvedTournament("Summer Slam", "USA", "North America", 1,
			testDay(2026, time.June, 10), testDay(2026, time.June, 14)),
		approvedTournament("Berlin Open", "Germany", "Europe", 2,
			testDay(2026, time.July, 1), testDay(2026, time.July, 3)),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	result, err := svc.ListApproved(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, testDay(2026, time.June, 10), result.DateRange.Min)
	assert.Equal(t, testDay(2026, time.July, 3), result.DateRange.Max)

	// A criteria interval narrower than the span excludes outside events.
	result, err = svc.ListApproved(context.Background(), filter.Criteria{
		Dates: filter.NewInterval(testDay(2026, time.June, 1), testDay(2026, time.June, 30)),
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Summer Slam", result.Tournaments[0].Name)
}

func TestListApprovedHalfOpenDateInterval(t *testing.T) {
	repo := newStubRepo(
		approvedTournament("Summer Slam", "USA", "North America", 1,
			testDay(2026, time.June, 10), testDay(2026, time.June, 14)),
		approvedTournament("Berlin Open", "Germany", "Europe", 2,
			testDay(2026, time.July, 1), testDay(2026, time.July, 3)),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	// Only a start date: everything from June 1 onward matches.
	result, err := svc.ListApproved(context.Background(), filter.Criteria{
		Dates: filter.Interval{Start: testDay(2026, time.June, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	// A start date past the first event narrows the result.
	result, err = svc.ListApproved(context.Background(), filter.Criteria{
		Dates: filter.Interval{Start: testDay(2026, time.June, 20)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Berlin Open", result.Tournaments[0].Name)

	// Only an end date: everything up to it matches.
	result, err = svc.ListApproved(context.Background(), filter.Criteria{
		Dates: filter.Interval{End: testDay(2026, time.June, 30)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Summer Slam", result.Tournaments[0].Name)
}

func TestApprovedCatalogIsCached(t *testing.T) {
	repo := newStubRepo(
		approvedTournament("Summer Slam", "USA", "North America", 1,
			testDay(2026, time.June, 10), testDay(2026, time.June, 14)),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	_, err := svc.ListApproved(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	_, err = svc.ListApproved(context.Background(), filter.Criteria{Country: "USA"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listByStatus)

	// Mutations invalidate the cached catalog.
	require.NoError(t, svc.CreateTournament(context.Background(), approvedTournament(
		"New Cup", "Japan", "Asia", 3,
		testDay(2026, time.August, 1), testDay(2026, time.August, 2))))

	_, err = svc.ListApproved(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listByStatus)
}

func TestUpdateStatusNotifiesOrganizer(t *testing.T) {
	tournament := approvedTournament("Summer Slam", "USA", "North America", 1,
		testDay(2026, time.June, 10), testDay(2026, time.June, 14))
	tournament.Status = model.StatusPending
	repo := newStubRepo(tournament)

	notifier := &stubNotifier{}
	svc := NewService(repo, notifier, time.Minute, metricsRegistry)

	updated, err := svc.UpdateStatus(context.Background(), tournament.ID, model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
	assert.Equal(t, []string{"org@example.com"}, notifier.sent)
}

func TestUpdateStatusEnqueuesOutboxEvent(t *testing.T) {
	tournament := approvedTournament("Summer Slam", "USA", "North America", 1,
		testDay(2026, time.June, 10), testDay(2026, time.June, 14))
	tournament.Status = model.StatusPending
	repo := newStubRepo(tournament)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	_, err := svc.UpdateStatus(context.Background(), tournament.ID, model.StatusApproved)
	require.NoError(t, err)

	// The event travels to the repository with the status write so both
	// land in one transaction.
	require.Len(t, repo.events, 1)
	assert.Equal(t, model.EventTournamentStatusChanged, repo.events[0].EventType)

	var payload model.StatusChangePayload
	require.NoError(t, json.Unmarshal(repo.events[0].Payload, &payload))
	assert.Equal(t, tournament.ID, payload.ID)
	assert.Equal(t, "Summer Slam", payload.Name)
	assert.Equal(t, model.StatusApproved, payload.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newStubRepo(), nil, time.Minute, metricsRegistry)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.Status("weird"))
	assert.Error(t, err)
}

func TestApprovedFacets(t *testing.T) {
	repo := newStubRepo(
		approvedTournament("Summer Slam", "USA", "North America", 1,
			testDay(2026, time.June, 10), testDay(2026, time.June, 14)),
		approvedTournament("Berlin Open", "Germany", "Europe", 2,
			testDay(2026, time.July, 1), testDay(2026, time.July, 3)),
	)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	facets, err := svc.ApprovedFacets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Germany", "USA"}, facets.Facets.Countries)
	assert.Equal(t, []string{"Europe", "North America"}, facets.Facets.Continents)
	assert.Equal(t, []int{1, 2}, facets.Facets.Tiers)
	assert.NotEmpty(t, facets.Facets.Years)
}

func TestApprovedMarkersOmitUnlocatedRecords(t *testing.T) {
	located := approvedTournament("Summer Slam", "USA", "North America", 1,
		testDay(2026, time.June, 10), testDay(2026, time.June, 14))
	lat, lng := 30.2672, -97.7431
	located.Lat, located.Lng = &lat, &lng

	unlocated := approvedTournament("Berlin Open", "Germany", "Europe", 2,
		testDay(2026, time.July, 1), testDay(2026, time.July, 3))

	repo := newStubRepo(located, unlocated)
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	markers, err := svc.ApprovedMarkers(context.Background(), filter.Criteria{})
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "Summer Slam", markers[0].Name)
	assert.Equal(t, lat, markers[0].Coords.Lat)
}

func TestListApprovedRepositoryFailure(t *testing.T) {
	repo := newStubRepo()
	repo.failListCalls = true
	svc := NewService(repo, nil, time.Minute, metricsRegistry)

	_, err := svc.ListApproved(context.Background(), filter.Criteria{})
	assert.Error(t, err)
}
