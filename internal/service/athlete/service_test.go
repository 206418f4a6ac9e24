package athlete

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
)

type stubRepo struct {
	athletes map[uuid.UUID]*model.Athlete
}

func newStubRepo(as ...*model.Athlete) *stubRepo {
	r := &stubRepo{athletes: make(map[uuid.UUID]*model.Athlete)}
	for _, a := range as {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.athletes[a.ID] = a
	}
	return r
}

func (r *stubRepo) Create(_ context.Context, a *model.Athlete) error {
	a.ID = uuid.New()
	r.athletes[a.ID] = a
	return nil
}

func (r *stubRepo) Get(_ context.Context, id uuid.UUID) (*model.Athlete, error) {
	a, ok := r.athletes[id]
	if !ok {
		return nil, fmt.Errorf("athlete not found")
	}
	return a, nil
}

func (r *stubRepo) Update(_ context.Context, a *model.Athlete) error {
	r.athletes[a.ID] = a
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.athletes, id)
	return nil
}

func (r *stubRepo) List(_ context.Context, f repository.AthleteFilter) ([]*model.Athlete, error) {
	var out []*model.Athlete
	for _, a := range r.athletes {
		if f.Gender != "" && a.Gender != f.Gender {
			continue
		}
		if f.Country != "" && a.Country != f.Country {
			continue
		}
		out = append(out, a)
	}
	if f.SortByPoints {
		sort.Slice(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out, nil
}

func registryAthlete(name, country string, gender model.Gender, points int) *model.Athlete {
	return &model.Athlete{
		Name:     name,
		Age:      25,
		Gender:   gender,
		Country:  country,
		HeightCm: 180,
		Points:   points,
		ImageURL: "https://cdn.example.com/" + name + ".jpg",
	}
}

func TestListAthletesFilters(t *testing.T) {
	repo := newStubRepo(
		registryAthlete("Ana", "USA", model.GenderFemale, 1200),
		registryAthlete("Ben", "USA", model.GenderMale, 900),
		registryAthlete("Carla", "Spain", model.GenderFemale, 1500),
	)
	svc := NewService(repo)

	all, err := svc.ListAthletes(context.Background(), repository.AthleteFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	women, err := svc.ListAthletes(context.Background(), repository.AthleteFilter{Gender: model.GenderFemale})
	require.NoError(t, err)
	assert.Len(t, women, 2)

	usa, err := svc.ListAthletes(context.Background(), repository.AthleteFilter{
		Gender:  model.GenderFemale,
		Country: "USA",
	})
	require.NoError(t, err)
	require.Len(t, usa, 1)
	assert.Equal(t, "Ana", usa[0].Name)
}

func TestListAthletesRankedByPoints(t *testing.T) {
	repo := newStubRepo(
		registryAthlete("Ana", "USA", model.GenderFemale, 1200),
		registryAthlete("Carla", "Spain", model.GenderFemale, 1500),
		registryAthlete("Ben", "USA", model.GenderMale, 900),
	)
	svc := NewService(repo)

	ranked, err := svc.ListAthletes(context.Background(), repository.AthleteFilter{SortByPoints: true})
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Carla", ranked[0].Name)
	assert.Equal(t, "Ana", ranked[1].Name)
	assert.Equal(t, "Ben", ranked[2].Name)
}

func TestCreateAthleteValidation(t *testing.T) {
	svc := NewService(newStubRepo())

	tooYoung := registryAthlete("Kid", "USA", model.GenderMale, 0)
	tooYoung.Age = 9
	assert.Error(t, svc.CreateAthlete(context.Background(), tooYoung))

	badGender := registryAthlete("Sam", "USA", model.Gender("unknown"), 0)
	assert.Error(t, svc.CreateAthlete(context.Background(), badGender))

	noImage := registryAthlete("Pat", "USA", model.GenderOther, 0)
	noImage.ImageURL = ""
	assert.Error(t, svc.CreateAthlete(context.Background(), noImage))
}

func TestCreateAthleteDefaultsTitles(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	a := registryAthlete("Ana", "USA", model.GenderFemale, 0)
	require.NoError(t, svc.CreateAthlete(context.Background(), a))
	assert.NotNil(t, a.TitlesWon)
	assert.Empty(t, a.TitlesWon)
}

func TestDeleteAthleteMissing(t *testing.T) {
	svc := NewService(newStubRepo())

	err := svc.DeleteAthlete(context.Background(), uuid.New())
	assert.Error(t, err)
}
