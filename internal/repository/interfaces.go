package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/model"
)

type TournamentRepository interface {
	Create(ctx context.Context, t *model.Tournament) error
	Get(ctx context.Context, id uuid.UUID) (*model.Tournament, error)
	Update(ctx context.Context, t *model.Tournament) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Tournament, error)
	ListByStatus(ctx context.Context, status model.Status) ([]*model.Tournament, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error
}

type ClubRepository interface {
	Create(ctx context.Context, c *model.Club) error
	Get(ctx context.Context, id uuid.UUID) (*model.Club, error)
	Update(ctx context.Context, c *model.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Club, error)
	ListByStatus(ctx context.Context, status model.Status) ([]*model.Club, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error
}

type CourtRepository interface {
	Create(ctx context.Context, c *model.Court) error
	Get(ctx context.Context, id uuid.UUID) (*model.Court, error)
	Update(ctx context.Context, c *model.Court) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Court, error)
	ListByStatus(ctx context.Context, status model.Status) ([]*model.Court, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error
}

// AthleteFilter narrows the registry listing. Filtering happens in SQL
// because the registry has no catalog cache to scan.
type AthleteFilter struct {
	Gender       model.Gender
	Country      string
	SortByPoints bool
}

type AthleteRepository interface {
	Create(ctx context.Context, a *model.Athlete) error
	Get(ctx context.Context, id uuid.UUID) (*model.Athlete, error)
	Update(ctx context.Context, a *model.Athlete) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f AthleteFilter) ([]*model.Athlete, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// OutboxRepository is the worker-side view of the outbox table. Events are
// enqueued by the entity repositories inside the same transaction as the
// write that produced them.
type OutboxRepository interface {
	GetPendingEventsWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}
