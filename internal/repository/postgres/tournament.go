package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
)

type tournamentRepository struct {
	BaseRepository
}

func NewTournamentRepository(base BaseRepository) repository.TournamentRepository {
	return &tournamentRepository{base}
}

const tournamentColumns = `
	id, name, organizer, organizer_email, location, country, continent, tier,
	start_date, end_date, image_url, description, lat, lng, status,
	created_at, updated_at
`

func (r *tournamentRepository) Create(ctx context.Context, t *model.Tournament) error {
	query := `
		INSERT INTO tournaments (
			id, name, organizer, organizer_email, location, country, continent, tier,
			start_date, end_date, image_url, description, lat, lng, status,
			created_at, updated_at
		) VALUES (
			:id, :name, :organizer, :organizer_email, :location, :country, :continent, :tier,
			:start_date, :end_date, :image_url, :description, :lat, :lng, :status,
			:created_at, :updated_at
		)
	`
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (r *tournamentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	var t model.Tournament
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return &t, nil
}

func (r *tournamentRepository) Update(ctx context.Context, t *model.Tournament) error {
	query := `
		UPDATE tournaments
		SET name = :name, organizer = :organizer, organizer_email = :organizer_email,
			location = :location, country = :country, continent = :continent,
			tier = :tier, start_date = :start_date, end_date = :end_date,
			image_url = :image_url, description = :description,
			lat = :lat, lng = :lng, updated_at = :updated_at
		WHERE id = :id
	`
	t.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return fmt.Errorf("failed to update tournament: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("tournament not found")
	}
	return nil
}

func (r *tournamentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("tournament not found")
	}
	return nil
}

func (r *tournamentRepository) List(ctx context.Context) ([]*model.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY start_date ASC`
	var tournaments []*model.Tournament
	if err := r.db.SelectContext(ctx, &tournaments, query); err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return validSpans(tournaments), nil
}

func (r *tournamentRepository) ListByStatus(ctx context.Context, status model.Status) ([]*model.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE status = $1 ORDER BY start_date ASC`
	var tournaments []*model.Tournament
	if err := r.db.SelectContext(ctx, &tournaments, query, status); err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return validSpans(tournaments), nil
}

// UpdateStatus applies a moderation decision and enqueues the outbox event
// in the same transaction, so a published event always reflects a committed
// status change.
func (r *tournamentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE tournaments SET status = $1, updated_at = $2 WHERE id = $3`,
			status, time.Now(), id)
		if err != nil {
			return fmt.Errorf("failed to update tournament status: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("tournament not found")
		}
		return insertOutboxEvent(ctx, tx, event)
	})
}

// validSpans drops records whose date interval is inverted. The schema
// should prevent these, but a bad import would otherwise poison every
// date comparison downstream, so they are skipped with a warning.
func validSpans(tournaments []*model.Tournament) []*model.Tournament {
	valid := tournaments[:0]
	for _, t := range tournaments {
		if t.EndDate.Before(t.StartDate) {
			log.Warn().
				Str("tournament_id", t.ID.String()).
				Time("start_date", t.StartDate).
				Time("end_date", t.EndDate).
				Msg("skipping tournament with inverted date span")
			continue
		}
		valid = append(valid, t)
	}
	return valid
}
