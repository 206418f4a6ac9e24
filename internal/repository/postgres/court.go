package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
)

type courtRepository struct {
	BaseRepository
}

func NewCourtRepository(base BaseRepository) repository.CourtRepository {
	return &courtRepository{base}
}

const courtColumns = `
	id, name, location, country, court_count, contact, description,
	lat, lng, status, created_at, updated_at
`

func (r *courtRepository) Create(ctx context.Context, c *model.Court) error {
	query := `
		INSERT INTO courts (
			id, name, location, country, court_count, contact, description,
			lat, lng, status, created_at, updated_at
		) VALUES (
			:id, :name, :location, :country, :court_count, :contact, :description,
			:lat, :lng, :status, :created_at, :updated_at
		)
	`
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}
	return nil
}

func (r *courtRepository) Get(ctx context.Context, id uuid.UUID) (*model.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`
	var c model.Court
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	return &c, nil
}

func (r *courtRepository) Update(ctx context.Context, c *model.Court) error {
	query := `
		UPDATE courts
		SET name = :name, location = :location, country = :country,
			court_count = :court_count, contact = :contact,
			description = :description, lat = :lat, lng = :lng, updated_at = :updated_at
		WHERE id = :id
	`
	c.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("court not found")
	}
	return nil
}

func (r *courtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("court not found")
	}
	return nil
}

func (r *courtRepository) List(ctx context.Context) ([]*model.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts ORDER BY created_at DESC`
	var courts []*model.Court
	if err := r.db.SelectContext(ctx, &courts, query); err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	return courts, nil
}

func (r *courtRepository) ListByStatus(ctx context.Context, status model.Status) ([]*model.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE status = $1 ORDER BY created_at DESC`
	var courts []*model.Court
	if err := r.db.SelectContext(ctx, &courts, query, status); err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	return courts, nil
}

// UpdateStatus runs the status change and the outbox insert in one
// transaction.
func (r *courtRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE courts SET status = $1, updated_at = $2 WHERE id = $3`,
			status, time.Now(), id)
		if err != nil {
			return fmt.Errorf("failed to update court status: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("court not found")
		}
		return insertOutboxEvent(ctx, tx, event)
	})
}
