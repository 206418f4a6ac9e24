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

type clubRepository struct {
	BaseRepository
}

func NewClubRepository(base BaseRepository) repository.ClubRepository {
	return &clubRepository{base}
}

const clubColumns = `
	id, name, email, contact, location, country, booking_link,
	image_url, logo_url, description, lat, lng, status, created_at, updated_at
`

func (r *clubRepository) Create(ctx context.Context, c *model.Club) error {
	query := `
		INSERT INTO clubs (
			id, name, email, contact, location, country, booking_link,
			image_url, logo_url, description, lat, lng, status, created_at, updated_at
		) VALUES (
			:id, :name, :email, :contact, :location, :country, :booking_link,
			:image_url, :logo_url, :description, :lat, :lng, :status, :created_at, :updated_at
		)
	`
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

func (r *clubRepository) Get(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	var c model.Club
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return &c, nil
}

func (r *clubRepository) Update(ctx context.Context, c *model.Club) error {
	query := `
		UPDATE clubs
		SET name = :name, email = :email, contact = :contact, location = :location,
			country = :country, booking_link = :booking_link, image_url = :image_url,
			logo_url = :logo_url, description = :description,
			lat = :lat, lng = :lng, updated_at = :updated_at
		WHERE id = :id
	`
	c.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("club not found")
	}
	return nil
}

func (r *clubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("club not found")
	}
	return nil
}

func (r *clubRepository) List(ctx context.Context) ([]*model.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY created_at DESC`
	var clubs []*model.Club
	if err := r.db.SelectContext(ctx, &clubs, query); err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

func (r *clubRepository) ListByStatus(ctx context.Context, status model.Status) ([]*model.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE status = $1 ORDER BY created_at DESC`
	var clubs []*model.Club
	if err := r.db.SelectContext(ctx, &clubs, query, status); err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

// UpdateStatus runs the status change and the outbox insert in one
// transaction.
func (r *clubRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, event *model.OutboxEvent) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE clubs SET status = $1, updated_at = $2 WHERE id = $3`,
			status, time.Now(), id)
		if err != nil {
			return fmt.Errorf("failed to update club status: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("club not found")
		}
		return insertOutboxEvent(ctx, tx, event)
	})
}
