package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
)

type athleteRepository struct {
	BaseRepository
}

func NewAthleteRepository(base BaseRepository) repository.AthleteRepository {
	return &athleteRepository{base}
}

const athleteColumns = `
	id, name, age, gender, country, height_cm, points, titles_won, image_url,
	created_at, updated_at
`

func (r *athleteRepository) Create(ctx context.Context, a *model.Athlete) error {
	query := `
		INSERT INTO athletes (
			id, name, age, gender, country, height_cm, points, titles_won,
			image_url, created_at, updated_at
		) VALUES (
			:id, :name, :age, :gender, :country, :height_cm, :points, :titles_won,
			:image_url, :created_at, :updated_at
		)
	`
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("failed to create athlete: %w", err)
	}
	return nil
}

func (r *athleteRepository) Get(ctx context.Context, id uuid.UUID) (*model.Athlete, error) {
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE id = $1`
	var a model.Athlete
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		return nil, fmt.Errorf("failed to get athlete: %w", err)
	}
	return &a, nil
}

func (r *athleteRepository) Update(ctx context.Context, a *model.Athlete) error {
	query := `
		UPDATE athletes
		SET name = :name, age = :age, gender = :gender, country = :country,
			height_cm = :height_cm, points = :points, titles_won = :titles_won,
			image_url = :image_url, updated_at = :updated_at
		WHERE id = :id
	`
	a.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, a)
	if err != nil {
		return fmt.Errorf("failed to update athlete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("athlete not found")
	}
	return nil
}

func (r *athleteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM athletes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("athlete not found")
	}
	return nil
}

func (r *athleteRepository) List(ctx context.Context, f repository.AthleteFilter) ([]*model.Athlete, error) {
	query := `SELECT ` + athleteColumns + ` FROM athletes WHERE 1=1`
	var args []interface{}

	if f.Gender != "" {
		args = append(args, f.Gender)
		query += fmt.Sprintf(" AND gender = $%d", len(args))
	}
	if f.Country != "" {
		args = append(args, f.Country)
		query += fmt.Sprintf(" AND country = $%d", len(args))
	}

	if f.SortByPoints {
		query += " ORDER BY points DESC"
	} else {
		query += " ORDER BY name ASC"
	}

	var athletes []*model.Athlete
	if err := r.db.SelectContext(ctx, &athletes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}
