package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const experienceColumns = `id, job_title, company_name, description, start_date, end_date, created_at, updated_at`

// ListExperiences retrieves all experiences ordered ascending by start date
func (db *DB) ListExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY start_date ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		var exp Experience
		if err := rows.Scan(&exp.ID, &exp.JobTitle, &exp.CompanyName, &exp.Description,
			&exp.StartDate, &exp.EndDate, &exp.CreatedAt, &exp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		out = append(out, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read experiences: %w", err)
	}
	return out, nil
}

// GetExperience retrieves a single experience by ID, or nil if not found
func (db *DB) GetExperience(ctx context.Context, id uuid.UUID) (*Experience, error) {
	var exp Experience
	err := db.pool.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = $1`,
		id,
	).Scan(&exp.ID, &exp.JobTitle, &exp.CompanyName, &exp.Description,
		&exp.StartDate, &exp.EndDate, &exp.CreatedAt, &exp.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return &exp, nil
}

// CreateExperience inserts a new experience and returns the stored row
func (db *DB) CreateExperience(ctx context.Context, data ExperienceData) (*Experience, error) {
	var exp Experience
	err := db.pool.QueryRow(ctx,
		`INSERT INTO experiences (job_title, company_name, description, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+experienceColumns,
		data.JobTitle, data.CompanyName, data.Description, data.StartDate, data.EndDate,
	).Scan(&exp.ID, &exp.JobTitle, &exp.CompanyName, &exp.Description,
		&exp.StartDate, &exp.EndDate, &exp.CreatedAt, &exp.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return &exp, nil
}

// UpdateExperience replaces the writable fields of an experience.
// Returns nil if the ID is unknown.
func (db *DB) UpdateExperience(ctx context.Context, id uuid.UUID, data ExperienceData) (*Experience, error) {
	var exp Experience
	err := db.pool.QueryRow(ctx,
		`UPDATE experiences
		 SET job_title = $1, company_name = $2, description = $3,
		     start_date = $4, end_date = $5, updated_at = NOW()
		 WHERE id = $6
		 RETURNING `+experienceColumns,
		data.JobTitle, data.CompanyName, data.Description, data.StartDate, data.EndDate, id,
	).Scan(&exp.ID, &exp.JobTitle, &exp.CompanyName, &exp.Description,
		&exp.StartDate, &exp.EndDate, &exp.CreatedAt, &exp.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return &exp, nil
}

// DeleteExperience removes an experience. Returns false if the ID is unknown.
func (db *DB) DeleteExperience(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete experience: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
