package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/dberrors"
)

// PgJobTitleRepository handles database operations for job titles
type PgJobTitleRepository struct {
	db *pgxpool.Pool
}

// NewJobTitleRepository creates a new job title repository
func NewJobTitleRepository(db *pgxpool.Pool) *PgJobTitleRepository {
	return &PgJobTitleRepository{
		db: db,
	}
}

// List returns every job title, newest first
func (r *PgJobTitleRepository) List(ctx context.Context) ([]*models.JobTitle, error) {
	rows, err := r.db.Query(ctx, `SELECT id, job_title FROM job_title ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing job titles: %w", err)
	}
	defer rows.Close()

	titles := make([]*models.JobTitle, 0)
	for rows.Next() {
		var j models.JobTitle
		if err := rows.Scan(&j.ID, &j.Title); err != nil {
			return nil, fmt.Errorf("error scanning job title: %w", err)
		}
		titles = append(titles, &j)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return titles, nil
}

// GetByID retrieves a job title by ID
func (r *PgJobTitleRepository) GetByID(ctx context.Context, id int64) (*models.JobTitle, error) {
	var j models.JobTitle
	err := r.db.QueryRow(ctx, `SELECT id, job_title FROM job_title WHERE id = $1`, id).Scan(&j.ID, &j.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobTitleNotFound
		}
		return nil, fmt.Errorf("error retrieving job title: %w", err)
	}
	return &j, nil
}

// Create inserts a job title and returns its generated id
func (r *PgJobTitleRepository) Create(ctx context.Context, jobTitle *models.JobTitle) (int64, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO job_title (job_title) VALUES ($1) RETURNING id`,
		jobTitle.Title,
	).Scan(&jobTitle.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating job title: %w", err)
	}
	return jobTitle.ID, nil
}

// Update renames a job title
func (r *PgJobTitleRepository) Update(ctx context.Context, jobTitle *models.JobTitle) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE job_title SET job_title = $1 WHERE id = $2`,
		jobTitle.Title, jobTitle.ID)
	if err != nil {
		return fmt.Errorf("error updating job title: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobTitleNotFound
	}

	return nil
}

// Delete deletes a job title. Titles that still have positions are rejected
// by the foreign key.
func (r *PgJobTitleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM job_title WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("Job title still has positions")
		}
		return fmt.Errorf("error deleting job title: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobTitleNotFound
	}

	return nil
}
