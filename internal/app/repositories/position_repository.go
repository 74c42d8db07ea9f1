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

const positionSelect = `
	SELECT s.id, s.job_id, s.position, s.salary::float8,
		(s.salary * 12)::float8 AS anual_salary, j.job_title
	FROM employee_salary s
	INNER JOIN job_title j ON s.job_id = j.id
`

// PgPositionRepository handles database operations for the employee_salary table
type PgPositionRepository struct {
	db *pgxpool.Pool
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *pgxpool.Pool) *PgPositionRepository {
	return &PgPositionRepository{
		db: db,
	}
}

func scanPosition(row pgx.Row) (*models.Position, error) {
	var p models.Position
	if err := row.Scan(&p.ID, &p.JobID, &p.Name, &p.Salary, &p.AnnualSalary, &p.JobTitle); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgPositionRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Position, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]*models.Position, 0)
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

// List returns every position joined with its job title, newest first
func (r *PgPositionRepository) List(ctx context.Context) ([]*models.Position, error) {
	positions, err := r.query(ctx, positionSelect+` ORDER BY s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing positions: %w", err)
	}
	return positions, nil
}

// GetByID retrieves a position by ID
func (r *PgPositionRepository) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	p, err := scanPosition(r.db.QueryRow(ctx, positionSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("error retrieving position: %w", err)
	}
	return p, nil
}

// ListByJob returns the positions of one job title. An empty result is
// reported as ErrNoPositions rather than an empty slice.
func (r *PgPositionRepository) ListByJob(ctx context.Context, jobID int64) ([]*models.Position, error) {
	positions, err := r.query(ctx, positionSelect+` WHERE s.job_id = $1 ORDER BY s.id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("error listing positions for job %d: %w", jobID, err)
	}

	if len(positions) == 0 {
		return nil, apperrors.ErrNoPositions
	}

	return positions, nil
}

// Create inserts a position and returns its generated id
func (r *PgPositionRepository) Create(ctx context.Context, position *models.Position) (int64, error) {
	query := `
		INSERT INTO employee_salary (job_id, position, salary)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, position.JobID, position.Name, position.Salary).Scan(&position.ID)
	if err != nil {
		return 0, mapPositionWriteError(err, "creating")
	}

	return position.ID, nil
}

// Update rewrites every mutable column of a position
func (r *PgPositionRepository) Update(ctx context.Context, position *models.Position) error {
	query := `
		UPDATE employee_salary
		SET job_id = $1, position = $2, salary = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, position.JobID, position.Name, position.Salary, position.ID)
	if err != nil {
		return mapPositionWriteError(err, "updating")
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// Delete deletes a position. Positions still held by employees are rejected
// by the foreign key.
func (r *PgPositionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM employee_salary WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("Position is still assigned to employees")
		}
		return fmt.Errorf("error deleting position: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

func mapPositionWriteError(err error, op string) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.NewReferenceError("dep_id", "Job title not found")
	}
	return fmt.Errorf("error %s position: %w", op, err)
}
