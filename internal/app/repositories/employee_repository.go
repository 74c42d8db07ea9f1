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

const employeeDetailSelect = `
	SELECT e.id, e.full_name, e.email, e.gender, e.salary_id,
		s.job_id, j.job_title, s.position,
		s.salary::float8, (s.salary * 12)::float8 AS anual_salary
	FROM employee e
	INNER JOIN employee_salary s ON e.salary_id = s.id
	INNER JOIN job_title j ON s.job_id = j.id
`

// PgEmployeeRepository handles database operations for employees
type PgEmployeeRepository struct {
	db *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *pgxpool.Pool) *PgEmployeeRepository {
	return &PgEmployeeRepository{
		db: db,
	}
}

func scanEmployeeDetail(row pgx.Row) (*models.EmployeeDetail, error) {
	var e models.EmployeeDetail
	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.Email,
		&e.Gender,
		&e.PositionID,
		&e.JobID,
		&e.JobTitle,
		&e.Position,
		&e.Salary,
		&e.AnnualSalary,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns every employee joined with position and job title, newest first
func (r *PgEmployeeRepository) List(ctx context.Context) ([]*models.EmployeeDetail, error) {
	rows, err := r.db.Query(ctx, employeeDetailSelect+` ORDER BY e.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*models.EmployeeDetail, 0)
	for rows.Next() {
		e, err := scanEmployeeDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID retrieves a joined employee by ID
func (r *PgEmployeeRepository) GetByID(ctx context.Context, id int64) (*models.EmployeeDetail, error) {
	e, err := scanEmployeeDetail(r.db.QueryRow(ctx, employeeDetailSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return e, nil
}

// Create inserts an employee and returns its generated id
func (r *PgEmployeeRepository) Create(ctx context.Context, employee *models.Employee) (int64, error) {
	query := `
		INSERT INTO employee (full_name, email, gender, salary_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		employee.FullName, employee.Email, employee.Gender, employee.PositionID,
	).Scan(&employee.ID)
	if err != nil {
		return 0, mapEmployeeWriteError(err, "creating")
	}

	return employee.ID, nil
}

// Update rewrites every mutable column of an employee
func (r *PgEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employee
		SET full_name = $1, email = $2, gender = $3, salary_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		employee.FullName, employee.Email, employee.Gender, employee.PositionID, employee.ID)
	if err != nil {
		return mapEmployeeWriteError(err, "updating")
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// Delete deletes an employee by ID
func (r *PgEmployeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM employee WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

func mapEmployeeWriteError(err error, op string) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.NewReferenceError("position_id", "Position not found")
	}
	return fmt.Errorf("error %s employee: %w", op, err)
}
