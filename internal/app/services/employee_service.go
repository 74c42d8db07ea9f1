package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/repositories"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/spreadsheet"
)

// Employee export layout
const (
	EmployeeExportSheet    = "Employees"
	EmployeeExportFilename = "employees.xlsx"
)

var employeeExportColumns = []spreadsheet.Column{
	{Header: "ID", Width: 8},
	{Header: "Full Name", Width: 28},
	{Header: "Gender", Width: 10},
	{Header: "Email", Width: 32},
	{Header: "Job Title", Width: 24},
	{Header: "Position", Width: 24},
	{Header: "Monthly Salary", Width: 16},
	{Header: "Annual Salary", Width: 16},
}

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	positionRepo repositories.PositionRepository
	logger       zerolog.Logger
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(
	employeeRepo repositories.EmployeeRepository,
	positionRepo repositories.PositionRepository,
	logger zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
		logger:       logger,
	}
}

// validateEmployee validates employee data before database operations
func (s *EmployeeService) validateEmployee(employee *models.Employee) error {
	if employee == nil {
		return apperrors.NewBadRequestError("employee is nil")
	}

	employee.FullName = strings.TrimSpace(employee.FullName)
	employee.Email = strings.TrimSpace(employee.Email)

	if err := requireText("name", employee.FullName); err != nil {
		return err
	}
	if err := requireEmail("email", employee.Email); err != nil {
		return err
	}
	if !employee.Gender.Valid() {
		return apperrors.NewValidationError("gender", "gender must be Male or Female")
	}
	return requireID("position_id", employee.PositionID)
}

// ensurePosition checks that the referenced position exists so the caller
// gets a field-level error instead of a bare foreign key failure.
func (s *EmployeeService) ensurePosition(ctx context.Context, positionID int64) error {
	if _, err := s.positionRepo.GetByID(ctx, positionID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewReferenceError("position_id", "Position not found")
		}
		return fmt.Errorf("error checking position: %w", err)
	}
	return nil
}

// ListEmployees retrieves every employee joined with position and job title
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*models.EmployeeDetail, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeByID retrieves one joined employee
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDetail, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// CreateEmployee inserts an employee and returns the stored joined row
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.EmployeeDetail, error) {
	if err := s.validateEmployee(employee); err != nil {
		return nil, err
	}

	if err := s.ensurePosition(ctx, employee.PositionID); err != nil {
		return nil, err
	}

	id, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	s.logger.Info().Int64("employeeID", id).Int64("positionID", employee.PositionID).Msg("Employee created")

	created, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading created employee: %w", err)
	}
	return created, nil
}

// UpdateEmployee rewrites every field of an existing employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	if err := s.validateEmployee(employee); err != nil {
		return err
	}
	if err := requireID("id", employee.ID); err != nil {
		return err
	}

	if err := s.ensurePosition(ctx, employee.PositionID); err != nil {
		return err
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrReferenceNotFound) {
			return err
		}
		return fmt.Errorf("error updating employee: %w", err)
	}

	s.logger.Info().Int64("employeeID", employee.ID).Msg("Employee updated")
	return nil
}

// DeleteEmployee deletes an employee by ID
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}

	s.logger.Info().Int64("employeeID", id).Msg("Employee deleted")
	return nil
}

// ExportEmployees renders the employee list as an xlsx workbook
func (s *EmployeeService) ExportEmployees(ctx context.Context) ([]byte, error) {
	employees, err := s.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	exporter := spreadsheet.NewExporter()
	sheet := exporter.AddSheet(EmployeeExportSheet, employeeExportColumns...).WithFilter()
	for _, e := range employees {
		sheet.AddRow(e.ID, e.FullName, string(e.Gender), e.Email, e.JobTitle, e.Position, e.Salary, e.AnnualSalary)
	}

	data, err := exporter.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("error building employee export: %w", err)
	}

	s.logger.Debug().Int("rows", len(employees)).Msg("Employee export built")
	return data, nil
}
