// Package controllers handles HTTP request handling
package controllers

import (
	"context"

	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/models/dto"
)

// EmployeeService is what EmployeeController needs from the service layer
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*models.EmployeeDetail, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDetail, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.EmployeeDetail, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	ExportEmployees(ctx context.Context) ([]byte, error)
}

// JobTitleService is what JobTitleController needs from the service layer
type JobTitleService interface {
	ListJobTitles(ctx context.Context) ([]*models.JobTitle, error)
	GetJobTitleByID(ctx context.Context, id int64) (*models.JobTitle, error)
	CreateJobTitle(ctx context.Context, title string) (*models.JobTitle, error)
	UpdateJobTitle(ctx context.Context, id int64, title string) error
	DeleteJobTitle(ctx context.Context, id int64) error
}

// PositionService is what PositionController needs from the service layer
type PositionService interface {
	ListPositions(ctx context.Context) ([]*models.Position, error)
	GetPositionByID(ctx context.Context, id int64) (*models.Position, error)
	ListPositionsByJob(ctx context.Context, jobID int64) ([]*models.Position, error)
	CreatePosition(ctx context.Context, position *models.Position) (*models.Position, error)
	UpdatePosition(ctx context.Context, position *models.Position) error
	DeletePosition(ctx context.Context, id int64) error
}

// AuthService is what AuthController needs from the service layer
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}
