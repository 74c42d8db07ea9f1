package controllers

import (
	"context"

	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/stretchr/testify/mock"
)

type mockEmployeeService struct {
	mock.Mock
}

func (m *mockEmployeeService) ListEmployees(ctx context.Context) ([]*models.EmployeeDetail, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.EmployeeDetail)
	return rows, args.Error(1)
}

func (m *mockEmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.EmployeeDetail, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.EmployeeDetail)
	return e, args.Error(1)
}

func (m *mockEmployeeService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.EmployeeDetail, error) {
	args := m.Called(ctx, employee)
	e, _ := args.Get(0).(*models.EmployeeDetail)
	return e, args.Error(1)
}

func (m *mockEmployeeService) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *mockEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmployeeService) ExportEmployees(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type mockJobTitleService struct {
	mock.Mock
}

func (m *mockJobTitleService) ListJobTitles(ctx context.Context) ([]*models.JobTitle, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.JobTitle)
	return rows, args.Error(1)
}

func (m *mockJobTitleService) GetJobTitleByID(ctx context.Context, id int64) (*models.JobTitle, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*models.JobTitle)
	return j, args.Error(1)
}

func (m *mockJobTitleService) CreateJobTitle(ctx context.Context, title string) (*models.JobTitle, error) {
	args := m.Called(ctx, title)
	j, _ := args.Get(0).(*models.JobTitle)
	return j, args.Error(1)
}

func (m *mockJobTitleService) UpdateJobTitle(ctx context.Context, id int64, title string) error {
	return m.Called(ctx, id, title).Error(0)
}

func (m *mockJobTitleService) DeleteJobTitle(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPositionService struct {
	mock.Mock
}

func (m *mockPositionService) ListPositions(ctx context.Context) ([]*models.Position, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.Position)
	return rows, args.Error(1)
}

func (m *mockPositionService) GetPositionByID(ctx context.Context, id int64) (*models.Position, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Position)
	return p, args.Error(1)
}

func (m *mockPositionService) ListPositionsByJob(ctx context.Context, jobID int64) ([]*models.Position, error) {
	args := m.Called(ctx, jobID)
	rows, _ := args.Get(0).([]*models.Position)
	return rows, args.Error(1)
}

func (m *mockPositionService) CreatePosition(ctx context.Context, position *models.Position) (*models.Position, error) {
	args := m.Called(ctx, position)
	p, _ := args.Get(0).(*models.Position)
	return p, args.Error(1)
}

func (m *mockPositionService) UpdatePosition(ctx context.Context, position *models.Position) error {
	return m.Called(ctx, position).Error(0)
}

func (m *mockPositionService) DeletePosition(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.RegisterResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.TokenResponse)
	return resp, args.Error(1)
}
