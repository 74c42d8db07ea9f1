package services

import (
	"context"

	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/stretchr/testify/mock"
)

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]*models.EmployeeDetail, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.EmployeeDetail)
	return rows, args.Error(1)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*models.EmployeeDetail, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.EmployeeDetail)
	return e, args.Error(1)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, employee *models.Employee) (int64, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockJobTitleRepo struct {
	mock.Mock
}

func (m *mockJobTitleRepo) List(ctx context.Context) ([]*models.JobTitle, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.JobTitle)
	return rows, args.Error(1)
}

func (m *mockJobTitleRepo) GetByID(ctx context.Context, id int64) (*models.JobTitle, error) {
	args := m.Called(ctx, id)
	j, _ := args.Get(0).(*models.JobTitle)
	return j, args.Error(1)
}

func (m *mockJobTitleRepo) Create(ctx context.Context, jobTitle *models.JobTitle) (int64, error) {
	args := m.Called(ctx, jobTitle)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockJobTitleRepo) Update(ctx context.Context, jobTitle *models.JobTitle) error {
	return m.Called(ctx, jobTitle).Error(0)
}

func (m *mockJobTitleRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPositionRepo struct {
	mock.Mock
}

func (m *mockPositionRepo) List(ctx context.Context) ([]*models.Position, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.Position)
	return rows, args.Error(1)
}

func (m *mockPositionRepo) GetByID(ctx context.Context, id int64) (*models.Position, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Position)
	return p, args.Error(1)
}

func (m *mockPositionRepo) ListByJob(ctx context.Context, jobID int64) ([]*models.Position, error) {
	args := m.Called(ctx, jobID)
	rows, _ := args.Get(0).([]*models.Position)
	return rows, args.Error(1)
}

func (m *mockPositionRepo) Create(ctx context.Context, position *models.Position) (int64, error) {
	args := m.Called(ctx, position)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPositionRepo) Update(ctx context.Context, position *models.Position) error {
	return m.Called(ctx, position).Error(0)
}

func (m *mockPositionRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
