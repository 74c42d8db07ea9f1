package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ryalynne/hrms/internal/app/models"
)

// EmployeeRepository is the data access contract for the employee table
type EmployeeRepository interface {
	List(ctx context.Context) ([]*models.EmployeeDetail, error)
	GetByID(ctx context.Context, id int64) (*models.EmployeeDetail, error)
	Create(ctx context.Context, employee *models.Employee) (int64, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error
}

// JobTitleRepository is the data access contract for the job_title table
type JobTitleRepository interface {
	List(ctx context.Context) ([]*models.JobTitle, error)
	GetByID(ctx context.Context, id int64) (*models.JobTitle, error)
	Create(ctx context.Context, jobTitle *models.JobTitle) (int64, error)
	Update(ctx context.Context, jobTitle *models.JobTitle) error
	Delete(ctx context.Context, id int64) error
}

// PositionRepository is the data access contract for the employee_salary table
type PositionRepository interface {
	List(ctx context.Context) ([]*models.Position, error)
	GetByID(ctx context.Context, id int64) (*models.Position, error)
	ListByJob(ctx context.Context, jobID int64) ([]*models.Position, error)
	Create(ctx context.Context, position *models.Position) (int64, error)
	Update(ctx context.Context, position *models.Position) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the data access contract for the users table
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

var (
	_ EmployeeRepository = (*PgEmployeeRepository)(nil)
	_ JobTitleRepository = (*PgJobTitleRepository)(nil)
	_ PositionRepository = (*PgPositionRepository)(nil)
	_ UserRepository     = (*PgUserRepository)(nil)
)

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository EmployeeRepository
	JobTitleRepository JobTitleRepository
	PositionRepository PositionRepository
	UserRepository     UserRepository
}

// NewRepositories initializes all repositories over one shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EmployeeRepository: NewEmployeeRepository(db),
		JobTitleRepository: NewJobTitleRepository(db),
		PositionRepository: NewPositionRepository(db),
		UserRepository:     NewUserRepository(db),
	}
}
