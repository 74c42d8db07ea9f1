package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/repositories"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/auth"
)

// Services defined in this package:
// - EmployeeService: employee records and the spreadsheet export
// - JobTitleService: job titles
// - PositionService: positions and their salaries (employee_salary)
// - AuthService: operator registration, login and token checks

// Services holds all the service instances
type Services struct {
	EmployeeService *EmployeeService
	JobTitleService *JobTitleService
	PositionService *PositionService
	AuthService     *AuthService
}

// NewServices wires every service over the given repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		EmployeeService: NewEmployeeService(repos.EmployeeRepository, repos.PositionRepository, logger),
		JobTitleService: NewJobTitleService(repos.JobTitleRepository, logger),
		PositionService: NewPositionService(repos.PositionRepository, repos.JobTitleRepository, logger),
		AuthService:     NewAuthService(repos.UserRepository, jwtService, logger),
	}
}

var validate = validator.New()

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s cannot be empty", field))
	}
	return nil
}

func requireEmail(field, value string) error {
	if err := validate.Var(value, "required,email"); err != nil {
		return apperrors.NewValidationError(field, "Invalid email format")
	}
	return nil
}

func requireID(field string, id int64) error {
	if id <= 0 || id > models.MaxID {
		return apperrors.NewValidationError(field, fmt.Sprintf("%s must be a positive integer", field))
	}
	return nil
}
