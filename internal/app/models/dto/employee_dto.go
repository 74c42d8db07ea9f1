package dto

import "github.com/ryalynne/hrms/internal/app/models"

// CreateEmployeeRequest is the body of POST /users
type CreateEmployeeRequest struct {
	Name       string    `json:"name" binding:"required,max=255"`
	Email      string    `json:"email" binding:"required,email"`
	Gender     string    `json:"gender" binding:"required,oneof=Male Female"`
	PositionID FlexInt64 `json:"position_id" binding:"required,gt=0,lte=2147483647"`
}

// UpdateEmployeeRequest is the body of PATCH /users/:id. Every field is
// rewritten, so all of them are required.
type UpdateEmployeeRequest struct {
	Name       string    `json:"name" binding:"required,max=255"`
	Email      string    `json:"email" binding:"required,email"`
	Gender     string    `json:"gender" binding:"required,oneof=Male Female"`
	PositionID FlexInt64 `json:"position_id" binding:"required,gt=0,lte=2147483647"`
}

// ToModel converts the request into an employee row
func (r CreateEmployeeRequest) ToModel() *models.Employee {
	return &models.Employee{
		FullName:   r.Name,
		Email:      r.Email,
		Gender:     models.Gender(r.Gender),
		PositionID: int64(r.PositionID),
	}
}

// ToModel converts the request into an employee row with the given id
func (r UpdateEmployeeRequest) ToModel(id int64) *models.Employee {
	return &models.Employee{
		ID:         id,
		FullName:   r.Name,
		Email:      r.Email,
		Gender:     models.Gender(r.Gender),
		PositionID: int64(r.PositionID),
	}
}

// EmployeeResponse is an employee joined with its position and job title.
// salary_id keeps its historical name; it holds the position id.
type EmployeeResponse struct {
	ID           int64   `json:"id" example:"1"`
	FullName     string  `json:"full_name" example:"Ada Lovelace"`
	Gender       string  `json:"gender" example:"Female"`
	Email        string  `json:"email" example:"ada@example.com"`
	PositionID   int64   `json:"salary_id" example:"3"`
	JobID        int64   `json:"job_id" example:"2"`
	JobTitle     string  `json:"Job_Title" example:"Engineering"`
	Position     string  `json:"position" example:"Junior"`
	Salary       float64 `json:"salary" example:"30000"`
	AnnualSalary float64 `json:"anual_salary" example:"360000"`
}

// NewEmployeeResponse maps a joined employee row
func NewEmployeeResponse(e *models.EmployeeDetail) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Gender:       string(e.Gender),
		Email:        e.Email,
		PositionID:   e.PositionID,
		JobID:        e.JobID,
		JobTitle:     e.JobTitle,
		Position:     e.Position,
		Salary:       e.Salary,
		AnnualSalary: e.AnnualSalary,
	}
}

// NewEmployeeListResponse maps joined employee rows, never returning nil
func NewEmployeeListResponse(rows []*models.EmployeeDetail) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
