package dto

import "github.com/ryalynne/hrms/internal/app/models"

// PositionRequest is the body of POST /salary and PATCH /salary/:id.
// Salary is a pointer so that an explicit 0 is distinguishable from a
// missing field.
type PositionRequest struct {
	DepID    FlexInt64    `json:"dep_id" binding:"required,gt=0,lte=2147483647"`
	Position string       `json:"Position" binding:"required,max=255"`
	Salary   *FlexFloat64 `json:"Salary" binding:"required,gte=0,lte=9999999999.99"`
}

// ToModel converts the request into an employee_salary row
func (r PositionRequest) ToModel(id int64) *models.Position {
	p := &models.Position{
		ID:    id,
		JobID: int64(r.DepID),
		Name:  r.Position,
	}
	if r.Salary != nil {
		p.Salary = float64(*r.Salary)
	}
	return p
}

// PositionResponse is an employee_salary row, joined with its job title on
// list and create responses.
type PositionResponse struct {
	ID           int64   `json:"id" example:"3"`
	JobID        int64   `json:"job_id" example:"2"`
	Position     string  `json:"position" example:"Junior"`
	Salary       float64 `json:"salary" example:"30000"`
	AnnualSalary float64 `json:"anual_salary" example:"360000"`
	JobTitle     string  `json:"Job_Title,omitempty" example:"Engineering"`
}

// NewPositionResponse maps a position row
func NewPositionResponse(p *models.Position) PositionResponse {
	return PositionResponse{
		ID:           p.ID,
		JobID:        p.JobID,
		Position:     p.Name,
		Salary:       p.Salary,
		AnnualSalary: p.AnnualSalary,
		JobTitle:     p.JobTitle,
	}
}

// NewPositionListResponse maps position rows, never returning nil
func NewPositionListResponse(rows []*models.Position) []PositionResponse {
	out := make([]PositionResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, NewPositionResponse(p))
	}
	return out
}
