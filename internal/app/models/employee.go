package models

// Employee is a row of the employee table.
// PositionID is stored in the salary_id column, which references
// employee_salary (a position), not a salary figure.
type Employee struct {
	ID         int64  `db:"id"`
	FullName   string `db:"full_name"`
	Email      string `db:"email"`
	Gender     Gender `db:"gender"`
	PositionID int64  `db:"salary_id"`
}

// EmployeeDetail is an employee joined with its position and job title
type EmployeeDetail struct {
	Employee
	JobID        int64   `db:"job_id"`
	JobTitle     string  `db:"job_title"`
	Position     string  `db:"position"`
	Salary       float64 `db:"salary"`
	AnnualSalary float64 `db:"anual_salary"`
}
