package models

// Position is a row of the employee_salary table: a level within a job
// title carrying a monthly salary.
type Position struct {
	ID     int64   `db:"id"`
	JobID  int64   `db:"job_id"`
	Name   string  `db:"position"`
	Salary float64 `db:"salary"`

	// Filled by joined queries only
	JobTitle     string  `db:"job_title"`
	AnnualSalary float64 `db:"anual_salary"`
}
