package models

// JobTitle is a department/role label grouping positions
type JobTitle struct {
	ID    int64  `db:"id"`
	Title string `db:"job_title"`
}
