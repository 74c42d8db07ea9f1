package dto

import (
	"strings"

	"github.com/ryalynne/hrms/internal/app/models"
)

// CreateJobTitleRequest is the body of POST /job. The list screen posts
// Department_Name while the add-department modal posts Job_Title; either is
// accepted.
type CreateJobTitleRequest struct {
	DepartmentName string `json:"Department_Name" binding:"required_without=JobTitle,max=255"`
	JobTitle       string `json:"Job_Title" binding:"max=255"`
}

// Title returns the submitted title, preferring Department_Name
func (r CreateJobTitleRequest) Title() string {
	if t := strings.TrimSpace(r.DepartmentName); t != "" {
		return t
	}
	return strings.TrimSpace(r.JobTitle)
}

// UpdateJobTitleRequest is the body of PATCH /job/:id
type UpdateJobTitleRequest struct {
	JobTitle string `json:"job_title" binding:"required,max=255"`
}

// JobTitleResponse is a job_title row
type JobTitleResponse struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"Job_Title" example:"Engineering"`
}

// NewJobTitleResponse maps a job title row
func NewJobTitleResponse(j *models.JobTitle) JobTitleResponse {
	return JobTitleResponse{ID: j.ID, Title: j.Title}
}

// NewJobTitleListResponse maps job title rows, never returning nil
func NewJobTitleListResponse(rows []*models.JobTitle) []JobTitleResponse {
	out := make([]JobTitleResponse, 0, len(rows))
	for _, j := range rows {
		out = append(out, NewJobTitleResponse(j))
	}
	return out
}
