package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/repositories"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
)

// JobTitleService handles job title operations
type JobTitleService struct {
	jobTitleRepo repositories.JobTitleRepository
	logger       zerolog.Logger
}

// NewJobTitleService creates a new job title service instance
func NewJobTitleService(jobTitleRepo repositories.JobTitleRepository, logger zerolog.Logger) *JobTitleService {
	return &JobTitleService{
		jobTitleRepo: jobTitleRepo,
		logger:       logger,
	}
}

// ListJobTitles retrieves all job titles
func (s *JobTitleService) ListJobTitles(ctx context.Context) ([]*models.JobTitle, error) {
	titles, err := s.jobTitleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving job titles: %w", err)
	}
	return titles, nil
}

// GetJobTitleByID retrieves a job title by ID
func (s *JobTitleService) GetJobTitleByID(ctx context.Context, id int64) (*models.JobTitle, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	title, err := s.jobTitleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving job title: %w", err)
	}
	return title, nil
}

// CreateJobTitle inserts a job title and returns it with its new id
func (s *JobTitleService) CreateJobTitle(ctx context.Context, title string) (*models.JobTitle, error) {
	title = strings.TrimSpace(title)
	if err := requireText("Department_Name", title); err != nil {
		return nil, err
	}

	jobTitle := &models.JobTitle{Title: title}
	if _, err := s.jobTitleRepo.Create(ctx, jobTitle); err != nil {
		return nil, fmt.Errorf("error creating job title: %w", err)
	}

	s.logger.Info().Int64("jobTitleID", jobTitle.ID).Str("title", title).Msg("Job title created")
	return jobTitle, nil
}

// UpdateJobTitle renames a job title
func (s *JobTitleService) UpdateJobTitle(ctx context.Context, id int64, title string) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if err := requireText("job_title", title); err != nil {
		return err
	}

	if err := s.jobTitleRepo.Update(ctx, &models.JobTitle{ID: id, Title: title}); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error updating job title: %w", err)
	}

	s.logger.Info().Int64("jobTitleID", id).Msg("Job title updated")
	return nil
}

// DeleteJobTitle deletes a job title that no position references
func (s *JobTitleService) DeleteJobTitle(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	if err := s.jobTitleRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceInUse) {
			return err
		}
		return fmt.Errorf("error deleting job title: %w", err)
	}

	s.logger.Info().Int64("jobTitleID", id).Msg("Job title deleted")
	return nil
}
