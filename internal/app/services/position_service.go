package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/repositories"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
)

// PositionService handles positions and their monthly salaries
type PositionService struct {
	positionRepo repositories.PositionRepository
	jobTitleRepo repositories.JobTitleRepository
	logger       zerolog.Logger
}

// NewPositionService creates a new position service instance
func NewPositionService(
	positionRepo repositories.PositionRepository,
	jobTitleRepo repositories.JobTitleRepository,
	logger zerolog.Logger,
) *PositionService {
	return &PositionService{
		positionRepo: positionRepo,
		jobTitleRepo: jobTitleRepo,
		logger:       logger,
	}
}

func (s *PositionService) validatePosition(position *models.Position) error {
	if position == nil {
		return apperrors.NewBadRequestError("position is nil")
	}

	position.Name = strings.TrimSpace(position.Name)
	if err := requireID("dep_id", position.JobID); err != nil {
		return err
	}
	if err := requireText("Position", position.Name); err != nil {
		return err
	}
	switch {
	case math.IsNaN(position.Salary) || math.IsInf(position.Salary, 0):
		return apperrors.NewValidationError("Salary", "Salary must be a number")
	case position.Salary < 0:
		return apperrors.NewValidationError("Salary", "Salary cannot be negative")
	case position.Salary > models.MaxSalary:
		return apperrors.NewValidationError("Salary", fmt.Sprintf("Salary must be at most %.2f", models.MaxSalary))
	}
	return nil
}

func (s *PositionService) ensureJobTitle(ctx context.Context, jobID int64) error {
	if _, err := s.jobTitleRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewReferenceError("dep_id", "Job title not found")
		}
		return fmt.Errorf("error checking job title: %w", err)
	}
	return nil
}

// ListPositions retrieves all positions joined with their job title
func (s *PositionService) ListPositions(ctx context.Context) ([]*models.Position, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving positions: %w", err)
	}
	return positions, nil
}

// GetPositionByID retrieves one position
func (s *PositionService) GetPositionByID(ctx context.Context, id int64) (*models.Position, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving position: %w", err)
	}
	return position, nil
}

// ListPositionsByJob retrieves the positions of one job title.
// A job without positions yields apperrors.ErrNoPositions.
func (s *PositionService) ListPositionsByJob(ctx context.Context, jobID int64) ([]*models.Position, error) {
	if err := requireID("id", jobID); err != nil {
		return nil, err
	}

	positions, err := s.positionRepo.ListByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving positions by job: %w", err)
	}
	return positions, nil
}

// CreatePosition inserts a position and returns the stored joined row
func (s *PositionService) CreatePosition(ctx context.Context, position *models.Position) (*models.Position, error) {
	if err := s.validatePosition(position); err != nil {
		return nil, err
	}
	if err := s.ensureJobTitle(ctx, position.JobID); err != nil {
		return nil, err
	}

	id, err := s.positionRepo.Create(ctx, position)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating position: %w", err)
	}

	s.logger.Info().Int64("positionID", id).Int64("jobID", position.JobID).Msg("Position created")

	created, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading created position: %w", err)
	}
	return created, nil
}

// UpdatePosition rewrites every field of an existing position
func (s *PositionService) UpdatePosition(ctx context.Context, position *models.Position) error {
	if err := s.validatePosition(position); err != nil {
		return err
	}
	if err := requireID("id", position.ID); err != nil {
		return err
	}
	if err := s.ensureJobTitle(ctx, position.JobID); err != nil {
		return err
	}

	if err := s.positionRepo.Update(ctx, position); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrReferenceNotFound) {
			return err
		}
		return fmt.Errorf("error updating position: %w", err)
	}

	s.logger.Info().Int64("positionID", position.ID).Msg("Position updated")
	return nil
}

// DeletePosition deletes a position no employee holds
func (s *PositionService) DeletePosition(ctx context.Context, id int64) error {
	if err := requireID("id", id); err != nil {
		return err
	}

	if err := s.positionRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrResourceInUse) {
			return err
		}
		return fmt.Errorf("error deleting position: %w", err)
	}

	s.logger.Info().Int64("positionID", id).Msg("Position deleted")
	return nil
}
