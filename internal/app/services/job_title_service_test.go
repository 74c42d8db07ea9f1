package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateJobTitle(t *testing.T) {
	repo := new(mockJobTitleRepo)
	svc := NewJobTitleService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(j *models.JobTitle) bool {
		return j.Title == "Finance"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.JobTitle).ID = 11
	}).Return(int64(11), nil)

	created, err := svc.CreateJobTitle(ctx, "  Finance ")
	require.NoError(t, err)
	assert.Equal(t, &models.JobTitle{ID: 11, Title: "Finance"}, created)
	repo.AssertExpectations(t)
}

func TestCreateJobTitleBlank(t *testing.T) {
	repo := new(mockJobTitleRepo)
	svc := NewJobTitleService(repo, zerolog.Nop())

	_, err := svc.CreateJobTitle(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateJobTitleNotFound(t *testing.T) {
	repo := new(mockJobTitleRepo)
	svc := NewJobTitleService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("Update", ctx, &models.JobTitle{ID: 3, Title: "Ops"}).Return(apperrors.ErrJobTitleNotFound)

	err := svc.UpdateJobTitle(ctx, 3, "Ops")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteJobTitleInUse(t *testing.T) {
	repo := new(mockJobTitleRepo)
	svc := NewJobTitleService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("Delete", ctx, int64(3)).Return(apperrors.NewConflictError("Job title still has positions"))

	err := svc.DeleteJobTitle(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrResourceInUse)
}
