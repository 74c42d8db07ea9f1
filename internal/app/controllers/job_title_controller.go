package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/middleware"
	"github.com/ryalynne/hrms/internal/pkg/helpers"
)

// JobTitleController handles the /job resource
type JobTitleController struct {
	jobTitleService JobTitleService
}

// NewJobTitleController creates a new JobTitleController
func NewJobTitleController(jobTitleService JobTitleService) *JobTitleController {
	return &JobTitleController{
		jobTitleService: jobTitleService,
	}
}

// ListJobTitles returns every job title
// @Summary List job titles
// @Tags job
// @Produce json
// @Success 200 {array} dto.JobTitleResponse
// @Router /job [get]
func (c *JobTitleController) ListJobTitles(ctx *gin.Context) {
	titles, err := c.jobTitleService.ListJobTitles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewJobTitleListResponse(titles))
}

// GetJobTitle returns one job title
// @Summary Get job title by ID
// @Tags job
// @Produce json
// @Param id path int true "Job title ID"
// @Success 200 {object} dto.JobTitleResponse
// @Failure 404 {object} dto.ErrorResponse "Job title not found"
// @Router /job/getJobTitle/{id} [get]
func (c *JobTitleController) GetJobTitle(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	title, err := c.jobTitleService.GetJobTitleByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewJobTitleResponse(title))
}

// CreateJobTitle handles job title creation
// @Summary Create job title
// @Tags job
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobTitleRequest true "Job title"
// @Success 201 {object} dto.JobTitleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /job [post]
func (c *JobTitleController) CreateJobTitle(ctx *gin.Context) {
	var req dto.CreateJobTitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	title, err := c.jobTitleService.CreateJobTitle(ctx.Request.Context(), req.Title())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewJobTitleResponse(title))
}

// UpdateJobTitle renames a job title
// @Summary Update job title
// @Tags job
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job title ID"
// @Param request body dto.UpdateJobTitleRequest true "Job title"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Job title not found"
// @Router /job/{id} [patch]
func (c *JobTitleController) UpdateJobTitle(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateJobTitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.jobTitleService.UpdateJobTitle(ctx.Request.Context(), id, req.JobTitle); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Job Title Updated"})
}

// DeleteJobTitle removes a job title without positions
// @Summary Delete job title
// @Tags job
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job title ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 409 {object} dto.ErrorResponse "Job title still has positions"
// @Router /job/{id} [delete]
func (c *JobTitleController) DeleteJobTitle(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.jobTitleService.DeleteJobTitle(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Job Title Deleted"})
}
