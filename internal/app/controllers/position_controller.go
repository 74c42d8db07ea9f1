package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/middleware"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/helpers"
)

// PositionController handles the /salary resource
type PositionController struct {
	positionService PositionService
}

// NewPositionController creates a new PositionController
func NewPositionController(positionService PositionService) *PositionController {
	return &PositionController{
		positionService: positionService,
	}
}

// ListPositions returns every position with its job title
// @Summary List positions
// @Tags salary
// @Produce json
// @Success 200 {array} dto.PositionResponse
// @Router /salary [get]
func (c *PositionController) ListPositions(ctx *gin.Context) {
	positions, err := c.positionService.ListPositions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPositionListResponse(positions))
}

// ListPositionsByJob returns the positions of one job title
// @Summary Positions of a job title
// @Tags salary
// @Produce json
// @Param id path int true "Job title ID"
// @Success 200 {array} dto.PositionResponse
// @Failure 400 {object} dto.ErrorResponse "Job ID is required"
// @Failure 404 {object} dto.ErrorResponse "No positions found for this job"
// @Router /salary/getPosition/{id} [get]
func (c *PositionController) ListPositionsByJob(ctx *gin.Context) {
	if strings.TrimSpace(ctx.Param("id")) == "" {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("id", "Job ID is required"))
		return
	}

	jobID, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	positions, err := c.positionService.ListPositionsByJob(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPositionListResponse(positions))
}

// GetPosition returns one position
// @Summary Get position by ID
// @Tags salary
// @Produce json
// @Param id path int true "Position ID"
// @Success 200 {object} dto.PositionResponse
// @Failure 404 {object} dto.ErrorResponse "Salary record not found"
// @Router /salary/getSalary/{id} [get]
func (c *PositionController) GetPosition(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	position, err := c.positionService.GetPositionByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPositionResponse(position))
}

// CreatePosition handles position creation
// @Summary Create position
// @Tags salary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PositionRequest true "Position"
// @Success 201 {object} dto.PositionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /salary [post]
func (c *PositionController) CreatePosition(ctx *gin.Context) {
	var req dto.PositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	position, err := c.positionService.CreatePosition(ctx.Request.Context(), req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewPositionResponse(position))
}

// UpdatePosition rewrites a position
// @Summary Update position
// @Tags salary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Param request body dto.PositionRequest true "Position"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Salary record not found"
// @Router /salary/{id} [patch]
func (c *PositionController) UpdatePosition(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.PositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.positionService.UpdatePosition(ctx.Request.Context(), req.ToModel(id)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Salary Updated"})
}

// DeletePosition removes a position no employee holds
// @Summary Delete position
// @Tags salary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 409 {object} dto.ErrorResponse "Position is still assigned to employees"
// @Router /salary/{id} [delete]
func (c *PositionController) DeletePosition(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.positionService.DeletePosition(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Salary Deleted"})
}
