package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/app/services"
	"github.com/ryalynne/hrms/internal/middleware"
	"github.com/ryalynne/hrms/internal/pkg/helpers"
	"github.com/ryalynne/hrms/internal/pkg/spreadsheet"
)

// EmployeeController handles the /users resource
type EmployeeController struct {
	employeeService EmployeeService
	logger          zerolog.Logger
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService EmployeeService, logger zerolog.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

// ListEmployees returns every employee
// @Summary List employees
// @Description Employees joined with their position and job title, newest first
// @Tags users
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEmployeeListResponse(employees))
}

// GetEmployee returns one employee
// @Summary Get employee by ID
// @Tags users
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewEmployeeResponse(employee))
}

// CreateEmployee handles employee creation
// @Summary Create employee
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Router /users [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid employee payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewEmployeeResponse(employee))
}

// UpdateEmployee rewrites an employee
// @Summary Update employee
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Employee"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.employeeService.UpdateEmployee(ctx.Request.Context(), req.ToModel(id)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "User Updated"})
}

// DeleteEmployee removes an employee
// @Summary Delete employee
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "User Deleted"})
}

// ExportEmployees streams the employee list as an xlsx attachment
// @Summary Export employees
// @Tags users
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /users/export [get]
func (c *EmployeeController) ExportEmployees(ctx *gin.Context) {
	data, err := c.employeeService.ExportEmployees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.EmployeeExportFilename))
	ctx.Data(http.StatusOK, spreadsheet.ContentType, data)
}
