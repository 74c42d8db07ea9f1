package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/app/models/dto"
)

// HealthController answers liveness probes
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Root reports that the backend is up
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.StatusResponse{Message: "Backend Working"})
}

// Ping answers pong
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.StatusResponse{Message: "pong"})
}
