package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
)

// ParseIDParam reads a positive route id. Keys are int4, so anything past
// math.MaxInt32 is rejected here rather than by the driver.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, apperrors.NewValidationError(name, fmt.Sprintf("%s is required", name))
	}

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name, fmt.Sprintf("%s must be a positive integer", name))
	}

	return id, nil
}
