package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"stride/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "project_id").
// entityName is used in error messages (e.g., "project", "epic").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID %q, expected a positive integer", entityName, raw),
		)
	}

	return uint(id), nil
}
