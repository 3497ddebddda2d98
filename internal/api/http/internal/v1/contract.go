package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vibe-gaming/cities/pkg/logger"
	"github.com/vibe-gaming/cities/pkg/openapi"
	"go.uber.org/zap"
)

// ContractMiddleware rejects requests that the API contract does not declare
// before any route handler runs. Paths under the exempt prefixes skip the
// check.
func ContractMiddleware(contract *openapi.Validator, exempt ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range exempt {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if err := contract.ValidateRequest(c.Request); err != nil {
			logger.Warn("api contract violation",
				zap.String("method", c.Request.Method),
				zap.String("path", path),
				zap.Error(err),
			)
			validationErrorResponse(c, err)
			return
		}

		c.Next()
	}
}
