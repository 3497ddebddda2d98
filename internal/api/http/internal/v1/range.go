package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibe-gaming/cities/pkg/logger"
	"github.com/vibe-gaming/cities/pkg/pagination"
	"go.uber.org/zap"
)

const rangeCtx = "range"

// rangeMiddleware parses the Range header into the pagination window served
// by the next handler.
func (h *Handler) rangeMiddleware(c *gin.Context) {
	r, err := pagination.Parse(c.GetHeader("Range"), h.rangeUnit, h.rangeLimit)
	if err != nil {
		logger.Debug("invalid range", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, &ErrorStruct{
			ErrorCode:    InvalidRangeCode,
			ErrorMessage: ErrorMessage(err.Error()),
		})
		return
	}

	c.Set(rangeCtx, r)
	c.Next()
}
