package v1

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/vibe-gaming/cities/pkg/logger"
	"github.com/vibe-gaming/cities/pkg/schema"
	"go.uber.org/zap"
)

const cityBodyCtx = "cityBody"

var errUnsupportedBody = errors.New("unsupported content type")

// cityBodyMiddleware decodes the request body and validates it against the
// city schema. The handler only runs for a valid document.
func (h *Handler) cityBodyMiddleware(c *gin.Context) {
	raw, err := h.decodeBody(c)
	if err != nil {
		logger.Debug("decode city body failed", zap.String("content_type", c.ContentType()), zap.Error(err))
		errorResponse(c, MalformedBodyCode)
		return
	}

	if err := h.citySchema.Validate(raw); err != nil {
		logger.Debug("city body rejected", zap.Error(err))
		validationErrorResponse(c, err)
		return
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		errorResponse(c, MalformedBodyCode)
		return
	}

	c.Set(cityBodyCtx, doc)
	c.Next()
}

func (h *Handler) decodeBody(c *gin.Context) (any, error) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		return h.citySchema.CoerceForm(c.Request.PostForm), nil
	case binding.MIMEJSON, "":
		return schema.DecodeJSON(c.Request.Body)
	default:
		return nil, errUnsupportedBody
	}
}
