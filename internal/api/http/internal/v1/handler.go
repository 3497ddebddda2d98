package v1

import (
	"github.com/vibe-gaming/cities/contract"
	"github.com/vibe-gaming/cities/internal/config"
	"github.com/vibe-gaming/cities/internal/service"
	"github.com/vibe-gaming/cities/pkg/schema"

	"github.com/gin-gonic/gin"
)

// @title Cities API
// @version 1.0
// @description States and cities backed by a document store

// @BasePath /api

type Handler struct {
	services   *service.Services
	citySchema *schema.Validator
	rangeUnit  string
	rangeLimit int64
}

func NewHandler(
	services *service.Services,
	cfg *config.Config,
	citySchema *schema.Validator,
) *Handler {
	return &Handler{
		services:   services,
		citySchema: citySchema,
		rangeUnit:  contract.CityRangeUnit,
		rangeLimit: cfg.Range.Limit,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initStatesRoutes(api)
	h.initCitiesRoutes(api)
}
