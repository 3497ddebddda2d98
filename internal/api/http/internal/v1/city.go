package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/vibe-gaming/cities/internal/domain"
	"github.com/vibe-gaming/cities/internal/service"
	"github.com/vibe-gaming/cities/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	city := api.Group("/city")
	{
		city.GET("/:id", h.getCityByID)
		city.POST("", h.cityBodyMiddleware, h.createCity)
	}
}

type cityURI struct {
	ID string `uri:"id" binding:"required,pathsegment"`
}

func cityLink(id string) string {
	return "/api/city/" + url.PathEscape(id)
}

// @Summary Get City
// @Tags Cities
// @Description Get a city document by id
// @ModuleID getCityByID
// @Produce  json
// @Param id path string true "City ID"
// @Success 200 {object} domain.City
// @Failure 404 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Router /city/{id} [get]
func (h *Handler) getCityByID(c *gin.Context) {
	var uri cityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, messageResponse{Message: fmt.Sprintf("city %s not found", uri.ID)})
			return
		}
		logger.Error("get city failed", zap.String("id", uri.ID), zap.Error(err))
		errorResponse(c, DataAccessFailedCode)
		return
	}

	c.JSON(http.StatusOK, city)
}

// @Summary Create City
// @Tags Cities
// @Description Add a city. The body is validated against /schema/city-schema.json
// @ModuleID createCity
// @Accept  json
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Success 201 {object} messageResponse
// @Failure 400 {object} ValidationErrorStruct
// @Router /city [post]
func (h *Handler) createCity(c *gin.Context) {
	doc := c.MustGet(cityBodyCtx).(map[string]any)

	id, err := h.services.Cities.Create(c.Request.Context(), domain.CityFromDocument(doc))
	if err != nil {
		if errors.Is(err, service.ErrCityAlreadyExists) {
			errorResponse(c, CityAlreadyExistsCode)
			return
		}
		logger.Error("create city failed", zap.Error(err))
		errorResponse(c, DataAccessFailedCode)
		return
	}

	logger.Info("city added", zap.String("id", id))

	c.Header("Location", cityLink(id))
	c.JSON(http.StatusCreated, messageResponse{Message: "added", ID: id})
}
