package v1

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/vibe-gaming/cities/internal/domain"
	"github.com/vibe-gaming/cities/internal/service"
	"github.com/vibe-gaming/cities/pkg/logger"
	"github.com/vibe-gaming/cities/pkg/pagination"
	"go.uber.org/zap"
)

func (h *Handler) initStatesRoutes(api *gin.RouterGroup) {
	api.GET("/states", h.getStates)

	state := api.Group("/state")
	{
		state.HEAD("/:state", h.checkState)
		state.GET("/:state", h.rangeMiddleware, h.getCitiesInState)
	}
}

type stateURI struct {
	State string `uri:"state" binding:"required,pathsegment"`
}

func stateLink(state string) string {
	return "/api/state/" + url.PathEscape(state)
}

// @Summary Get States
// @Tags States
// @Description Links to every state referenced by at least one city
// @ModuleID getStates
// @Produce  json
// @Success 200 {object} []string
// @Failure 400 {object} ErrorStruct
// @Router /states [get]
func (h *Handler) getStates(c *gin.Context) {
	states, err := h.services.States.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get states failed", zap.Error(err))
		errorResponse(c, DataAccessFailedCode)
		return
	}

	links := make([]string, len(states))
	for i, s := range states {
		links[i] = stateLink(s)
	}

	c.JSON(http.StatusOK, links)
}

// @Summary Check State
// @Tags States
// @Description Reports whether any city references the state and advertises range support
// @ModuleID checkState
// @Param state path string true "State"
// @Success 200
// @Failure 404
// @Failure 400 {object} ErrorStruct
// @Router /state/{state} [head]
func (h *Handler) checkState(c *gin.Context) {
	var uri stateURI
	if err := c.ShouldBindUri(&uri); err != nil {
		validationErrorResponse(c, err)
		return
	}

	ok, err := h.services.States.Exists(c.Request.Context(), uri.State)
	if err != nil {
		logger.Error("check state failed", zap.String("state", uri.State), zap.Error(err))
		errorResponse(c, DataAccessFailedCode)
		return
	}
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Accept-Ranges", h.rangeUnit)
	c.Status(http.StatusOK)
}

// @Summary Get Cities In State
// @Tags States
// @Description Links to a window of cities in the state, selected with the Range header
// @ModuleID getCitiesInState
// @Produce  json
// @Param state path string true "State"
// @Param Range header string false "cities=first-last"
// @Success 200 {object} []string
// @Success 206 {object} []string
// @Failure 400 {object} ErrorStruct
// @Router /state/{state} [get]
func (h *Handler) getCitiesInState(c *gin.Context) {
	var uri stateURI
	if err := c.ShouldBindUri(&uri); err != nil {
		validationErrorResponse(c, err)
		return
	}

	r := c.MustGet(rangeCtx).(pagination.Range)

	ids, total, err := h.services.Cities.ListByState(c.Request.Context(), uri.State, domain.Window{
		Offset: r.Offset(),
		Limit:  r.Limit(),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidWindow) {
			errorResponse(c, InvalidRangeCode)
			return
		}
		logger.Error("list cities in state failed", zap.String("state", uri.State), zap.Error(err))
		errorResponse(c, DataAccessFailedCode)
		return
	}

	links := make([]string, len(ids))
	for i, id := range ids {
		links[i] = cityLink(id)
	}

	status := http.StatusOK
	if r.Partial(len(ids), total) {
		status = http.StatusPartialContent
	}

	c.Header("Accept-Ranges", h.rangeUnit)
	c.Header("Content-Range", r.ContentRange(len(ids), total))
	c.JSON(status, links)
}
