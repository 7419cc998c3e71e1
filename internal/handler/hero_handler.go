package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleveque/heroes-service/internal/service"
	"github.com/fleveque/heroes-service/internal/storage"
)

// HeroHandler serves the heroes collection.
type HeroHandler struct {
	heroes *service.HeroService
}

// NewHeroHandler creates a HeroHandler backed by the hero service.
func NewHeroHandler(heroes *service.HeroService) *HeroHandler {
	return &HeroHandler{heroes: heroes}
}

// List returns the heroes matching the optional name filter.
// Route: GET /heroes/?name=Wonder
//
// `name` without a trailing % is a prefix match too: the service appends the
// wildcard. Failures only ever surface as a bare status code.
func (h *HeroHandler) List(c *gin.Context) {
	name, present := c.GetQuery("name")

	heroes, err := h.heroes.Find(c.Request.Context(), name, present)
	if err != nil {
		c.Status(StatusFor(err))
		return
	}

	c.JSON(http.StatusOK, heroes)
}

// StatusFor maps a repository error onto the HTTP status returned to
// clients. Technical and unclassified failures are both a 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
