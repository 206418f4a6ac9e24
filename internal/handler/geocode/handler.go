package geocode

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside/pickleball-api/internal/handler"
	geocodeService "github.com/courtside/pickleball-api/internal/service/geocode"
)

type Handler struct {
	service geocodeService.GeocodeServicer
}

func NewHandler(service geocodeService.GeocodeServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/geocode", h.Search)
}

// Search resolves a free-text place query for the map. Provider trouble is
// reported as an empty result set so the map search box stays usable.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("query parameter q is required"))
		return
	}

	places, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusOK, handler.NewSuccessResponse([]geocodeService.Place{}))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(places))
}
