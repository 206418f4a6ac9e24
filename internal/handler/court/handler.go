package court

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/handler"
	"github.com/courtside/pickleball-api/internal/model"
	courtService "github.com/courtside/pickleball-api/internal/service/court"
	apperrors "github.com/courtside/pickleball-api/pkg/errors"
)

type Handler struct {
	service courtService.CourtServicer
}

func NewHandler(service courtService.CourtServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	courts := r.Group("/courts")
	{
		courts.GET("/approved", h.ListApproved)
		courts.GET("/approved/facets", h.ApprovedFacets)
		courts.GET("/approved/markers", h.ApprovedMarkers)
		courts.POST("", h.CreateCourt)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	courts := r.Group("/courts")
	{
		courts.GET("", h.ListCourts)
		courts.GET("/:id", h.GetCourt)
		courts.PUT("/:id", h.UpdateCourt)
		courts.DELETE("/:id", h.DeleteCourt)
		courts.PATCH("/:id/status", h.UpdateStatus)
	}
}

type courtRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	CourtCount  int      `json:"court_count" binding:"required,min=1"`
	Contact     string   `json:"contact"`
	Description string   `json:"description"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

func (r *courtRequest) toModel() *model.Court {
	return &model.Court{
		Name:        r.Name,
		Location:    r.Location,
		Country:     r.Country,
		CourtCount:  r.CourtCount,
		Contact:     r.Contact,
		Description: r.Description,
		Lat:         r.Lat,
		Lng:         r.Lng,
	}
}

func (h *Handler) ListApproved(c *gin.Context) {
	courts, err := h.service.ListApproved(c.Request.Context(), handler.ParseCriteria(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list courts"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(courts))
}

func (h *Handler) ApprovedFacets(c *gin.Context) {
	facets, err := h.service.ApprovedFacets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to load facets"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(facets))
}

func (h *Handler) ApprovedMarkers(c *gin.Context) {
	markers, err := h.service.ApprovedMarkers(c.Request.Context(), handler.ParseCriteria(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to load markers"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(markers))
}

func (h *Handler) CreateCourt(c *gin.Context) {
	var req courtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	court := req.toModel()
	if err := h.service.CreateCourt(c.Request.Context(), court); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(court))
}

func (h *Handler) GetCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid court ID"))
		return
	}

	court, err := h.service.GetCourt(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(court))
}

func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.service.ListCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list courts"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(courts))
}

func (h *Handler) UpdateCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid court ID"))
		return
	}

	var req courtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	court := req.toModel()
	court.ID = id
	if err := h.service.UpdateCourt(c.Request.Context(), court); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(court))
}

func (h *Handler) DeleteCourt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid court ID"))
		return
	}

	if err := h.service.DeleteCourt(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

type updateStatusRequest struct {
	Status model.Status `json:"status" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid court ID"))
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid status"))
		return
	}

	court, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(court))
}

func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
}
