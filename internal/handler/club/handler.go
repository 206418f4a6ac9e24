package club

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/handler"
	"github.com/courtside/pickleball-api/internal/model"
	clubService "github.com/courtside/pickleball-api/internal/service/club"
	apperrors "github.com/courtside/pickleball-api/pkg/errors"
)

type Handler struct {
	service clubService.ClubServicer
}

func NewHandler(service clubService.ClubServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clubs := r.Group("/clubs")
	{
		clubs.GET("/approved", h.ListApproved)
		clubs.GET("/approved/facets", h.ApprovedFacets)
		clubs.GET("/approved/markers", h.ApprovedMarkers)
		clubs.POST("", h.CreateClub)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	clubs := r.Group("/clubs")
	{
		clubs.GET("", h.ListClubs)
		clubs.GET("/:id", h.GetClub)
		clubs.PUT("/:id", h.UpdateClub)
		clubs.DELETE("/:id", h.DeleteClub)
		clubs.PATCH("/:id/status", h.UpdateStatus)
	}
}

type clubRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Contact     string   `json:"contact" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	BookingLink string   `json:"booking_link"`
	ImageURL    string   `json:"image_url"`
	LogoURL     string   `json:"logo_url"`
	Description string   `json:"description"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

func (r *clubRequest) toModel() *model.Club {
	return &model.Club{
		Name:        r.Name,
		Email:       r.Email,
		Contact:     r.Contact,
		Location:    r.Location,
		Country:     r.Country,
		BookingLink: r.BookingLink,
		ImageURL:    r.ImageURL,
		LogoURL:     r.LogoURL,
		Description: r.Description,
		Lat:         r.Lat,
		Lng:         r.Lng,
	}
}

func (h *Handler) ListApproved(c *gin.Context) {
	clubs, err := h.service.ListApproved(c.Request.Context(), handler.ParseCriteria(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list clubs"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(clubs))
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

func (h *Handler) CreateClub(c *gin.Context) {
	var req clubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	club := req.toModel()
	if err := h.service.CreateClub(c.Request.Context(), club); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(club))
}

func (h *Handler) GetClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid club ID"))
		return
	}

	club, err := h.service.GetClub(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(club))
}

func (h *Handler) ListClubs(c *gin.Context) {
	clubs, err := h.service.ListClubs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list clubs"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(clubs))
}

func (h *Handler) UpdateClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid club ID"))
		return
	}

	var req clubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	club := req.toModel()
	club.ID = id
	if err := h.service.UpdateClub(c.Request.Context(), club); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(club))
}

func (h *Handler) DeleteClub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid club ID"))
		return
	}

	if err := h.service.DeleteClub(c.Request.Context(), id); err != nil {
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
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid club ID"))
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

	club, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(club))
}

func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
}
