package tournament

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/handler"
	"github.com/courtside/pickleball-api/internal/model"
	tournamentService "github.com/courtside/pickleball-api/internal/service/tournament"
	apperrors "github.com/courtside/pickleball-api/pkg/errors"
)

type Handler struct {
	service tournamentService.TournamentServicer
}

func NewHandler(service tournamentService.TournamentServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public catalog endpoints and the submission
// endpoint. Admin routes are registered separately behind auth.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tournaments := r.Group("/tournaments")
	{
		tournaments.GET("/approved", h.ListApproved)
		tournaments.GET("/approved/facets", h.ApprovedFacets)
		tournaments.GET("/approved/markers", h.ApprovedMarkers)
		tournaments.POST("", h.CreateTournament)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	tournaments := r.Group("/tournaments")
	{
		tournaments.GET("", h.ListTournaments)
		tournaments.GET("/:id", h.GetTournament)
		tournaments.PUT("/:id", h.UpdateTournament)
		tournaments.DELETE("/:id", h.DeleteTournament)
		tournaments.PATCH("/:id/status", h.UpdateStatus)
	}
}

type tournamentRequest struct {
	Name           string   `json:"name" binding:"required"`
	Organizer      string   `json:"organizer" binding:"required"`
	OrganizerEmail string   `json:"organizer_email" binding:"required,email"`
	Location       string   `json:"location" binding:"required"`
	Country        string   `json:"country" binding:"required"`
	Continent      string   `json:"continent" binding:"required"`
	Tier           int      `json:"tier" binding:"required,min=1"`
	StartDate      string   `json:"start_date" binding:"required"`
	EndDate        string   `json:"end_date" binding:"required"`
	ImageURL       string   `json:"image_url"`
	Description    string   `json:"description"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
}

func (r *tournamentRequest) toModel() (*model.Tournament, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid start_date, expected YYYY-MM-DD", err)
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid end_date, expected YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return nil, apperrors.BadRequest("end_date must not precede start_date", nil)
	}
	return &model.Tournament{
		Name:           r.Name,
		Organizer:      r.Organizer,
		OrganizerEmail: r.OrganizerEmail,
		Location:       r.Location,
		Country:        r.Country,
		Continent:      r.Continent,
		Tier:           r.Tier,
		StartDate:      start,
		EndDate:        end,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
		Lat:            r.Lat,
		Lng:            r.Lng,
	}, nil
}

func (h *Handler) ListApproved(c *gin.Context) {
	crit := handler.ParseCriteria(c)
	result, err := h.service.ListApproved(c.Request.Context(), crit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list tournaments"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
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

func (h *Handler) CreateTournament(c *gin.Context) {
	var req tournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	tournament, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.CreateTournament(c.Request.Context(), tournament); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(tournament))
}

func (h *Handler) GetTournament(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid tournament ID"))
		return
	}

	tournament, err := h.service.GetTournament(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tournament))
}

func (h *Handler) ListTournaments(c *gin.Context) {
	tournaments, err := h.service.ListTournaments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list tournaments"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tournaments))
}

func (h *Handler) UpdateTournament(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid tournament ID"))
		return
	}

	var req tournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	tournament, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	tournament.ID = id

	if err := h.service.UpdateTournament(c.Request.Context(), tournament); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tournament))
}

func (h *Handler) DeleteTournament(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid tournament ID"))
		return
	}

	if err := h.service.DeleteTournament(c.Request.Context(), id); err != nil {
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
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid tournament ID"))
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

	tournament, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(tournament))
}

func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
}
