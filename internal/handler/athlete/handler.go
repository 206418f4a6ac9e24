package athlete

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/pickleball-api/internal/handler"
	"github.com/courtside/pickleball-api/internal/model"
	"github.com/courtside/pickleball-api/internal/repository"
	athleteService "github.com/courtside/pickleball-api/internal/service/athlete"
	apperrors "github.com/courtside/pickleball-api/pkg/errors"
)

type Handler struct {
	service athleteService.AthleteServicer
}

func NewHandler(service athleteService.AthleteServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public registry views. The registry is read-only
// for visitors; writes go through the admin routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	athletes := r.Group("/athletes")
	{
		athletes.GET("", h.ListAthletes)
		athletes.GET("/:id", h.GetAthlete)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	athletes := r.Group("/athletes")
	{
		athletes.POST("", h.CreateAthlete)
		athletes.PUT("/:id", h.UpdateAthlete)
		athletes.DELETE("/:id", h.DeleteAthlete)
	}
}

type athleteRequest struct {
	Name      string   `json:"name" binding:"required"`
	Age       int      `json:"age" binding:"required,min=10"`
	Gender    string   `json:"gender" binding:"required"`
	Country   string   `json:"country" binding:"required"`
	HeightCm  int      `json:"height_cm" binding:"required,min=1"`
	Points    int      `json:"points" binding:"min=0"`
	TitlesWon []string `json:"titles_won"`
	ImageURL  string   `json:"image_url" binding:"required"`
}

func (r *athleteRequest) toModel() *model.Athlete {
	return &model.Athlete{
		Name:      r.Name,
		Age:       r.Age,
		Gender:    model.Gender(r.Gender),
		Country:   r.Country,
		HeightCm:  r.HeightCm,
		Points:    r.Points,
		TitlesWon: r.TitlesWon,
		ImageURL:  r.ImageURL,
	}
}

// ListAthletes serves the registry, optionally narrowed by gender and
// country and ranked by points when sort=points is requested.
func (h *Handler) ListAthletes(c *gin.Context) {
	f := repository.AthleteFilter{
		Gender:       model.Gender(c.Query("gender")),
		Country:      c.Query("country"),
		SortByPoints: c.Query("sort") == "points",
	}

	athletes, err := h.service.ListAthletes(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to list athletes"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(athletes))
}

func (h *Handler) GetAthlete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid athlete ID"))
		return
	}

	athlete, err := h.service.GetAthlete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(athlete))
}

func (h *Handler) CreateAthlete(c *gin.Context) {
	var req athleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	athlete := req.toModel()
	if err := h.service.CreateAthlete(c.Request.Context(), athlete); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(athlete))
}

func (h *Handler) UpdateAthlete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid athlete ID"))
		return
	}

	var req athleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	athlete := req.toModel()
	athlete.ID = id
	if err := h.service.UpdateAthlete(c.Request.Context(), athlete); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(athlete))
}

func (h *Handler) DeleteAthlete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid athlete ID"))
		return
	}

	if err := h.service.DeleteAthlete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, handler.NewErrorResponse(err.Error()))
}
