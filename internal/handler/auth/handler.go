package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtside/pickleball-api/internal/handler"
	authService "github.com/courtside/pickleball-api/internal/service/auth"
	apperrors "github.com/courtside/pickleball-api/pkg/errors"
)

type Handler struct {
	service authService.AuthServicer
}

func NewHandler(service authService.AuthServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			c.JSON(appErr.StatusCode(), handler.NewErrorResponse(appErr.Message))
			return
		}
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid credentials"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(loginResponse{
		Token: token,
		Email: user.Email,
		Role:  user.Role,
	}))
}
