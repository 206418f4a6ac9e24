package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports process liveness. It does not touch the database or
// Redis, so a degraded dependency never fails the probe.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "healthy"}))
}
