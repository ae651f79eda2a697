package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sefinote/sefinote/internal/auth"
	"github.com/sefinote/sefinote/internal/models"
	"github.com/sefinote/sefinote/internal/service"
)

// Version is set at startup from the build version.
var Version = "dev"

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// getUser returns the authenticated user stored by the auth middleware.
func getUser(c *gin.Context) *models.User {
	return c.MustGet(auth.UserContextKey).(*models.User)
}

// getUserID returns the authenticated user's ID.
func getUserID(c *gin.Context) uuid.UUID {
	return getUser(c).ID
}

// handleServiceError maps service-layer errors to HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		// Missing rows and foreign-owned rows share one message.
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		return
	}
	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflictErr.Message})
		return
	}
	slog.Error("unhandled service error", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// HealthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
}
