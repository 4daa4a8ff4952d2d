package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"citizen_registry/internal/middleware" // Request id lookup
	"citizen_registry/internal/service"    // Service errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// retryAfterSeconds is advertised when the store is saturated
const retryAfterSeconds = "5"

// respondError maps a service error onto its HTTP status and client message.
// Unknown errors are logged and answered with a generic 500.
func respondError(c *gin.Context, op string, err error) {
	var dup *service.DuplicateError
	var invalid *service.ValidationError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, gin.H{"error": dup.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.Is(err, service.ErrInvalidPageParameters):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Citizen not found"})
	case errors.Is(err, service.ErrUnavailable):
		logrus.WithFields(logrus.Fields{
			"op":         op,
			"request_id": c.GetString(middleware.RequestIDHeader),
			"error":      err.Error(),
		}).Warn("Store unavailable")
		c.Header("Retry-After", retryAfterSeconds)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		logrus.WithFields(logrus.Fields{
			"op":         op,
			"request_id": c.GetString(middleware.RequestIDHeader),
			"error":      err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
