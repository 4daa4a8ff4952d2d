package api

import (
	"net/http"
	"time"

	"citizen_registry/internal/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness without touching the store
func HealthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"service":     cfg.ServiceName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.AppEnv,
		})
	}
}
