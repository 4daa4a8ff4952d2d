package api

import (
	"net/http"

	"citizen_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler returns registry-wide aggregates
func StatisticsHandler(stats *service.StatisticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := stats.Summary(c.Request.Context())
		if err != nil {
			respondError(c, "statistics", err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
