package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
)

// DashboardStats returns the aggregate snapshot the dashboard renders
func DashboardStats(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := services.DashboardService().Stats(c.Request.Context())
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, stats)
	}
}
