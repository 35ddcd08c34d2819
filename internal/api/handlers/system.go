package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/api/models"
)

const version = "1.0.0"

var startTime = time.Now()

// HealthCheck reports overall service health
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := services.GetConfig()

		checks := map[string]models.HealthCheck{
			"services": {Status: "ok"},
		}

		status := "healthy"
		httpStatus := http.StatusOK

		if !services.IsHealthy() {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			checks["services"] = models.HealthCheck{
				Status:  "failing",
				Message: "one or more background services are down",
			}
		}

		if sim := services.Simulator(); sim != nil {
			simCheck := models.HealthCheck{Status: "ok"}
			if !sim.IsRunning() {
				simCheck = models.HealthCheck{Status: "stopped", Message: "location simulator not running"}
			}
			checks["simulator"] = simCheck
		}

		c.JSON(httpStatus, models.HealthCheckResponse{
			Status:    status,
			Timestamp: time.Now().Unix(),
			Version:   version,
			Mode:      cfg.Mode,
			Uptime:    int64(time.Since(startTime).Seconds()),
			Checks:    checks,
		})
	}
}
