package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/services"
)

// GetAuditLogs returns the audit trail, newest first, paginated
func GetAuditLogs(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := services.AuditFilter{
			UserID: c.Query("user_id"),
			Action: c.Query("action"),
			From:   queryTime(c, "from"),
			To:     queryTime(c, "to"),
			Limit:  queryInt(c, "limit", 50),
			Offset: queryInt(c, "offset", 0),
		}

		logs, err := svc.AuditService().List(c.Request.Context(), filter)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		respondOK(c, http.StatusOK, logs)
	}
}
