package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/services"
)

func parseReportFilter(c *gin.Context) services.ReportFilter {
	return services.ReportFilter{
		Category:      c.Query("category"),
		Severity:      c.Query("severity"),
		Status:        c.Query("status"),
		Search:        c.Query("search"),
		AgentID:       c.Query("agent_id"),
		PollingUnitID: c.Query("polling_unit_id"),
		From:          queryTime(c, "from"),
		To:            queryTime(c, "to"),
	}
}

// ListReports returns incident reports matching the query filters
func ListReports(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := services.ReportService().List(c.Request.Context(), parseReportFilter(c))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, reports)
	}
}

// GetReport returns a single incident report by ID
func GetReport(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := services.ReportService().GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, report)
	}
}

// CreateReport files a new incident report
func CreateReport(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.NewReport
		if !bindJSON(c, &input) {
			return
		}

		report, err := svc.ReportService().Create(c.Request.Context(), input)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "report.create", "report:"+report.ID, report.Title)
		respondOK(c, http.StatusCreated, report)
	}
}

// ResolveReport marks an incident report as resolved
func ResolveReport(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.ReportService().Resolve(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "report.resolve", "report:"+report.ID, "")
		respondOK(c, http.StatusOK, report)
	}
}
