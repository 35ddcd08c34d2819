package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/api/models"
	"election-monitor/internal/services"
)

func parseResultFilter(c *gin.Context) services.ResultFilter {
	return services.ResultFilter{
		AgentID:       c.Query("agent_id"),
		PollingUnitID: c.Query("polling_unit_id"),
		Verified:      queryBoolPtr(c, "verified"),
		From:          queryTime(c, "from"),
		To:            queryTime(c, "to"),
	}
}

// ListResults returns election results matching the query filters
func ListResults(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := services.ResultService().List(c.Request.Context(), parseResultFilter(c))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, results)
	}
}

// GetResult returns a single election result by ID
func GetResult(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := services.ResultService().GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, result)
	}
}

// CreateResult submits a new polling unit result
func CreateResult(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.NewResult
		if !bindJSON(c, &input) {
			return
		}

		result, err := svc.ResultService().Create(c.Request.Context(), input)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "result.create", "result:"+result.ID, result.PollingUnitID)
		respondOK(c, http.StatusCreated, result)
	}
}

// VerifyResult marks a result as verified. The verifier defaults to the
// authenticated user when the body names nobody.
func VerifyResult(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.VerifyResultRequest
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidRequest, "Invalid request body", err.Error())
			return
		}

		verifiedBy := req.VerifiedBy
		if verifiedBy == "" {
			verifiedBy = c.GetString("user_id")
		}

		result, err := svc.ResultService().Verify(c.Request.Context(), c.Param("id"), verifiedBy)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "result.verify", "result:"+result.ID, "")
		respondOK(c, http.StatusOK, result)
	}
}

// ExportResults streams the filtered results as CSV
func ExportResults(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := services.ResultService().ExportCSV(c.Request.Context(), parseResultFilter(c))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		filename := fmt.Sprintf("results-%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv", data)
	}
}
