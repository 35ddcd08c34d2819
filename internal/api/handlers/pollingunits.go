package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/services"
)

func parsePollingUnitFilter(c *gin.Context) services.PollingUnitFilter {
	return services.PollingUnitFilter{
		State:      c.Query("state"),
		LGA:        c.Query("lga"),
		Search:     c.Query("search"),
		MinVoters:  queryIntPtr(c, "min_voters"),
		MaxVoters:  queryIntPtr(c, "max_voters"),
		ActiveOnly: queryBool(c, "active_only"),
	}
}

// ListPollingUnits returns polling units matching the query filters
func ListPollingUnits(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		units, err := services.PollingUnitService().List(c.Request.Context(), parsePollingUnitFilter(c))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, units)
	}
}

// GetPollingUnit returns a single polling unit by ID
func GetPollingUnit(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		unit, err := services.PollingUnitService().GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, unit)
	}
}

// CreatePollingUnit registers a new polling unit
func CreatePollingUnit(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.NewPollingUnit
		if !bindJSON(c, &input) {
			return
		}

		unit, err := svc.PollingUnitService().Create(c.Request.Context(), input)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "polling_unit.create", "polling_unit:"+unit.ID, unit.Code)
		respondOK(c, http.StatusCreated, unit)
	}
}

// UpdatePollingUnit applies a partial update to a polling unit
func UpdatePollingUnit(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch services.PollingUnitPatch
		if !bindJSON(c, &patch) {
			return
		}

		unit, err := svc.PollingUnitService().Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "polling_unit.update", "polling_unit:"+unit.ID, "")
		respondOK(c, http.StatusOK, unit)
	}
}

// ExportPollingUnits streams the filtered polling units as CSV
func ExportPollingUnits(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := services.PollingUnitService().ExportCSV(c.Request.Context(), parsePollingUnitFilter(c))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		filename := fmt.Sprintf("polling-units-%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv", data)
	}
}
