package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/services"
)

func parseAgentFilter(c *gin.Context) services.AgentFilter {
	return services.AgentFilter{
		Status:        c.Query("status"),
		Search:        c.Query("search"),
		PollingUnitID: c.Query("polling_unit_id"),
		OnlineOnly:    queryBool(c, "online_only"),
		CreatedFrom:   queryTime(c, "created_from"),
		CreatedTo:     queryTime(c, "created_to"),
	}
}

// ListAgents returns agents matching the query filters
func ListAgents(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		agents, err := services.AgentService().List(c.Request.Context(), parseAgentFilter(c))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, agents)
	}
}

// GetAgent returns a single agent by ID
func GetAgent(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		agent, err := services.AgentService().GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, agent)
	}
}

// GetAgentLocations returns an agent's location history
func GetAgentLocations(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := services.AgentService().Locations(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, services, err)
			return
		}

		respondOK(c, http.StatusOK, locations)
	}
}

// CreateAgent registers a new field agent
func CreateAgent(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.NewAgent
		if !bindJSON(c, &input) {
			return
		}

		agent, err := svc.AgentService().Create(c.Request.Context(), input)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "agent.create", "agent:"+agent.ID, agent.Name)
		respondOK(c, http.StatusCreated, agent)
	}
}

// UpdateAgent applies a partial update to an agent
func UpdateAgent(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch services.AgentPatch
		if !bindJSON(c, &patch) {
			return
		}

		agent, err := svc.AgentService().Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "agent.update", "agent:"+agent.ID, "")
		respondOK(c, http.StatusOK, agent)
	}
}

// ActivateAgent transitions an agent to active status
func ActivateAgent(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		agent, err := svc.AgentService().Activate(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "agent.activate", "agent:"+agent.ID, "")
		respondOK(c, http.StatusOK, agent)
	}
}

// SuspendAgent transitions an agent to suspended status
func SuspendAgent(svc interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		agent, err := svc.AgentService().Suspend(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, svc, err)
			return
		}

		recordAudit(c, svc, "agent.suspend", "agent:"+agent.ID, "")
		respondOK(c, http.StatusOK, agent)
	}
}
