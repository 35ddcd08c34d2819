package api

import (
	"election-monitor/internal/api/handlers"
	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	cfg := services.GetConfig()

	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS(cfg.API.CORS.AllowedOrigins))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.RateLimit(cfg.API.RateLimit))

	// Health check (no auth required)
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/ping", handlers.HealthCheck(services))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		setupAuthRoutes(v1, services)
		setupAuthenticatedRoutes(v1, services)
		if cfg.Features.WebSocket {
			setupWebSocketRoutes(v1, services)
		}
	}
}

// setupAuthRoutes configures routes that don't require authentication
func setupAuthRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", handlers.Login(services))
		auth.POST("/refresh", handlers.RefreshToken(services))

		auth.POST("/logout", middlewares.AuthRequired(services), handlers.Logout(services))
	}
}

// setupAuthenticatedRoutes configures routes that require authentication.
// Mutations on agents, polling units and results are restricted to the
// admin and coordinator roles.
func setupAuthenticatedRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	manage := middlewares.RoleRequired("admin", "coordinator")

	authenticated := rg.Group("/")
	authenticated.Use(middlewares.AuthRequired(services))
	{
		// Agent endpoints
		agents := authenticated.Group("/agents")
		{
			agents.GET("", handlers.ListAgents(services))
			agents.GET("/:id", handlers.GetAgent(services))
			agents.GET("/:id/locations", handlers.GetAgentLocations(services))
			agents.POST("", manage, handlers.CreateAgent(services))
			agents.PATCH("/:id", manage, handlers.UpdateAgent(services))
			agents.POST("/:id/activate", manage, handlers.ActivateAgent(services))
			agents.POST("/:id/suspend", manage, handlers.SuspendAgent(services))
		}

		// Polling unit endpoints
		units := authenticated.Group("/polling-units")
		{
			units.GET("", handlers.ListPollingUnits(services))
			units.GET("/export", handlers.ExportPollingUnits(services))
			units.GET("/:id", handlers.GetPollingUnit(services))
			units.POST("", manage, handlers.CreatePollingUnit(services))
			units.PATCH("/:id", manage, handlers.UpdatePollingUnit(services))
		}

		// Incident report endpoints
		reports := authenticated.Group("/reports")
		{
			reports.GET("", handlers.ListReports(services))
			reports.GET("/:id", handlers.GetReport(services))
			reports.POST("", handlers.CreateReport(services))
			reports.POST("/:id/resolve", manage, handlers.ResolveReport(services))
		}

		// Election result endpoints
		results := authenticated.Group("/results")
		{
			results.GET("", handlers.ListResults(services))
			results.GET("/export", handlers.ExportResults(services))
			results.GET("/:id", handlers.GetResult(services))
			results.POST("", handlers.CreateResult(services))
			results.POST("/:id/verify", manage, handlers.VerifyResult(services))
		}

		// Notification endpoints
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", handlers.ListNotifications(services))
			notifications.POST("/:id/read", handlers.MarkNotificationRead(services))
		}

		// Audit endpoints
		audit := authenticated.Group("/audit")
		{
			audit.GET("/logs", handlers.GetAuditLogs(services))
		}

		// Dashboard endpoints
		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/stats", handlers.DashboardStats(services))
		}
	}
}

// setupWebSocketRoutes configures WebSocket endpoints
func setupWebSocketRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	ws := rg.Group("/ws")
	ws.Use(middlewares.WSAuthRequired(services))
	{
		ws.GET("/live", handlers.LiveUpdatesWebSocket(services))
	}
}
