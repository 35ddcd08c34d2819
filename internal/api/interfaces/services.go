package interfaces

import (
	"election-monitor/internal/mockdata"
	"election-monitor/internal/services"
	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

// Services defines the dependency surface API handlers draw from
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	AuthService() AuthServiceInterface

	AgentService() services.AgentService
	PollingUnitService() services.PollingUnitService
	ReportService() services.ReportService
	ResultService() services.ResultService
	NotificationService() services.NotificationService
	AuditService() services.AuditService
	DashboardService() services.DashboardService

	// Simulator returns nil outside prototype mode
	Simulator() *mockdata.Simulator

	IsHealthy() bool
	GetStats() map[string]interface{}
}
