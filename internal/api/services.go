package api

import (
	"time"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/auth"
	"election-monitor/internal/mockdata"
	"election-monitor/internal/services"
	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	Config   *config.Config
	Logger   *logger.Logger
	Store    *mockdata.Store
	Registry *services.Registry
	Auth     *auth.Service

	// simulator is nil outside prototype mode
	simulator *mockdata.Simulator
	startTime time.Time
}

// NewServices creates a new services container. The simulator may be nil;
// it is only started in prototype mode.
func NewServices(
	cfg *config.Config,
	log *logger.Logger,
	store *mockdata.Store,
	registry *services.Registry,
	authService *auth.Service,
	simulator *mockdata.Simulator,
) *Services {
	return &Services{
		Config:    cfg,
		Logger:    log,
		Store:     store,
		Registry:  registry,
		Auth:      authService,
		simulator: simulator,
		startTime: time.Now(),
	}
}

// Start starts all background services
func (s *Services) Start() error {
	s.Logger.Info("Starting API services...")

	if s.simulator != nil {
		if err := s.simulator.Start(); err != nil {
			s.Logger.Error("Failed to start location simulator", "error", err.Error())
			return err
		}
	}

	s.Logger.Info("All API services started successfully")
	return nil
}

// Stop stops all background services
func (s *Services) Stop() {
	s.Logger.Info("Stopping API services...")

	if s.simulator != nil {
		s.simulator.Stop()
	}

	s.Logger.Info("All API services stopped")
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) AuthService() interfaces.AuthServiceInterface {
	return s.Auth
}

func (s *Services) AgentService() services.AgentService {
	return s.Registry.Agents
}

func (s *Services) PollingUnitService() services.PollingUnitService {
	return s.Registry.PollingUnits
}

func (s *Services) ReportService() services.ReportService {
	return s.Registry.Reports
}

func (s *Services) ResultService() services.ResultService {
	return s.Registry.Results
}

func (s *Services) NotificationService() services.NotificationService {
	return s.Registry.Notifications
}

func (s *Services) AuditService() services.AuditService {
	return s.Registry.Audit
}

func (s *Services) DashboardService() services.DashboardService {
	return s.Registry.Dashboard
}

func (s *Services) Simulator() *mockdata.Simulator {
	return s.simulator
}

// Uptime returns how long the container has been running
func (s *Services) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// IsHealthy checks if all critical services are healthy
func (s *Services) IsHealthy() bool {
	if s.Config.IsPrototype() {
		if s.Store == nil {
			return false
		}
		if s.simulator != nil && !s.simulator.IsRunning() {
			s.Logger.Warning("Location simulator is not running")
			return false
		}
	}

	return true
}

// GetStats returns current service statistics
func (s *Services) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"mode":           s.Config.Mode,
		"uptime_seconds": int64(s.Uptime().Seconds()),
	}

	if s.simulator != nil {
		stats["simulator"] = map[string]interface{}{
			"running": s.simulator.IsRunning(),
		}
	}

	if s.Store != nil {
		stats["store"] = map[string]interface{}{
			"polling_units": len(s.Store.PollingUnits()),
			"agents":        len(s.Store.Agents()),
			"reports":       len(s.Store.Reports()),
			"results":       len(s.Store.Results()),
			"locations":     len(s.Store.Locations()),
		}
	}

	return stats
}
