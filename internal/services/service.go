// Package services exposes one CRUD-shaped façade per entity. Every
// façade has two implementations behind the same interface: a mock one
// reading the in-memory store and a live one going through the shared
// HTTP client. The implementation is chosen once at construction from the
// configured mode, never per call.
package services

import (
	"context"

	"election-monitor/internal/httpclient"
	"election-monitor/internal/mockdata"
	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

// AgentService manages field agents
type AgentService interface {
	List(ctx context.Context, filter AgentFilter) ([]mockdata.Agent, error)
	GetByID(ctx context.Context, id string) (*mockdata.Agent, error)
	Create(ctx context.Context, input NewAgent) (*mockdata.Agent, error)
	Update(ctx context.Context, id string, patch AgentPatch) (*mockdata.Agent, error)
	Activate(ctx context.Context, id string) (*mockdata.Agent, error)
	Suspend(ctx context.Context, id string) (*mockdata.Agent, error)
	Locations(ctx context.Context, id string) ([]mockdata.AgentLocation, error)
}

// PollingUnitService manages polling units
type PollingUnitService interface {
	List(ctx context.Context, filter PollingUnitFilter) ([]mockdata.PollingUnit, error)
	GetByID(ctx context.Context, id string) (*mockdata.PollingUnit, error)
	Create(ctx context.Context, input NewPollingUnit) (*mockdata.PollingUnit, error)
	Update(ctx context.Context, id string, patch PollingUnitPatch) (*mockdata.PollingUnit, error)
	ExportCSV(ctx context.Context, filter PollingUnitFilter) ([]byte, error)
}

// ReportService manages incident reports
type ReportService interface {
	List(ctx context.Context, filter ReportFilter) ([]mockdata.Report, error)
	GetByID(ctx context.Context, id string) (*mockdata.Report, error)
	Create(ctx context.Context, input NewReport) (*mockdata.Report, error)
	Resolve(ctx context.Context, id string) (*mockdata.Report, error)
}

// ResultService manages election results
type ResultService interface {
	List(ctx context.Context, filter ResultFilter) ([]mockdata.ElectionResult, error)
	GetByID(ctx context.Context, id string) (*mockdata.ElectionResult, error)
	Create(ctx context.Context, input NewResult) (*mockdata.ElectionResult, error)
	Verify(ctx context.Context, id, verifiedBy string) (*mockdata.ElectionResult, error)
	ExportCSV(ctx context.Context, filter ResultFilter) ([]byte, error)
}

// NotificationService manages user notifications
type NotificationService interface {
	List(ctx context.Context, filter NotificationFilter) ([]mockdata.Notification, error)
	MarkRead(ctx context.Context, id string) (*mockdata.Notification, error)
}

// AuditService reads and appends the audit trail
type AuditService interface {
	List(ctx context.Context, filter AuditFilter) ([]mockdata.AuditLog, error)
	Record(ctx context.Context, entry mockdata.AuditLog) error
}

// DashboardService aggregates store-wide statistics
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

// Registry bundles one service per entity, all backed by the same mode
type Registry struct {
	Agents        AgentService
	PollingUnits  PollingUnitService
	Reports       ReportService
	Results       ResultService
	Notifications NotificationService
	Audit         AuditService
	Dashboard     DashboardService
}

// NewRegistry wires every façade to the mock store in prototype mode and
// to the HTTP client otherwise. The client may be nil in prototype mode.
func NewRegistry(cfg *config.Config, store *mockdata.Store, client *httpclient.Client, log *logger.Logger) *Registry {
	if cfg.IsPrototype() {
		return &Registry{
			Agents:        &mockAgentService{store: store},
			PollingUnits:  &mockPollingUnitService{store: store},
			Reports:       &mockReportService{store: store},
			Results:       &mockResultService{store: store},
			Notifications: &mockNotificationService{store: store},
			Audit:         &mockAuditService{store: store},
			Dashboard:     &mockDashboardService{store: store},
		}
	}

	return &Registry{
		Agents:        &httpAgentService{client: client},
		PollingUnits:  &httpPollingUnitService{client: client},
		Reports:       &httpReportService{client: client},
		Results:       &httpResultService{client: client},
		Notifications: &httpNotificationService{client: client},
		Audit:         &httpAuditService{client: client},
		Dashboard:     &httpDashboardService{client: client},
	}
}
