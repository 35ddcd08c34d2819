package services

import (
	"context"
	"fmt"
	"time"

	"election-monitor/internal/mockdata"
)

// NewReport is the create payload for incident reports
type NewReport struct {
	AgentID     string               `json:"agent_id"`
	Category    string               `json:"category"`
	Severity    string               `json:"severity"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Coordinates mockdata.Coordinates `json:"coordinates"`
	Attachments []string             `json:"attachments,omitempty"`
}

type mockReportService struct {
	store *mockdata.Store
}

func (s *mockReportService) List(_ context.Context, filter ReportFilter) ([]mockdata.Report, error) {
	matched := make([]mockdata.Report, 0)
	for _, report := range s.store.Reports() {
		if filter.Category != "" && report.Category != filter.Category {
			continue
		}
		if filter.Severity != "" && report.Severity != filter.Severity {
			continue
		}
		if filter.Status != "" && report.Status != filter.Status {
			continue
		}
		if filter.AgentID != "" && report.AgentID != filter.AgentID {
			continue
		}
		if filter.PollingUnitID != "" && report.PollingUnitID != filter.PollingUnitID {
			continue
		}
		if !matchSearch(filter.Search, report.Title, report.Description) {
			continue
		}
		if !inTimeRange(report.CreatedAt, filter.From, filter.To) {
			continue
		}
		matched = append(matched, report)
	}
	return matched, nil
}

func (s *mockReportService) GetByID(_ context.Context, id string) (*mockdata.Report, error) {
	for _, report := range s.store.Reports() {
		if report.ID == id {
			return &report, nil
		}
	}
	return nil, notFound("report", id)
}

func (s *mockReportService) Create(_ context.Context, input NewReport) (*mockdata.Report, error) {
	if input.AgentID == "" || input.Title == "" {
		return nil, invalidInput("report agent id and title are required")
	}

	switch input.Category {
	case mockdata.CategoryViolence, mockdata.CategoryLogistics, mockdata.CategorySuppression, mockdata.CategoryTechnical:
	default:
		return nil, invalidInput("unknown report category %q", input.Category)
	}

	switch input.Severity {
	case mockdata.SeverityLow, mockdata.SeverityMedium, mockdata.SeverityHigh, mockdata.SeverityCritical:
	default:
		return nil, invalidInput("unknown report severity %q", input.Severity)
	}

	// The report inherits the filing agent's polling unit
	pollingUnitID := ""
	for _, agent := range s.store.Agents() {
		if agent.ID == input.AgentID {
			pollingUnitID = agent.PollingUnitID
			break
		}
	}

	now := time.Now()
	report := mockdata.Report{
		ID:            fmt.Sprintf("rp_%d", now.UnixMilli()),
		AgentID:       input.AgentID,
		PollingUnitID: pollingUnitID,
		Category:      input.Category,
		Severity:      input.Severity,
		Status:        mockdata.ReportPending,
		Title:         input.Title,
		Description:   input.Description,
		Coordinates:   input.Coordinates,
		Attachments:   input.Attachments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.store.InsertReport(report)
	return &report, nil
}

func (s *mockReportService) Resolve(ctx context.Context, id string) (*mockdata.Report, error) {
	report, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report.Status = mockdata.ReportResolved
	report.UpdatedAt = time.Now()
	s.store.ReplaceReport(*report)
	return report, nil
}

type httpReportService struct {
	client clientAPI
}

func (s *httpReportService) List(ctx context.Context, filter ReportFilter) ([]mockdata.Report, error) {
	var out listEnvelope[mockdata.Report]
	if err := s.client.Get(ctx, "/reports", filter.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *httpReportService) GetByID(ctx context.Context, id string) (*mockdata.Report, error) {
	var out itemEnvelope[mockdata.Report]
	if err := s.client.Get(ctx, "/reports/"+id, nil, &out); err != nil {
		return nil, translateHTTPError(err, "report", id)
	}
	return &out.Data, nil
}

func (s *httpReportService) Create(ctx context.Context, input NewReport) (*mockdata.Report, error) {
	var out itemEnvelope[mockdata.Report]
	if err := s.client.Post(ctx, "/reports", input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *httpReportService) Resolve(ctx context.Context, id string) (*mockdata.Report, error) {
	var out itemEnvelope[mockdata.Report]
	if err := s.client.Post(ctx, "/reports/"+id+"/resolve", nil, &out); err != nil {
		return nil, translateHTTPError(err, "report", id)
	}
	return &out.Data, nil
}
