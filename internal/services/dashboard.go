package services

import (
	"context"

	"election-monitor/internal/mockdata"
)

// DashboardStats is the aggregate snapshot the dashboard landing page
// renders.
type DashboardStats struct {
	Agents struct {
		Total    int            `json:"total"`
		Online   int            `json:"online"`
		ByStatus map[string]int `json:"by_status"`
	} `json:"agents"`

	PollingUnits struct {
		Total            int `json:"total"`
		Active           int `json:"active"`
		RegisteredVoters int `json:"registered_voters"`
	} `json:"polling_units"`

	Reports struct {
		Total      int            `json:"total"`
		Pending    int            `json:"pending"`
		BySeverity map[string]int `json:"by_severity"`
		ByCategory map[string]int `json:"by_category"`
	} `json:"reports"`

	Results struct {
		Total      int `json:"total"`
		Verified   int `json:"verified"`
		TotalVotes int `json:"total_votes"`
	} `json:"results"`
}

type mockDashboardService struct {
	store *mockdata.Store
}

func (s *mockDashboardService) Stats(_ context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	stats.Agents.ByStatus = make(map[string]int)
	stats.Reports.BySeverity = make(map[string]int)
	stats.Reports.ByCategory = make(map[string]int)

	for _, agent := range s.store.Agents() {
		stats.Agents.Total++
		stats.Agents.ByStatus[agent.Status]++
		if agent.IsOnline {
			stats.Agents.Online++
		}
	}

	for _, unit := range s.store.PollingUnits() {
		stats.PollingUnits.Total++
		stats.PollingUnits.RegisteredVoters += unit.RegisteredVoters
		if unit.IsActive {
			stats.PollingUnits.Active++
		}
	}

	for _, report := range s.store.Reports() {
		stats.Reports.Total++
		stats.Reports.BySeverity[report.Severity]++
		stats.Reports.ByCategory[report.Category]++
		if report.Status == mockdata.ReportPending {
			stats.Reports.Pending++
		}
	}

	for _, result := range s.store.Results() {
		stats.Results.Total++
		stats.Results.TotalVotes += result.VoteData.TotalVotes
		if result.IsVerified {
			stats.Results.Verified++
		}
	}

	return stats, nil
}

type httpDashboardService struct {
	client clientAPI
}

func (s *httpDashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var out itemEnvelope[DashboardStats]
	if err := s.client.Get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
