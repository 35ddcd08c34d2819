package services

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"election-monitor/internal/httpclient"
	"election-monitor/internal/mockdata"
	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

func TestNewRegistrySelectsBackendOnce(t *testing.T) {
	store := mockdata.NewEmptyStore()
	log := logger.NewLogger(logger.Options{Level: "error"})

	proto := &config.Config{Mode: config.ModePrototype}
	registry := NewRegistry(proto, store, nil, log)

	assert.IsType(t, &mockAgentService{}, registry.Agents)
	assert.IsType(t, &mockPollingUnitService{}, registry.PollingUnits)
	assert.IsType(t, &mockDashboardService{}, registry.Dashboard)

	live := &config.Config{Mode: config.ModeDevelopment}
	client := httpclient.NewClient(config.ClientConfig{MaxAttempts: 1}, "http://localhost:4000/v1", nil, log)
	registry = NewRegistry(live, store, client, log)

	assert.IsType(t, &httpAgentService{}, registry.Agents)
	assert.IsType(t, &httpResultService{}, registry.Results)
	assert.IsType(t, &httpAuditService{}, registry.Audit)
}

func TestDashboardStatsAggregates(t *testing.T) {
	store := mockdata.NewEmptyStore()

	store.InsertAgent(mockdata.Agent{ID: "ag_001", Status: mockdata.AgentActive, IsOnline: true})
	store.InsertAgent(mockdata.Agent{ID: "ag_002", Status: mockdata.AgentInactive})
	store.InsertPollingUnit(mockdata.PollingUnit{ID: "pu_001", RegisteredVoters: 800, IsActive: true})
	store.InsertPollingUnit(mockdata.PollingUnit{ID: "pu_002", RegisteredVoters: 400})
	store.InsertReport(mockdata.Report{ID: "rp_001", Status: mockdata.ReportPending, Severity: mockdata.SeverityHigh, Category: mockdata.CategoryViolence})
	store.InsertResult(mockdata.ElectionResult{ID: "rs_001", IsVerified: true, VoteData: mockdata.VoteData{TotalVotes: 100}})
	store.InsertResult(mockdata.ElectionResult{ID: "rs_002", VoteData: mockdata.VoteData{TotalVotes: 50}})

	svc := &mockDashboardService{store: store}
	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Agents.Total)
	assert.Equal(t, 1, stats.Agents.Online)
	assert.Equal(t, 1, stats.Agents.ByStatus[mockdata.AgentActive])
	assert.Equal(t, 2, stats.PollingUnits.Total)
	assert.Equal(t, 1, stats.PollingUnits.Active)
	assert.Equal(t, 1200, stats.PollingUnits.RegisteredVoters)
	assert.Equal(t, 1, stats.Reports.Pending)
	assert.Equal(t, 1, stats.Reports.BySeverity[mockdata.SeverityHigh])
	assert.Equal(t, 2, stats.Results.Total)
	assert.Equal(t, 1, stats.Results.Verified)
	assert.Equal(t, 150, stats.Results.TotalVotes)
}

// fakeClient implements clientAPI with canned responses
type fakeClient struct {
	getErr   error
	lastPath string
	payload  func(out interface{})
}

func (f *fakeClient) Get(_ context.Context, path string, _ url.Values, out interface{}) error {
	f.lastPath = path
	if f.getErr != nil {
		return f.getErr
	}
	if f.payload != nil {
		f.payload(out)
	}
	return nil
}

func (f *fakeClient) GetRaw(_ context.Context, path string, _ url.Values) ([]byte, error) {
	f.lastPath = path
	return []byte("id,code\n"), f.getErr
}

func (f *fakeClient) Post(_ context.Context, path string, _, out interface{}) error {
	f.lastPath = path
	if f.getErr != nil {
		return f.getErr
	}
	if f.payload != nil {
		f.payload(out)
	}
	return nil
}

func (f *fakeClient) Put(_ context.Context, path string, _, out interface{}) error {
	f.lastPath = path
	return f.getErr
}

func (f *fakeClient) Patch(_ context.Context, path string, _, out interface{}) error {
	f.lastPath = path
	return f.getErr
}

func (f *fakeClient) Delete(_ context.Context, path string) error {
	f.lastPath = path
	return f.getErr
}

func TestHTTPServiceTranslatesNotFound(t *testing.T) {
	fake := &fakeClient{getErr: &httpclient.APIError{
		Category:   httpclient.CategoryNotFound,
		StatusCode: http.StatusNotFound,
	}}
	svc := &httpAgentService{client: fake}

	_, err := svc.GetByID(context.Background(), "ag_404")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "/agents/ag_404", fake.lastPath)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "agent", nf.Resource)
}

func TestHTTPServicePassesThroughOtherErrors(t *testing.T) {
	fake := &fakeClient{getErr: &httpclient.APIError{
		Category:   httpclient.CategoryServer,
		StatusCode: http.StatusInternalServerError,
	}}
	svc := &httpReportService{client: fake}

	_, err := svc.GetByID(context.Background(), "rp_001")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestHTTPServiceDecodesEnvelope(t *testing.T) {
	fake := &fakeClient{payload: func(out interface{}) {
		env := out.(*listEnvelope[mockdata.Agent])
		env.Success = true
		env.Data = []mockdata.Agent{{ID: "ag_001", Name: "Adaeze Okafor"}}
	}}
	svc := &httpAgentService{client: fake}

	agents, err := svc.List(context.Background(), AgentFilter{Status: mockdata.AgentActive})
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "ag_001", agents[0].ID)
	assert.Equal(t, "/agents", fake.lastPath)
}
