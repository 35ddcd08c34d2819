package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"election-monitor/internal/mockdata"
)

func resultFixtureStore() *mockdata.Store {
	store := mockdata.NewEmptyStore()

	store.InsertResult(mockdata.ElectionResult{
		ID: "rs_001", AgentID: "ag_001", PollingUnitID: "pu_001",
		VoteData: mockdata.VoteData{
			TotalVotes: 100, ValidVotes: 95, InvalidVotes: 5,
			Candidates: []mockdata.CandidateVotes{
				{Name: "Adaeze Okafor", Party: "APC", Votes: 60},
				{Name: "Ibrahim Bello", Party: "PDP", Votes: 35},
			},
		},
		IsVerified: true,
		CreatedAt:  time.Date(2027, 2, 25, 10, 0, 0, 0, time.UTC),
	})
	store.InsertResult(mockdata.ElectionResult{
		ID: "rs_002", AgentID: "ag_002", PollingUnitID: "pu_002",
		VoteData:  mockdata.VoteData{TotalVotes: 50, ValidVotes: 50},
		CreatedAt: time.Date(2027, 2, 25, 14, 0, 0, 0, time.UTC),
	})

	return store
}

func TestResultListFilters(t *testing.T) {
	svc := &mockResultService{store: resultFixtureStore()}
	ctx := context.Background()

	results, err := svc.List(ctx, ResultFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	verified := true
	results, err = svc.List(ctx, ResultFilter{Verified: &verified})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rs_001", results[0].ID)

	unverified := false
	results, err = svc.List(ctx, ResultFilter{Verified: &unverified})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rs_002", results[0].ID)

	results, err = svc.List(ctx, ResultFilter{PollingUnitID: "pu_001"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rs_001", results[0].ID)
}

func TestResultCreate(t *testing.T) {
	svc := &mockResultService{store: resultFixtureStore()}

	result, err := svc.Create(context.Background(), NewResult{
		AgentID:       "ag_003",
		PollingUnitID: "pu_003",
		VoteData: mockdata.VoteData{
			TotalVotes: 200, ValidVotes: 190, InvalidVotes: 10,
			Candidates: []mockdata.CandidateVotes{
				{Name: "Ngozi Eze", Party: "LP", Votes: 190},
			},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ID, "rs_"))
	assert.False(t, result.IsVerified, "new results start unverified")
	assert.Nil(t, result.VerifiedAt)
}

func TestResultCreateVoteArithmetic(t *testing.T) {
	svc := &mockResultService{store: resultFixtureStore()}
	ctx := context.Background()

	// valid + invalid must equal total
	_, err := svc.Create(ctx, NewResult{
		AgentID: "ag_001", PollingUnitID: "pu_001",
		VoteData: mockdata.VoteData{TotalVotes: 100, ValidVotes: 90, InvalidVotes: 5},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// candidate sum may not exceed valid votes
	_, err = svc.Create(ctx, NewResult{
		AgentID: "ag_001", PollingUnitID: "pu_001",
		VoteData: mockdata.VoteData{
			TotalVotes: 100, ValidVotes: 95, InvalidVotes: 5,
			Candidates: []mockdata.CandidateVotes{{Name: "X", Party: "APC", Votes: 96}},
		},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// negative counts rejected
	_, err = svc.Create(ctx, NewResult{
		AgentID: "ag_001", PollingUnitID: "pu_001",
		VoteData: mockdata.VoteData{TotalVotes: 10, ValidVotes: 15, InvalidVotes: -5},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// missing identifiers rejected
	_, err = svc.Create(ctx, NewResult{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResultVerify(t *testing.T) {
	svc := &mockResultService{store: resultFixtureStore()}

	result, err := svc.Verify(context.Background(), "rs_002", "usr_002")
	require.NoError(t, err)

	assert.True(t, result.IsVerified)
	assert.Equal(t, "usr_002", result.VerifiedBy)
	require.NotNil(t, result.VerifiedAt)
	assert.WithinDuration(t, time.Now(), *result.VerifiedAt, 5*time.Second)

	// Verification persists
	got, err := svc.GetByID(context.Background(), "rs_002")
	require.NoError(t, err)
	assert.True(t, got.IsVerified)

	_, err = svc.Verify(context.Background(), "rs_404", "usr_002")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultExportCSV(t *testing.T) {
	svc := &mockResultService{store: resultFixtureStore()}

	data, err := svc.ExportCSV(context.Background(), ResultFilter{PollingUnitID: "pu_001"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one row per candidate")
	assert.Contains(t, lines[0], "candidate_votes")
	assert.Contains(t, string(data), "APC")
	assert.NotContains(t, string(data), "rs_002")
}
