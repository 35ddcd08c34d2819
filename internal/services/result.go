package services

import (
	"context"
	"fmt"
	"time"

	"election-monitor/internal/mockdata"
)

// NewResult is the create payload for election results
type NewResult struct {
	AgentID       string            `json:"agent_id"`
	PollingUnitID string            `json:"polling_unit_id"`
	VoteData      mockdata.VoteData `json:"vote_data"`
}

type mockResultService struct {
	store *mockdata.Store
}

func (s *mockResultService) List(_ context.Context, filter ResultFilter) ([]mockdata.ElectionResult, error) {
	matched := make([]mockdata.ElectionResult, 0)
	for _, result := range s.store.Results() {
		if filter.AgentID != "" && result.AgentID != filter.AgentID {
			continue
		}
		if filter.PollingUnitID != "" && result.PollingUnitID != filter.PollingUnitID {
			continue
		}
		if filter.Verified != nil && result.IsVerified != *filter.Verified {
			continue
		}
		if !inTimeRange(result.CreatedAt, filter.From, filter.To) {
			continue
		}
		matched = append(matched, result)
	}
	return matched, nil
}

func (s *mockResultService) GetByID(_ context.Context, id string) (*mockdata.ElectionResult, error) {
	for _, result := range s.store.Results() {
		if result.ID == id {
			return &result, nil
		}
	}
	return nil, notFound("result", id)
}

func (s *mockResultService) Create(_ context.Context, input NewResult) (*mockdata.ElectionResult, error) {
	if input.AgentID == "" || input.PollingUnitID == "" {
		return nil, invalidInput("result agent id and polling unit id are required")
	}

	vd := input.VoteData
	if vd.TotalVotes < 0 || vd.ValidVotes < 0 || vd.InvalidVotes < 0 {
		return nil, invalidInput("vote counts must be non-negative")
	}
	if vd.ValidVotes+vd.InvalidVotes != vd.TotalVotes {
		return nil, invalidInput("valid (%d) + invalid (%d) votes must equal total (%d)",
			vd.ValidVotes, vd.InvalidVotes, vd.TotalVotes)
	}

	candidateSum := 0
	for _, c := range vd.Candidates {
		if c.Votes < 0 {
			return nil, invalidInput("candidate votes must be non-negative")
		}
		candidateSum += c.Votes
	}
	if candidateSum > vd.ValidVotes {
		return nil, invalidInput("candidate votes (%d) exceed valid votes (%d)", candidateSum, vd.ValidVotes)
	}

	now := time.Now()
	result := mockdata.ElectionResult{
		ID:            fmt.Sprintf("rs_%d", now.UnixMilli()),
		AgentID:       input.AgentID,
		PollingUnitID: input.PollingUnitID,
		VoteData:      vd,
		IsVerified:    false,
		CreatedAt:     now,
	}

	s.store.InsertResult(result)
	return &result, nil
}

func (s *mockResultService) Verify(ctx context.Context, id, verifiedBy string) (*mockdata.ElectionResult, error) {
	result, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result.IsVerified = true
	result.VerifiedBy = verifiedBy
	result.VerifiedAt = &now
	s.store.ReplaceResult(*result)
	return result, nil
}

func (s *mockResultService) ExportCSV(ctx context.Context, filter ResultFilter) ([]byte, error) {
	results, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return resultsCSV(results)
}

type httpResultService struct {
	client clientAPI
}

func (s *httpResultService) List(ctx context.Context, filter ResultFilter) ([]mockdata.ElectionResult, error) {
	var out listEnvelope[mockdata.ElectionResult]
	if err := s.client.Get(ctx, "/results", filter.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *httpResultService) GetByID(ctx context.Context, id string) (*mockdata.ElectionResult, error) {
	var out itemEnvelope[mockdata.ElectionResult]
	if err := s.client.Get(ctx, "/results/"+id, nil, &out); err != nil {
		return nil, translateHTTPError(err, "result", id)
	}
	return &out.Data, nil
}

func (s *httpResultService) Create(ctx context.Context, input NewResult) (*mockdata.ElectionResult, error) {
	var out itemEnvelope[mockdata.ElectionResult]
	if err := s.client.Post(ctx, "/results", input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *httpResultService) Verify(ctx context.Context, id, verifiedBy string) (*mockdata.ElectionResult, error) {
	body := map[string]string{"verified_by": verifiedBy}
	var out itemEnvelope[mockdata.ElectionResult]
	if err := s.client.Post(ctx, "/results/"+id+"/verify", body, &out); err != nil {
		return nil, translateHTTPError(err, "result", id)
	}
	return &out.Data, nil
}

func (s *httpResultService) ExportCSV(ctx context.Context, filter ResultFilter) ([]byte, error) {
	return s.client.GetRaw(ctx, "/results/export", filter.Values())
}
