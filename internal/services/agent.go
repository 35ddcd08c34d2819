package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"election-monitor/internal/mockdata"
)

// NewAgent is the create payload for agents
type NewAgent struct {
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	PollingUnitID string `json:"polling_unit_id,omitempty"`
}

// AgentPatch carries the fields an update may change; nil fields are left
// untouched.
type AgentPatch struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	PollingUnitID *string `json:"polling_unit_id,omitempty"`
	Status        *string `json:"status,omitempty"`
	IsVerified    *bool   `json:"is_verified,omitempty"`
}

type mockAgentService struct {
	store *mockdata.Store
}

func (s *mockAgentService) List(_ context.Context, filter AgentFilter) ([]mockdata.Agent, error) {
	matched := make([]mockdata.Agent, 0)
	for _, agent := range s.store.Agents() {
		if filter.Status != "" && agent.Status != filter.Status {
			continue
		}
		if filter.PollingUnitID != "" && agent.PollingUnitID != filter.PollingUnitID {
			continue
		}
		if filter.OnlineOnly && !agent.IsOnline {
			continue
		}
		if !matchSearch(filter.Search, agent.Name, agent.Email, agent.Phone) {
			continue
		}
		if !inTimeRange(agent.CreatedAt, filter.CreatedFrom, filter.CreatedTo) {
			continue
		}
		matched = append(matched, agent)
	}
	return matched, nil
}

func (s *mockAgentService) GetByID(_ context.Context, id string) (*mockdata.Agent, error) {
	for _, agent := range s.store.Agents() {
		if agent.ID == id {
			return &agent, nil
		}
	}
	return nil, notFound("agent", id)
}

func (s *mockAgentService) Create(_ context.Context, input NewAgent) (*mockdata.Agent, error) {
	if input.Name == "" || input.Email == "" {
		return nil, invalidInput("agent name and email are required")
	}

	now := time.Now()
	agent := mockdata.Agent{
		ID:            fmt.Sprintf("ag_%d", now.UnixMilli()),
		UserID:        input.UserID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PollingUnitID: input.PollingUnitID,
		Status:        mockdata.AgentPending,
		IsOnline:      false,
		LastSeen:      now,
		QRCode:        uuid.NewString(),
		IsVerified:    false,
		CreatedAt:     now,
	}

	s.store.InsertAgent(agent)
	return &agent, nil
}

func (s *mockAgentService) Update(ctx context.Context, id string, patch AgentPatch) (*mockdata.Agent, error) {
	agent, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		agent.Name = *patch.Name
	}
	if patch.Email != nil {
		agent.Email = *patch.Email
	}
	if patch.Phone != nil {
		agent.Phone = *patch.Phone
	}
	if patch.PollingUnitID != nil {
		agent.PollingUnitID = *patch.PollingUnitID
	}
	if patch.Status != nil {
		switch *patch.Status {
		case mockdata.AgentActive, mockdata.AgentInactive, mockdata.AgentSuspended, mockdata.AgentPending:
			agent.Status = *patch.Status
		default:
			return nil, invalidInput("unknown agent status %q", *patch.Status)
		}
	}
	if patch.IsVerified != nil {
		agent.IsVerified = *patch.IsVerified
	}

	s.store.ReplaceAgent(*agent)
	return agent, nil
}

func (s *mockAgentService) Activate(ctx context.Context, id string) (*mockdata.Agent, error) {
	status := mockdata.AgentActive
	return s.Update(ctx, id, AgentPatch{Status: &status})
}

func (s *mockAgentService) Suspend(ctx context.Context, id string) (*mockdata.Agent, error) {
	agent, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	agent.Status = mockdata.AgentSuspended
	agent.IsOnline = false
	s.store.ReplaceAgent(*agent)
	return agent, nil
}

func (s *mockAgentService) Locations(ctx context.Context, id string) ([]mockdata.AgentLocation, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	readings := make([]mockdata.AgentLocation, 0)
	for _, loc := range s.store.Locations() {
		if loc.AgentID == id {
			readings = append(readings, loc)
		}
	}
	return readings, nil
}

type httpAgentService struct {
	client clientAPI
}

func (s *httpAgentService) List(ctx context.Context, filter AgentFilter) ([]mockdata.Agent, error) {
	var out listEnvelope[mockdata.Agent]
	if err := s.client.Get(ctx, "/agents", filter.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *httpAgentService) GetByID(ctx context.Context, id string) (*mockdata.Agent, error) {
	var out itemEnvelope[mockdata.Agent]
	if err := s.client.Get(ctx, "/agents/"+id, nil, &out); err != nil {
		return nil, translateHTTPError(err, "agent", id)
	}
	return &out.Data, nil
}

func (s *httpAgentService) Create(ctx context.Context, input NewAgent) (*mockdata.Agent, error) {
	var out itemEnvelope[mockdata.Agent]
	if err := s.client.Post(ctx, "/agents", input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *httpAgentService) Update(ctx context.Context, id string, patch AgentPatch) (*mockdata.Agent, error) {
	var out itemEnvelope[mockdata.Agent]
	if err := s.client.Patch(ctx, "/agents/"+id, patch, &out); err != nil {
		return nil, translateHTTPError(err, "agent", id)
	}
	return &out.Data, nil
}

func (s *httpAgentService) Activate(ctx context.Context, id string) (*mockdata.Agent, error) {
	var out itemEnvelope[mockdata.Agent]
	if err := s.client.Post(ctx, "/agents/"+id+"/activate", nil, &out); err != nil {
		return nil, translateHTTPError(err, "agent", id)
	}
	return &out.Data, nil
}

func (s *httpAgentService) Suspend(ctx context.Context, id string) (*mockdata.Agent, error) {
	var out itemEnvelope[mockdata.Agent]
	if err := s.client.Post(ctx, "/agents/"+id+"/suspend", nil, &out); err != nil {
		return nil, translateHTTPError(err, "agent", id)
	}
	return &out.Data, nil
}

func (s *httpAgentService) Locations(ctx context.Context, id string) ([]mockdata.AgentLocation, error) {
	var out listEnvelope[mockdata.AgentLocation]
	if err := s.client.Get(ctx, "/agents/"+id+"/locations", nil, &out); err != nil {
		return nil, translateHTTPError(err, "agent", id)
	}
	return out.Data, nil
}
