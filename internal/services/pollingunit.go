package services

import (
	"context"
	"fmt"
	"time"

	"election-monitor/internal/mockdata"
)

// NewPollingUnit is the create payload for polling units
type NewPollingUnit struct {
	Code             string               `json:"code"`
	Name             string               `json:"name"`
	LGA              string               `json:"lga"`
	State            string               `json:"state"`
	Coordinates      mockdata.Coordinates `json:"coordinates"`
	Address          string               `json:"address,omitempty"`
	RegisteredVoters int                  `json:"registered_voters"`
}

// PollingUnitPatch carries updatable polling unit fields
type PollingUnitPatch struct {
	Name             *string               `json:"name,omitempty"`
	Address          *string               `json:"address,omitempty"`
	Coordinates      *mockdata.Coordinates `json:"coordinates,omitempty"`
	RegisteredVoters *int                  `json:"registered_voters,omitempty"`
	IsActive         *bool                 `json:"is_active,omitempty"`
}

type mockPollingUnitService struct {
	store *mockdata.Store
}

func (s *mockPollingUnitService) List(_ context.Context, filter PollingUnitFilter) ([]mockdata.PollingUnit, error) {
	matched := make([]mockdata.PollingUnit, 0)
	for _, unit := range s.store.PollingUnits() {
		if filter.State != "" && unit.State != filter.State {
			continue
		}
		if filter.LGA != "" && unit.LGA != filter.LGA {
			continue
		}
		if filter.ActiveOnly && !unit.IsActive {
			continue
		}
		if filter.MinVoters != nil && unit.RegisteredVoters < *filter.MinVoters {
			continue
		}
		if filter.MaxVoters != nil && unit.RegisteredVoters > *filter.MaxVoters {
			continue
		}
		if !matchSearch(filter.Search, unit.Name, unit.Code, unit.Address) {
			continue
		}
		matched = append(matched, unit)
	}
	return matched, nil
}

func (s *mockPollingUnitService) GetByID(_ context.Context, id string) (*mockdata.PollingUnit, error) {
	for _, unit := range s.store.PollingUnits() {
		if unit.ID == id {
			return &unit, nil
		}
	}
	return nil, notFound("polling unit", id)
}

func (s *mockPollingUnitService) Create(_ context.Context, input NewPollingUnit) (*mockdata.PollingUnit, error) {
	if input.Code == "" || input.Name == "" {
		return nil, invalidInput("polling unit code and name are required")
	}
	if input.RegisteredVoters < 0 {
		return nil, invalidInput("registered voters must be non-negative")
	}
	for _, existing := range s.store.PollingUnits() {
		if existing.Code == input.Code {
			return nil, invalidInput("polling unit code %q already exists", input.Code)
		}
	}

	now := time.Now()
	unit := mockdata.PollingUnit{
		ID:               fmt.Sprintf("pu_%d", now.UnixMilli()),
		Code:             input.Code,
		Name:             input.Name,
		LGA:              input.LGA,
		State:            input.State,
		Coordinates:      input.Coordinates,
		Address:          input.Address,
		RegisteredVoters: input.RegisteredVoters,
		// New units stay inactive until an admin switches them on
		IsActive:  false,
		CreatedAt: now,
	}

	s.store.InsertPollingUnit(unit)
	return &unit, nil
}

func (s *mockPollingUnitService) Update(ctx context.Context, id string, patch PollingUnitPatch) (*mockdata.PollingUnit, error) {
	unit, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		unit.Name = *patch.Name
	}
	if patch.Address != nil {
		unit.Address = *patch.Address
	}
	if patch.Coordinates != nil {
		unit.Coordinates = *patch.Coordinates
	}
	if patch.RegisteredVoters != nil {
		if *patch.RegisteredVoters < 0 {
			return nil, invalidInput("registered voters must be non-negative")
		}
		unit.RegisteredVoters = *patch.RegisteredVoters
	}
	if patch.IsActive != nil {
		unit.IsActive = *patch.IsActive
	}

	s.store.ReplacePollingUnit(*unit)
	return unit, nil
}

func (s *mockPollingUnitService) ExportCSV(ctx context.Context, filter PollingUnitFilter) ([]byte, error) {
	units, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pollingUnitsCSV(units)
}

type httpPollingUnitService struct {
	client clientAPI
}

func (s *httpPollingUnitService) List(ctx context.Context, filter PollingUnitFilter) ([]mockdata.PollingUnit, error) {
	var out listEnvelope[mockdata.PollingUnit]
	if err := s.client.Get(ctx, "/polling-units", filter.Values(), &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *httpPollingUnitService) GetByID(ctx context.Context, id string) (*mockdata.PollingUnit, error) {
	var out itemEnvelope[mockdata.PollingUnit]
	if err := s.client.Get(ctx, "/polling-units/"+id, nil, &out); err != nil {
		return nil, translateHTTPError(err, "polling unit", id)
	}
	return &out.Data, nil
}

func (s *httpPollingUnitService) Create(ctx context.Context, input NewPollingUnit) (*mockdata.PollingUnit, error) {
	var out itemEnvelope[mockdata.PollingUnit]
	if err := s.client.Post(ctx, "/polling-units", input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *httpPollingUnitService) Update(ctx context.Context, id string, patch PollingUnitPatch) (*mockdata.PollingUnit, error) {
	var out itemEnvelope[mockdata.PollingUnit]
	if err := s.client.Patch(ctx, "/polling-units/"+id, patch, &out); err != nil {
		return nil, translateHTTPError(err, "polling unit", id)
	}
	return &out.Data, nil
}

func (s *httpPollingUnitService) ExportCSV(ctx context.Context, filter PollingUnitFilter) ([]byte, error) {
	return s.client.GetRaw(ctx, "/polling-units/export", filter.Values())
}
