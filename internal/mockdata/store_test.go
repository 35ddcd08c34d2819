package mockdata

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(seed int64) *Store {
	return NewStore(rand.New(rand.NewSource(seed)), Sizing{
		UnitsPerLGA:       2,
		LocationsPerAgent: 3,
		ReportsPerAgent:   1,
		Notifications:     10,
		AuditEntries:      10,
	}, 200, "hash")
}

func TestStoreGeneration(t *testing.T) {
	s := testStore(1)

	assert.NotEmpty(t, s.PollingUnits())
	assert.NotEmpty(t, s.Users())
	assert.NotEmpty(t, s.Agents())
	assert.Len(t, s.Notifications(), 10)
	assert.Len(t, s.AuditLogs(), 10)
}

func TestStoreCopyOut(t *testing.T) {
	s := testStore(2)

	units := s.PollingUnits()
	original := units[0].Name
	units[0].Name = "mutated"

	// Caller mutations must not leak back into the store
	assert.Equal(t, original, s.PollingUnits()[0].Name)
}

func TestStoreReplace(t *testing.T) {
	s := testStore(3)

	agent := s.Agents()[0]
	agent.Status = AgentSuspended
	agent.IsOnline = false

	require.True(t, s.ReplaceAgent(agent))

	got := s.Agents()[0]
	assert.Equal(t, AgentSuspended, got.Status)
	assert.False(t, got.IsOnline)

	agent.ID = "ag_does_not_exist"
	assert.False(t, s.ReplaceAgent(agent))
}

func TestStoreInsertPersists(t *testing.T) {
	s := testStore(4)
	before := len(s.PollingUnits())

	s.InsertPollingUnit(PollingUnit{
		ID:        "pu_test",
		Code:      "PU-TST-001",
		Name:      "Test Unit",
		CreatedAt: time.Now(),
	})

	units := s.PollingUnits()
	require.Len(t, units, before+1)
	assert.Equal(t, "pu_test", units[len(units)-1].ID)
}

func TestStoreUserLookup(t *testing.T) {
	s := testStore(5)

	admin, ok := s.UserByEmail("admin@electionmonitor.ng")
	require.True(t, ok)
	assert.Equal(t, RoleAdmin, admin.Role)

	byID, ok := s.UserByID(admin.ID)
	require.True(t, ok)
	assert.Equal(t, admin.Email, byID.Email)

	_, ok = s.UserByEmail("nobody@electionmonitor.ng")
	assert.False(t, ok)
}

func TestNewEmptyStore(t *testing.T) {
	s := NewEmptyStore()

	assert.Empty(t, s.PollingUnits())
	assert.Empty(t, s.Agents())

	s.InsertAgent(Agent{ID: "ag_001", Name: "Test Agent"})
	assert.Len(t, s.Agents(), 1)
}
