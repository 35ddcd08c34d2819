package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"election-monitor/pkg/logger"
)

func testSimulator(t *testing.T) (*Simulator, *Store) {
	t.Helper()
	store := NewEmptyStore()

	store.InsertPollingUnit(PollingUnit{
		ID:          "pu_001",
		Code:        "PU-LAG-001",
		Coordinates: Coordinates{Lat: 6.5244, Lng: 3.3792},
	})
	store.InsertAgent(Agent{
		ID:            "ag_online",
		PollingUnitID: "pu_001",
		Status:        AgentActive,
		IsOnline:      true,
	})
	store.InsertAgent(Agent{
		ID:            "ag_offline",
		PollingUnitID: "pu_001",
		Status:        AgentActive,
		IsOnline:      false,
	})
	store.InsertAgent(Agent{
		ID:       "ag_unassigned",
		Status:   AgentActive,
		IsOnline: true,
	})

	log := logger.NewLogger(logger.Options{Level: "error"})
	return NewSimulator(store, time.Minute, 200, log), store
}

func TestSimulatorTick(t *testing.T) {
	sim, store := testSimulator(t)

	readings := sim.Tick()
	require.Len(t, readings, 1, "only online assigned agents move")
	assert.Equal(t, "ag_online", readings[0].AgentID)
	assert.True(t, InsideBounds(readings[0].Coordinates))

	// Readings land in the store
	assert.Len(t, store.Locations(), 1)

	// LastSeen advances on the walked agent
	for _, a := range store.Agents() {
		if a.ID == "ag_online" {
			assert.WithinDuration(t, time.Now(), a.LastSeen, 5*time.Second)
		}
	}
}

func TestSimulatorWalkContinuesFromLastReading(t *testing.T) {
	sim, store := testSimulator(t)

	first := sim.Tick()
	second := sim.Tick()
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.Len(t, store.Locations(), 2)

	// Step size keeps successive readings close together
	assert.Less(t, DistanceMeters(first[0].Coordinates, second[0].Coordinates), 500.0)
}

func TestSimulatorStartStop(t *testing.T) {
	sim, _ := testSimulator(t)

	assert.False(t, sim.IsRunning())
	require.NoError(t, sim.Start())
	assert.True(t, sim.IsRunning())

	// Double start is rejected
	assert.Error(t, sim.Start())

	sim.Stop()
	assert.False(t, sim.IsRunning())

	// Stop on a stopped simulator is a no-op
	sim.Stop()
}

func TestSimulatorCallback(t *testing.T) {
	store := NewEmptyStore()
	store.InsertPollingUnit(PollingUnit{ID: "pu_001", Coordinates: Coordinates{Lat: 9.0765, Lng: 7.3986}})
	store.InsertAgent(Agent{ID: "ag_001", PollingUnitID: "pu_001", Status: AgentActive, IsOnline: true})

	log := logger.NewLogger(logger.Options{Level: "error"})
	sim := NewSimulator(store, 10*time.Millisecond, 200, log)

	got := make(chan []AgentLocation, 1)
	sim.SetReadingsCallback(func(readings []AgentLocation) {
		select {
		case got <- readings:
		default:
		}
	})

	require.NoError(t, sim.Start())
	defer sim.Stop()

	select {
	case readings := <-got:
		require.NotEmpty(t, readings)
		assert.Equal(t, "ag_001", readings[0].AgentID)
	case <-time.After(2 * time.Second):
		t.Fatal("no readings delivered within deadline")
	}
}
