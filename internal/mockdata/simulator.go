package mockdata

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"election-monitor/pkg/logger"
)

// Simulator advances agent positions on a fixed interval so the dashboard
// has fresh location readings to poll in prototype mode. Each tick walks
// every online agent a small random step, reclassifies the geofence flag
// against the assigned polling unit and appends the reading to the store.
type Simulator struct {
	store          *Store
	interval       time.Duration
	geofenceRadius float64
	logger         *logger.Logger
	rand           *rand.Rand

	mu        sync.RWMutex
	isRunning bool
	stopChan  chan struct{}
	seq       int

	onReadings func(readings []AgentLocation)
}

// NewSimulator creates a location simulator over the given store
func NewSimulator(store *Store, interval time.Duration, geofenceRadius float64, log *logger.Logger) *Simulator {
	return &Simulator{
		store:          store,
		interval:       interval,
		geofenceRadius: geofenceRadius,
		logger:         log.WithComponent("simulator"),
		rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
		stopChan:       make(chan struct{}),
	}
}

// SetReadingsCallback registers a callback invoked with each tick's batch
func (s *Simulator) SetReadingsCallback(fn func(readings []AgentLocation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReadings = fn
}

// Start begins the simulation loop
func (s *Simulator) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("simulator is already running")
	}

	s.isRunning = true
	s.stopChan = make(chan struct{})
	go s.loop()

	s.logger.Info("Location simulator started", "interval", s.interval.String())
	return nil
}

// Stop halts the simulation loop
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	close(s.stopChan)
	s.isRunning = false
	s.logger.Info("Location simulator stopped")
}

// IsRunning reports whether the loop is active
func (s *Simulator) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Simulator) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			readings := s.Tick()
			s.mu.RLock()
			callback := s.onReadings
			s.mu.RUnlock()
			if callback != nil && len(readings) > 0 {
				callback(readings)
			}
		case <-s.stopChan:
			return
		}
	}
}

// Tick advances every online assigned agent one step and returns the new
// readings. Exposed so tests can drive the simulator without the ticker.
func (s *Simulator) Tick() []AgentLocation {
	agents := s.store.Agents()
	units := s.store.PollingUnits()
	locations := s.store.Locations()

	unitByID := make(map[string]PollingUnit, len(units))
	for _, u := range units {
		unitByID[u.ID] = u
	}

	// Most recent reading per agent seeds the next step
	lastByAgent := make(map[string]AgentLocation)
	for _, loc := range locations {
		prev, ok := lastByAgent[loc.AgentID]
		if !ok || loc.Timestamp.After(prev.Timestamp) {
			lastByAgent[loc.AgentID] = loc
		}
	}

	now := time.Now()
	var readings []AgentLocation

	for _, agent := range agents {
		unit, assigned := unitByID[agent.PollingUnitID]
		if !assigned || !agent.IsOnline {
			continue
		}

		pos := unit.Coordinates
		if last, ok := lastByAgent[agent.ID]; ok {
			pos = last.Coordinates
		}

		pos = Coordinates{
			Lat: clamp(pos.Lat+(s.rand.Float64()*2-1)*0.0008, MinLatitude, MaxLatitude),
			Lng: clamp(pos.Lng+(s.rand.Float64()*2-1)*0.0008, MinLongitude, MaxLongitude),
		}

		s.mu.Lock()
		s.seq++
		seq := s.seq
		s.mu.Unlock()

		reading := AgentLocation{
			ID:               fmt.Sprintf("loc_sim_%06d", seq),
			AgentID:          agent.ID,
			Timestamp:        now,
			Coordinates:      pos,
			Accuracy:         3 + s.rand.Float64()*15,
			IsInsideGeofence: WithinRadius(pos, unit.Coordinates, s.geofenceRadius),
			Speed:            s.rand.Float64() * 1.8,
			Heading:          s.rand.Float64() * 360,
		}

		s.store.AppendLocation(reading)

		agent.LastSeen = now
		s.store.ReplaceAgent(agent)

		readings = append(readings, reading)
	}

	return readings
}
