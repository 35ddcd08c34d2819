package mockdata

import (
	"math/rand"
	"sync"
)

// Store owns the generated dataset for the lifetime of the process. All
// reads hand out shallow copies so callers can never corrupt the backing
// slices; mutations go through the Insert/Replace/Append methods and
// persist behind the same copy-out read contract.
type Store struct {
	mu sync.RWMutex

	pollingUnits  []PollingUnit
	users         []User
	agents        []Agent
	locations     []AgentLocation
	reports       []Report
	results       []ElectionResult
	notifications []Notification
	auditLogs     []AuditLog
}

// NewStore runs a single generation pass and returns the populated store.
// Passing a rand source pins the dataset for tests; nil gives a fresh
// dataset per process start.
func NewStore(r *rand.Rand, sizing Sizing, geofenceRadius float64, passwordHash string) *Store {
	g := NewGenerator(r, sizing, geofenceRadius, passwordHash)

	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)
	agents := g.GenerateAgents(users, units)

	return &Store{
		pollingUnits:  units,
		users:         users,
		agents:        agents,
		locations:     g.GenerateLocations(agents, units),
		reports:       g.GenerateReports(agents, units),
		results:       g.GenerateResults(agents, units),
		notifications: g.GenerateNotifications(users),
		auditLogs:     g.GenerateAuditLogs(users),
	}
}

// NewEmptyStore returns a store with no generated data, for tests that
// assemble their own fixtures.
func NewEmptyStore() *Store {
	return &Store{}
}

func copySlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// PollingUnits returns a copy of all polling units
func (s *Store) PollingUnits() []PollingUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.pollingUnits)
}

// Users returns a copy of all users
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.users)
}

// Agents returns a copy of all agents
func (s *Store) Agents() []Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.agents)
}

// Locations returns a copy of all agent location readings
func (s *Store) Locations() []AgentLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.locations)
}

// Reports returns a copy of all reports
func (s *Store) Reports() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.reports)
}

// Results returns a copy of all election results
func (s *Store) Results() []ElectionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.results)
}

// Notifications returns a copy of all notifications
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.notifications)
}

// AuditLogs returns a copy of the audit trail
func (s *Store) AuditLogs() []AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.auditLogs)
}

// UserByEmail looks up a user by email
func (s *Store) UserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// UserByID looks up a user by id
func (s *Store) UserByID(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// InsertPollingUnit appends a new polling unit
func (s *Store) InsertPollingUnit(unit PollingUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pollingUnits = append(s.pollingUnits, unit)
}

// ReplacePollingUnit writes back an updated polling unit by id
func (s *Store) ReplacePollingUnit(unit PollingUnit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pollingUnits {
		if s.pollingUnits[i].ID == unit.ID {
			s.pollingUnits[i] = unit
			return true
		}
	}
	return false
}

// InsertUser appends a new user
func (s *Store) InsertUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

// InsertAgent appends a new agent
func (s *Store) InsertAgent(agent Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = append(s.agents, agent)
}

// ReplaceAgent writes back an updated agent by id
func (s *Store) ReplaceAgent(agent Agent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.agents {
		if s.agents[i].ID == agent.ID {
			s.agents[i] = agent
			return true
		}
	}
	return false
}

// AppendLocation records a new location reading
func (s *Store) AppendLocation(loc AgentLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append(s.locations, loc)
}

// InsertReport appends a new report
func (s *Store) InsertReport(report Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
}

// ReplaceReport writes back an updated report by id
func (s *Store) ReplaceReport(report Report) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == report.ID {
			s.reports[i] = report
			return true
		}
	}
	return false
}

// InsertResult appends a new election result
func (s *Store) InsertResult(result ElectionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
}

// ReplaceResult writes back an updated election result by id
func (s *Store) ReplaceResult(result ElectionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.results {
		if s.results[i].ID == result.ID {
			s.results[i] = result
			return true
		}
	}
	return false
}

// AppendNotification records a new notification
func (s *Store) AppendNotification(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
}

// ReplaceNotification writes back an updated notification by id
func (s *Store) ReplaceNotification(n Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == n.ID {
			s.notifications[i] = n
			return true
		}
	}
	return false
}

// AppendAuditLog records a new audit entry
func (s *Store) AppendAuditLog(entry AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLogs = append(s.auditLogs, entry)
}
