package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Sizing controls how much data a generation pass produces. The polling
// unit count is the cross product states x LGAs x UnitsPerLGA.
type Sizing struct {
	UnitsPerLGA       int
	LocationsPerAgent int
	ReportsPerAgent   int
	Notifications     int
	AuditEntries      int
}

// DefaultPassword is the password every generated user authenticates with
const DefaultPassword = "observer2027"

var (
	firstNames = []string{
		"Adaeze", "Chinedu", "Folake", "Ibrahim", "Ngozi", "Oluwaseun",
		"Amina", "Emeka", "Yusuf", "Temitope", "Halima", "Obinna",
		"Zainab", "Tunde", "Chiamaka", "Musa", "Funmilayo", "Ikenna",
	}
	lastNames = []string{
		"Okafor", "Adeyemi", "Bello", "Eze", "Mohammed", "Okonkwo",
		"Abubakar", "Olawale", "Nwosu", "Danjuma", "Adebayo", "Uche",
	}
	parties = []string{"APC", "PDP", "LP", "NNPP"}

	agentStatusWeights = []Choice[string]{
		{Value: AgentActive, Weight: 0.7},
		{Value: AgentInactive, Weight: 0.2},
		{Value: AgentSuspended, Weight: 0.1},
	}
	reportCategories = []string{CategoryViolence, CategoryLogistics, CategorySuppression, CategoryTechnical}
	reportSeverities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

	reportTitles = map[string]string{
		CategoryViolence:    "Altercation near polling unit",
		CategoryLogistics:   "Late arrival of election materials",
		CategorySuppression: "Voters turned away at entrance",
		CategoryTechnical:   "Card reader malfunction",
	}

	auditActions = []string{
		"login", "logout", "agent_activated", "agent_suspended",
		"report_resolved", "result_verified", "export_requested",
	}
)

// Generator produces the synthetic dataset. Each generate method is a pure
// function of the rand source and the previously generated entities.
type Generator struct {
	rand           *rand.Rand
	sizing         Sizing
	geofenceRadius float64
	passwordHash   string
}

// NewGenerator creates a generator. A nil rand source is seeded from the
// wall clock, so repeated process starts produce different datasets.
func NewGenerator(r *rand.Rand, sizing Sizing, geofenceRadius float64, passwordHash string) *Generator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		rand:           r,
		sizing:         sizing,
		geofenceRadius: geofenceRadius,
		passwordHash:   passwordHash,
	}
}

func (g *Generator) fullName() string {
	return PickOne(g.rand, firstNames) + " " + PickOne(g.rand, lastNames)
}

// GeneratePollingUnits produces one batch of polling units per LGA per
// state. Codes are unique across the whole set.
func (g *Generator) GeneratePollingUnits() []PollingUnit {
	var units []PollingUnit
	seq := 0
	now := time.Now()

	for _, region := range stateRegions {
		for _, lga := range region.LGAs {
			for i := 0; i < g.sizing.UnitsPerLGA; i++ {
				seq++
				coords := jitterAround(g.rand, region.Ref)
				units = append(units, PollingUnit{
					ID:               fmt.Sprintf("pu_%03d", seq),
					Code:             fmt.Sprintf("PU-%s-%03d", abbrev(region.Name), seq),
					Name:             fmt.Sprintf("%s Ward %d Unit %d", lga, i/2+1, i+1),
					LGA:              lga,
					State:            region.Name,
					Coordinates:      coords,
					Address:          fmt.Sprintf("%d %s Road, %s, %s", g.rand.Intn(200)+1, lga, lga, region.Name),
					RegisteredVoters: 200 + g.rand.Intn(1800),
					IsActive:         g.rand.Float64() < 0.9,
					CreatedAt:        now.Add(-time.Duration(g.rand.Intn(90*24)) * time.Hour),
				})
			}
		}
	}

	return units
}

// GenerateUsers produces staff accounts plus one agent-role user per
// polling unit. Emails are unique by construction.
func (g *Generator) GenerateUsers(units []PollingUnit) []User {
	now := time.Now()
	var users []User

	staffRoles := []string{RoleAdmin, RoleCoordinator, RoleLegal, RoleLeadership}
	for i, role := range staffRoles {
		users = append(users, User{
			ID:              fmt.Sprintf("usr_%03d", i+1),
			Name:            g.fullName(),
			Email:           fmt.Sprintf("%s@electionmonitor.ng", role),
			Phone:           g.phone(),
			Role:            role,
			PasswordHash:    g.passwordHash,
			IsEmailVerified: true,
			IsPhoneVerified: true,
			CreatedAt:       now.Add(-120 * 24 * time.Hour),
			UpdatedAt:       now,
		})
	}

	for i := range units {
		idx := len(staffRoles) + i
		users = append(users, User{
			ID:              fmt.Sprintf("usr_%03d", idx+1),
			Name:            g.fullName(),
			Email:           fmt.Sprintf("agent%d@electionmonitor.ng", i+1),
			Phone:           g.phone(),
			Role:            RoleAgent,
			PasswordHash:    g.passwordHash,
			IsEmailVerified: g.rand.Float64() < 0.85,
			IsPhoneVerified: g.rand.Float64() < 0.7,
			CreatedAt:       now.Add(-time.Duration(g.rand.Intn(60*24)) * time.Hour),
			UpdatedAt:       now,
		})
	}

	return users
}

// GenerateAgents produces one agent per agent-role user. Most agents get
// a polling unit assignment; a small tail stays unassigned. Status draws
// 70/20/10 active/inactive/suspended, and only active agents can be online.
func (g *Generator) GenerateAgents(users []User, units []PollingUnit) []Agent {
	now := time.Now()
	var agents []Agent
	unitIdx := 0

	for _, u := range users {
		if u.Role != RoleAgent {
			continue
		}

		status := PickWeighted(g.rand, agentStatusWeights)
		isOnline := status == AgentActive && g.rand.Float64() < 0.75

		agent := Agent{
			ID:         fmt.Sprintf("ag_%03d", len(agents)+1),
			UserID:     u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Phone:      u.Phone,
			Status:     status,
			IsOnline:   isOnline,
			LastSeen:   now.Add(-time.Duration(g.rand.Intn(240)) * time.Minute),
			QRCode:     uuid.NewString(),
			IsVerified: g.rand.Float64() < 0.8,
			CreatedAt:  u.CreatedAt,
		}

		// Roughly one in twelve agents is awaiting assignment
		if unitIdx < len(units) && g.rand.Float64() >= 0.08 {
			agent.PollingUnitID = units[unitIdx].ID
			unitIdx++
		}

		agents = append(agents, agent)
	}

	return agents
}

// GenerateLocations produces a short time series per agent, walking away
// from the assigned polling unit and classifying each reading against the
// geofence radius.
func (g *Generator) GenerateLocations(agents []Agent, units []PollingUnit) []AgentLocation {
	unitByID := make(map[string]PollingUnit, len(units))
	for _, u := range units {
		unitByID[u.ID] = u
	}

	now := time.Now()
	var locations []AgentLocation

	for _, agent := range agents {
		unit, assigned := unitByID[agent.PollingUnitID]
		if !assigned {
			continue
		}

		pos := unit.Coordinates
		for i := 0; i < g.sizing.LocationsPerAgent; i++ {
			pos = Coordinates{
				Lat: clamp(pos.Lat+(g.rand.Float64()*2-1)*0.0015, MinLatitude, MaxLatitude),
				Lng: clamp(pos.Lng+(g.rand.Float64()*2-1)*0.0015, MinLongitude, MaxLongitude),
			}

			locations = append(locations, AgentLocation{
				ID:               fmt.Sprintf("loc_%s_%03d", agent.ID, i+1),
				AgentID:          agent.ID,
				Timestamp:        now.Add(-time.Duration(g.sizing.LocationsPerAgent-i) * 5 * time.Minute),
				Coordinates:      pos,
				Accuracy:         3 + g.rand.Float64()*22,
				IsInsideGeofence: WithinRadius(pos, unit.Coordinates, g.geofenceRadius),
				Speed:            g.rand.Float64() * 2.5,
				Heading:          g.rand.Float64() * 360,
			})
		}
	}

	return locations
}

// GenerateReports produces incident reports per agent, inheriting the
// agent's polling unit.
func (g *Generator) GenerateReports(agents []Agent, units []PollingUnit) []Report {
	unitByID := make(map[string]PollingUnit, len(units))
	for _, u := range units {
		unitByID[u.ID] = u
	}

	now := time.Now()
	var reports []Report

	for _, agent := range agents {
		n := g.rand.Intn(g.sizing.ReportsPerAgent + 1)
		for i := 0; i < n; i++ {
			category := PickOne(g.rand, reportCategories)
			coords := Coordinates{
				Lat: clamp(6.5+(g.rand.Float64()*2-1)*2, MinLatitude, MaxLatitude),
				Lng: clamp(7.0+(g.rand.Float64()*2-1)*2, MinLongitude, MaxLongitude),
			}
			if unit, ok := unitByID[agent.PollingUnitID]; ok {
				coords = jitterAround(g.rand, unit.Coordinates)
			}

			createdAt := now.Add(-time.Duration(g.rand.Intn(48*60)) * time.Minute)
			status := ReportPending
			if g.rand.Float64() < 0.4 {
				status = ReportResolved
			}

			reports = append(reports, Report{
				ID:            fmt.Sprintf("rp_%s_%02d", agent.ID, i+1),
				AgentID:       agent.ID,
				PollingUnitID: agent.PollingUnitID,
				Category:      category,
				Severity:      PickOne(g.rand, reportSeverities),
				Status:        status,
				Title:         reportTitles[category],
				Description:   fmt.Sprintf("%s reported by %s.", reportTitles[category], agent.Name),
				Coordinates:   coords,
				CreatedAt:     createdAt,
				UpdatedAt:     createdAt,
			})
		}
	}

	return reports
}

// GenerateResults produces one result per assigned active agent. The vote
// split draws a random fraction of the remaining pool per candidate and
// the last candidate absorbs the remainder, so candidate votes always sum
// to the valid count and valid + invalid equals the total.
func (g *Generator) GenerateResults(agents []Agent, units []PollingUnit) []ElectionResult {
	unitByID := make(map[string]PollingUnit, len(units))
	for _, u := range units {
		unitByID[u.ID] = u
	}

	now := time.Now()
	var results []ElectionResult

	for _, agent := range agents {
		unit, assigned := unitByID[agent.PollingUnitID]
		if !assigned || agent.Status != AgentActive {
			continue
		}

		turnout := 0.3 + g.rand.Float64()*0.5
		total := int(float64(unit.RegisteredVoters) * turnout)
		invalid := 0
		if total > 0 {
			invalid = g.rand.Intn(total/20 + 1)
		}
		valid := total - invalid

		result := ElectionResult{
			ID:            fmt.Sprintf("rs_%03d", len(results)+1),
			AgentID:       agent.ID,
			PollingUnitID: unit.ID,
			VoteData: VoteData{
				TotalVotes:   total,
				ValidVotes:   valid,
				InvalidVotes: invalid,
				Candidates:   g.splitVotes(valid),
			},
			IsVerified: g.rand.Float64() < 0.5,
			CreatedAt:  now.Add(-time.Duration(g.rand.Intn(12*60)) * time.Minute),
		}

		if result.IsVerified {
			verifiedAt := result.CreatedAt.Add(time.Duration(g.rand.Intn(120)+5) * time.Minute)
			result.VerifiedAt = &verifiedAt
			result.VerifiedBy = "usr_002"
		}

		results = append(results, result)
	}

	return results
}

// splitVotes distributes pool across the party list
func (g *Generator) splitVotes(pool int) []CandidateVotes {
	candidates := make([]CandidateVotes, len(parties))
	remaining := pool

	for i, party := range parties {
		votes := remaining
		if i < len(parties)-1 {
			votes = int(float64(remaining) * g.rand.Float64())
		}
		candidates[i] = CandidateVotes{
			Name:  g.fullName(),
			Party: party,
			Votes: votes,
		}
		remaining -= votes
	}

	return candidates
}

// GenerateNotifications produces notifications addressed to random users
func (g *Generator) GenerateNotifications(users []User) []Notification {
	if len(users) == 0 {
		return nil
	}

	templates := []struct{ title, message, kind string }{
		{"New report filed", "A new incident report needs review.", "report"},
		{"Result submitted", "A polling unit result is awaiting verification.", "result"},
		{"Agent offline", "An assigned agent has gone offline.", "agent"},
		{"Geofence alert", "An agent left the polling unit geofence.", "location"},
	}

	now := time.Now()
	notifications := make([]Notification, 0, g.sizing.Notifications)
	for i := 0; i < g.sizing.Notifications; i++ {
		tpl := PickOne(g.rand, templates)
		notifications = append(notifications, Notification{
			ID:        fmt.Sprintf("nt_%03d", i+1),
			UserID:    PickOne(g.rand, users).ID,
			Title:     tpl.title,
			Message:   tpl.message,
			Type:      tpl.kind,
			IsRead:    g.rand.Float64() < 0.5,
			CreatedAt: now.Add(-time.Duration(g.rand.Intn(24*60)) * time.Minute),
		})
	}

	return notifications
}

// GenerateAuditLogs produces the audit trail referencing generated users
func (g *Generator) GenerateAuditLogs(users []User) []AuditLog {
	if len(users) == 0 {
		return nil
	}

	now := time.Now()
	logs := make([]AuditLog, 0, g.sizing.AuditEntries)
	for i := 0; i < g.sizing.AuditEntries; i++ {
		action := PickOne(g.rand, auditActions)
		logs = append(logs, AuditLog{
			ID:        fmt.Sprintf("al_%04d", i+1),
			UserID:    PickOne(g.rand, users).ID,
			Action:    action,
			Resource:  resourceFor(action),
			Details:   fmt.Sprintf("Action %s recorded", action),
			IPAddress: fmt.Sprintf("197.210.%d.%d", g.rand.Intn(256), g.rand.Intn(256)),
			CreatedAt: now.Add(-time.Duration(g.rand.Intn(72*60)) * time.Minute),
		})
	}

	return logs
}

func resourceFor(action string) string {
	switch action {
	case "agent_activated", "agent_suspended":
		return "agents"
	case "report_resolved":
		return "reports"
	case "result_verified":
		return "results"
	case "export_requested":
		return "exports"
	default:
		return "sessions"
	}
}

// abbrev shortens a state name for polling unit codes
func abbrev(state string) string {
	if len(state) <= 3 {
		return state
	}
	return state[:3]
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+23480%08d", g.rand.Intn(100000000))
}
