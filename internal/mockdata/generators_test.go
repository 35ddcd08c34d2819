package mockdata

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), Sizing{
		UnitsPerLGA:       3,
		LocationsPerAgent: 5,
		ReportsPerAgent:   2,
		Notifications:     20,
		AuditEntries:      30,
	}, 200, "hash")
}

func TestGeneratePollingUnits(t *testing.T) {
	g := testGenerator(1)
	units := g.GeneratePollingUnits()
	require.NotEmpty(t, units)

	// states x LGAs x units-per-LGA
	totalLGAs := 0
	for _, region := range stateRegions {
		totalLGAs += len(region.LGAs)
	}
	assert.Len(t, units, totalLGAs*3)

	seenCodes := make(map[string]bool)
	refByState := make(map[string]Coordinates)
	for _, region := range stateRegions {
		refByState[region.Name] = region.Ref
	}

	for _, u := range units {
		assert.False(t, seenCodes[u.Code], "duplicate code %s", u.Code)
		seenCodes[u.Code] = true

		assert.GreaterOrEqual(t, u.RegisteredVoters, 200)
		assert.Less(t, u.RegisteredVoters, 2000)
		assert.True(t, InsideBounds(u.Coordinates), "unit %s outside national bounds", u.ID)

		ref := refByState[u.State]
		assert.LessOrEqual(t, math.Abs(u.Coordinates.Lat-ref.Lat), coordJitter+1e-9)
		assert.LessOrEqual(t, math.Abs(u.Coordinates.Lng-ref.Lng), coordJitter+1e-9)
	}
}

func TestGenerateAgents(t *testing.T) {
	g := testGenerator(2)
	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)
	agents := g.GenerateAgents(users, units)

	agentUsers := 0
	for _, u := range users {
		if u.Role == RoleAgent {
			agentUsers++
		}
	}
	require.Equal(t, agentUsers, len(agents))

	for _, a := range agents {
		assert.Contains(t, []string{AgentActive, AgentInactive, AgentSuspended}, a.Status)
		if a.IsOnline {
			assert.Equal(t, AgentActive, a.Status, "only active agents may be online")
		}
		assert.NotEmpty(t, a.QRCode)
	}
}

func TestAgentStatusDistribution(t *testing.T) {
	g := testGenerator(3)
	g.sizing.UnitsPerLGA = 30

	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)
	agents := g.GenerateAgents(users, units)
	require.Greater(t, len(agents), 400)

	counts := make(map[string]int)
	for _, a := range agents {
		counts[a.Status]++
	}

	n := float64(len(agents))
	assert.InDelta(t, 0.7, float64(counts[AgentActive])/n, 0.08)
	assert.InDelta(t, 0.2, float64(counts[AgentInactive])/n, 0.08)
	assert.InDelta(t, 0.1, float64(counts[AgentSuspended])/n, 0.08)
}

func TestGenerateResultsVoteArithmetic(t *testing.T) {
	g := testGenerator(4)
	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)
	agents := g.GenerateAgents(users, units)
	results := g.GenerateResults(agents, units)
	require.NotEmpty(t, results)

	for _, r := range results {
		vd := r.VoteData
		assert.Equal(t, vd.TotalVotes, vd.ValidVotes+vd.InvalidVotes,
			"valid + invalid must equal total for %s", r.ID)
		assert.GreaterOrEqual(t, vd.InvalidVotes, 0)
		assert.LessOrEqual(t, vd.InvalidVotes, vd.TotalVotes/20)

		sum := 0
		for _, c := range vd.Candidates {
			assert.GreaterOrEqual(t, c.Votes, 0)
			sum += c.Votes
		}
		assert.Equal(t, vd.ValidVotes, sum, "candidate votes must sum to valid count for %s", r.ID)

		if r.IsVerified {
			assert.NotNil(t, r.VerifiedAt)
			assert.NotEmpty(t, r.VerifiedBy)
		}
	}
}

func TestGenerateReportsInheritUnit(t *testing.T) {
	g := testGenerator(5)
	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)
	agents := g.GenerateAgents(users, units)
	reports := g.GenerateReports(agents, units)

	agentByID := make(map[string]Agent, len(agents))
	for _, a := range agents {
		agentByID[a.ID] = a
	}

	for _, r := range reports {
		agent, ok := agentByID[r.AgentID]
		require.True(t, ok, "report %s references unknown agent", r.ID)
		assert.Equal(t, agent.PollingUnitID, r.PollingUnitID)
		assert.Contains(t, reportCategories, r.Category)
		assert.Contains(t, reportSeverities, r.Severity)
		assert.True(t, InsideBounds(r.Coordinates))
	}
}

func TestGenerateLocationsGeofence(t *testing.T) {
	g := testGenerator(6)
	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)
	agents := g.GenerateAgents(users, units)
	locations := g.GenerateLocations(agents, units)
	require.NotEmpty(t, locations)

	unitByID := make(map[string]PollingUnit, len(units))
	for _, u := range units {
		unitByID[u.ID] = u
	}
	agentByID := make(map[string]Agent, len(agents))
	for _, a := range agents {
		agentByID[a.ID] = a
	}

	for _, loc := range locations {
		agent := agentByID[loc.AgentID]
		unit, ok := unitByID[agent.PollingUnitID]
		require.True(t, ok, "location for unassigned agent %s", loc.AgentID)

		want := WithinRadius(loc.Coordinates, unit.Coordinates, 200)
		assert.Equal(t, want, loc.IsInsideGeofence)
		assert.True(t, InsideBounds(loc.Coordinates))
	}
}

func TestGenerateUsersUniqueEmails(t *testing.T) {
	g := testGenerator(7)
	units := g.GeneratePollingUnits()
	users := g.GenerateUsers(units)

	seen := make(map[string]bool)
	for _, u := range users {
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}

	roles := make(map[string]int)
	for _, u := range users {
		roles[u.Role]++
	}
	assert.Equal(t, 1, roles[RoleAdmin])
	assert.Equal(t, 1, roles[RoleCoordinator])
	assert.Equal(t, len(units), roles[RoleAgent])
}

func TestDeterministicWithSeed(t *testing.T) {
	a := testGenerator(42).GeneratePollingUnits()
	b := testGenerator(42).GeneratePollingUnits()

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Code, b[i].Code)
		assert.Equal(t, a[i].RegisteredVoters, b[i].RegisteredVoters)
	}
}
