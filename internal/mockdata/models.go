package mockdata

import "time"

// User roles
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleLegal       = "legal"
	RoleLeadership  = "leadership"
	RoleAgent       = "agent"
)

// Agent statuses
const (
	AgentActive    = "active"
	AgentInactive  = "inactive"
	AgentSuspended = "suspended"
	AgentPending   = "pending"
)

// Report categories
const (
	CategoryViolence    = "violence"
	CategoryLogistics   = "logistics"
	CategorySuppression = "suppression"
	CategoryTechnical   = "technical"
)

// Report severities
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Report statuses
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
)

// Coordinates represents a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PollingUnit represents a polling unit within an LGA
type PollingUnit struct {
	ID               string      `json:"id"`
	Code             string      `json:"code"`
	Name             string      `json:"name"`
	LGA              string      `json:"lga"`
	State            string      `json:"state"`
	Coordinates      Coordinates `json:"coordinates"`
	Address          string      `json:"address"`
	RegisteredVoters int         `json:"registered_voters"`
	IsActive         bool        `json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
}

// User represents a dashboard user account
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	PasswordHash    string    `json:"-"`
	IsEmailVerified bool      `json:"is_email_verified"`
	IsPhoneVerified bool      `json:"is_phone_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Agent represents a field agent assigned to at most one polling unit.
// Name, email and phone are denormalized from the backing user record.
type Agent struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PollingUnitID string    `json:"polling_unit_id,omitempty"`
	Status        string    `json:"status"`
	IsOnline      bool      `json:"is_online"`
	LastSeen      time.Time `json:"last_seen"`
	QRCode        string    `json:"qr_code"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// AgentLocation is one reading in an agent's location time series
type AgentLocation struct {
	ID               string      `json:"id"`
	AgentID          string      `json:"agent_id"`
	Timestamp        time.Time   `json:"timestamp"`
	Coordinates      Coordinates `json:"coordinates"`
	Accuracy         float64     `json:"accuracy"`
	IsInsideGeofence bool        `json:"is_inside_geofence"`
	Speed            float64     `json:"speed"`
	Heading          float64     `json:"heading"`
}

// Report represents an incident report filed by an agent
type Report struct {
	ID            string      `json:"id"`
	AgentID       string      `json:"agent_id"`
	PollingUnitID string      `json:"polling_unit_id,omitempty"`
	Category      string      `json:"category"`
	Severity      string      `json:"severity"`
	Status        string      `json:"status"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Coordinates   Coordinates `json:"coordinates"`
	Attachments   []string    `json:"attachments,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CandidateVotes holds the vote count for one candidate
type CandidateVotes struct {
	Name  string `json:"name"`
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// VoteData holds the vote breakdown submitted with a result.
// ValidVotes + InvalidVotes always equals TotalVotes.
type VoteData struct {
	TotalVotes   int              `json:"total_votes"`
	ValidVotes   int              `json:"valid_votes"`
	InvalidVotes int              `json:"invalid_votes"`
	Candidates   []CandidateVotes `json:"candidates"`
}

// ElectionResult represents a polling-unit result submission
type ElectionResult struct {
	ID            string     `json:"id"`
	AgentID       string     `json:"agent_id"`
	PollingUnitID string     `json:"polling_unit_id"`
	VoteData      VoteData   `json:"vote_data"`
	IsVerified    bool       `json:"is_verified"`
	VerifiedBy    string     `json:"verified_by,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Notification is an append-only message addressed to a user
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLog is an append-only record of a user action
type AuditLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}
