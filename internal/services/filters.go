package services

import (
	"net/url"
	"strings"
	"time"

	"election-monitor/internal/httpclient"
)

// Filters apply conjunctively: a record matches only when every set
// clause holds. Zero-valued clauses are skipped.

// AgentFilter narrows agent listings
type AgentFilter struct {
	Status        string
	Search        string
	PollingUnitID string
	OnlineOnly    bool
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// Values renders the filter as query parameters for the live backend
func (f AgentFilter) Values() url.Values {
	return httpclient.EncodeQuery(map[string]interface{}{
		"status":          f.Status,
		"search":          f.Search,
		"polling_unit_id": f.PollingUnitID,
		"online_only":     f.OnlineOnly,
		"created_from":    f.CreatedFrom,
		"created_to":      f.CreatedTo,
	})
}

// PollingUnitFilter narrows polling unit listings
type PollingUnitFilter struct {
	State      string
	LGA        string
	Search     string
	MinVoters  *int
	MaxVoters  *int
	ActiveOnly bool
}

// Values renders the filter as query parameters for the live backend
func (f PollingUnitFilter) Values() url.Values {
	return httpclient.EncodeQuery(map[string]interface{}{
		"state":       f.State,
		"lga":         f.LGA,
		"search":      f.Search,
		"min_voters":  f.MinVoters,
		"max_voters":  f.MaxVoters,
		"active_only": f.ActiveOnly,
	})
}

// ReportFilter narrows report listings
type ReportFilter struct {
	Category      string
	Severity      string
	Status        string
	Search        string
	AgentID       string
	PollingUnitID string
	From          *time.Time
	To            *time.Time
}

// Values renders the filter as query parameters for the live backend
func (f ReportFilter) Values() url.Values {
	return httpclient.EncodeQuery(map[string]interface{}{
		"category":        f.Category,
		"severity":        f.Severity,
		"status":          f.Status,
		"search":          f.Search,
		"agent_id":        f.AgentID,
		"polling_unit_id": f.PollingUnitID,
		"from":            f.From,
		"to":              f.To,
	})
}

// ResultFilter narrows election result listings
type ResultFilter struct {
	AgentID       string
	PollingUnitID string
	Verified      *bool
	From          *time.Time
	To            *time.Time
}

// Values renders the filter as query parameters for the live backend
func (f ResultFilter) Values() url.Values {
	return httpclient.EncodeQuery(map[string]interface{}{
		"agent_id":        f.AgentID,
		"polling_unit_id": f.PollingUnitID,
		"verified":        f.Verified,
		"from":            f.From,
		"to":              f.To,
	})
}

// NotificationFilter narrows notification listings
type NotificationFilter struct {
	UserID     string
	Type       string
	UnreadOnly bool
}

// Values renders the filter as query parameters for the live backend
func (f NotificationFilter) Values() url.Values {
	return httpclient.EncodeQuery(map[string]interface{}{
		"user_id":     f.UserID,
		"type":        f.Type,
		"unread_only": f.UnreadOnly,
	})
}

// AuditFilter narrows audit log listings
type AuditFilter struct {
	UserID string
	Action string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Values renders the filter as query parameters for the live backend
func (f AuditFilter) Values() url.Values {
	return httpclient.EncodeQuery(map[string]interface{}{
		"user_id": f.UserID,
		"action":  f.Action,
		"from":    f.From,
		"to":      f.To,
		"limit":   f.Limit,
		"offset":  f.Offset,
	})
}

// matchSearch reports whether the lowercased needle appears in any of the
// candidate fields.
func matchSearch(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// inTimeRange checks an inclusive timestamp window; nil bounds are open
func inTimeRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
