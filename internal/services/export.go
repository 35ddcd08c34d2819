package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"election-monitor/internal/mockdata"
)

// pollingUnitsCSV renders polling units as a CSV document
func pollingUnitsCSV(units []mockdata.PollingUnit) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "code", "name", "lga", "state", "lat", "lng", "registered_voters", "is_active"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, u := range units {
		row := []string{
			u.ID,
			u.Code,
			u.Name,
			u.LGA,
			u.State,
			strconv.FormatFloat(u.Coordinates.Lat, 'f', 6, 64),
			strconv.FormatFloat(u.Coordinates.Lng, 'f', 6, 64),
			strconv.Itoa(u.RegisteredVoters),
			strconv.FormatBool(u.IsActive),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// resultsCSV renders election results as a CSV document, one row per
// candidate line.
func resultsCSV(results []mockdata.ElectionResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"result_id", "polling_unit_id", "agent_id", "total_votes", "valid_votes", "invalid_votes", "party", "candidate", "candidate_votes", "is_verified"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range results {
		base := []string{
			r.ID,
			r.PollingUnitID,
			r.AgentID,
			strconv.Itoa(r.VoteData.TotalVotes),
			strconv.Itoa(r.VoteData.ValidVotes),
			strconv.Itoa(r.VoteData.InvalidVotes),
		}
		for _, c := range r.VoteData.Candidates {
			row := append(append([]string{}, base...),
				c.Party, c.Name, strconv.Itoa(c.Votes), strconv.FormatBool(r.IsVerified))
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
