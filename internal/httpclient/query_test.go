package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuerySkipsEmptyValues(t *testing.T) {
	values := EncodeQuery(map[string]interface{}{
		"status":  "",
		"search":  "lagos",
		"online":  false,
		"limit":   0,
		"nothing": nil,
	})

	assert.Equal(t, "lagos", values.Get("search"))
	assert.NotContains(t, values, "status")
	assert.NotContains(t, values, "online")
	assert.NotContains(t, values, "limit")
	assert.NotContains(t, values, "nothing")
}

func TestEncodeQueryPointers(t *testing.T) {
	verified := false
	minVoters := 500
	var missing *int

	values := EncodeQuery(map[string]interface{}{
		"verified":   &verified,
		"min_voters": &minVoters,
		"max_voters": missing,
	})

	// Pointer booleans carry explicit false, unlike plain booleans
	assert.Equal(t, "false", values.Get("verified"))
	assert.Equal(t, "500", values.Get("min_voters"))
	assert.NotContains(t, values, "max_voters")
}

func TestEncodeQueryTimes(t *testing.T) {
	ts := time.Date(2027, 2, 25, 8, 30, 0, 0, time.UTC)

	values := EncodeQuery(map[string]interface{}{
		"from": &ts,
		"to":   time.Time{},
	})

	assert.Equal(t, "2027-02-25T08:30:00Z", values.Get("from"))
	assert.NotContains(t, values, "to")
}

func TestEncodeQuerySlices(t *testing.T) {
	values := EncodeQuery(map[string]interface{}{
		"states": []string{"Lagos", "", "Kano"},
	})

	assert.Equal(t, []string{"Lagos", "Kano"}, values["states"])
}

func TestEncodeQueryBooleans(t *testing.T) {
	values := EncodeQuery(map[string]interface{}{
		"active_only": true,
	})

	assert.Equal(t, "true", values.Get("active_only"))
}
