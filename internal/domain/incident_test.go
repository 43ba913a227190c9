package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"canonical", "2026-03-10T22:15:30"},
		{"fractional seconds", "2026-03-10T22:15:30.123456"},
		{"no seconds", "2026-03-10T22:15"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tc.in)
			require.True(t, ok)
			assert.Equal(t, 2026, got.Year())
			assert.Equal(t, 22, got.Hour())
			assert.Equal(t, 15, got.Minute())
		})
	}
}

func TestParseTimestamp_Malformed(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2026-03-10", "10/03/2026 22:15"} {
		_, ok := ParseTimestamp(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestFormatTimestamp_RoundTrips(t *testing.T) {
	at := time.Date(2026, time.March, 10, 22, 15, 30, 0, time.Local)
	got, ok := ParseTimestamp(FormatTimestamp(at))
	require.True(t, ok)
	assert.True(t, got.Equal(at))
}

func TestOnDate(t *testing.T) {
	inc := Incident{Timestamp: "2026-03-11T00:30:00"}
	assert.True(t, inc.OnDate(time.Date(2026, time.March, 11, 18, 0, 0, 0, time.Local)))
	assert.False(t, inc.OnDate(time.Date(2026, time.March, 10, 23, 0, 0, 0, time.Local)))

	malformed := Incident{Timestamp: "garbage"}
	assert.False(t, malformed.OnDate(time.Now()))
}

func TestIncident_DecodesLegacyJSON(t *testing.T) {
	// A record as older exports stored it: action details under
	// "actionDetails", employee-facing fields absent.
	raw := `{
		"id": "abc",
		"associateId": "a1",
		"type": "Hostility",
		"details": "narrative",
		"timestamp": "2024-11-02T23:10:00",
		"actionDetails": "note",
		"action": "Send Home"
	}`
	var inc Incident
	require.NoError(t, json.Unmarshal([]byte(raw), &inc))
	assert.Equal(t, "note", inc.ActionNotes)
	assert.Equal(t, ActionSendHome, inc.Action)
	assert.Nil(t, inc.Complied)
	assert.False(t, inc.ManagerNotified)
}
