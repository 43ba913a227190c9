package domain

import "time"

// TimestampLayout is the wire format for incident timestamps: a local
// date-time with no zone, matching what older exports stored.
const TimestampLayout = "2006-01-02T15:04:05"

// timestampLayouts lists accepted layouts, newest first. Older records may
// carry fractional seconds or omit seconds entirely.
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// Incident is a single recorded violation event tied to one associate, one
// violation type and one timestamp. Incidents are append-only: there is no
// edit path once saved.
//
// Every field other than ID, AssociateID and Type is optional on the wire so
// records written by older revisions of the tool still deserialize.
type Incident struct {
	ID                 string        `json:"id"`
	AssociateID        string        `json:"associateId"`
	Type               ViolationType `json:"type"`
	Details            string        `json:"details"`
	Timestamp          string        `json:"timestamp"`
	Location           string        `json:"location,omitempty"`
	CameraFriendlyName string        `json:"cameraFriendlyName,omitempty"`
	Action             Action        `json:"action"`
	ActionNotes        string        `json:"actionDetails,omitempty"`
	Witnesses          string        `json:"witnesses,omitempty"`
	Complied           *bool         `json:"complied,omitempty"`
	TimeLeftBuilding   string        `json:"timeLeftBuilding,omitempty"`
	ManagerNotified    bool          `json:"managerNotified,omitempty"`
	ReporterID         string        `json:"reporterId,omitempty"`
}

// ParseTimestamp parses an incident timestamp string. Consumers must treat a
// parse failure as "outside any date range" rather than an error worth
// surfacing; the raw string is still displayable.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t in the canonical wire format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Time returns the parsed timestamp, or the zero time if unparseable.
func (i *Incident) Time() (time.Time, bool) {
	return ParseTimestamp(i.Timestamp)
}

// OnDate reports whether the incident occurred on the given calendar day.
// Malformed timestamps are never "on" any date.
func (i *Incident) OnDate(day time.Time) bool {
	t, ok := i.Time()
	if !ok {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
