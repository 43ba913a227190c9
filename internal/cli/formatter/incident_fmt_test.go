package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercer/shiftdoc/internal/domain"
)

func TestDisplayTime(t *testing.T) {
	inc := domain.Incident{Timestamp: "2026-03-10T22:15:00"}
	assert.Equal(t, "Mar 10, 22:15", DisplayTime(inc))

	// Malformed timestamps display truncated raw text.
	raw := domain.Incident{Timestamp: "2026-03-10Tgarbage-tail"}
	assert.Equal(t, "2026-03-10Tgarba", DisplayTime(raw))

	short := domain.Incident{Timestamp: "bad"}
	assert.Equal(t, "bad", DisplayTime(short))
}

func TestGroupByAssociate(t *testing.T) {
	incidents := []domain.Incident{
		{ID: "1", AssociateID: "b", Timestamp: "2026-03-10T21:00:00"},
		{ID: "2", AssociateID: "a", Timestamp: "2026-03-10T22:00:00"},
		{ID: "3", AssociateID: "b", Timestamp: "2026-03-10T23:00:00"},
	}
	names := map[string]string{"a": "Zoe", "b": "Adam"}

	groups := GroupByAssociate(incidents, names)
	require.Len(t, groups, 2)

	// Bucket order is by name, not by id.
	assert.Equal(t, "Adam", groups[0].Name)
	assert.Equal(t, "Zoe", groups[1].Name)

	// Within a bucket, newest first.
	require.Len(t, groups[0].Incidents, 2)
	assert.Equal(t, "3", groups[0].Incidents[0].ID)
	assert.Equal(t, "1", groups[0].Incidents[1].ID)
}

func TestGroupByAssociate_UnknownName(t *testing.T) {
	groups := GroupByAssociate([]domain.Incident{
		{ID: "1", AssociateID: "ghost", Timestamp: "2026-03-10T21:00:00"},
	}, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, "Unknown Associate", groups[0].Name)
}
