package netgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercer/shiftdoc/internal/domain"
)

func reported(reporter, target string) domain.Incident {
	return domain.Incident{
		AssociateID: target,
		ReporterID:  reporter,
		Type:        domain.ViolationHostility,
		Action:      domain.ActionLogged,
	}
}

func TestBuild_TalliesBothDirections(t *testing.T) {
	g := Build([]domain.Incident{
		reported("bob", "alice"),
		reported("bob", "alice"),
		reported("alice", "carol"),
	})

	require.Contains(t, g, "bob")
	assert.Equal(t, 2, g["bob"].ReportedOthers["alice"])
	assert.Empty(t, g["bob"].ReportedBy)

	require.Contains(t, g, "alice")
	assert.Equal(t, 2, g["alice"].ReportedBy["bob"])
	assert.Equal(t, 1, g["alice"].ReportedOthers["carol"])

	require.Contains(t, g, "carol")
	assert.Equal(t, 1, g["carol"].ReportedBy["alice"])
}

func TestBuild_ExcludesSelfReportsAndMissingReporter(t *testing.T) {
	g := Build([]domain.Incident{
		reported("alice", "alice"),
		reported("", "bob"),
	})
	assert.Empty(t, g)
}

func TestIDs_Sorted(t *testing.T) {
	g := Build([]domain.Incident{
		reported("zed", "abe"),
		reported("abe", "mia"),
	})
	assert.Equal(t, []string{"abe", "mia", "zed"}, g.IDs())
}

func TestSortedCounts_OrdersByCountThenID(t *testing.T) {
	counts := SortedCounts(map[string]int{"c": 1, "a": 1, "b": 3})
	assert.Equal(t, []Count{
		{ID: "b", N: 3},
		{ID: "a", N: 1},
		{ID: "c", N: 1},
	}, counts)
}
