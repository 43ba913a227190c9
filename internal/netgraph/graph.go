// Package netgraph derives the reporter-to-target incident tally used by the
// network view: who reports whom, and how often.
package netgraph

import (
	"sort"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// Entry is one associate's reporting activity.
type Entry struct {
	// ReportedOthers maps target associate ID to the number of incidents
	// this associate reported against them.
	ReportedOthers map[string]int
	// ReportedBy maps reporter associate ID to the number of incidents they
	// reported against this associate.
	ReportedBy map[string]int
}

// Graph maps associate ID to reporting activity. Associates with no activity
// on either side have no entry at all.
type Graph map[string]*Entry

// Build tallies reporting relationships. Self-reports (reporter equals
// subject) are excluded, as are incidents without a reporter.
func Build(incidents []domain.Incident) Graph {
	g := make(Graph)
	for _, inc := range incidents {
		reporter := inc.ReporterID
		target := inc.AssociateID
		if reporter == "" || reporter == target {
			continue
		}
		g.entry(reporter).ReportedOthers[target]++
		g.entry(target).ReportedBy[reporter]++
	}
	return g
}

func (g Graph) entry(id string) *Entry {
	e, ok := g[id]
	if !ok {
		e = &Entry{
			ReportedOthers: make(map[string]int),
			ReportedBy:     make(map[string]int),
		}
		g[id] = e
	}
	return e
}

// IDs returns the participating associate IDs in sorted order, for
// deterministic rendering.
func (g Graph) IDs() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SortedCounts flattens a target/reporter count map into ordered pairs.
func SortedCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for id, n := range m {
		counts = append(counts, Count{ID: id, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].ID < counts[j].ID
	})
	return counts
}

// Count pairs an associate ID with an incident count.
type Count struct {
	ID string
	N  int
}
