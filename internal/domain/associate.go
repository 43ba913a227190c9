package domain

import "strings"

// Associate is a supervised employee who may be the subject of an incident.
// Identity is the UUID; EmployeeID uniqueness is only enforced when merging
// imported rosters, not as a hard invariant.
type Associate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"eeid"`
}

// MergeAssociates combines the current roster with imported entries,
// deduplicating by EmployeeID. The first occurrence wins, so existing
// records are never replaced by imported ones.
func MergeAssociates(current, imported []Associate) []Associate {
	seen := make(map[string]bool, len(current))
	merged := make([]Associate, 0, len(current)+len(imported))
	for _, a := range current {
		key := strings.TrimSpace(a.EmployeeID)
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		merged = append(merged, a)
	}
	for _, a := range imported {
		key := strings.TrimSpace(a.EmployeeID)
		if key != "" && seen[key] {
			continue
		}
		if key != "" {
			seen[key] = true
		}
		merged = append(merged, a)
	}
	return merged
}
