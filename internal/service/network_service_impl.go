package service

import (
	"context"

	"github.com/lmercer/shiftdoc/internal/netgraph"
	"github.com/lmercer/shiftdoc/internal/repository"
)

const unknownAssociate = "Unknown"

type networkService struct {
	incidents  repository.IncidentRepo
	associates repository.AssociateRepo
}

func NewNetworkService(incidents repository.IncidentRepo, associates repository.AssociateRepo) NetworkService {
	return &networkService{incidents: incidents, associates: associates}
}

func (s *networkService) Build(ctx context.Context) ([]NetworkRow, error) {
	incidents, err := s.incidents.All(ctx)
	if err != nil {
		return nil, err
	}
	associates, err := s.associates.All(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(associates))
	for _, a := range associates {
		names[a.ID] = a.Name
	}
	resolve := func(id string) string {
		if name, ok := names[id]; ok && name != "" {
			return name
		}
		// Incidents may reference since-deleted associates.
		return unknownAssociate
	}

	graph := netgraph.Build(incidents)

	rows := make([]NetworkRow, 0, len(graph))
	for _, id := range graph.IDs() {
		entry := graph[id]
		row := NetworkRow{ID: id, Name: resolve(id)}
		for _, c := range netgraph.SortedCounts(entry.ReportedOthers) {
			row.ReportedOthers = append(row.ReportedOthers, NamedCount{ID: c.ID, Name: resolve(c.ID), Count: c.N})
		}
		for _, c := range netgraph.SortedCounts(entry.ReportedBy) {
			row.ReportedBy = append(row.ReportedBy, NamedCount{ID: c.ID, Name: resolve(c.ID), Count: c.N})
		}
		rows = append(rows, row)
	}
	return rows, nil
}
