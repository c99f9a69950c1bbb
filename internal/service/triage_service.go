package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/classify"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/storage"
)

// TriagedReport is a hazard report enriched with computed triage grades.
// Grades are derived from the description on every read; reports themselves
// stay immutable.
type TriagedReport struct {
	model.HazardReport
	Severity classify.Severity `json:"severity"`
	Priority classify.Priority `json:"priority"`
}

// TriageFilter narrows the admin report queue.
type TriageFilter struct {
	Priority classify.Priority // empty matches all
	Query    string            // case-insensitive match on description or location
}

// TriageStats summarizes the queue for the admin dashboard.
type TriageStats struct {
	Total      int                       `json:"total"`
	Critical   int                       `json:"critical"`
	ByPriority map[classify.Priority]int `json:"byPriority"`
}

// TriageService serves the admin portal's read-only triage views.
type TriageService interface {
	Triage(ctx context.Context, filter TriageFilter) ([]TriagedReport, error)
	Stats(ctx context.Context) (TriageStats, error)
}

type triageService struct {
	store storage.Store
}

// NewTriageService creates a triage service.
func NewTriageService(store storage.Store) TriageService {
	return &triageService{store: store}
}

// Triage returns graded reports matching the filter, most recent first.
func (s *triageService) Triage(ctx context.Context, filter TriageFilter) ([]TriagedReport, error) {
	reports, err := s.store.ListHazardReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hazard reports: %w", err)
	}

	query := strings.ToLower(filter.Query)
	triaged := make([]TriagedReport, 0, len(reports))
	for _, r := range reports {
		t := TriagedReport{
			HazardReport: r,
			Severity:     classify.SeverityOf(r.Description),
			Priority:     classify.PriorityOf(r.Description),
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Description), query) &&
			!strings.Contains(strings.ToLower(r.Location), query) {
			continue
		}
		triaged = append(triaged, t)
	}
	return triaged, nil
}

// Stats returns queue totals grouped by priority.
func (s *triageService) Stats(ctx context.Context) (TriageStats, error) {
	reports, err := s.store.ListHazardReports(ctx)
	if err != nil {
		return TriageStats{}, fmt.Errorf("list hazard reports: %w", err)
	}

	stats := TriageStats{
		Total:      len(reports),
		ByPriority: make(map[classify.Priority]int),
	}
	for _, r := range reports {
		p := classify.PriorityOf(r.Description)
		stats.ByPriority[p]++
		if p == classify.PriorityCritical {
			stats.Critical++
		}
	}
	return stats, nil
}
