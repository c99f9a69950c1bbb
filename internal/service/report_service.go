package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aditi-Ethiraj14/OceanSync/internal/cache"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/errors"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/model"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/observability"
	"github.com/Aditi-Ethiraj14/OceanSync/internal/storage"
)

const (
	reportListCacheKey = "hazard_reports:all"
	reportListCacheTTL = 30 * time.Second
)

// SubmitReportInput carries the validated fields of a report submission.
type SubmitReportInput struct {
	Description string
	Latitude    float64
	Longitude   float64
	ImageURL    string
	AudioURL    string
	Location    string
	UserID      string
}

// ReportService handles hazard report submission and listing.
type ReportService interface {
	Submit(ctx context.Context, input SubmitReportInput) (*model.HazardReport, error)
	ListAll(ctx context.Context) ([]model.HazardReport, error)
	ListByUser(ctx context.Context, userID string) ([]model.HazardReport, error)
}

type reportService struct {
	store   storage.Store
	cache   *cache.Client
	metrics *observability.Metrics
}

// NewReportService creates a report service. The cache client may be nil, in
// which case every list call goes straight to the store.
func NewReportService(store storage.Store, cache *cache.Client, metrics *observability.Metrics) ReportService {
	return &reportService{store: store, cache: cache, metrics: metrics}
}

// Submit stores a new hazard report. The submitting user must be identified
// and must exist; the original client sent a raw userId with no server-side
// session check, and requiring a known user closes that gap.
func (s *reportService) Submit(ctx context.Context, input SubmitReportInput) (*model.HazardReport, error) {
	if input.UserID == "" {
		return nil, errors.ErrUserIDRequired
	}
	if _, err := s.store.GetUser(ctx, input.UserID); err != nil {
		return nil, errors.ErrUnknownUser
	}

	report := &model.HazardReport{
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		AudioURL:    input.AudioURL,
		Location:    input.Location,
		UserID:      input.UserID,
	}
	if err := s.store.CreateHazardReport(ctx, report); err != nil {
		return nil, fmt.Errorf("create hazard report: %w", err)
	}

	_ = s.cache.Delete(ctx, reportListCacheKey)
	s.metrics.IncReportsSubmitted()
	return report, nil
}

// ListAll returns every report, most recent first, with a short read-through
// cache in front of the store.
func (s *reportService) ListAll(ctx context.Context) ([]model.HazardReport, error) {
	if data, _ := s.cache.Get(ctx, reportListCacheKey); data != nil {
		var cached []model.HazardReport
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	reports, err := s.store.ListHazardReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hazard reports: %w", err)
	}
	if reports == nil {
		reports = []model.HazardReport{}
	}

	if payload, err := json.Marshal(reports); err == nil {
		_ = s.cache.Set(ctx, reportListCacheKey, payload, reportListCacheTTL)
	}
	return reports, nil
}

// ListByUser returns the given user's reports, most recent first. An unknown
// user yields an empty list, indistinguishable from a user with no reports.
func (s *reportService) ListByUser(ctx context.Context, userID string) ([]model.HazardReport, error) {
	reports, err := s.store.ListHazardReportsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list hazard reports by user: %w", err)
	}
	if reports == nil {
		reports = []model.HazardReport{}
	}
	return reports, nil
}
