package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/cache"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/models"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/google/uuid"
)

// SpamService counts and records spam reports. Tallies are never
// deduplicated by reporter.
type SpamService struct {
	store   store.Store
	cache   *cache.TallyCache
	metrics *metrics.Metrics
}

func NewSpamService(st store.Store, tallies *cache.TallyCache, m *metrics.Metrics) *SpamService {
	return &SpamService{store: st, cache: tallies, metrics: m}
}

// Tally returns the number of spam reports filed against number. Cache
// failures fall through to the store. A count is only written back if no
// report was recorded while it was being taken.
func (s *SpamService) Tally(ctx context.Context, number string) (int64, error) {
	fill := false
	var snap cache.Snapshot
	if s.cache != nil {
		var err error
		snap, err = s.cache.Get(ctx, number)
		switch {
		case err != nil:
			s.metrics.IncrementTallyCache("error")
			slog.Warn("spam tally cache read failed", "error", err)
		case snap.Found:
			s.metrics.IncrementTallyCache("hit")
			return snap.Tally, nil
		default:
			s.metrics.IncrementTallyCache("miss")
			fill = true
		}
	}

	n, err := s.store.CountSpamReports(ctx, number)
	if err != nil {
		return 0, resolutionError("count spam reports", err)
	}

	if fill {
		written, err := s.cache.Fill(ctx, number, n, snap.Generation)
		if err != nil {
			slog.Warn("spam tally cache write failed", "error", err)
		} else if !written {
			s.metrics.IncrementTallyCache("stale")
		}
	}
	return n, nil
}

func (s *SpamService) ReportSpam(ctx context.Context, reporterID uuid.UUID, number string) (*models.SpamReport, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, required("number", "The phone number to report is required.")
	}

	report := &models.SpamReport{
		ID:             uuid.New(),
		ReportedNumber: number,
		ReporterID:     reporterID,
	}
	if err := s.store.CreateSpamReport(ctx, report); err != nil {
		return nil, resolutionError("create spam report", err)
	}
	s.metrics.IncrementWrite("spam_report")

	if err := s.cache.Invalidate(ctx, number); err != nil {
		slog.Warn("spam tally cache invalidation failed", "error", err)
	}
	return report, nil
}
