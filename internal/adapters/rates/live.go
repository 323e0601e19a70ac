package rates

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/middleware"
	"github.com/SscSPs/charity_box_app/internal/platform/metrics"
)

const LiveSourceName = "live"

// LiveRateSource builds a table from an external feed on every call.
// A failing or empty feed yields the base-only table, so conversions
// between foreign currencies fail while base passthrough keeps working.
type LiveRateSource struct {
	client  portssvc.RateFeedClient
	timeout time.Duration
	metrics *metrics.Collector
}

// LiveSourceOption is a functional option for configuring the live source
type LiveSourceOption func(*LiveRateSource)

func WithFetchTimeout(timeout time.Duration) LiveSourceOption {
	return func(s *LiveRateSource) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func WithLiveMetrics(m *metrics.Collector) LiveSourceOption {
	return func(s *LiveRateSource) {
		s.metrics = m
	}
}

func NewLiveRateSource(client portssvc.RateFeedClient, options ...LiveSourceOption) *LiveRateSource {
	s := &LiveRateSource{client: client, timeout: 5 * time.Second}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.RateSource = (*LiveRateSource)(nil)

func (s *LiveRateSource) Name() string { return LiveSourceName }

func (s *LiveRateSource) FetchRateTable(ctx context.Context) (domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	table := domain.NewRateTable(domain.BaseCurrency, LiveSourceName)

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	feed, err := s.client.FetchCurrentTable(fetchCtx)
	if err != nil {
		logger.Warn("Exchange rate feed unavailable, using base-only table", slog.String("error", err.Error()))
		s.metrics.RecordRateFetch(LiveSourceName, false)
		return table, nil
	}

	for _, r := range feed {
		c := domain.Currency(r.Code)
		if !c.IsSupported() || !r.Mid.IsPositive() {
			continue
		}
		table.Set(c, r.Mid)
		if table.EffectiveDate == "" {
			table.EffectiveDate = r.EffectiveDate
		}
	}

	if table.IsDegraded() {
		logger.Warn("Exchange rate feed returned no usable rates", slog.Int("feed_size", len(feed)))
		s.metrics.RecordRateFetch(LiveSourceName, false)
		return table, nil
	}

	s.metrics.RecordRateFetch(LiveSourceName, true)
	logger.Debug("Exchange rates fetched",
		slog.Int("rates", len(table.Rates)),
		slog.String("effective_date", table.EffectiveDate))
	return table, nil
}
