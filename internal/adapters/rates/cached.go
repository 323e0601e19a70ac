package rates

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const rateTableCacheKey = "charitybox:rates:table"

// RateCache is the subset of the redis client the cache needs.
type RateCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedRateSource serves rate tables from redis and refills it from the
// wrapped source. Degraded tables are never cached; redis failures fall
// through to the wrapped source.
type CachedRateSource struct {
	next  portssvc.RateSource
	cache RateCache
	ttl   time.Duration
}

func NewCachedRateSource(next portssvc.RateSource, cache RateCache, ttl time.Duration) *CachedRateSource {
	return &CachedRateSource{next: next, cache: cache, ttl: ttl}
}

var _ portssvc.RateSource = (*CachedRateSource)(nil)

func (s *CachedRateSource) Name() string { return s.next.Name() }

func (s *CachedRateSource) FetchRateTable(ctx context.Context) (domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	raw, err := s.cache.Get(ctx, rateTableCacheKey).Bytes()
	switch {
	case err == nil:
		var table domain.RateTable
		if uerr := json.Unmarshal(raw, &table); uerr == nil && !table.IsDegraded() {
			return table, nil
		}
		logger.Warn("Discarding unreadable cached rate table")
	case !errors.Is(err, redis.Nil):
		logger.Warn("Rate cache read failed", slog.String("error", err.Error()))
	}

	table, err := s.next.FetchRateTable(ctx)
	if err != nil {
		return domain.RateTable{}, err
	}
	if table.IsDegraded() {
		return table, nil
	}

	payload, err := json.Marshal(table)
	if err != nil {
		logger.Warn("Failed to encode rate table for cache", slog.String("error", err.Error()))
		return table, nil
	}
	if err := s.cache.Set(ctx, rateTableCacheKey, payload, s.ttl).Err(); err != nil {
		logger.Warn("Rate cache write failed", slog.String("error", err.Error()))
	}
	return table, nil
}
