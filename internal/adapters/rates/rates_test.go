package rates_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/charity_box_app/internal/adapters/rates"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const nbpBody = `[{"table":"A","no":"200/A/NBP/2026","effectiveDate":"2026-10-14","rates":[
	{"currency":"dolar amerykański","code":"USD","mid":3.6512},
	{"currency":"euro","code":"EUR","mid":4.2611},
	{"currency":"funt szterling","code":"GBP","mid":4.8850},
	{"currency":"jen (Japonia)","code":"JPY","mid":0.024153}
]}]`

func TestFixedRateSource(t *testing.T) {
	src := rates.NewFixedRateSource()
	table, err := src.FetchRateTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fixed", src.Name())
	assert.Equal(t, domain.PLN, table.Base)
	for c, want := range map[domain.Currency]string{domain.PLN: "1", domain.EUR: "4.25", domain.USD: "3.95", domain.GBP: "4.95"} {
		rate, ok := table.Rate(c)
		require.True(t, ok, c)
		assert.Equal(t, want, rate.String(), c)
	}
}

func TestNBPClient_FetchCurrentTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(nbpBody))
	}))
	defer srv.Close()

	feed, err := rates.NewNBPClient(srv.URL, srv.Client()).FetchCurrentTable(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 4)
	assert.Equal(t, "USD", feed[0].Code)
	assert.Equal(t, "3.6512", feed[0].Mid.String())
	assert.Equal(t, "2026-10-14", feed[0].EffectiveDate)
}

func TestNBPClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "down"},
		{name: "malformed body", status: http.StatusOK, body: "{not json"},
		{name: "no tables", status: http.StatusOK, body: "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := rates.NewNBPClient(srv.URL, nil).FetchCurrentTable(context.Background())
			assert.Error(t, err)
		})
	}
}

type MockFeedClient struct {
	mock.Mock
}

func (m *MockFeedClient) FetchCurrentTable(ctx context.Context) ([]domain.FeedRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedRate), args.Error(1)
}

func TestLiveRateSource_BuildsTableFromFeed(t *testing.T) {
	feed := new(MockFeedClient)
	feed.On("FetchCurrentTable", mock.Anything).Return([]domain.FeedRate{
		{Code: "EUR", Mid: decimal.RequireFromString("4.00"), EffectiveDate: "2026-10-14"},
		{Code: "USD", Mid: decimal.RequireFromString("5.00"), EffectiveDate: "2026-10-14"},
		{Code: "JPY", Mid: decimal.RequireFromString("0.02"), EffectiveDate: "2026-10-14"},
		{Code: "GBP", Mid: decimal.Zero, EffectiveDate: "2026-10-14"},
	}, nil).Once()

	table, err := rates.NewLiveRateSource(feed).FetchRateTable(context.Background())
	require.NoError(t, err)

	assert.False(t, table.IsDegraded())
	assert.Equal(t, "2026-10-14", table.EffectiveDate)
	_, hasGBP := table.Rate(domain.GBP)
	assert.False(t, hasGBP)
	_, hasJPY := table.Rates[domain.Currency("JPY")]
	assert.False(t, hasJPY)

	got, err := table.Convert(decimal.RequireFromString("100.00"), domain.EUR, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, "80", got.String())
	feed.AssertExpectations(t)
}

func TestLiveRateSource_FeedFailureYieldsBaseOnlyTable(t *testing.T) {
	feed := new(MockFeedClient)
	feed.On("FetchCurrentTable", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	table, err := rates.NewLiveRateSource(feed, rates.WithFetchTimeout(time.Second)).FetchRateTable(context.Background())
	require.NoError(t, err)

	assert.True(t, table.IsDegraded())
	rate, ok := table.Rate(domain.PLN)
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	_, err = table.Convert(decimal.NewFromInt(1), domain.EUR, domain.PLN)
	assert.Error(t, err)
}

func TestLiveRateSource_AppliesTimeout(t *testing.T) {
	feed := new(MockFeedClient)
	feed.On("FetchCurrentTable", mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, 200*time.Millisecond)
	}).Return([]domain.FeedRate{}, nil).Once()

	table, err := rates.NewLiveRateSource(feed, rates.WithFetchTimeout(250*time.Millisecond)).FetchRateTable(context.Background())
	require.NoError(t, err)
	assert.True(t, table.IsDegraded())
}

// fakeCache stands in for redis using the go-redis result constructors.
type fakeCache struct {
	values  map[string]string
	getErr  error
	setErr  error
	setTTLs []time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	v, ok := c.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if c.setErr != nil {
		return redis.NewStatusResult("", c.setErr)
	}
	c.values[key] = string(value.([]byte))
	c.setTTLs = append(c.setTTLs, expiration)
	return redis.NewStatusResult("OK", nil)
}

type countingSource struct {
	table domain.RateTable
	err   error
	calls int
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) FetchRateTable(ctx context.Context) (domain.RateTable, error) {
	s.calls++
	return s.table, s.err
}

func TestCachedRateSource_CachesCompleteTables(t *testing.T) {
	fixed, _ := rates.NewFixedRateSource().FetchRateTable(context.Background())
	next := &countingSource{table: fixed}
	cache := newFakeCache()
	src := rates.NewCachedRateSource(next, cache, time.Minute)

	first, err := src.FetchRateTable(context.Background())
	require.NoError(t, err)
	second, err := src.FetchRateTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, []time.Duration{time.Minute}, cache.setTTLs)
	rate, ok := second.Rate(domain.EUR)
	require.True(t, ok)
	assert.Equal(t, "4.25", rate.String())
	assert.Equal(t, first.Source, second.Source)
	assert.Equal(t, "counting", src.Name())
}

func TestCachedRateSource_SkipsDegradedTables(t *testing.T) {
	next := &countingSource{table: domain.NewRateTable(domain.PLN, "live")}
	cache := newFakeCache()
	src := rates.NewCachedRateSource(next, cache, time.Minute)

	_, err := src.FetchRateTable(context.Background())
	require.NoError(t, err)
	_, err = src.FetchRateTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls)
	assert.Empty(t, cache.values)
}

func TestCachedRateSource_RedisFailuresFallThrough(t *testing.T) {
	fixed, _ := rates.NewFixedRateSource().FetchRateTable(context.Background())
	next := &countingSource{table: fixed}
	cache := newFakeCache()
	cache.getErr = errors.New("dial tcp: connection refused")
	cache.setErr = errors.New("dial tcp: connection refused")

	table, err := rates.NewCachedRateSource(next, cache, time.Minute).FetchRateTable(context.Background())
	require.NoError(t, err)
	assert.False(t, table.IsDegraded())
	assert.Equal(t, 1, next.calls)
}

func TestCachedRateSource_IgnoresCorruptEntries(t *testing.T) {
	fixed, _ := rates.NewFixedRateSource().FetchRateTable(context.Background())
	next := &countingSource{table: fixed}
	cache := newFakeCache()
	cache.values["charitybox:rates:table"] = "{broken"

	table, err := rates.NewCachedRateSource(next, cache, time.Minute).FetchRateTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)

	var stored domain.RateTable
	require.NoError(t, json.Unmarshal([]byte(cache.values["charitybox:rates:table"]), &stored))
	assert.Equal(t, len(table.Rates), len(stored.Rates))
}
