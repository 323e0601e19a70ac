package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry with the charity box metrics.
// All methods are safe to call on a nil *Collector, which records nothing.
type Collector struct {
	registry           *prometheus.Registry
	depositsTotal      *prometheus.CounterVec
	settlementsTotal   *prometheus.CounterVec
	settlementDuration prometheus.Histogram
	rateFetchesTotal   *prometheus.CounterVec
	settledAmount      *prometheus.CounterVec
	balanceAdjusts     *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		depositsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charitybox_deposits_total",
			Help: "Total number of accepted deposits by currency",
		}, []string{"currency"}),
		settlementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charitybox_settlements_total",
			Help: "Total number of box settlements by outcome",
		}, []string{"outcome"}),
		settlementDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "charitybox_settlement_duration_seconds",
			Help:    "Time taken to settle a box into its event account",
			Buckets: prometheus.DefBuckets,
		}),
		rateFetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charitybox_rate_fetches_total",
			Help: "Total number of exchange rate table fetches by source and outcome",
		}, []string{"source", "outcome"}),
		settledAmount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charitybox_settled_amount_total",
			Help: "Total amount credited to event accounts by settlements, by account currency",
		}, []string{"currency"}),
		balanceAdjusts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "charitybox_balance_adjustments_total",
			Help: "Total number of direct event balance adjustments by currency and direction",
		}, []string{"currency", "direction"}),
	}
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func (c *Collector) RecordDeposit(currency string) {
	if c == nil {
		return
	}
	c.depositsTotal.WithLabelValues(currency).Inc()
}

func (c *Collector) RecordSettlement(duration time.Duration, success bool) {
	if c == nil {
		return
	}
	c.settlementsTotal.WithLabelValues(outcome(success)).Inc()
	c.settlementDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordRateFetch(source string, success bool) {
	if c == nil {
		return
	}
	c.rateFetchesTotal.WithLabelValues(source, outcome(success)).Inc()
}

// RecordSettledAmount adds a settlement total to the per-currency credit counter.
// Events are not a label: their number grows without bound.
func (c *Collector) RecordSettledAmount(currency string, amount float64) {
	if c == nil || amount <= 0 {
		return
	}
	c.settledAmount.WithLabelValues(currency).Add(amount)
}

func (c *Collector) RecordBalanceAdjustment(currency string, delta float64) {
	if c == nil || delta == 0 {
		return
	}
	direction := "credit"
	if delta < 0 {
		direction = "debit"
	}
	c.balanceAdjusts.WithLabelValues(currency, direction).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
