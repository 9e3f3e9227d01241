package prometheus

import (
	"time"

	"bank-accounts/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements metrics.Collector for Prometheus.
type Collector struct {
	namespace string

	// Counters
	deposits    *prometheus.CounterVec
	withdrawals *prometheus.CounterVec
	bulkOps     *prometheus.CounterVec
	bulkResults *prometheus.CounterVec

	// Histograms
	depositAmount   *prometheus.HistogramVec
	withdrawAmount  *prometheus.HistogramVec
	depositLatency  *prometheus.HistogramVec
	withdrawLatency *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector.
func NewCollector(namespace string) *Collector {
	amountBuckets := prometheus.ExponentialBuckets(1, 4, 10) // 1 to ~262k
	latencyBuckets := prometheus.ExponentialBuckets(0.000001, 4, 10)

	return &Collector{
		namespace: namespace,
		deposits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deposits_total",
				Help:      "Total number of deposit attempts per variant and outcome",
			},
			[]string{"variant", "status"},
		),
		withdrawals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "withdrawals_total",
				Help:      "Total number of withdrawal attempts per variant and outcome",
			},
			[]string{"variant", "status"},
		),
		bulkOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bulk_operations_total",
				Help:      "Total number of bulk operations over account collections",
			},
			[]string{"operation", "variant"},
		),
		bulkResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bulk_account_results_total",
				Help:      "Per-account outcomes of bulk deposits and withdrawals",
			},
			[]string{"operation", "variant", "status"},
		),
		depositAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "deposit_amount",
				Help:      "Requested amount of accepted deposits",
				Buckets:   amountBuckets,
			},
			[]string{"variant"},
		),
		withdrawAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "withdraw_amount",
				Help:      "Requested amount of accepted withdrawals",
				Buckets:   amountBuckets,
			},
			[]string{"variant"},
		),
		depositLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "deposit_duration_seconds",
				Help:      "Deposit operation latency",
				Buckets:   latencyBuckets,
			},
			[]string{"variant"},
		),
		withdrawLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "withdraw_duration_seconds",
				Help:      "Withdrawal operation latency",
				Buckets:   latencyBuckets,
			},
			[]string{"variant"},
		),
	}
}

// Register registers all metrics with the given Prometheus registerer.
func (c *Collector) Register(registerer prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		c.deposits,
		c.withdrawals,
		c.bulkOps,
		c.bulkResults,
		c.depositAmount,
		c.withdrawAmount,
		c.depositLatency,
		c.withdrawLatency,
	}

	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordDeposit records a deposit attempt.
func (c *Collector) RecordDeposit(variant string, success bool, amount float64, duration time.Duration) {
	c.deposits.WithLabelValues(variant, metrics.Status(success)).Inc()
	if success {
		c.depositAmount.WithLabelValues(variant).Observe(amount)
	}
	c.depositLatency.WithLabelValues(variant).Observe(duration.Seconds())
}

// RecordWithdraw records a withdrawal attempt.
func (c *Collector) RecordWithdraw(variant string, success bool, amount float64, duration time.Duration) {
	c.withdrawals.WithLabelValues(variant, metrics.Status(success)).Inc()
	if success {
		c.withdrawAmount.WithLabelValues(variant).Observe(amount)
	}
	c.withdrawLatency.WithLabelValues(variant).Observe(duration.Seconds())
}

// RecordBulk records the outcome of a bulk operation.
func (c *Collector) RecordBulk(operation metrics.Operation, variant string, succeeded, failed int) {
	op := string(operation)
	c.bulkOps.WithLabelValues(op, variant).Inc()
	if !operation.Transacts() {
		return
	}
	c.bulkResults.WithLabelValues(op, variant, metrics.Status(true)).Add(float64(succeeded))
	c.bulkResults.WithLabelValues(op, variant, metrics.Status(false)).Add(float64(failed))
}
