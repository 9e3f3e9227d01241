package metrics

import (
	"time"
)

// Collector defines the interface for collecting account transaction metrics.
// Implementations can export metrics to various backends (Prometheus, in-memory, etc.).
type Collector interface {
	// Single account operations
	RecordDeposit(variant string, success bool, amount float64, duration time.Duration)
	RecordWithdraw(variant string, success bool, amount float64, duration time.Duration)

	// Collection-level operations. Display never changes an account, so its
	// succeeded/failed counts are not folded into transaction outcomes.
	RecordBulk(operation Operation, variant string, succeeded, failed int)
}

// Operation names a bulk operation over a collection of accounts.
type Operation string

const (
	OpDisplay  Operation = "display"
	OpDeposit  Operation = "deposit"
	OpWithdraw Operation = "withdraw"
)

// Transacts reports whether op moves money.
func (op Operation) Transacts() bool {
	return op == OpDeposit || op == OpWithdraw
}

// Status returns the label used for a success flag.
func Status(success bool) string {
	if success {
		return "success"
	}
	return "rejected"
}

// NoOpCollector is a no-op implementation of Collector.
// It's used as the default collector when metrics are not needed.
type NoOpCollector struct{}

// RecordDeposit does nothing.
func (NoOpCollector) RecordDeposit(variant string, success bool, amount float64, duration time.Duration) {
}

// RecordWithdraw does nothing.
func (NoOpCollector) RecordWithdraw(variant string, success bool, amount float64, duration time.Duration) {
}

// RecordBulk does nothing.
func (NoOpCollector) RecordBulk(operation Operation, variant string, succeeded, failed int) {}
