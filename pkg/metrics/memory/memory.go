package memory

import (
	"sync"
	"time"

	"bank-accounts/pkg/metrics"
)

// Collector implements metrics.Collector in memory, mainly for tests and the
// JSON metrics endpoint.
type Collector struct {
	mu sync.RWMutex

	variants map[string]*VariantMetrics
	bulk     map[metrics.Operation]int64
}

// VariantMetrics holds metrics for a single account variant.
type VariantMetrics struct {
	// Attempt counts
	Deposits          int64
	RejectedDeposits  int64
	Withdrawals       int64
	RejectedWithdraws int64

	// Amounts moved by successful attempts
	DepositedAmount float64
	WithdrawnAmount float64

	// Latencies
	DepositLatencies  []time.Duration
	WithdrawLatencies []time.Duration

	// Per-account outcomes of bulk deposits and withdrawals
	BulkSucceeded int64
	BulkFailed    int64
}

// NewCollector creates a new in-memory metrics collector.
func NewCollector() *Collector {
	return &Collector{
		variants: make(map[string]*VariantMetrics),
		bulk:     make(map[metrics.Operation]int64),
	}
}

// variant returns the metrics for the given variant, creating them if needed.
// The caller must hold mu.
func (c *Collector) variant(name string) *VariantMetrics {
	vm, ok := c.variants[name]
	if !ok {
		vm = &VariantMetrics{}
		c.variants[name] = vm
	}
	return vm
}

// RecordDeposit records a deposit attempt.
func (c *Collector) RecordDeposit(variant string, success bool, amount float64, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vm := c.variant(variant)
	if success {
		vm.Deposits++
		vm.DepositedAmount += amount
	} else {
		vm.RejectedDeposits++
	}
	vm.DepositLatencies = append(vm.DepositLatencies, duration)
}

// RecordWithdraw records a withdrawal attempt.
func (c *Collector) RecordWithdraw(variant string, success bool, amount float64, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vm := c.variant(variant)
	if success {
		vm.Withdrawals++
		vm.WithdrawnAmount += amount
	} else {
		vm.RejectedWithdraws++
	}
	vm.WithdrawLatencies = append(vm.WithdrawLatencies, duration)
}

// RecordBulk records the outcome of a bulk operation.
func (c *Collector) RecordBulk(operation metrics.Operation, variant string, succeeded, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bulk[operation]++
	vm := c.variant(variant)
	if operation.Transacts() {
		vm.BulkSucceeded += int64(succeeded)
		vm.BulkFailed += int64(failed)
	}
}

// Snapshot is a copy of the collected metrics.
type Snapshot struct {
	Variants map[string]VariantMetrics   `json:"variants"`
	Bulk     map[metrics.Operation]int64 `json:"bulk"`
}

// Snapshot returns a copy of the current metrics state.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := Snapshot{
		Variants: make(map[string]VariantMetrics, len(c.variants)),
		Bulk:     make(map[metrics.Operation]int64, len(c.bulk)),
	}
	for name, vm := range c.variants {
		cp := *vm
		cp.DepositLatencies = append([]time.Duration(nil), vm.DepositLatencies...)
		cp.WithdrawLatencies = append([]time.Duration(nil), vm.WithdrawLatencies...)
		snapshot.Variants[name] = cp
	}
	for op, n := range c.bulk {
		snapshot.Bulk[op] = n
	}

	return snapshot
}

// Variant returns a copy of the metrics for one variant, or nil if nothing
// was recorded for it.
func (c *Collector) Variant(name string) *VariantMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if vm, exists := c.variants[name]; exists {
		cp := *vm
		return &cp
	}
	return nil
}

// Reset clears all collected metrics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.variants = make(map[string]*VariantMetrics)
	c.bulk = make(map[metrics.Operation]int64)
}
