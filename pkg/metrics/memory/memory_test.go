package memory

import (
	"testing"
	"time"

	"bank-accounts/pkg/metrics"
)

func TestCollector_RecordDeposit(t *testing.T) {
	c := NewCollector()

	c.RecordDeposit("savings", true, 1000, time.Microsecond)
	c.RecordDeposit("savings", true, 500, time.Microsecond)
	c.RecordDeposit("savings", false, -1, time.Microsecond)

	vm := c.Variant("savings")
	if vm == nil {
		t.Fatal("Expected metrics for savings")
	}
	if vm.Deposits != 2 {
		t.Errorf("Expected 2 deposits, got %d", vm.Deposits)
	}
	if vm.RejectedDeposits != 1 {
		t.Errorf("Expected 1 rejected deposit, got %d", vm.RejectedDeposits)
	}
	if vm.DepositedAmount != 1500 {
		t.Errorf("Expected deposited amount 1500, got %v", vm.DepositedAmount)
	}
	if len(vm.DepositLatencies) != 3 {
		t.Errorf("Expected 3 latencies, got %d", len(vm.DepositLatencies))
	}
}

func TestCollector_RecordWithdraw(t *testing.T) {
	c := NewCollector()

	c.RecordWithdraw("checking", false, 2000, 0)
	c.RecordWithdraw("checking", true, 100, 0)

	vm := c.Variant("checking")
	if vm.Withdrawals != 1 || vm.RejectedWithdraws != 1 {
		t.Errorf("Expected 1 withdrawal and 1 rejection, got %d and %d", vm.Withdrawals, vm.RejectedWithdraws)
	}
	if vm.WithdrawnAmount != 100 {
		t.Errorf("Expected withdrawn amount 100, got %v", vm.WithdrawnAmount)
	}

	if c.Variant("trust") != nil {
		t.Error("Expected nil metrics for an unseen variant")
	}
}

func TestCollector_SnapshotAndReset(t *testing.T) {
	c := NewCollector()

	c.RecordBulk(metrics.OpDeposit, "trust", 3, 1)
	c.RecordBulk(metrics.OpWithdraw, "trust", 0, 4)
	c.RecordDeposit("trust", true, 10, 0)

	snap := c.Snapshot()
	if snap.Bulk[metrics.OpDeposit] != 1 || snap.Bulk[metrics.OpWithdraw] != 1 {
		t.Errorf("Unexpected bulk counts: %v", snap.Bulk)
	}
	trust := snap.Variants["trust"]
	if trust.BulkSucceeded != 3 || trust.BulkFailed != 5 {
		t.Errorf("Expected 3 succeeded and 5 failed, got %d and %d", trust.BulkSucceeded, trust.BulkFailed)
	}

	// Snapshot must not alias internal state.
	c.RecordDeposit("trust", true, 10, 0)
	if snap.Variants["trust"].Deposits != 1 {
		t.Error("Snapshot changed after further recording")
	}

	c.Reset()
	if len(c.Snapshot().Variants) != 0 {
		t.Error("Expected no variants after reset")
	}
}

func TestCollector_ImplementsInterface(t *testing.T) {
	var _ metrics.Collector = NewCollector()
	var _ metrics.Collector = metrics.NoOpCollector{}
}

func TestCollector_DisplayNotCountedAsOutcome(t *testing.T) {
	c := NewCollector()

	c.RecordBulk(metrics.OpDisplay, "savings", 4, 0)
	c.RecordBulk(metrics.OpDeposit, "savings", 3, 1)

	vm := c.Variant("savings")
	if vm.BulkSucceeded != 3 || vm.BulkFailed != 1 {
		t.Errorf("Expected 3 succeeded and 1 failed, got %d and %d", vm.BulkSucceeded, vm.BulkFailed)
	}
	if c.Snapshot().Bulk[metrics.OpDisplay] != 1 {
		t.Error("Expected the display operation itself to be counted")
	}
}
