package collection

import (
	"bytes"
	"strings"
	"testing"

	"bank-accounts/pkg/account"
	"bank-accounts/pkg/logging"
	"bank-accounts/pkg/metrics"
	"bank-accounts/pkg/metrics/memory"
)

func newTestRunner[T account.Account](t *testing.T) (*Runner[T], *bytes.Buffer, *memory.Collector) {
	t.Helper()
	var buf bytes.Buffer
	mc := memory.NewCollector()
	r := NewRunner[T](Config{
		Out:     &buf,
		Logger:  logging.NewNoOpLogger(),
		Metrics: mc,
	})
	return r, &buf, mc
}

func TestRunner_Display(t *testing.T) {
	r, buf, mc := newTestRunner[*account.Savings](t)

	r.Display([]*account.Savings{
		account.NewSavings(account.SavingsConfig{Name: "Wonderwoman", Balance: 5000, InterestRate: 5}),
	})

	want := "\n" + DisplayHeader + "\n" +
		"[SavingsAccount: [Account: Wonderwoman: 5000], Interest Rate: 5%]\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}

	if mc.Snapshot().Bulk[metrics.OpDisplay] != 1 {
		t.Error("Expected one display operation to be recorded")
	}
	if vm := mc.Variant("savings"); vm.BulkSucceeded != 0 || vm.BulkFailed != 0 {
		t.Errorf("Display must not count as transaction outcomes, got %d/%d", vm.BulkSucceeded, vm.BulkFailed)
	}
}

func TestRunner_Deposit(t *testing.T) {
	r, buf, mc := newTestRunner[*account.Base](t)

	accounts := []*account.Base{
		account.NewBase(account.BaseConfig{Name: "Moe", Balance: 2000}),
	}
	r.Deposit(accounts, 1000)
	r.Deposit(accounts, -5)

	want := "\n" + DepositHeader + "\n" +
		"Deposited 1000 to [Account: Moe: 3000]\n" +
		"\n" + DepositHeader + "\n" +
		"Failed Deposit of -5 to [Account: Moe: 3000]\n"
	if buf.String() != want {
		t.Errorf("Unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}

	vm := mc.Variant("account")
	if vm == nil {
		t.Fatal("Expected metrics for account variant")
	}
	if vm.Deposits != 1 || vm.RejectedDeposits != 1 {
		t.Errorf("Expected 1 deposit and 1 rejection, got %d and %d", vm.Deposits, vm.RejectedDeposits)
	}
	if vm.BulkSucceeded != 1 || vm.BulkFailed != 1 {
		t.Errorf("Expected bulk 1/1, got %d/%d", vm.BulkSucceeded, vm.BulkFailed)
	}
}

func TestRunner_Withdraw(t *testing.T) {
	r, buf, mc := newTestRunner[*account.Checking](t)

	accounts := []*account.Checking{
		account.NewChecking(account.CheckingConfig{Name: "Moe2", Balance: 2000}),
		account.NewChecking(account.CheckingConfig{Name: "Curly2", Balance: 5000}),
	}
	results := r.Withdraw(accounts, 2000)

	if len(results) != 2 || results[0].OK || !results[1].OK {
		t.Fatalf("Unexpected results: %+v", results)
	}

	lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
	want := []string{
		WithdrawHeader,
		"Failed Withdrawal of 2000 from [CheckingAccount: [Account: Moe2: 2000], Fee: $1.5]",
		"Withdrew 2000 from [CheckingAccount: [Account: Curly2: 2998.5], Fee: $1.5]",
		"",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	vm := mc.Variant("checking")
	if vm.Withdrawals != 1 || vm.RejectedWithdraws != 1 {
		t.Errorf("Expected 1 withdrawal and 1 rejection, got %d and %d", vm.Withdrawals, vm.RejectedWithdraws)
	}
}

func TestRunner_EmptyCollectionUsesTypeVariant(t *testing.T) {
	r, buf, mc := newTestRunner[*account.Trust](t)

	r.Withdraw(nil, 100)

	if buf.String() != "\n"+WithdrawHeader+"\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
	if mc.Variant("trust") == nil {
		t.Error("Expected the bulk operation to be attributed to trust")
	}
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner[*account.Base](Config{})
	if r.out == nil || r.logger == nil || r.metrics == nil {
		t.Error("Expected defaults to be applied")
	}
}
