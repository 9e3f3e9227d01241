package collection

import (
	"testing"

	"bank-accounts/pkg/account"
)

func TestDisplayAll(t *testing.T) {
	accounts := []*account.Base{
		account.NewBase(account.BaseConfig{}),
		account.NewBase(account.BaseConfig{Name: "Larry"}),
	}

	lines := DisplayAll(accounts)
	want := []string{
		"[Account: Unnamed Account: 0]",
		"[Account: Larry: 0]",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestDisplayAll_Empty(t *testing.T) {
	if lines := DisplayAll([]*account.Trust{}); len(lines) != 0 {
		t.Errorf("Expected no lines, got %v", lines)
	}
}

func TestDepositAll_IndependentOutcomes(t *testing.T) {
	accounts := []*account.Checking{
		account.NewChecking(account.CheckingConfig{Name: "A", Balance: 10}),
		account.NewChecking(account.CheckingConfig{Name: "B", Balance: 20}),
	}

	results := DepositAll(accounts, -1)
	for _, r := range results {
		if r.OK {
			t.Errorf("account %d: negative deposit should fail", r.Index)
		}
	}

	results = DepositAll(accounts, 5)
	if Succeeded(results) != 2 {
		t.Errorf("Expected 2 successes, got %d", Succeeded(results))
	}
	if accounts[0].Balance() != 15 || accounts[1].Balance() != 25 {
		t.Errorf("Unexpected balances %v, %v", accounts[0].Balance(), accounts[1].Balance())
	}
}

func TestWithdrawAll_FailureDoesNotBlockOthers(t *testing.T) {
	accounts := []*account.Base{
		account.NewBase(account.BaseConfig{Name: "Poor", Balance: 100}),
		account.NewBase(account.BaseConfig{Name: "Rich", Balance: 5000}),
		account.NewBase(account.BaseConfig{Name: "Exact", Balance: 2000}),
	}

	results := WithdrawAll(accounts, 2000)

	wantOK := []bool{false, true, true}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("Expected index %d, got %d", i, r.Index)
		}
		if r.OK != wantOK[i] {
			t.Errorf("account %d: expected ok=%v, got %v", i, wantOK[i], r.OK)
		}
		if r.Variant != account.VariantBase {
			t.Errorf("Expected variant %q, got %q", account.VariantBase, r.Variant)
		}
		if r.Account != accounts[i].String() {
			t.Errorf("Expected display %q, got %q", accounts[i].String(), r.Account)
		}
	}

	if accounts[0].Balance() != 100 {
		t.Errorf("Rejected account balance changed: %v", accounts[0].Balance())
	}
}

func TestWithdrawAll_TrustLimits(t *testing.T) {
	accounts := []*account.Trust{
		account.NewTrust(account.TrustConfig{Name: "T", Balance: 100000}),
	}

	for i := 0; i < account.TrustMaxWithdrawals; i++ {
		if Succeeded(WithdrawAll(accounts, 10)) != 1 {
			t.Fatalf("withdrawal %d should succeed", i+1)
		}
	}
	if Succeeded(WithdrawAll(accounts, 10)) != 0 {
		t.Error("Expected withdrawal beyond the limit to fail")
	}
}
