// Package collection applies account operations across a homogeneous
// collection of accounts. A failure on one account never stops the rest.
package collection

import (
	"time"

	"bank-accounts/pkg/account"
)

// Result is the outcome of one operation on one account.
type Result struct {
	// Index is the account position in the collection.
	Index int `json:"index"`
	// Variant of the account.
	Variant account.Variant `json:"variant"`
	// Amount is the requested amount.
	Amount float64 `json:"amount"`
	// OK reports whether the account accepted the operation.
	OK bool `json:"ok"`
	// Account is the display representation after the attempt.
	Account string `json:"account"`
}

// DisplayAll returns the display representation of every account, in order.
func DisplayAll[T account.Account](accounts []T) []string {
	lines := make([]string, 0, len(accounts))
	for _, acct := range accounts {
		lines = append(lines, acct.String())
	}
	return lines
}

// DepositAll attempts to deposit amount into every account.
func DepositAll[T account.Account](accounts []T, amount float64) []Result {
	return apply(accounts, amount, deposit[T], nil)
}

// WithdrawAll attempts to withdraw amount from every account.
func WithdrawAll[T account.Account](accounts []T, amount float64) []Result {
	return apply(accounts, amount, withdraw[T], nil)
}

// Succeeded counts the accepted results.
func Succeeded(results []Result) int {
	n := 0
	for _, r := range results {
		if r.OK {
			n++
		}
	}
	return n
}

type opFunc[T account.Account] func(acct T, amount float64) bool

type observeFunc func(r Result, elapsed time.Duration)

func deposit[T account.Account](acct T, amount float64) bool {
	return acct.Deposit(amount)
}

func withdraw[T account.Account](acct T, amount float64) bool {
	return acct.Withdraw(amount)
}

func apply[T account.Account](accounts []T, amount float64, op opFunc[T], observe observeFunc) []Result {
	results := make([]Result, 0, len(accounts))
	for i, acct := range accounts {
		start := time.Now()
		ok := op(acct, amount)
		elapsed := time.Since(start)

		r := Result{
			Index:   i,
			Variant: account.VariantOf(acct),
			Amount:  amount,
			OK:      ok,
			Account: acct.String(),
		}
		if observe != nil {
			observe(r, elapsed)
		}
		results = append(results, r)
	}
	return results
}
