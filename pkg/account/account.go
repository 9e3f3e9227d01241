// Package account implements the account variants and their deposit and
// withdrawal rules.
//
// Every variant satisfies Account. Variants built on top of another one embed
// it and call its methods explicitly, so the delegation chain
// Base -> Savings -> Trust and Base -> Checking is visible at each call site.
package account

import (
	"fmt"
	"strconv"
)

// Account is the capability set shared by all variants.
type Account interface {
	// Deposit adds amount to the balance. It reports false and leaves the
	// account untouched when the deposit is rejected.
	Deposit(amount float64) bool

	// Withdraw removes amount from the balance. It reports false and leaves
	// the account untouched when the withdrawal is rejected.
	Withdraw(amount float64) bool

	// Balance returns the current balance.
	Balance() float64

	// String returns the display representation.
	String() string
}

// DefaultBaseName is used when a Base is created without a name.
const DefaultBaseName = "Unnamed Account"

// BaseConfig holds the constructor arguments of a Base account.
type BaseConfig struct {
	// Name is a display-only label. Empty means DefaultBaseName.
	Name string

	// Balance is the opening balance (default 0).
	Balance float64
}

// Base is the plain account: a name and a balance.
type Base struct {
	name    string
	balance float64
}

// NewBase creates a Base account.
func NewBase(config BaseConfig) *Base {
	b := &Base{}
	b.init(config.Name, DefaultBaseName, config.Balance)
	return b
}

func (b *Base) init(name, fallback string, balance float64) {
	if name == "" {
		name = fallback
	}
	b.name = name
	b.balance = balance
}

// Deposit rejects negative amounts and adds anything else.
func (b *Base) Deposit(amount float64) bool {
	if amount < 0 {
		return false
	}
	b.balance += amount
	return true
}

// Withdraw rejects the request when it would leave a negative balance.
// A negative amount is not guarded and increases the balance.
func (b *Base) Withdraw(amount float64) bool {
	if b.balance-amount < 0 {
		return false
	}
	b.balance -= amount
	return true
}

// Balance returns the current balance.
func (b *Base) Balance() float64 {
	return b.balance
}

// Name returns the account label.
func (b *Base) Name() string {
	return b.name
}

func (b *Base) String() string {
	return fmt.Sprintf("[Account: %s: %s]", b.name, FormatAmount(b.balance))
}

// FormatAmount renders a number in its shortest decimal form, never using an
// exponent: 5000, 11352.5, 1.5.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
