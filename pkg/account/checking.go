package account

import "fmt"

const (
	// DefaultCheckingName is used when a Checking account is created without a name.
	DefaultCheckingName = "Unnamed Checking Account"

	// CheckingWithdrawalFee is added to every withdrawal.
	CheckingWithdrawalFee = 1.50
)

// CheckingConfig holds the constructor arguments of a Checking account.
type CheckingConfig struct {
	Name    string
	Balance float64
}

// Checking is a Base account that charges a fixed fee per withdrawal.
type Checking struct {
	Base
}

// NewChecking creates a Checking account.
func NewChecking(config CheckingConfig) *Checking {
	c := &Checking{}
	c.Base.init(config.Name, DefaultCheckingName, config.Balance)
	return c
}

// Withdraw debits amount plus the fee, or nothing at all.
func (c *Checking) Withdraw(amount float64) bool {
	return c.Base.Withdraw(amount + CheckingWithdrawalFee)
}

// Fee returns the withdrawal fee.
func (c *Checking) Fee() float64 {
	return CheckingWithdrawalFee
}

func (c *Checking) String() string {
	return fmt.Sprintf("[CheckingAccount: %s, Fee: $%s]", c.Base.String(), FormatAmount(CheckingWithdrawalFee))
}
