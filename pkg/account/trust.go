package account

import "fmt"

const (
	// DefaultTrustName is used when a Trust account is created without a name.
	DefaultTrustName = "Unnamed Trust Account"

	// TrustMaxWithdrawals is the number of withdrawals a Trust account allows.
	TrustMaxWithdrawals = 3

	// TrustBonusAmount is credited, through the savings rule, on large deposits.
	TrustBonusAmount = 50.0

	// TrustBonusThreshold is the smallest deposit that earns the bonus.
	TrustBonusThreshold = 5000.0

	// TrustMaxWithdrawalFraction caps a single withdrawal relative to the
	// current balance. A withdrawal at or above the cap is rejected.
	TrustMaxWithdrawalFraction = 0.20
)

// TrustConfig holds the constructor arguments of a Trust account.
type TrustConfig struct {
	Name         string
	Balance      float64
	InterestRate float64
}

// Trust is a Savings account with a large-deposit bonus and limits on how
// many and how large its withdrawals can be.
type Trust struct {
	Savings
	withdrawals int
}

// NewTrust creates a Trust account.
func NewTrust(config TrustConfig) *Trust {
	t := &Trust{}
	t.Savings.interestRate = config.InterestRate
	t.Savings.Base.init(config.Name, DefaultTrustName, config.Balance)
	return t
}

// Deposit credits the bonus first when amount reaches the threshold, then the
// principal. Both go through the savings rule and so both earn interest. Only
// the principal deposit decides the result; the bonus is never taken back.
func (t *Trust) Deposit(amount float64) bool {
	if amount >= TrustBonusThreshold {
		t.Savings.Deposit(TrustBonusAmount)
	}
	return t.Savings.Deposit(amount)
}

// Withdraw enforces the count and size limits before the savings rule.
// The counter only moves on success.
func (t *Trust) Withdraw(amount float64) bool {
	if t.withdrawals >= TrustMaxWithdrawals {
		return false
	}
	if amount >= t.Balance()*TrustMaxWithdrawalFraction {
		return false
	}
	if !t.Savings.Withdraw(amount) {
		return false
	}
	t.withdrawals++
	return true
}

// Withdrawals returns the number of successful withdrawals so far.
func (t *Trust) Withdrawals() int {
	return t.withdrawals
}

func (t *Trust) String() string {
	return fmt.Sprintf("[TrustAccount: %s, Withdrawals: %d/%d]", t.Savings.String(), t.withdrawals, TrustMaxWithdrawals)
}
