package account

import "fmt"

// DefaultSavingsName is used when a Savings account is created without a name.
const DefaultSavingsName = "Unnamed Savings Account"

// SavingsConfig holds the constructor arguments of a Savings account.
type SavingsConfig struct {
	Name    string
	Balance float64

	// InterestRate is a percentage applied to every deposit (default 0).
	InterestRate float64
}

// Savings is a Base account that credits interest on each deposit.
type Savings struct {
	Base
	interestRate float64
}

// NewSavings creates a Savings account.
func NewSavings(config SavingsConfig) *Savings {
	s := &Savings{interestRate: config.InterestRate}
	s.Base.init(config.Name, DefaultSavingsName, config.Balance)
	return s
}

// Deposit performs the base deposit of amount and then a second base deposit
// of amount*rate/100. The result is that of the interest deposit.
func (s *Savings) Deposit(amount float64) bool {
	if !s.Base.Deposit(amount) {
		return false
	}
	interest := amount * (s.interestRate / 100)
	return s.Base.Deposit(interest)
}

// InterestRate returns the rate fixed at construction.
func (s *Savings) InterestRate() float64 {
	return s.interestRate
}

func (s *Savings) String() string {
	return fmt.Sprintf("[SavingsAccount: %s, Interest Rate: %s%%]", s.Base.String(), FormatAmount(s.interestRate))
}
