// Package scenario runs the scripted demonstration over the four account
// variants.
package scenario

import (
	"fmt"
	"io"

	"bank-accounts/pkg/account"
	"bank-accounts/pkg/collection"
)

// Run executes the script and writes the report to config.Out.
func Run(config collection.Config) {
	plain := []*account.Base{
		account.NewBase(account.BaseConfig{}),
		account.NewBase(account.BaseConfig{Name: "Larry"}),
		account.NewBase(account.BaseConfig{Name: "Moe", Balance: 2000}),
		account.NewBase(account.BaseConfig{Name: "Curly", Balance: 5000}),
	}
	plainRunner := collection.NewRunner[*account.Base](config)
	plainRunner.Display(plain)
	plainRunner.Deposit(plain, 1000)
	plainRunner.Withdraw(plain, 2000)

	savings := []*account.Savings{
		account.NewSavings(account.SavingsConfig{}),
		account.NewSavings(account.SavingsConfig{Name: "Superman"}),
		account.NewSavings(account.SavingsConfig{Name: "Batman", Balance: 2000}),
		account.NewSavings(account.SavingsConfig{Name: "Wonderwoman", Balance: 5000, InterestRate: 5.0}),
	}
	savingsRunner := collection.NewRunner[*account.Savings](config)
	savingsRunner.Display(savings)
	savingsRunner.Deposit(savings, 1000)
	savingsRunner.Withdraw(savings, 2000)

	checking := []*account.Checking{
		account.NewChecking(account.CheckingConfig{}),
		account.NewChecking(account.CheckingConfig{Name: "Larry2"}),
		account.NewChecking(account.CheckingConfig{Name: "Moe2", Balance: 2000}),
		account.NewChecking(account.CheckingConfig{Name: "Curly2", Balance: 5000}),
	}
	checkingRunner := collection.NewRunner[*account.Checking](config)
	checkingRunner.Display(checking)
	checkingRunner.Deposit(checking, 1000)
	checkingRunner.Withdraw(checking, 2000)
	checkingRunner.Withdraw(checking, 2000)

	trust := []*account.Trust{
		account.NewTrust(account.TrustConfig{}),
		account.NewTrust(account.TrustConfig{Name: "Superman2"}),
		account.NewTrust(account.TrustConfig{Name: "Batman2", Balance: 2000}),
		account.NewTrust(account.TrustConfig{Name: "Wonderwoman2", Balance: 5000, InterestRate: 5.0}),
	}
	trustRunner := collection.NewRunner[*account.Trust](config)
	trustRunner.Display(trust)
	trustRunner.Deposit(trust, 1000)
	trustRunner.Deposit(trust, 6000)
	trustRunner.Withdraw(trust, 2000)
	trustRunner.Withdraw(trust, 3000)
	trustRunner.Withdraw(trust, 500)

	fmt.Fprintln(outOf(config))
}

func outOf(config collection.Config) io.Writer {
	if config.Out == nil {
		return collection.DefaultConfig().Out
	}
	return config.Out
}
