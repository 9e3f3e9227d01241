package collection

import (
	"fmt"
	"io"
	"os"
	"time"

	"bank-accounts/pkg/account"
	"bank-accounts/pkg/logging"
	"bank-accounts/pkg/metrics"

	"go.uber.org/zap"
)

// Section headers of the console report.
const (
	DisplayHeader  = "=== Accounts =========================================="
	DepositHeader  = "=== Depositing to Accounts ================================="
	WithdrawHeader = "=== Withdrawing from Accounts =============================="
)

// Config holds the dependencies of a Runner.
type Config struct {
	// Out receives the console report (default os.Stdout)
	Out io.Writer

	// Logger for per-account debug logs and bulk summaries (default logging.L())
	Logger *logging.Logger

	// Metrics collector (default NoOpCollector)
	Metrics metrics.Collector
}

// DefaultConfig returns a Config writing to stdout with the global logger and
// no metrics.
func DefaultConfig() Config {
	return Config{
		Out:     os.Stdout,
		Logger:  logging.L(),
		Metrics: metrics.NoOpCollector{},
	}
}

// Runner runs bulk operations over collections of T and prints a line per
// account.
type Runner[T account.Account] struct {
	out     io.Writer
	logger  *logging.Logger
	metrics metrics.Collector
}

// NewRunner creates a Runner. Zero fields in config take their defaults.
func NewRunner[T account.Account](config Config) *Runner[T] {
	defaults := DefaultConfig()
	if config.Out == nil {
		config.Out = defaults.Out
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}
	if config.Metrics == nil {
		config.Metrics = defaults.Metrics
	}

	return &Runner[T]{
		out:     config.Out,
		logger:  config.Logger.Named("collection"),
		metrics: config.Metrics,
	}
}

// Display prints every account.
func (r *Runner[T]) Display(accounts []T) []string {
	lines := DisplayAll(accounts)

	r.header(DisplayHeader)
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}

	r.summarize(metrics.OpDisplay, accounts, len(lines), 0)
	return lines
}

// Deposit deposits amount into every account and prints each outcome.
func (r *Runner[T]) Deposit(accounts []T, amount float64) []Result {
	r.header(DepositHeader)
	results := apply(accounts, amount, deposit[T], r.observe(metrics.OpDeposit))

	for _, res := range results {
		if res.OK {
			fmt.Fprintf(r.out, "Deposited %s to %s\n", account.FormatAmount(amount), res.Account)
		} else {
			fmt.Fprintf(r.out, "Failed Deposit of %s to %s\n", account.FormatAmount(amount), res.Account)
		}
	}

	ok := Succeeded(results)
	r.summarize(metrics.OpDeposit, accounts, ok, len(results)-ok)
	return results
}

// Withdraw withdraws amount from every account and prints each outcome.
func (r *Runner[T]) Withdraw(accounts []T, amount float64) []Result {
	r.header(WithdrawHeader)
	results := apply(accounts, amount, withdraw[T], r.observe(metrics.OpWithdraw))

	for _, res := range results {
		if res.OK {
			fmt.Fprintf(r.out, "Withdrew %s from %s\n", account.FormatAmount(amount), res.Account)
		} else {
			fmt.Fprintf(r.out, "Failed Withdrawal of %s from %s\n", account.FormatAmount(amount), res.Account)
		}
	}

	ok := Succeeded(results)
	r.summarize(metrics.OpWithdraw, accounts, ok, len(results)-ok)
	return results
}

func (r *Runner[T]) header(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, title)
}

func (r *Runner[T]) observe(op metrics.Operation) observeFunc {
	return func(res Result, elapsed time.Duration) {
		variant := string(res.Variant)
		switch op {
		case metrics.OpDeposit:
			r.metrics.RecordDeposit(variant, res.OK, res.Amount, elapsed)
		case metrics.OpWithdraw:
			r.metrics.RecordWithdraw(variant, res.OK, res.Amount, elapsed)
		}

		r.logger.Debug("Account operation",
			logging.Operation(op),
			logging.Variant(res.Variant),
			zap.Int("index", res.Index),
			logging.Amount(res.Amount),
			logging.Outcome(res.OK),
			zap.Duration("elapsed", elapsed),
		)
	}
}

func (r *Runner[T]) summarize(op metrics.Operation, accounts []T, succeeded, failed int) {
	variant := variantOfCollection(accounts)
	r.metrics.RecordBulk(op, string(variant), succeeded, failed)
	r.logger.Info("Bulk operation complete",
		logging.Operation(op),
		logging.Variant(variant),
		zap.Int("accounts", len(accounts)),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
	)
}

// variantOfCollection names the variant of a homogeneous collection, using
// the zero value of T when the collection is empty.
func variantOfCollection[T account.Account](accounts []T) account.Variant {
	if len(accounts) > 0 {
		return account.VariantOf(accounts[0])
	}
	var zero T
	return account.VariantOf(zero)
}
