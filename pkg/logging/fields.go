package logging

import (
	"bank-accounts/pkg/account"
	"bank-accounts/pkg/metrics"

	"go.uber.org/zap"
)

// AccountID tags an entry with a registry account ID.
func AccountID(id string) zap.Field {
	return zap.String("account_id", id)
}

// Variant tags an entry with an account variant.
func Variant(v account.Variant) zap.Field {
	return zap.String("variant", string(v))
}

// Operation tags an entry with the operation performed.
func Operation(op metrics.Operation) zap.Field {
	return zap.String("operation", string(op))
}

// Amount tags an entry with a requested amount, in the same form the
// console report prints it.
func Amount(v float64) zap.Field {
	return zap.String("amount", account.FormatAmount(v))
}

// Outcome tags an entry with whether the account accepted the operation.
func Outcome(ok bool) zap.Field {
	if ok {
		return zap.String("outcome", "accepted")
	}
	return zap.String("outcome", "rejected")
}

// ForAccount returns a child logger named "account" that carries the
// account identity on every entry.
func (l *Logger) ForAccount(id string, v account.Variant) *Logger {
	return l.Named("account").With(AccountID(id), Variant(v))
}
