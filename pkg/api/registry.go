package api

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"bank-accounts/pkg/account"
	"bank-accounts/pkg/collection"
	"bank-accounts/pkg/logging"
	"bank-accounts/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is an account snapshot together with its registry ID.
type Entry struct {
	ID string `json:"id"`
	account.Snapshot
}

// BulkResult is the outcome of a bulk operation on one account.
type BulkResult struct {
	ID string `json:"id"`
	collection.Result
}

// store holds the homogeneous collection of one variant. Its mutex guards
// every account it contains.
type store[T account.Account] struct {
	mu       sync.Mutex
	ids      []string
	accounts map[string]T
	runner   *collection.Runner[T]
}

func newStore[T account.Account](config collection.Config) *store[T] {
	return &store[T]{
		accounts: make(map[string]T),
		runner:   collection.NewRunner[T](config),
	}
}

func (s *store[T]) add(id string, a T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = append(s.ids, id)
	s.accounts[id] = a
}

// ordered returns the accounts in creation order. The caller must hold mu.
func (s *store[T]) ordered() []T {
	out := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.accounts[id])
	}
	return out
}

func (s *store[T]) entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, Entry{ID: id, Snapshot: account.Describe(s.accounts[id])})
	}
	return out
}

func (s *store[T]) with(id string, fn func(a account.Account)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	fn(a)
	return nil
}

func (s *store[T]) bulk(op metrics.Operation, amount float64) []BulkResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []collection.Result
	switch op {
	case metrics.OpDeposit:
		results = s.runner.Deposit(s.ordered(), amount)
	case metrics.OpWithdraw:
		results = s.runner.Withdraw(s.ordered(), amount)
	}

	out := make([]BulkResult, 0, len(results))
	for _, r := range results {
		out = append(out, BulkResult{ID: s.ids[r.Index], Result: r})
	}
	return out
}

// Registry keeps accounts in memory, one homogeneous collection per variant,
// and serializes access to each collection.
type Registry struct {
	base     *store[*account.Base]
	savings  *store[*account.Savings]
	checking *store[*account.Checking]
	trust    *store[*account.Trust]

	mu    sync.RWMutex
	index map[string]account.Variant

	// version advances after every completed write.
	version atomic.Uint64

	metrics metrics.Collector
	logger  *logging.Logger
}

// NewRegistry creates an empty registry. Bulk operations record into
// collector and log through logger; their console report is discarded.
func NewRegistry(collector metrics.Collector, logger *logging.Logger) *Registry {
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}
	if logger == nil {
		logger = logging.L()
	}

	config := collection.Config{Out: io.Discard, Logger: logger, Metrics: collector}
	return &Registry{
		base:     newStore[*account.Base](config),
		savings:  newStore[*account.Savings](config),
		checking: newStore[*account.Checking](config),
		trust:    newStore[*account.Trust](config),
		index:    make(map[string]account.Variant),
		metrics:  collector,
		logger:   logger.Named("registry"),
	}
}

// Create builds a new account and returns its entry.
func (r *Registry) Create(v account.Variant, spec account.Spec) (Entry, error) {
	a, err := account.New(v, spec)
	if err != nil {
		return Entry{}, err
	}

	id := uuid.NewString()
	switch acct := a.(type) {
	case *account.Base:
		r.base.add(id, acct)
	case *account.Savings:
		r.savings.add(id, acct)
	case *account.Checking:
		r.checking.add(id, acct)
	case *account.Trust:
		r.trust.add(id, acct)
	}

	r.mu.Lock()
	r.index[id] = v
	r.mu.Unlock()
	r.version.Add(1)

	r.logger.ForAccount(id, v).Info("Account created",
		zap.String("balance", account.FormatAmount(a.Balance())),
	)

	return Entry{ID: id, Snapshot: account.Describe(a)}, nil
}

// Get returns the entry with the given ID.
func (r *Registry) Get(id string) (Entry, error) {
	var entry Entry
	err := r.with(id, func(a account.Account) {
		entry = Entry{ID: id, Snapshot: account.Describe(a)}
	})
	return entry, err
}

// List returns every entry, grouped by variant in account.Variants order.
func (r *Registry) List() []Entry {
	var out []Entry
	out = append(out, r.base.entries()...)
	out = append(out, r.savings.entries()...)
	out = append(out, r.checking.entries()...)
	out = append(out, r.trust.entries()...)
	return out
}

// Deposit deposits amount into one account.
func (r *Registry) Deposit(id string, amount float64) (bool, Entry, error) {
	return r.transact(id, metrics.OpDeposit, amount)
}

// Withdraw withdraws amount from one account.
func (r *Registry) Withdraw(id string, amount float64) (bool, Entry, error) {
	return r.transact(id, metrics.OpWithdraw, amount)
}

// Version returns a counter that advances after every completed write.
func (r *Registry) Version() uint64 {
	return r.version.Load()
}

// Bulk applies op with amount to every account of variant v.
func (r *Registry) Bulk(v account.Variant, op metrics.Operation, amount float64) ([]BulkResult, error) {
	if op != metrics.OpDeposit && op != metrics.OpWithdraw {
		return nil, fmt.Errorf("%w: unsupported operation %q", ErrInvalidRequest, op)
	}

	var results []BulkResult
	switch v {
	case account.VariantBase:
		results = r.base.bulk(op, amount)
	case account.VariantSavings:
		results = r.savings.bulk(op, amount)
	case account.VariantChecking:
		results = r.checking.bulk(op, amount)
	case account.VariantTrust:
		results = r.trust.bulk(op, amount)
	default:
		return nil, fmt.Errorf("%w: %q", account.ErrUnknownVariant, string(v))
	}

	r.version.Add(1)
	return results, nil
}

func (r *Registry) transact(id string, op metrics.Operation, amount float64) (bool, Entry, error) {
	var (
		ok    bool
		entry Entry
	)

	err := r.with(id, func(a account.Account) {
		variant := account.VariantOf(a)
		start := time.Now()
		if op == metrics.OpDeposit {
			ok = a.Deposit(amount)
			r.metrics.RecordDeposit(string(variant), ok, amount, time.Since(start))
		} else {
			ok = a.Withdraw(amount)
			r.metrics.RecordWithdraw(string(variant), ok, amount, time.Since(start))
		}
		entry = Entry{ID: id, Snapshot: account.Describe(a)}

		r.logger.ForAccount(id, variant).Debug("Account operation",
			logging.Operation(op),
			logging.Amount(amount),
			logging.Outcome(ok),
		)
	})
	if err != nil {
		return false, Entry{}, err
	}

	r.version.Add(1)
	return ok, entry, nil
}

func (r *Registry) with(id string, fn func(a account.Account)) error {
	r.mu.RLock()
	v, ok := r.index[id]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	switch v {
	case account.VariantBase:
		return r.base.with(id, fn)
	case account.VariantSavings:
		return r.savings.with(id, fn)
	case account.VariantChecking:
		return r.checking.with(id, fn)
	default:
		return r.trust.with(id, fn)
	}
}
