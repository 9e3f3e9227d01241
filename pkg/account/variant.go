package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownVariant is returned when a variant name is not recognized.
var ErrUnknownVariant = errors.New("account: unknown variant")

// Variant names an account type.
type Variant string

const (
	VariantBase     Variant = "account"
	VariantSavings  Variant = "savings"
	VariantChecking Variant = "checking"
	VariantTrust    Variant = "trust"
)

// Variants lists every variant in display order.
var Variants = []Variant{VariantBase, VariantSavings, VariantChecking, VariantTrust}

// ParseVariant converts a name (case-insensitive) into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case VariantBase, VariantSavings, VariantChecking, VariantTrust:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// VariantOf reports the variant of a.
func VariantOf(a Account) Variant {
	switch a.(type) {
	case *Trust:
		return VariantTrust
	case *Savings:
		return VariantSavings
	case *Checking:
		return VariantChecking
	case *Base:
		return VariantBase
	default:
		return ""
	}
}

// Spec is a variant-independent set of constructor arguments.
type Spec struct {
	Name         string  `json:"name"`
	Balance      float64 `json:"balance"`
	InterestRate float64 `json:"interest_rate"`
}

// New builds an account of the given variant. InterestRate is ignored by
// variants that have none.
func New(v Variant, spec Spec) (Account, error) {
	switch v {
	case VariantBase:
		return NewBase(BaseConfig{Name: spec.Name, Balance: spec.Balance}), nil
	case VariantSavings:
		return NewSavings(SavingsConfig{Name: spec.Name, Balance: spec.Balance, InterestRate: spec.InterestRate}), nil
	case VariantChecking:
		return NewChecking(CheckingConfig{Name: spec.Name, Balance: spec.Balance}), nil
	case VariantTrust:
		return NewTrust(TrustConfig{Name: spec.Name, Balance: spec.Balance, InterestRate: spec.InterestRate}), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
}

// Snapshot is a read-only view of an account.
type Snapshot struct {
	Variant        Variant  `json:"variant"`
	Name           string   `json:"name"`
	Balance        Amount   `json:"balance"`
	InterestRate   *float64 `json:"interest_rate,omitempty"`
	Fee            *float64 `json:"fee,omitempty"`
	Withdrawals    *int     `json:"withdrawals,omitempty"`
	MaxWithdrawals *int     `json:"max_withdrawals,omitempty"`
	Display        string   `json:"display"`
}

// Describe captures the current state of a.
func Describe(a Account) Snapshot {
	snap := Snapshot{
		Variant: VariantOf(a),
		Balance: Amount(a.Balance()),
		Display: a.String(),
	}

	switch acct := a.(type) {
	case *Trust:
		rate, count, limit := acct.InterestRate(), acct.Withdrawals(), TrustMaxWithdrawals
		snap.Name = acct.Name()
		snap.InterestRate = &rate
		snap.Withdrawals = &count
		snap.MaxWithdrawals = &limit
	case *Savings:
		rate := acct.InterestRate()
		snap.Name = acct.Name()
		snap.InterestRate = &rate
	case *Checking:
		fee := acct.Fee()
		snap.Name = acct.Name()
		snap.Fee = &fee
	case *Base:
		snap.Name = acct.Name()
	}

	return snap
}

// Amount is a balance as exposed in JSON. Deposits have no upper bound, so a
// balance can overflow to an infinity; non-finite values encode as the
// strings "+Inf", "-Inf" and "NaN" instead of failing the whole document.
type Amount float64

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(FormatAmount(f))
	}
	return json.Marshal(f)
}

// UnmarshalJSON accepts a JSON number or one of the non-finite strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("account: invalid amount %s", data)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(math.IsInf(f, 0) || math.IsNaN(f)) {
		return fmt.Errorf("account: invalid amount %q", s)
	}
	*a = Amount(f)
	return nil
}
