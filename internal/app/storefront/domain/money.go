package domain

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// It stores the value as a rational number (numerator/denominator) to avoid floating-point precision issues.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(249900, 100) represents $2499.00
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, errors.Wrapf(ErrInvalidMoney, "denominator must be positive, got %d", denominator)
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MustMoney is NewMoney for package-level constants; it panics on a bad denominator.
func MustMoney(numerator, denominator int64) *Money {
	m, err := NewMoney(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoneyFromCents creates a Money value from an integer amount of cents.
func NewMoneyFromCents(cents int64) *Money {
	return &Money{rat: big.NewRat(cents, 100)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() *Money {
	return &Money{rat: new(big.Rat)}
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return ZeroMoney()
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// MoneyFromDecimalString parses a decimal string such as "19.99".
func MoneyFromDecimalString(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidMoney, "cannot parse %q", s)
	}
	return &Money{rat: rat}, nil
}

// Numerator returns the numerator of the normalized rational number.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the normalized rational number.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsSafeForStorage reports whether numerator and denominator fit in int64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Rat returns a copy of the underlying rational value.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat multiplies this Money value by a rational number and returns a new Money instance.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// MultiplyByInt multiplies this Money value by an integer quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return m.MultiplyByRat(new(big.Rat).SetInt64(n))
}

// Divide divides this Money value by another and returns a new Money instance.
func (m *Money) Divide(other *Money) (*Money, error) {
	if other.rat.Sign() == 0 {
		return nil, errors.Wrap(ErrInvalidMoney, "cannot divide by zero")
	}
	return &Money{rat: new(big.Rat).Quo(m.rat, other.rat)}, nil
}

// Floor returns the largest integer less than or equal to the value.
func (m *Money) Floor() int64 {
	q := new(big.Int)
	r := new(big.Int)
	// Denominator is always positive, so Euclidean division floors.
	q.DivMod(m.rat.Num(), m.rat.Denom(), r)
	return q.Int64()
}

// Round2 rounds half away from zero to whole cents.
func (m *Money) Round2() *Money {
	scaled := new(big.Rat).Mul(m.rat, big.NewRat(100, 1))
	num := new(big.Int).Set(scaled.Num())
	den := scaled.Denom()

	neg := num.Sign() < 0
	num.Abs(num)

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if new(big.Int).Mul(r, big.NewInt(2)).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if neg {
		q.Neg(q)
	}

	return &Money{rat: new(big.Rat).SetFrac(q, big.NewInt(100))}
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value rounded to two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// RatFromDecimal converts a configuration float such as 0.08 into the exact
// decimal fraction it was written as, rather than its binary approximation.
func RatFromDecimal(f float64) *big.Rat {
	rat, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		return new(big.Rat).SetFloat64(f)
	}
	return rat
}

// MarshalJSON renders the amount as a two-decimal string, e.g. "172.80".
func (m *Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}
