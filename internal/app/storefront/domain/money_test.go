package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		m, err := NewMoney(249900, 100)
		require.NoError(t, err)
		assert.Equal(t, "2499.00", m.String())
	})

	t.Run("zero denominator", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.ErrorIs(t, err, ErrInvalidMoney)
	})

	t.Run("negative denominator", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		assert.ErrorIs(t, err, ErrInvalidMoney)
	})
}

func TestMoneyFromDecimalString(t *testing.T) {
	m, err := MoneyFromDecimalString(" 19.99 ")
	require.NoError(t, err)
	assert.True(t, m.Equals(NewMoneyFromCents(1999)))

	_, err = MoneyFromDecimalString("nineteen")
	assert.ErrorIs(t, err, ErrInvalidMoney)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyFromCents(1050)
	b := NewMoneyFromCents(250)

	assert.Equal(t, "13.00", a.Add(b).String())
	assert.Equal(t, "8.00", a.Subtract(b).String())
	assert.Equal(t, "31.50", a.MultiplyByInt(3).String())
	assert.Equal(t, "2.10", a.MultiplyByRat(big.NewRat(1, 5)).String())

	q, err := a.Divide(b)
	require.NoError(t, err)
	assert.Equal(t, "4.20", q.String())

	_, err = a.Divide(ZeroMoney())
	assert.ErrorIs(t, err, ErrInvalidMoney)

	// operands are not mutated
	assert.Equal(t, "10.50", a.String())
	assert.Equal(t, "2.50", b.String())
}

func TestMoney_Floor(t *testing.T) {
	tests := []struct {
		name  string
		money *Money
		want  int64
	}{
		{"whole", NewMoneyFromCents(20000), 200},
		{"fraction", NewMoneyFromCents(19999), 199},
		{"below one", NewMoneyFromCents(99), 0},
		{"zero", ZeroMoney(), 0},
		{"negative fraction", NewMoneyFromCents(-150), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.Floor())
		})
	}
}

func TestMoney_Round2(t *testing.T) {
	t.Run("rounds half away from zero", func(t *testing.T) {
		m := MustMoney(12345, 1000) // 12.345
		assert.True(t, m.Round2().Equals(NewMoneyFromCents(1235)))
	})

	t.Run("rounds down below half", func(t *testing.T) {
		m := MustMoney(12344, 1000)
		assert.True(t, m.Round2().Equals(NewMoneyFromCents(1234)))
	})

	t.Run("negative half", func(t *testing.T) {
		m := MustMoney(-12345, 1000)
		assert.True(t, m.Round2().Equals(NewMoneyFromCents(-1235)))
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoneyFromCents(100)
	large := NewMoneyFromCents(200)

	assert.True(t, small.LessThan(large))
	assert.True(t, large.GreaterThan(small))
	assert.True(t, small.Equals(MustMoney(1, 1)))
	assert.True(t, ZeroMoney().IsZero())
	assert.True(t, NewMoneyFromCents(-1).IsNegative())
	assert.True(t, small.IsPositive())
}

func TestMoney_Storage(t *testing.T) {
	m := NewMoneyFromCents(1999)
	assert.Equal(t, int64(1999), m.Numerator())
	assert.Equal(t, int64(100), m.Denominator())
	assert.True(t, m.IsSafeForStorage())
}

func TestRatFromDecimal(t *testing.T) {
	assert.Equal(t, 0, RatFromDecimal(0.08).Cmp(big.NewRat(8, 100)))
	assert.Equal(t, 0, RatFromDecimal(0.2).Cmp(big.NewRat(1, 5)))
	assert.Equal(t, 0, RatFromDecimal(100).Cmp(big.NewRat(100, 1)))
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := NewMoneyFromCents(17280).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"172.80"`, string(b))
}
