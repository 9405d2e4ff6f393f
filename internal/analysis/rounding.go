package analysis

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// divHalfEven divides num by den and rounds half-to-even at places decimals.
// The result always carries exactly places fractional digits. den must not be zero.
func divHalfEven(num, den decimal.Decimal, places int32) decimal.Decimal {
	q, r := num.QuoRem(den, places)
	if r.IsZero() {
		return q
	}

	// Compare 2*|r|*10^places against |den| to decide which way to round.
	twiceRem := r.Abs().Mul(decimal.NewFromInt(2)).Shift(places)
	c := twiceRem.Cmp(den.Abs())
	if c < 0 {
		return q
	}
	if c == 0 && q.Coefficient().Bit(0) == 0 {
		return q
	}

	ulp := decimal.New(1, -places)
	if num.Sign()*den.Sign() < 0 {
		return q.Sub(ulp)
	}
	return q.Add(ulp)
}

// percentOf returns round_half_even(num/den, 4) * 100, keeping four decimals.
func percentOf(num, den decimal.Decimal) decimal.Decimal {
	return divHalfEven(num, den, 4).Mul(hundred)
}
