package algebra

import (
	"math"
	"math/big"
	"strconv"
)

// maxDenominator bounds the denominators used when rendering fractions.
const maxDenominator = 1_000_000

// formatNumber renders integral values plainly and anything else as the
// closest fraction "(p/q)".
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	r := limitDenominator(new(big.Rat).SetFloat64(v), maxDenominator)
	if r.IsInt() {
		return r.Num().String()
	}
	return "(" + r.Num().String() + "/" + r.Denom().String() + ")"
}

// limitDenominator finds the closest fraction to x with a denominator of at
// most limit, walking the continued fraction expansion of |x|.
func limitDenominator(x *big.Rat, limit int64) *big.Rat {
	maxD := big.NewInt(limit)
	if x.Denom().Cmp(maxD) <= 0 {
		return new(big.Rat).Set(x)
	}
	neg := x.Sign() < 0
	abs := new(big.Rat).Abs(x)

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(abs.Num())
	d := new(big.Int).Set(abs.Denom())
	for d.Sign() != 0 {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(maxD) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	k := new(big.Int).Quo(new(big.Int).Sub(maxD, q0), q1)
	lower := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	upper := new(big.Rat).SetFrac(p1, q1)

	dl := new(big.Rat).Abs(new(big.Rat).Sub(lower, abs))
	du := new(big.Rat).Abs(new(big.Rat).Sub(upper, abs))
	best := lower
	if du.Cmp(dl) <= 0 {
		best = upper
	}
	if neg {
		best.Neg(best)
	}
	return best
}
