// Package algebra builds and evaluates single-variable polynomial
// expressions in the pronumeral t. Terms may carry symbolic multipliers
// (V, cos(θ), h, ...) that stay symbolic until evaluation.
package algebra

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Pronumeral is the variable every degree refers to.
const Pronumeral = "t"

var (
	// ErrMissingSymbol is returned when a substitution set lacks a symbol
	// that an expression needs.
	ErrMissingSymbol = errors.New("algebra: missing substitution")
	// ErrMalformed is returned for expressions that cannot be built or
	// evaluate to a non-finite number.
	ErrMalformed = errors.New("algebra: malformed expression")
)

// Substitutions maps symbol names (including the pronumeral) to values.
type Substitutions map[string]float64

func (s Substitutions) lookup(name string) (float64, error) {
	v, ok := s[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingSymbol, name)
	}
	return v, nil
}

// Func is a function applied to a symbolic factor.
type Func int

const (
	Identity Func = iota
	Sin
	Cos
)

// Factor is one symbolic multiplier of a term.
type Factor struct {
	Func   Func
	Symbol string
}

// Sym is a bare symbolic factor.
func Sym(name string) Factor {
	return Factor{Symbol: name}
}

// SinOf is the factor sin(name).
func SinOf(name string) Factor {
	return Factor{Func: Sin, Symbol: name}
}

// CosOf is the factor cos(name).
func CosOf(name string) Factor {
	return Factor{Func: Cos, Symbol: name}
}

func (f Factor) String() string {
	switch f.Func {
	case Sin:
		return "sin(" + f.Symbol + ")"
	case Cos:
		return "cos(" + f.Symbol + ")"
	}
	return f.Symbol
}

// Eval substitutes the symbol and applies the function.
func (f Factor) Eval(subs Substitutions) (float64, error) {
	v, err := subs.lookup(f.Symbol)
	if err != nil {
		return 0, err
	}
	switch f.Func {
	case Sin:
		return math.Sin(v), nil
	case Cos:
		return math.Cos(v), nil
	}
	return v, nil
}

// Term is coefficient * factors * t^degree.
// A zero coefficient always has degree zero.
type Term struct {
	Coefficient float64
	Degree      int
	Factors     []Factor
}

// NewTerm builds a purely numeric term.
func NewTerm(coefficient float64, degree int) Term {
	return Variable(coefficient, degree)
}

// Constant is the degree-zero term c.
func Constant(c float64) Term {
	return NewTerm(c, 0)
}

// Variable builds a term with symbolic multipliers.
func Variable(coefficient float64, degree int, factors ...Factor) Term {
	if coefficient == 0 {
		degree = 0
	}
	return Term{Coefficient: coefficient, Degree: degree, Factors: factors}
}

// IsZero reports whether the term is the additive identity.
func (t Term) IsZero() bool {
	return t.Coefficient == 0
}

// IsConstant reports whether the term does not depend on t.
func (t Term) IsConstant() bool {
	return t.Degree == 0
}

// IsNegative reports whether the coefficient is below zero.
func (t Term) IsNegative() bool {
	return t.Coefficient < 0
}

// Add sums coefficients, keeping the receiver's degree and factors.
// It is meant for like terms.
func (t Term) Add(o Term) Term {
	return Variable(t.Coefficient+o.Coefficient, t.Degree, t.Factors...)
}

// Sub subtracts like terms.
func (t Term) Sub(o Term) Term {
	return t.Add(o.Neg())
}

// Mul multiplies coefficients, adds degrees and concatenates factors.
func (t Term) Mul(o Term) Term {
	factors := make([]Factor, 0, len(t.Factors)+len(o.Factors))
	factors = append(factors, t.Factors...)
	factors = append(factors, o.Factors...)
	return Variable(t.Coefficient*o.Coefficient, t.Degree+o.Degree, factors...)
}

// Div divides the coefficient, keeping the receiver's degree.
func (t Term) Div(o Term) Term {
	return Variable(t.Coefficient/o.Coefficient, t.Degree, t.Factors...)
}

// Pow raises the term to a non-negative integer power.
func (t Term) Pow(n int) Term {
	if n == 0 {
		return Constant(1)
	}
	var factors []Factor
	for range n {
		factors = append(factors, t.Factors...)
	}
	return Variable(math.Pow(t.Coefficient, float64(n)), t.Degree*n, factors...)
}

// Neg returns the term with its coefficient negated.
func (t Term) Neg() Term {
	return Term{Coefficient: -t.Coefficient, Degree: t.Degree, Factors: t.Factors}
}

// IntegratePowerRule applies ∫t^d dt = t^(d+1)/(d+1) n times, in place.
func (t *Term) IntegratePowerRule(n int) {
	if t.IsZero() {
		return
	}
	for range n {
		t.Coefficient /= float64(t.Degree + 1)
		t.Degree++
	}
}

// Evaluate computes the term's value.
func (t Term) Evaluate(subs Substitutions) (float64, error) {
	v := t.Coefficient
	if t.Degree > 0 {
		x, err := subs.lookup(Pronumeral)
		if err != nil {
			return 0, err
		}
		v *= math.Pow(x, float64(t.Degree))
	}
	for _, f := range t.Factors {
		fv, err := f.Eval(subs)
		if err != nil {
			return 0, err
		}
		v *= fv
	}
	return v, nil
}

// like returns a key identifying terms that may be merged.
func (t Term) like() string {
	names := make([]string, len(t.Factors))
	for i, f := range t.Factors {
		names[i] = f.String()
	}
	sort.Strings(names)
	return fmt.Sprintf("%d|%s", t.Degree, strings.Join(names, "·"))
}

// FormatContext controls term rendering.
type FormatContext struct {
	// Unsigned renders the coefficient's magnitude; the caller writes
	// the sign as an infix operator.
	Unsigned bool
}

// Format renders the term, e.g. "-5t^2", "(1/2)t", "Vcos(θ)t".
func (t Term) Format(ctx FormatContext) string {
	c := t.Coefficient
	if ctx.Unsigned {
		c = math.Abs(c)
	}
	implicitOne := t.Degree > 0 || len(t.Factors) > 0

	var sb strings.Builder
	switch {
	case implicitOne && c == 1:
	case implicitOne && c == -1:
		sb.WriteByte('-')
	default:
		sb.WriteString(formatNumber(c))
	}
	for _, f := range t.Factors {
		sb.WriteString(f.String())
	}
	if t.Degree > 0 {
		sb.WriteString(Pronumeral)
	}
	if t.Degree > 1 {
		fmt.Fprintf(&sb, "^%d", t.Degree)
	}
	return sb.String()
}

func (t Term) String() string {
	return t.Format(FormatContext{})
}
