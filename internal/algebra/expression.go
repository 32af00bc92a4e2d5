package algebra

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Expression is an ordered sum of terms.
type Expression struct {
	Terms []Term
}

// Expr builds an expression from terms.
func Expr(terms ...Term) Expression {
	return Expression{Terms: terms}
}

// Len returns the number of terms.
func (e Expression) Len() int {
	return len(e.Terms)
}

// clone copies the term slice so callers can mutate terms in place.
func (e Expression) clone() Expression {
	return Expression{Terms: append([]Term(nil), e.Terms...)}
}

// Add concatenates the terms of both expressions.
func (e Expression) Add(o Expression) Expression {
	terms := make([]Term, 0, len(e.Terms)+len(o.Terms))
	terms = append(terms, e.Terms...)
	terms = append(terms, o.Terms...)
	return Expression{Terms: terms}
}

// Sub returns e + (-o).
func (e Expression) Sub(o Expression) Expression {
	return e.Add(o.Neg())
}

// Neg negates every term.
func (e Expression) Neg() Expression {
	out := make([]Term, len(e.Terms))
	for i, t := range e.Terms {
		out[i] = t.Neg()
	}
	return Expression{Terms: out}
}

// Mul distributes multiplication over both sums. The result is not simplified.
func (e Expression) Mul(o Expression) Expression {
	out := make([]Term, 0, len(e.Terms)*len(o.Terms))
	for _, a := range e.Terms {
		for _, b := range o.Terms {
			out = append(out, a.Mul(b))
		}
	}
	return Expression{Terms: out}
}

// Pow raises the expression to a non-negative integer power.
func (e Expression) Pow(n int) Expression {
	out := Expr(Constant(1))
	for range n {
		out = out.Mul(e)
	}
	return out
}

// Simplify orders terms by descending degree and merges like terms, those
// with the same degree and the same symbolic factors, by summing their
// coefficients. Terms that cancel to zero are dropped.
func (e Expression) Simplify() Expression {
	sorted := e.clone().Terms
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Degree > sorted[j].Degree
	})

	var out []Term
	index := make(map[string]int)
	for _, t := range sorted {
		key := t.like()
		if i, ok := index[key]; ok {
			out[i] = t.Add(out[i])
			continue
		}
		index[key] = len(out)
		out = append(out, t)
	}

	kept := out[:0]
	for _, t := range out {
		if !t.IsZero() {
			kept = append(kept, t)
		}
	}
	return Expression{Terms: kept}
}

// Evaluate sums the numeric value of every term.
func (e Expression) Evaluate(subs Substitutions) (float64, error) {
	var sum float64
	for _, t := range e.Terms {
		v, err := t.Evaluate(subs)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: %s evaluates to %v", ErrMalformed, e, sum)
	}
	return sum, nil
}

// IntegratePowerRule integrates every term once, in place, and appends the
// constant of integration when it is non-zero.
func (e *Expression) IntegratePowerRule(constant *Term) {
	for i := range e.Terms {
		e.Terms[i].IntegratePowerRule(1)
	}
	if constant != nil && !constant.IsZero() {
		e.Terms = append(e.Terms, *constant)
	}
}

// String renders the terms by descending degree with infix signs,
// e.g. "-5t^2 + Vsin(θ)t + h".
func (e Expression) String() string {
	sorted := e.clone().Terms
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Degree > sorted[j].Degree
	})

	var sb strings.Builder
	unsigned := FormatContext{Unsigned: true}
	for _, t := range sorted {
		if t.IsZero() {
			continue
		}
		switch {
		case sb.Len() == 0 && t.IsNegative():
			sb.WriteByte('-')
		case sb.Len() == 0:
		case t.IsNegative():
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}
		sb.WriteString(t.Format(unsigned))
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// FromRPN builds an expression from reverse-Polish tokens. Operands are
// numbers or the pronumeral; operators are + - * and ^ (with a constant
// non-negative integer exponent). The result is simplified.
func FromRPN(tokens []string) (Expression, error) {
	var stack []Expression
	pop2 := func(op string) (Expression, Expression, error) {
		if len(stack) < 2 {
			return Expression{}, Expression{}, fmt.Errorf("%w: operator %q needs two operands", ErrMalformed, op)
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		return a, b, nil
	}

	for _, tok := range tokens {
		switch tok {
		case Pronumeral:
			stack = append(stack, Expr(NewTerm(1, 1)))
		case "+", "-", "*", "^":
			a, b, err := pop2(tok)
			if err != nil {
				return Expression{}, err
			}
			var r Expression
			switch tok {
			case "+":
				r = a.Add(b)
			case "-":
				r = a.Sub(b)
			case "*":
				r = a.Mul(b)
			case "^":
				n, err := exponentOf(b)
				if err != nil {
					return Expression{}, err
				}
				r = a.Pow(n)
			}
			stack = append(stack, r)
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return Expression{}, fmt.Errorf("%w: unknown token %q", ErrMalformed, tok)
			}
			stack = append(stack, Expr(Constant(v)))
		}
	}
	if len(stack) != 1 {
		return Expression{}, fmt.Errorf("%w: %d values left on the stack", ErrMalformed, len(stack))
	}
	return stack[0].Simplify(), nil
}

func exponentOf(e Expression) (int, error) {
	s := e.Simplify()
	if len(s.Terms) == 0 {
		return 0, nil
	}
	t := s.Terms[0]
	if len(s.Terms) != 1 || !t.IsConstant() || len(t.Factors) > 0 ||
		t.Coefficient < 0 || t.Coefficient != math.Trunc(t.Coefficient) {
		return 0, fmt.Errorf("%w: exponent %s is not a non-negative integer", ErrMalformed, e)
	}
	return int(t.Coefficient), nil
}
