package algebra

import (
	"errors"
	"math"
	"testing"
)

func TestExpressionString(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expression
		expected string
	}{
		{"empty", Expr(), "0"},
		{"sorted by degree", Expr(Constant(-1), NewTerm(3, 1), NewTerm(1, 2)), "t^2 + 3t - 1"},
		{"leading negative", Expr(NewTerm(-5, 2), Constant(4)), "-5t^2 + 4"},
		{"zero terms skipped", Expr(Constant(0), NewTerm(2, 1)), "2t"},
		{
			"symbolic",
			Expr(NewTerm(-5, 2), Variable(1, 1, Sym("V"), SinOf("θ")), Variable(1, 0, Sym("h"))),
			"-5t^2 + Vsin(θ)t + h",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.expr.String(); got != tc.expected {
				t.Errorf("String() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func coefficientsByDegree(e Expression) map[int]float64 {
	sums := make(map[int]float64)
	for _, term := range e.Terms {
		sums[term.Degree] += term.Coefficient
	}
	for d, c := range sums {
		if c == 0 {
			delete(sums, d)
		}
	}
	return sums
}

func TestSimplify(t *testing.T) {
	exprs := []Expression{
		Expr(NewTerm(1, 1), Constant(2), NewTerm(3, 1), NewTerm(4, 2), Constant(-2)),
		Expr(NewTerm(1, 3), NewTerm(-1, 3)),
		Expr(Constant(5)),
		Expr(NewTerm(0.5, 2), NewTerm(0.25, 2), NewTerm(7, 0), NewTerm(1, 1)),
	}
	for _, e := range exprs {
		once := e.Simplify()
		twice := once.Simplify()
		if once.String() != twice.String() || once.Len() != twice.Len() {
			t.Errorf("Simplify not idempotent for %v: %v vs %v", e, once, twice)
		}

		seen := make(map[int]bool)
		for i, term := range once.Terms {
			if seen[term.Degree] {
				t.Errorf("%v has two terms of degree %d", once, term.Degree)
			}
			seen[term.Degree] = true
			if i > 0 && once.Terms[i-1].Degree < term.Degree {
				t.Errorf("%v is not in descending degree order", once)
			}
		}

		before, after := coefficientsByDegree(e), coefficientsByDegree(once)
		if len(before) != len(after) {
			t.Errorf("degree sums changed: %v vs %v", before, after)
		}
		for d, c := range before {
			if after[d] != c {
				t.Errorf("degree %d sum = %v, expected %v", d, after[d], c)
			}
		}
	}
}

func TestSimplifyKeepsDistinctSymbols(t *testing.T) {
	e := Expr(Variable(1, 0, Sym("d")), Constant(3), Variable(2, 0, Sym("d")))
	got := e.Simplify()
	if got.String() != "3d + 3" {
		t.Errorf("Simplify = %q, expected %q", got.String(), "3d + 3")
	}
}

func TestExpressionArithmetic(t *testing.T) {
	a := Expr(NewTerm(1, 1), Constant(1)) // t + 1
	b := Expr(NewTerm(1, 1), Constant(-1))

	if got := a.Mul(b).Simplify().String(); got != "t^2 - 1" {
		t.Errorf("(t+1)(t-1) = %q", got)
	}
	if got := a.Pow(2).Simplify().String(); got != "t^2 + 2t + 1" {
		t.Errorf("(t+1)^2 = %q", got)
	}
	if got := a.Sub(b).Simplify().String(); got != "2" {
		t.Errorf("(t+1)-(t-1) = %q", got)
	}
	if got := a.Neg().String(); got != "-t - 1" {
		t.Errorf("-(t+1) = %q", got)
	}
}

func TestExpressionIntegrate(t *testing.T) {
	e := Expr(Constant(-10))
	e.IntegratePowerRule(&Term{Coefficient: 1, Factors: []Factor{Sym("V"), SinOf("θ")}})
	if got := e.String(); got != "-10t + Vsin(θ)" {
		t.Fatalf("first integration = %q", got)
	}
	e.IntegratePowerRule(&Term{Coefficient: 1, Factors: []Factor{Sym("h")}})
	if got := e.String(); got != "-5t^2 + Vsin(θ)t + h" {
		t.Fatalf("second integration = %q", got)
	}

	zero := Expr(Constant(0))
	zero.IntegratePowerRule(nil)
	zero.IntegratePowerRule(&Term{})
	if zero.Len() != 1 || zero.String() != "0" {
		t.Errorf("integrating zero = %v (%d terms)", zero, zero.Len())
	}
}

func TestExpressionEvaluate(t *testing.T) {
	e := Expr(NewTerm(-5, 2), Variable(1, 1, Sym("V"), SinOf("θ")), Variable(1, 0, Sym("h")))
	got, err := e.Evaluate(Substitutions{"t": 2, "V": 22, "θ": math.Pi / 6, "h": 5})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("Evaluate = %v, expected 7", got)
	}

	_, err = e.Evaluate(Substitutions{"t": 2, "V": 22, "θ": 1})
	if !errors.Is(err, ErrMissingSymbol) {
		t.Errorf("expected ErrMissingSymbol, got %v", err)
	}
}

func TestFromRPN(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected string
		wantErr  bool
	}{
		{"polynomial", []string{"t", "2", "^", "3", "t", "*", "+", "1", "-"}, "t^2 + 3t - 1", false},
		{"like terms", []string{"t", "t", "+"}, "2t", false},
		{"decimal", []string{"0.5", "t", "*"}, "(1/2)t", false},
		{"binomial square", []string{"t", "1", "+", "2", "^"}, "t^2 + 2t + 1", false},
		{"underflow", []string{"+"}, "", true},
		{"unknown token", []string{"x"}, "", true},
		{"leftover", []string{"1", "2"}, "", true},
		{"symbolic exponent", []string{"t", "t", "^"}, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromRPN(tc.tokens)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromRPN: %v", err)
			}
			if got.String() != tc.expected {
				t.Errorf("FromRPN = %q, expected %q", got.String(), tc.expected)
			}
		})
	}
}
