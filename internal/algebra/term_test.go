package algebra

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestZeroCoefficientForcesDegreeZero(t *testing.T) {
	if got := NewTerm(0, 3); got.Degree != 0 {
		t.Errorf("NewTerm(0, 3).Degree = %d, expected 0", got.Degree)
	}
	if got := NewTerm(2, 1).Sub(NewTerm(2, 1)); got.Degree != 0 || !got.IsZero() {
		t.Errorf("2t - 2t = %+v, expected the zero term", got)
	}
}

func TestTermAddLikeTerms(t *testing.T) {
	tests := []struct {
		a, b Term
	}{
		{NewTerm(3, 2), NewTerm(4, 2)},
		{NewTerm(-1.5, 1), NewTerm(0.25, 1)},
		{Constant(7), Constant(-2)},
		{Variable(2, 1, Sym("V")), Variable(-5, 1, Sym("V"))},
	}
	for _, tc := range tests {
		sum := tc.a.Add(tc.b)
		if sum.Degree != tc.a.Degree {
			t.Errorf("(%v + %v).Degree = %d, expected %d", tc.a, tc.b, sum.Degree, tc.a.Degree)
		}
		if sum.Coefficient != tc.a.Coefficient+tc.b.Coefficient {
			t.Errorf("(%v + %v).Coefficient = %v", tc.a, tc.b, sum.Coefficient)
		}
	}
}

func TestTermArithmetic(t *testing.T) {
	a := NewTerm(3, 2)
	b := NewTerm(-2, 1)

	if got := a.Mul(b); got.Coefficient != -6 || got.Degree != 3 {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Div(NewTerm(2, 5)); got.Coefficient != 1.5 || got.Degree != 2 {
		t.Errorf("Div = %v", got)
	}
	if got := b.Pow(3); got.Coefficient != -8 || got.Degree != 3 {
		t.Errorf("Pow = %v", got)
	}
	if got := a.Pow(0); got.Coefficient != 1 || got.Degree != 0 {
		t.Errorf("Pow(0) = %v", got)
	}
	if got := Variable(2, 1, Sym("a")).Pow(2); len(got.Factors) != 2 {
		t.Errorf("Pow should repeat factors, got %v", got)
	}

	neg := a.Neg()
	if neg.Coefficient != -3 || a.Coefficient != 3 {
		t.Error("Neg must not mutate the receiver")
	}
}

func TestIntegratePowerRule(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		n        int
		expected string
	}{
		{"constant", Constant(-10), 1, "-10t"},
		{"twice", Constant(-10), 2, "-5t^2"},
		{"fractional", NewTerm(1, 2), 1, "(1/3)t^3"},
		{"symbolic", Variable(1, 0, Sym("V"), CosOf("θ")), 1, "Vcos(θ)t"},
		{"zero stays constant", Constant(0), 2, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			term := tc.term
			term.IntegratePowerRule(tc.n)
			if got := term.String(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestTermFormat(t *testing.T) {
	tests := []struct {
		term     Term
		ctx      FormatContext
		expected string
	}{
		{NewTerm(-5, 2), FormatContext{}, "-5t^2"},
		{NewTerm(-5, 2), FormatContext{Unsigned: true}, "5t^2"},
		{NewTerm(0.5, 1), FormatContext{}, "(1/2)t"},
		{NewTerm(-0.5, 1), FormatContext{}, "(-1/2)t"},
		{NewTerm(1, 1), FormatContext{}, "t"},
		{NewTerm(-1, 1), FormatContext{}, "-t"},
		{Constant(1), FormatContext{}, "1"},
		{Constant(-3), FormatContext{}, "-3"},
		{Constant(0), FormatContext{}, "0"},
		{Variable(1, 0, Sym("h")), FormatContext{}, "h"},
		{Variable(1, 1, Sym("V"), SinOf("θ")), FormatContext{}, "Vsin(θ)t"},
		{Variable(-1, 2, Sym("a")), FormatContext{}, "-at^2"},
	}
	for _, tc := range tests {
		if got := tc.term.Format(tc.ctx); got != tc.expected {
			t.Errorf("Format(%+v) = %q, expected %q", tc.term, got, tc.expected)
		}
	}
}

func TestTermEvaluate(t *testing.T) {
	term := Variable(2, 2, Sym("V"), CosOf("θ"))
	got, err := term.Evaluate(Substitutions{"t": 3, "V": 4, "θ": 0})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 72 {
		t.Errorf("Evaluate = %v, expected 72", got)
	}

	_, err = term.Evaluate(Substitutions{"t": 3, "V": 4})
	if !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("expected ErrMissingSymbol, got %v", err)
	}
	if !strings.Contains(err.Error(), "θ") {
		t.Errorf("error %q should name the missing symbol", err)
	}

	// Constants never need t.
	if v, err := Constant(4).Evaluate(nil); err != nil || v != 4 {
		t.Errorf("Constant(4).Evaluate(nil) = %v, %v", v, err)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		expected string
	}{
		{3, "3"},
		{-12, "-12"},
		{0.25, "(1/4)"},
		{1.0 / 3, "(1/3)"},
		{-2.0 / 7, "(-2/7)"},
		{math.Pi, "(3126535/995207)"},
	}
	for _, tc := range tests {
		if got := formatNumber(tc.v); got != tc.expected {
			t.Errorf("formatNumber(%v) = %q, expected %q", tc.v, got, tc.expected)
		}
	}
}
