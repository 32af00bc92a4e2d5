package algebra

import (
	"math"
	"testing"
)

func TestParametricPositionAt(t *testing.T) {
	p := Parametric(Expr(Variable(1, 1, Sym("g"))))
	got, err := p.PositionAt(4, Substitutions{"g": -0.5})
	if err != nil {
		t.Fatalf("PositionAt: %v", err)
	}
	if got.Row != -2 || got.Col != 4 {
		t.Errorf("PositionAt = %+v, expected (-2, 4)", got)
	}

	if _, err := p.PositionAt(1, nil); err == nil {
		t.Error("expected an error when g is missing")
	}
}

func TestParametricDoesNotMutateSubstitutions(t *testing.T) {
	subs := Substitutions{"g": 1}
	p := Parametric(Expr(Variable(1, 1, Sym("g"))))
	if _, err := p.PositionAt(3, subs); err != nil {
		t.Fatal(err)
	}
	if _, ok := subs["t"]; ok {
		t.Error("PositionAt leaked t into the caller's substitutions")
	}
}

func TestExponentialEquation(t *testing.T) {
	e := ExponentialEquation{Limit: 45}
	if got := e.ValueAt(0); got != 0 {
		t.Errorf("ValueAt(0) = %v, expected 0", got)
	}

	prev := e.ValueAt(0)
	for step := 1; step <= 200; step++ {
		v := e.ValueAt(float64(step) * 0.05)
		if v < prev {
			t.Fatalf("ValueAt decreased at t=%v: %v < %v", float64(step)*0.05, v, prev)
		}
		if v > 45 {
			t.Fatalf("ValueAt(%v) = %v exceeds the limit", float64(step)*0.05, v)
		}
		prev = v
	}
	if got := e.ValueAt(20); got != 45 {
		t.Errorf("ValueAt(20) = %v, expected to settle at 45", got)
	}
	if got := e.ValueAt(1); got != 28.45 {
		t.Errorf("ValueAt(1) = %v, expected 28.45", got)
	}
	if (ExponentialEquation{}).ValueAt(5) != 0 {
		t.Error("zero limit should stay at zero")
	}
}

func TestDegreesToRadians(t *testing.T) {
	if math.Abs(DegreesToRadians(180)-math.Pi) > 1e-12 {
		t.Error("180° should be π")
	}
}
