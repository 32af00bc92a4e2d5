package algebra

import (
	"maps"
	"math"

	"github.com/vovakirdan/ascii-trials/internal/geom"
)

// DegreesToRadians converts an angle.
func DegreesToRadians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// ParametricEquation pairs y(t) with x(t).
type ParametricEquation struct {
	Y Expression
	X Expression
}

// Parametric builds an equation whose horizontal component is x(t) = t.
func Parametric(y Expression) ParametricEquation {
	return ParametricEquation{Y: y, X: Expr(NewTerm(1, 1))}
}

// PositionAt evaluates both components at time t. The substitutions are
// shared by both components; t is added to them.
func (p ParametricEquation) PositionAt(t float64, subs Substitutions) (geom.Pointf, error) {
	all := make(Substitutions, len(subs)+1)
	maps.Copy(all, subs)
	all[Pronumeral] = t

	x, err := p.X.Evaluate(all)
	if err != nil {
		return geom.Pointf{}, err
	}
	y, err := p.Y.Evaluate(all)
	if err != nil {
		return geom.Pointf{}, err
	}
	return geom.Pointf{Row: y, Col: x}, nil
}

func (p ParametricEquation) String() string {
	return "x = " + p.X.String() + ", y = " + p.Y.String()
}

// ExponentialEquation eases from 0 towards Limit: limit - e^(ln(limit) - t).
type ExponentialEquation struct {
	Limit float64
}

// ValueAt returns the eased value at t, rounded to two decimals and kept
// within [0, Limit].
func (e ExponentialEquation) ValueAt(t float64) float64 {
	if e.Limit <= 0 {
		return 0
	}
	v := e.Limit - math.Exp(math.Log(e.Limit)-t)
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(v, e.Limit))
}
