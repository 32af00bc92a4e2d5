package kinematics

import (
	"github.com/vovakirdan/ascii-trials/internal/algebra"
	"github.com/vovakirdan/ascii-trials/internal/geom"
)

// JumpMovement models the height gained during a jump as y = -at² + bt.
//
// Requiring the parabola to return to zero at the time of flight T and to
// peak at height H gives
//
//	a = 4H / T²
//	b = 4H / T
type JumpMovement struct {
	a, b         float64
	timeOfFlight float64
	quadrant     geom.Quadrant
	equation     algebra.ParametricEquation
}

// NewJumpMovement builds a jump peaking at maxHeight rows and lasting
// timeOfFlight seconds. The quadrant orients "up" on screen; jumps from the
// ground use geom.BottomLeft.
func NewJumpMovement(maxHeight, timeOfFlight float64, q geom.Quadrant) *JumpMovement {
	return &JumpMovement{
		a:            4 * maxHeight / (timeOfFlight * timeOfFlight),
		b:            4 * maxHeight / timeOfFlight,
		timeOfFlight: timeOfFlight,
		quadrant:     q,
		equation: algebra.ParametricEquation{
			Y: algebra.Expr(
				algebra.Variable(-1, 2, algebra.Sym("a")),
				algebra.Variable(1, 1, algebra.Sym("b")),
			),
			X: algebra.Expr(algebra.Constant(0)),
		},
	}
}

// Coefficients returns a and b.
func (j *JumpMovement) Coefficients() (a, b float64) {
	return j.a, j.b
}

// TimeOfFlight returns how long the jump lasts.
func (j *JumpMovement) TimeOfFlight() float64 {
	return j.timeOfFlight
}

// Done reports whether a jump started elapsed seconds ago has landed.
func (j *JumpMovement) Done(elapsed float64) bool {
	return elapsed >= j.timeOfFlight
}

// OffsetAt returns the on-screen displacement from the take-off cell after
// elapsed seconds. It is zero once the jump has landed.
func (j *JumpMovement) OffsetAt(elapsed float64) (geom.Vector, error) {
	if elapsed <= 0 || j.Done(elapsed) {
		return geom.Zero, nil
	}
	pt, err := j.equation.PositionAt(elapsed, algebra.Substitutions{"a": j.a, "b": j.b})
	if err != nil {
		return geom.Zero, err
	}
	return j.quadrant.Orient(geom.V(int(pt.Row), 0)), nil
}
