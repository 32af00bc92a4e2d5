// Package kinematics derives equations of motion with the algebra package
// and evaluates them for projectiles and jumps.
package kinematics

import (
	"math"

	"github.com/vovakirdan/ascii-trials/internal/algebra"
	"github.com/vovakirdan/ascii-trials/internal/geom"
)

// Symbols used by the derived equations.
const (
	SymGravity  = "g"
	SymAngle    = "θ"
	SymVelocity = "V"
	SymHeight   = "h"
	SymDistance = "d"
)

// DefaultGravity is used when a zero gravity is requested.
const DefaultGravity = 10

// ProjectileVector is a 2D equation of motion: Y is the vertical (j)
// component measured upwards and X the horizontal (i) component.
type ProjectileVector struct {
	Y algebra.Expression
	X algebra.Expression
}

// Integrate integrates both components once, in place, appending the given
// constants of integration (nil means none).
func (p *ProjectileVector) Integrate(xConstant, yConstant *algebra.Term) {
	p.X.IntegratePowerRule(xConstant)
	p.Y.IntegratePowerRule(yConstant)
}

// Integrated returns an integrated copy, leaving p untouched.
func (p ProjectileVector) Integrated(xConstant, yConstant *algebra.Term) ProjectileVector {
	c := ProjectileVector{
		Y: algebra.Expr(append([]algebra.Term(nil), p.Y.Terms...)...),
		X: algebra.Expr(append([]algebra.Term(nil), p.X.Terms...)...),
	}
	c.Integrate(xConstant, yConstant)
	return c
}

// String renders "(Vcos(θ)t + d)i + (-5t^2 + Vsin(θ)t + h)j".
func (p ProjectileVector) String() string {
	component := func(e algebra.Expression, unit string) string {
		if e.Len() > 1 {
			return "(" + e.String() + ")" + unit
		}
		return e.String() + unit
	}
	var out string
	if p.X.Len() > 0 {
		out = component(p.X, "i")
	}
	if p.Y.Len() > 0 {
		if out != "" {
			out += " + "
		}
		out += component(p.Y, "j")
	}
	if out == "" {
		return "0"
	}
	return out
}

// Substitutions returns the symbol values for a launch at angleDeg degrees
// from origin. Origin rows count upwards, like Y.
func Substitutions(velocity, angleDeg, t float64, origin geom.Pointf) algebra.Substitutions {
	return algebra.Substitutions{
		SymAngle:           algebra.DegreesToRadians(angleDeg),
		SymVelocity:        velocity,
		algebra.Pronumeral: t,
		SymHeight:          origin.Row,
		SymDistance:        origin.Col,
	}
}

// PointAt evaluates the displacement at time t without truncation.
func (p ProjectileVector) PointAt(velocity, angleDeg, t float64, origin geom.Pointf) (geom.Pointf, error) {
	subs := Substitutions(velocity, angleDeg, t, origin)
	x, err := p.X.Evaluate(subs)
	if err != nil {
		return geom.Pointf{}, err
	}
	y, err := p.Y.Evaluate(subs)
	if err != nil {
		return geom.Pointf{}, err
	}
	return geom.Pointf{Row: y, Col: x}, nil
}

// PositionAt evaluates the displacement at time t, truncated to cells.
func (p ProjectileVector) PositionAt(velocity, angleDeg, t float64, origin geom.Position) (geom.Position, error) {
	pt, err := p.PointAt(velocity, angleDeg, t, geom.Pointf{Row: float64(origin.Row), Col: float64(origin.Col)})
	if err != nil {
		return geom.Position{}, err
	}
	return pt.Trunc(), nil
}

// DeriveEquationsOfMotion integrates an acceleration vector twice:
// first with the velocity constants, then with the displacement constants.
func DeriveEquationsOfMotion(accelX, accelY algebra.Expression, velocityX, velocityY, displacementX, displacementY *algebra.Term) ProjectileVector {
	acceleration := ProjectileVector{Y: accelY, X: accelX}
	velocity := acceleration.Integrated(velocityX, velocityY)
	return velocity.Integrated(displacementX, displacementY)
}

// Option customises DisplacementVector.
type Option func(*displacementOptions)

type displacementOptions struct {
	height, distance *float64
}

// WithOrigin fixes the displacement constants to literal values instead of
// the symbols h and d.
func WithOrigin(height, distance float64) Option {
	return func(o *displacementOptions) {
		o.height = &height
		o.distance = &distance
	}
}

// DisplacementVector builds the parabolic equations of motion
//
//	y = -½gt² + Vsin(θ)t + h
//	x = Vcos(θ)t + d
//
// for a constant downward acceleration g (DefaultGravity when zero).
func DisplacementVector(gravity float64, opts ...Option) ProjectileVector {
	var o displacementOptions
	for _, opt := range opts {
		opt(&o)
	}
	if gravity == 0 {
		gravity = DefaultGravity
	}

	dx := algebra.Variable(1, 0, algebra.Sym(SymDistance))
	if o.distance != nil {
		dx = algebra.Constant(*o.distance)
	}
	dy := algebra.Variable(1, 0, algebra.Sym(SymHeight))
	if o.height != nil {
		dy = algebra.Constant(*o.height)
	}
	vx := algebra.Variable(1, 0, algebra.Sym(SymVelocity), algebra.CosOf(SymAngle))
	vy := algebra.Variable(1, 0, algebra.Sym(SymVelocity), algebra.SinOf(SymAngle))

	return DeriveEquationsOfMotion(
		algebra.Expr(),
		algebra.Expr(algebra.Constant(-gravity)),
		&vx, &vy, &dx, &dy,
	)
}

func effectiveGravity(g float64) float64 {
	if g == 0 {
		return DefaultGravity
	}
	return g
}

// MaxHeight is the apex height above the launch point: V²sin²θ / 2g.
func MaxHeight(velocity, angleDeg, gravity float64) float64 {
	s := math.Sin(algebra.DegreesToRadians(angleDeg))
	return velocity * velocity * s * s / (2 * effectiveGravity(gravity))
}

// HorizontalRange is the distance covered when landing at launch height:
// V²sin2θ / g.
func HorizontalRange(velocity, angleDeg, gravity float64) float64 {
	return velocity * velocity * math.Sin(2*algebra.DegreesToRadians(angleDeg)) / effectiveGravity(gravity)
}

// TimeOfFlight is the time until landing at launch height: 2Vsinθ / g.
func TimeOfFlight(velocity, angleDeg, gravity float64) float64 {
	return 2 * velocity * math.Sin(algebra.DegreesToRadians(angleDeg)) / effectiveGravity(gravity)
}
