package sprite

import (
	"github.com/vovakirdan/ascii-trials/internal/algebra"
	"github.com/vovakirdan/ascii-trials/internal/geom"
	"github.com/vovakirdan/ascii-trials/internal/kinematics"
)

// Motion places a time-parameterized sprite on a height x width terrain.
type Motion interface {
	// PositionAt returns the sprite's top-left cell at simulation time now.
	PositionAt(now float64, height, width int) (geom.Position, error)
	// Origin is the position at launch.
	Origin(height, width int) geom.Position
}

// Projectile follows the derived parabolic equations of motion.
//
// Start and the displacement are measured in the quadrant's frame: for the
// bottom quadrants rows count upwards from the bottom edge, so the result is
// normalized against the terrain edges.
type Projectile struct {
	Velocity float64
	Angle    float64 // degrees
	Gravity  float64
	Quadrant geom.Quadrant
	Start    geom.Position
	Launched float64

	vector kinematics.ProjectileVector
}

// NewProjectile derives the equations of motion for the given gravity.
func NewProjectile(velocity, angleDeg, gravity float64, q geom.Quadrant, start geom.Position, launched float64) *Projectile {
	return &Projectile{
		Velocity: velocity,
		Angle:    angleDeg,
		Gravity:  gravity,
		Quadrant: q,
		Start:    start,
		Launched: launched,
		vector:   kinematics.DisplacementVector(gravity),
	}
}

func (p *Projectile) PositionAt(now float64, height, width int) (geom.Position, error) {
	rel, err := p.vector.PositionAt(p.Velocity, p.Angle, now-p.Launched, geom.Origin)
	if err != nil {
		return geom.Position{}, err
	}
	return p.Quadrant.Normalize(rel.Add(p.Start), height, width), nil
}

func (p *Projectile) Origin(height, width int) geom.Position {
	return p.Quadrant.Normalize(p.Start, height, width)
}

// MaxHeight is the apex height above the launch cell.
func (p *Projectile) MaxHeight() float64 {
	return kinematics.MaxHeight(p.Velocity, p.Angle, p.Gravity)
}

// HorizontalRange is the distance covered back at launch height.
func (p *Projectile) HorizontalRange() float64 {
	return kinematics.HorizontalRange(p.Velocity, p.Angle, p.Gravity)
}

// Equation moves a sprite along a parametric equation without gravity.
// Start is absolute; the quadrant orients the displacement.
type Equation struct {
	Parametric algebra.ParametricEquation
	Quadrant   geom.Quadrant
	Start      geom.Position
	Launched   float64
}

// Linear moves diagonally: x = t, y = gradient·t.
func Linear(q geom.Quadrant, gradient float64, start geom.Position, launched float64) *Equation {
	return &Equation{
		Parametric: algebra.Parametric(algebra.Expr(algebra.NewTerm(gradient, 1))),
		Quadrant:   q,
		Start:      start,
		Launched:   launched,
	}
}

// StraightLine moves horizontally: x = gradient·t, y = 0.
func StraightLine(q geom.Quadrant, gradient float64, start geom.Position, launched float64) *Equation {
	return &Equation{
		Parametric: algebra.ParametricEquation{
			Y: algebra.Expr(algebra.Constant(0)),
			X: algebra.Expr(algebra.NewTerm(gradient, 1)),
		},
		Quadrant: q,
		Start:    start,
		Launched: launched,
	}
}

func (e *Equation) PositionAt(now float64, _, _ int) (geom.Position, error) {
	pt, err := e.Parametric.PositionAt(now-e.Launched, nil)
	if err != nil {
		return geom.Position{}, err
	}
	rel := pt.Trunc()
	return e.Start.Move(e.Quadrant.Orient(geom.V(rel.Row, rel.Col))), nil
}

func (e *Equation) Origin(int, int) geom.Position {
	return e.Start
}
