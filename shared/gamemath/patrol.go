package gamemath

import "math"

// Vec is a 2D vector in level pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector of v, or zero for a zero vector.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Patrol walks back and forth along a list of points.
type Patrol struct {
	Points  []Vec
	Index   int
	Forward bool
}

// NewPatrol starts heading from the first point toward the second.
func NewPatrol(points []Vec) *Patrol {
	return &Patrol{Points: points, Index: 1, Forward: true}
}

// PatrolStep is the result of advancing a patrol by one tick.
type PatrolStep struct {
	Velocity Vec
	// Snap is set when the target was reached and the entity must be placed
	// on it before moving on.
	Snap *Vec
}

// Step computes the velocity for this tick. prev is the velocity used on the
// previous tick. When heading toward the target would reverse prev, the
// target has been passed: the entity snaps to it, the patrol advances (turning
// around at either end) and leaves at turnSpeed.
func (p *Patrol) Step(pos, prev Vec, speed, turnSpeed float64) PatrolStep {
	if len(p.Points) <= 1 {
		return PatrolStep{}
	}

	target := p.Points[p.Index]
	vel := target.Sub(pos).Normalized().Scale(speed)
	if vel != (Vec{}) && vel.Dot(prev) >= 0 {
		return PatrolStep{Velocity: vel}
	}

	switch p.Index {
	case 0:
		p.Forward = true
	case len(p.Points) - 1:
		p.Forward = false
	}
	if p.Forward {
		p.Index++
	} else {
		p.Index--
	}

	return PatrolStep{
		Velocity: p.Points[p.Index].Sub(target).Normalized().Scale(turnSpeed),
		Snap:     &target,
	}
}
