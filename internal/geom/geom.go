// Package geom is the small curve kernel used to describe bar centrelines.
//
// Points and vectors are gonum r3.Vec values. Curves are immutable: every
// method returns new values and none of them retains its arguments.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Tolerance is the distance below which two points coincide.
	Tolerance = 1e-6
	// AngleTolerance is the angle (radians) below which two directions are parallel.
	AngleTolerance = 1e-6
)

// Curve is a bounded, oriented curve in space.
type Curve interface {
	StartPoint() r3.Vec
	EndPoint() r3.Vec
	Length() float64
	// Sample returns points along the curve from start to end, including both.
	// n is a hint for the number of intervals on curved parts.
	Sample(n int) []r3.Vec
}

// Pt is shorthand for a point in the XY plane.
func Pt(x, y float64) r3.Vec {
	return r3.Vec{X: x, Y: y}
}

// Coincident reports whether two points are within Tolerance of each other.
func Coincident(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) <= Tolerance
}

// EqualWithin reports whether a and b differ by at most tol in every component.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

// Heading returns the unit vector in the XY plane at angle theta (radians) from +X.
func Heading(theta float64) r3.Vec {
	sin, cos := math.Sincos(theta)
	return r3.Vec{X: cos, Y: sin}
}

// Line is a straight segment.
type Line struct {
	From r3.Vec
	To   r3.Vec
}

var _ Curve = Line{}

func (l Line) StartPoint() r3.Vec { return l.From }
func (l Line) EndPoint() r3.Vec   { return l.To }

// Length of the segment
func (l Line) Length() float64 {
	return r3.Norm(r3.Sub(l.To, l.From))
}

// Direction returns the unit direction from start to end.
func (l Line) Direction() r3.Vec {
	return r3.Unit(r3.Sub(l.To, l.From))
}

// Sample returns the two end points.
func (l Line) Sample(int) []r3.Vec {
	return []r3.Vec{l.From, l.To}
}

// Polyline is a chain of straight segments through sampled points.
type Polyline struct {
	Points []r3.Vec
}

var _ Curve = Polyline{}

func (p Polyline) StartPoint() r3.Vec {
	if len(p.Points) == 0 {
		return r3.Vec{}
	}
	return p.Points[0]
}

func (p Polyline) EndPoint() r3.Vec {
	if len(p.Points) == 0 {
		return r3.Vec{}
	}
	return p.Points[len(p.Points)-1]
}

// Length sums the segment lengths.
func (p Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(p.Points); i++ {
		l += r3.Norm(r3.Sub(p.Points[i], p.Points[i-1]))
	}
	return l
}

func (p Polyline) Sample(int) []r3.Vec {
	out := make([]r3.Vec, len(p.Points))
	copy(out, p.Points)
	return out
}
