package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Arc is a circular arc given by its centre and boundary points. The arc runs
// counter-clockwise about Normal from Start to End, so the turn sense is carried
// by the normal rather than by a signed sweep.
type Arc struct {
	Centre r3.Vec
	Start  r3.Vec
	End    r3.Vec
	Normal r3.Vec
}

var _ Curve = Arc{}

// NewArc checks that both boundary points are equidistant from the centre and
// that the normal is usable.
func NewArc(centre, start, end, normal r3.Vec) (Arc, error) {
	rs := r3.Norm(r3.Sub(start, centre))
	re := r3.Norm(r3.Sub(end, centre))
	if rs <= Tolerance {
		return Arc{}, fmt.Errorf("arc start coincides with centre")
	}
	if math.Abs(rs-re) > Tolerance {
		return Arc{}, fmt.Errorf("arc boundary points are not equidistant from centre: %.6f != %.6f", rs, re)
	}
	if r3.Norm(normal) <= Tolerance {
		return Arc{}, fmt.Errorf("arc normal is degenerate")
	}
	return Arc{Centre: centre, Start: start, End: end, Normal: r3.Unit(normal)}, nil
}

func (a Arc) StartPoint() r3.Vec { return a.Start }
func (a Arc) EndPoint() r3.Vec   { return a.End }

// Radius of the arc
func (a Arc) Radius() float64 {
	return r3.Norm(r3.Sub(a.Start, a.Centre))
}

// Sweep returns the counter-clockwise angle about Normal from Start to End, in [0, 2π).
func (a Arc) Sweep() float64 {
	u := r3.Sub(a.Start, a.Centre)
	v := r3.Sub(a.End, a.Centre)
	n := r3.Unit(a.Normal)
	angle := math.Atan2(r3.Dot(n, r3.Cross(u, v)), r3.Dot(u, v))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Length is the arc length: radius × sweep.
func (a Arc) Length() float64 {
	return a.Radius() * a.Sweep()
}

// PointAt returns the point reached after turning by angle from Start.
func (a Arc) PointAt(angle float64) r3.Vec {
	u := r3.Sub(a.Start, a.Centre)
	w := r3.Cross(r3.Unit(a.Normal), u)
	sin, cos := math.Sincos(angle)
	return r3.Add(a.Centre, r3.Add(r3.Scale(cos, u), r3.Scale(sin, w)))
}

// Sample returns n+1 points from Start to End. The final point is End itself.
func (a Arc) Sample(n int) []r3.Vec {
	if n < 1 {
		n = 1
	}
	sweep := a.Sweep()
	pts := make([]r3.Vec, 0, n+1)
	for i := 0; i < n; i++ {
		pts = append(pts, a.PointAt(sweep*float64(i)/float64(n)))
	}
	return append(pts, a.End)
}
