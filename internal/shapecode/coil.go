package shapecode

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// SamplesPerTurn is the number of points sampled per turn of a coiled bar.
	SamplesPerTurn = 36

	// MaxTurns bounds the turns of a coiled bar, and with it the samples taken.
	MaxTurns = 1000
)

// 67: a single arc of inner radius R and developed length A, bowed towards +Y
func buildPreformedArc(s ShapeCode) (*geom.PolyCurve, error) {
	radius := s.R + s.Diameter/2
	if !(radius > geom.Tolerance) || !(s.A > geom.Tolerance) {
		return nil, fmt.Errorf("radius R and length A must be positive")
	}
	sweep := s.A / radius
	if sweep >= 2*math.Pi {
		return nil, fmt.Errorf("length A %.4f closes the circle of radius %.4f", s.A, radius)
	}
	centre := geom.Pt(0, -radius)
	start := r3.Add(centre, r3.Scale(radius, geom.Heading(math.Pi/2+sweep/2)))
	end := r3.Add(centre, r3.Scale(radius, geom.Heading(math.Pi/2-sweep/2)))
	arc, err := geom.NewArc(centre, start, end, r3.Vec{Z: -1})
	if err != nil {
		return nil, err
	}
	return geom.Join(arc), nil
}

// 75: one full turn of diameter A plus a lap of B, wound at a pitch of one
// bar diameter so the lap clears the first turn
func buildCircularLink(s ShapeCode) (*geom.PolyCurve, error) {
	mean := s.A - s.Diameter
	if !(mean > geom.Tolerance) {
		return nil, fmt.Errorf("diameter A %.4f does not exceed bar diameter", s.A)
	}
	turns := 1 + s.B/(math.Pi*mean)
	return coil(mean/2, s.Diameter, turns)
}

// 77: C turns of outer diameter A at pitch B
func buildHelix(s ShapeCode) (*geom.PolyCurve, error) {
	mean := s.A - s.Diameter
	if !(mean > geom.Tolerance) {
		return nil, fmt.Errorf("diameter A %.4f does not exceed bar diameter", s.A)
	}
	if !(s.C > 0) || s.C > MaxTurns {
		return nil, fmt.Errorf("number of turns C must be between 0 and %d, is %.4f", MaxTurns, s.C)
	}
	return coil(mean/2, s.B, s.C)
}

// coil samples a helix about the Z axis starting on +X.
func coil(radius, pitch, turns float64) (*geom.PolyCurve, error) {
	if !(turns > 0 && turns <= MaxTurns) {
		return nil, fmt.Errorf("%.4f turns is outside 0 to %d", turns, MaxTurns)
	}
	if math.IsInf(pitch, 0) || math.IsNaN(pitch) {
		return nil, fmt.Errorf("pitch %.4f is not finite", pitch)
	}
	n := int(math.Ceil(turns * SamplesPerTurn))
	if n < 2 {
		n = 2
	}
	pts := make([]r3.Vec, 0, n+1)
	for i := 0; i <= n; i++ {
		t := turns * float64(i) / float64(n)
		sin, cos := math.Sincos(2 * math.Pi * t)
		pts = append(pts, r3.Vec{X: radius * cos, Y: radius * sin, Z: pitch * t})
	}
	return geom.Join(geom.Polyline{Points: pts}), nil
}

// 99: the supplied curve, in a PolyCurve of its own
func buildFreeForm(s ShapeCode) (*geom.PolyCurve, error) {
	if !curveOK(s.Curve) {
		return nil, fmt.Errorf("free-form bar has no curve")
	}
	if !(s.Curve.Length() > geom.Tolerance) {
		return nil, fmt.Errorf("free-form curve has no length")
	}
	if pc, ok := s.Curve.(*geom.PolyCurve); ok {
		return geom.Join(pc.Curves...), nil
	}
	return geom.Join(s.Curve), nil
}
