package geom

import "gonum.org/v1/gonum/spatial/r3"

// PolyCurve is an ordered chain of curves.
type PolyCurve struct {
	Curves []Curve
}

var _ Curve = (*PolyCurve)(nil)

// Join creates a PolyCurve from segments in order.
func Join(curves ...Curve) *PolyCurve {
	pc := &PolyCurve{Curves: make([]Curve, len(curves))}
	copy(pc.Curves, curves)
	return pc
}

func (pc *PolyCurve) StartPoint() r3.Vec {
	if len(pc.Curves) == 0 {
		return r3.Vec{}
	}
	return pc.Curves[0].StartPoint()
}

func (pc *PolyCurve) EndPoint() r3.Vec {
	if len(pc.Curves) == 0 {
		return r3.Vec{}
	}
	return pc.Curves[len(pc.Curves)-1].EndPoint()
}

// Length sums the lengths of the segments.
func (pc *PolyCurve) Length() float64 {
	var l float64
	for _, c := range pc.Curves {
		l += c.Length()
	}
	return l
}

// Sample concatenates the segment samples, dropping repeated joint points.
func (pc *PolyCurve) Sample(n int) []r3.Vec {
	var pts []r3.Vec
	for _, c := range pc.Curves {
		s := c.Sample(n)
		if len(pts) > 0 && len(s) > 0 && Coincident(pts[len(pts)-1], s[0]) {
			s = s[1:]
		}
		pts = append(pts, s...)
	}
	return pts
}

// IsConnected reports whether every segment starts where the previous one ends.
func (pc *PolyCurve) IsConnected() bool {
	for i := 1; i < len(pc.Curves); i++ {
		if !Coincident(pc.Curves[i-1].EndPoint(), pc.Curves[i].StartPoint()) {
			return false
		}
	}
	return true
}

// Counts returns the number of lines, arcs and other segments.
func (pc *PolyCurve) Counts() (lines, arcs, other int) {
	for _, c := range pc.Curves {
		switch c.(type) {
		case Line:
			lines++
		case Arc:
			arcs++
		default:
			other++
		}
	}
	return lines, arcs, other
}
