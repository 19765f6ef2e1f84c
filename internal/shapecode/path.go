package shapecode

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	east  = r3.Vec{X: 1}
	north = r3.Vec{Y: 1}
	west  = r3.Vec{X: -1}
	south = r3.Vec{Y: -1}
	up    = r3.Vec{Z: 1}
)

// toward returns the unit direction of (x, y) in the XY plane.
func toward(x, y float64) r3.Vec {
	return r3.Unit(r3.Vec{X: x, Y: y})
}

// path records the intersection polygon of a bar: the vertices where the
// straight legs would meet if the bends were sharp, and the neutral-axis
// radius of the bend at each vertex. curve rounds every vertex with a fillet
// arc tangent to both legs.
type path struct {
	pts   []r3.Vec
	radii []float64
	err   error
}

func pathFrom(start r3.Vec) *path {
	return &path{pts: []r3.Vec{start}, radii: []float64{0}}
}

// run appends a straight leg of the given length along dir.
func (p *path) run(dir r3.Vec, length float64) *path {
	if p.err != nil {
		return p
	}
	n := len(p.pts)
	if !(r3.Norm(dir) > 0.5) {
		p.err = fmt.Errorf("leg %d has no direction: dimensions do not form a triangle", n)
		return p
	}
	if !(length > geom.Tolerance) {
		p.err = fmt.Errorf("leg %d has non-positive straight length %.4f", n, length)
		return p
	}
	last := p.pts[len(p.pts)-1]
	p.pts = append(p.pts, r3.Add(last, r3.Scale(length, dir)))
	p.radii = append(p.radii, 0)
	return p
}

// bend sets the neutral-axis radius of the bend at the current end of the path.
func (p *path) bend(radius float64) *path {
	if p.err != nil {
		return p
	}
	p.radii[len(p.radii)-1] = radius
	return p
}

type fillet struct {
	arc     geom.Arc
	tangent float64
}

// round builds the fillet at vertex i, or returns nil when the legs are collinear.
func (p *path) round(i int) (*fillet, error) {
	din := r3.Unit(r3.Sub(p.pts[i], p.pts[i-1]))
	dout := r3.Unit(r3.Sub(p.pts[i+1], p.pts[i]))
	theta := math.Acos(math.Max(-1, math.Min(1, r3.Dot(din, dout))))
	if theta < geom.AngleTolerance {
		return nil, nil
	}
	if math.Pi-theta < geom.AngleTolerance {
		return nil, fmt.Errorf("bend %d turns back on itself", i)
	}
	radius := p.radii[i]
	if !(radius > geom.Tolerance) {
		return nil, fmt.Errorf("bend %d has non-positive radius %.4f", i, radius)
	}

	t := radius * math.Tan(theta/2)
	start := r3.Sub(p.pts[i], r3.Scale(t, din))
	end := r3.Add(p.pts[i], r3.Scale(t, dout))
	inward := r3.Unit(r3.Sub(dout, r3.Scale(r3.Dot(dout, din), din)))
	centre := r3.Add(start, r3.Scale(radius, inward))

	arc, err := geom.NewArc(centre, start, end, r3.Cross(din, dout))
	if err != nil {
		return nil, fmt.Errorf("bend %d: %w", i, err)
	}
	return &fillet{arc: arc, tangent: t}, nil
}

// curve rounds the path into a connected centreline.
func (p *path) curve() (*geom.PolyCurve, error) {
	if p.err != nil {
		return nil, p.err
	}
	n := len(p.pts)
	if n < 2 {
		return nil, fmt.Errorf("path has no legs")
	}

	fillets := make([]*fillet, n)
	for i := 1; i < n-1; i++ {
		f, err := p.round(i)
		if err != nil {
			return nil, err
		}
		fillets[i] = f
	}

	// a bend cannot consume more than the straight it shares with its neighbour
	for i := 0; i < n-1; i++ {
		straight := r3.Norm(r3.Sub(p.pts[i+1], p.pts[i]))
		used := tangentOf(fillets[i]) + tangentOf(fillets[i+1])
		if used > straight+geom.Tolerance {
			return nil, fmt.Errorf("leg %d is %.4f long but its bends need %.4f", i+1, straight, used)
		}
	}

	var segments []geom.Curve
	at := p.pts[0]
	for i := 1; i < n; i++ {
		to := p.pts[i]
		if fillets[i] != nil {
			to = fillets[i].arc.Start
		}
		if !geom.Coincident(at, to) {
			segments = append(segments, geom.Line{From: at, To: to})
		}
		at = to
		if fillets[i] != nil {
			segments = append(segments, fillets[i].arc)
			at = fillets[i].arc.End
		}
	}
	return geom.Join(segments...), nil
}

func tangentOf(f *fillet) float64 {
	if f == nil {
		return 0
	}
	return f.tangent
}
