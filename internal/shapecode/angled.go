package shapecode

import (
	"math"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/geom"
)

// Angled shapes. The inclination of a leg comes from a right triangle of named
// dimensions and the legs are measured between intersection points, so a bend
// of turning angle θ shortens each adjoining straight by (r + d/2)·tan(θ/2).

func offset(s ShapeCode) float64 {
	return bs8666.BendOffset(s.Diameter, s.BendRadius)
}

// leg returns the remaining side of a right triangle, NaN when there is none.
func leg(hypotenuse, side float64) float64 {
	return math.Sqrt(hypotenuse*hypotenuse - side*side)
}

// 14: C rises B over a set-back D, bending through more than 90°
func buildObtuse(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(-s.D, s.B), s.C).
		curve()
}

func buildAcute(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(s.D, s.B), s.C).
		curve()
}

func build24(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(s.D, s.E), s.B).bend(o).
		run(north, s.C).
		curve()
}

func build25(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(s.D, s.C), s.B).bend(o).
		run(west, s.E).
		curve()
}

// 26: B climbs D over a run of E between parallel legs A and C
func buildCrank(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(s.E, s.D), s.B).bend(o).
		run(east, s.C).
		curve()
}

func build27(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(toward(leg(s.A, s.D), -s.D), s.A).bend(o).
		run(east, s.B).bend(o).
		run(north, s.C).
		curve()
}

func build28(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, s.A)).
		run(south, s.A).bend(o).
		run(east, s.B).bend(o).
		run(toward(leg(s.C, s.D), s.D), s.C).
		curve()
}

// 29: B leans back over A by E while rising D
func build29(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(-s.E, s.D), s.B).bend(o).
		run(east, s.C).
		curve()
}

func build34(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-e).bend(o).
		run(toward(s.D, leg(s.C, s.D)), s.C).bend(o).
		run(north, s.E).
		curve()
}

func build35(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-e).bend(o).
		run(toward(-s.D, leg(s.C, s.D)), s.C).bend(o).
		run(north, s.E).
		curve()
}

func build36(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-d).bend(o).
		run(west, s.C-e).bend(o).
		run(toward(-leg(s.D, s.E), -s.E), s.D).
		curve()
}

// 46: two inclined cranks of length B and rise D
func build46(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	across := leg(s.B, s.D)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A).bend(o).
		run(toward(across, s.D), s.B).bend(o).
		run(east, s.C).bend(o).
		run(toward(across, -s.D), s.B).bend(o).
		run(east, s.E).
		curve()
}

// 48: closed link with both laps bent through 135°
func buildLink48(s ShapeCode) (*geom.PolyCurve, error) {
	o := offset(s)
	return pathFrom(geom.Pt(0, 0)).
		run(toward(1, 1), s.C).bend(o).
		run(south, s.A).bend(o).
		run(west, s.B).bend(o).
		run(north, s.A).bend(o).
		run(toward(1, -1), s.C).
		curve()
}
