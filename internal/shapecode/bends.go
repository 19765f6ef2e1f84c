package shapecode

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/geom"
)

// Orthogonal shapes. Dimensions run to the outer faces of the bar, so the
// centreline vertex of an end leg sits d/2 in from the scheduled length and an
// internal leg loses d between its two vertices. Every bend is a fillet of
// radius r + d/2.

// offsets returns the inset d/2 and the bend offset r + d/2.
func offsets(s ShapeCode) (inset, offset float64) {
	return s.Diameter / 2, bs8666.BendOffset(s.Diameter, s.BendRadius)
}

// hookRadius is the neutral-axis radius of a 180° hook with outer diameter hook.
func hookRadius(s ShapeCode, hook float64) float64 {
	return (hook - s.Diameter) / 2
}

func buildStraight(s ShapeCode) (*geom.PolyCurve, error) {
	if !(s.A > geom.Tolerance) {
		return nil, fmt.Errorf("length A must be positive, is %.4f", s.A)
	}
	half := s.A / 2
	return geom.Join(geom.Line{From: geom.Pt(-half, 0), To: geom.Pt(half, 0)}), nil
}

// 11, 12: A down to the bend, B along
func buildSingleBend(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	return pathFrom(geom.Pt(0, s.A-e)).
		run(south, s.A-e).bend(o).
		run(east, s.B-e).
		curve()
}

// 13: B is the outer diameter of the hook between A and C
func buildHookedU(s ShapeCode) (*geom.PolyCurve, error) {
	e := s.Diameter / 2
	h := hookRadius(s, s.B)
	return pathFrom(geom.Pt(0, s.A-e)).
		run(south, s.A-e).bend(h).
		run(east, s.B-s.Diameter).bend(h).
		run(north, s.C-e).
		curve()
}

func buildU(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, s.A-e)).
		run(south, s.A-e).bend(o).
		run(east, s.B-d).bend(o).
		run(north, s.C-e).
		curve()
}

// 22: 90° bend, then a hook of outer diameter C turning back over B
func buildBendAndHook(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	h := hookRadius(s, s.C)
	return pathFrom(geom.Pt(0, s.A-e)).
		run(south, s.A-e).bend(o).
		run(east, s.B-d).bend(h).
		run(north, s.C-d).bend(h).
		run(west, s.D-e).
		curve()
}

func buildZ(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, s.A-e)).
		run(south, s.A-e).bend(o).
		run(east, s.B-d).bend(o).
		run(south, s.C-e).
		curve()
}

func buildOpenLink(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-d).bend(o).
		run(west, s.C-d).bend(o).
		run(south, s.D-e).
		curve()
}

func build32(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-d).bend(o).
		run(west, s.C-d).bend(o).
		run(north, s.D-e).
		curve()
}

// 33: closed link, both ends of the B sides turned as hooks
func buildHookedLink(s ShapeCode) (*geom.PolyCurve, error) {
	e := s.Diameter / 2
	d := s.Diameter
	h := hookRadius(s, s.B)
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(h).
		run(north, s.B-d).bend(h).
		run(west, s.A-d).bend(h).
		run(south, s.B-d).bend(h).
		run(east, s.C-e).
		curve()
}

func buildTopHat(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-d).bend(o).
		run(east, s.C-d).bend(o).
		run(south, s.D-d).bend(o).
		run(east, s.E-e).
		curve()
}

func buildDoubleCrank(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-d).bend(o).
		run(west, s.C-d).bend(o).
		run(north, s.D-d).bend(o).
		run(east, s.E-e).
		curve()
}

// 47: both laps of length C on the top side
func buildLink47(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, s.A-d)).
		run(east, s.C-e).bend(o).
		run(south, s.A-d).bend(o).
		run(west, s.B-d).bend(o).
		run(north, s.A-d).bend(o).
		run(east, s.C-e).
		curve()
}

func buildLink51(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.C-e).bend(o).
		run(north, s.A-d).bend(o).
		run(west, s.B-d).bend(o).
		run(south, s.A-d).bend(o).
		run(east, s.B-d).bend(o).
		run(north, s.C-e).
		curve()
}

// 52: as 51 with the closing lap bent through 135°
func buildLink52(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.C-e).bend(o).
		run(north, s.A-d).bend(o).
		run(west, s.B-d).bend(o).
		run(south, s.A-d).bend(o).
		run(east, s.B-d).bend(o).
		run(toward(-1, 1), s.C-e).
		curve()
}

func build56(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.E-e).bend(o).
		run(north, s.D-d).bend(o).
		run(west, s.A-d).bend(o).
		run(south, s.B-d).bend(o).
		run(east, s.C-d).bend(o).
		run(north, s.D-d).bend(o).
		run(west, s.F-e).
		curve()
}

func build63(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.C-e).bend(o).
		run(north, s.B-d).bend(o).
		run(west, s.A-d).bend(o).
		run(south, s.B-d).bend(o).
		run(east, s.A-d).bend(o).
		run(north, s.B-d).bend(o).
		run(west, s.C-e).
		curve()
}

func build64(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.D-d).bend(o).
		run(west, s.B-d).bend(o).
		run(north, s.E-d).bend(o).
		run(east, s.C-d).bend(o).
		run(north, s.D-d).bend(o).
		run(west, s.F-e).
		curve()
}

// 98: four bends, the third one out of the plane of the first two
func buildSpatial(s ShapeCode) (*geom.PolyCurve, error) {
	e, o := offsets(s)
	d := s.Diameter
	return pathFrom(geom.Pt(0, 0)).
		run(east, s.A-e).bend(o).
		run(north, s.B-d).bend(o).
		run(up, s.C-d).bend(o).
		run(south, s.B-d).bend(o).
		run(east, s.D-e).
		curve()
}
