package shapecode

import (
	"sort"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

type entry struct {
	description string
	fields      []Field
	provisional bool
	example     Dims
}

// Example dimensions are in metres for a 12 mm bar at its scheduling radius.
var catalogue = map[Code]entry{
	Code00: {"straight bar", []Field{A}, false,
		Dims{A: 1.0}},
	Code11: {"single 90° bend", []Field{A, B}, false,
		Dims{A: 0.3, B: 0.3}},
	Code12: {"single 90° bend with non-standard radius", []Field{A, B}, false,
		Dims{A: 0.5, B: 0.5}},
	Code13: {"two 90° bends forming a 180° hook at B", []Field{A, B, C}, false,
		Dims{A: 0.3, B: 0.2, C: 0.3}},
	Code14: {"single bend, obtuse angle", []Field{A, B, C, D}, true,
		Dims{A: 0.4, B: 0.3, C: 0.5, D: 0.4}},
	Code15: {"single bend, acute angle", []Field{A, B, C, D}, false,
		Dims{A: 0.4, B: 0.3, C: 0.5, D: 0.4}},
	Code21: {"U bar, two 90° bends", []Field{A, B, C}, false,
		Dims{A: 0.3, B: 0.4, C: 0.3}},
	Code22: {"90° bend and 180° hook", []Field{A, B, C, D}, false,
		Dims{A: 0.3, B: 0.4, C: 0.15, D: 0.2}},
	Code23: {"Z bar, two 90° bends", []Field{A, B, C}, false,
		Dims{A: 0.3, B: 0.4, C: 0.3}},
	Code24: {"angled leg then 90° bend", []Field{A, B, C, D, E}, true,
		Dims{A: 0.4, B: 0.5, C: 0.4, D: 0.3, E: 0.4}},
	Code25: {"two bends, inclined middle leg, end legs opposed", []Field{A, B, C, D, E}, true,
		Dims{A: 0.4, B: 0.5, C: 0.4, D: 0.3, E: 0.4}},
	Code26: {"cranked bar", []Field{A, B, C, D, E}, false,
		Dims{A: 0.4, B: 0.5, C: 0.4, D: 0.3, E: 0.4}},
	Code27: {"inclined first leg, then 90° bend", []Field{A, B, C, D}, true,
		Dims{A: 0.5, B: 0.4, C: 0.3, D: 0.3}},
	Code28: {"90° bend, then inclined last leg", []Field{A, B, C, D}, true,
		Dims{A: 0.3, B: 0.4, C: 0.5, D: 0.3}},
	Code29: {"two bends, inclined middle leg set back", []Field{A, B, C, D, E}, false,
		Dims{A: 0.4, B: 0.5, C: 0.4, D: 0.4, E: 0.3}},
	Code31: {"three 90° bends, open link", []Field{A, B, C, D}, false,
		Dims{A: 0.3, B: 0.4, C: 0.3, D: 0.2}},
	Code32: {"three 90° bends, cranked", []Field{A, B, C, D}, false,
		Dims{A: 0.3, B: 0.4, C: 0.3, D: 0.2}},
	Code33: {"closed link with two 180° hooks", []Field{A, B, C}, true,
		Dims{A: 0.5, B: 0.2, C: 0.15}},
	Code34: {"two 90° bends, inclined third leg", []Field{A, B, C, D, E}, true,
		Dims{A: 0.3, B: 0.3, C: 0.25, D: 0.15, E: 0.2}},
	Code35: {"two 90° bends, inclined third leg reversed", []Field{A, B, C, D, E}, true,
		Dims{A: 0.3, B: 0.3, C: 0.25, D: 0.15, E: 0.2}},
	Code36: {"three bends, inclined end leg", []Field{A, B, C, D, E}, true,
		Dims{A: 0.3, B: 0.4, C: 0.3, D: 0.25, E: 0.15}},
	Code41: {"four 90° bends, top hat", []Field{A, B, C, D, E}, false,
		Dims{A: 0.2, B: 0.2, C: 0.3, D: 0.2, E: 0.2}},
	Code44: {"four 90° bends, double crank", []Field{A, B, C, D, E}, false,
		Dims{A: 0.2, B: 0.2, C: 0.3, D: 0.2, E: 0.2}},
	Code46: {"four bends, inclined cranks", []Field{A, B, C, D, E}, false,
		Dims{A: 0.3, B: 0.25, C: 0.3, D: 0.15, E: 0.3}},
	Code47: {"closed link, laps on the same side", []Field{A, B, C}, false,
		Dims{A: 0.3, B: 0.2, C: 0.15}},
	Code48: {"closed link, 135° laps", []Field{A, B, C}, true,
		Dims{A: 0.3, B: 0.2, C: 0.15}},
	Code51: {"closed link, 90° lapped corner", []Field{A, B, C}, false,
		Dims{A: 0.3, B: 0.2, C: 0.15}},
	Code52: {"closed link, 135° lapped corner", []Field{A, B, C}, true,
		Dims{A: 0.3, B: 0.2, C: 0.15}},
	Code56: {"closed link with extended lap", []Field{A, B, C, D, E, F}, true,
		Dims{A: 0.3, B: 0.2, C: 0.3, D: 0.2, E: 0.15, F: 0.15}},
	Code63: {"closed link with double lap", []Field{A, B, C}, true,
		Dims{A: 0.3, B: 0.2, C: 0.15}},
	Code64: {"six bends, stepped", []Field{A, B, C, D, E, F}, true,
		Dims{A: 0.15, B: 0.3, C: 0.3, D: 0.2, E: 0.2, F: 0.15}},
	Code67: {"preformed arc", []Field{A, R}, false,
		Dims{A: 1.0, R: 1.0}},
	Code75: {"circular link", []Field{A, B}, false,
		Dims{A: 0.5, B: 0.2}},
	Code77: {"helix", []Field{A, B, C}, false,
		Dims{A: 0.5, B: 0.1, C: 3}},
	Code98: {"four 90° bends in three dimensions", []Field{A, B, C, D}, true,
		Dims{A: 0.2, B: 0.2, C: 0.2, D: 0.2}},
	Code99: {"free form, curve supplied", nil, false,
		nil},
}

// Info describes a catalogued shape code.
type Info struct {
	Code        Code
	Description string
	Fields      []Field
	Provisional bool
	Example     Dims
}

// Recognised reports whether code is in the catalogue.
func Recognised(code Code) bool {
	_, ok := catalogue[code]
	return ok
}

// Describe returns the catalogue entry for code.
func Describe(code Code) (Info, bool) {
	e, ok := catalogue[code]
	if !ok {
		return Info{}, false
	}
	example := make(Dims, len(e.example))
	for f, v := range e.example {
		example[f] = v
	}
	return Info{
		Code:        code,
		Description: e.description,
		Fields:      append([]Field(nil), e.fields...),
		Provisional: e.provisional,
		Example:     example,
	}, true
}

// Codes returns all catalogued codes in ascending order.
func Codes() []Code {
	codes := make([]Code, 0, len(catalogue))
	for c := range catalogue {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Example returns the catalogue example for code as a ShapeCode with a 12 mm
// bar at its scheduling radius. Code 99 is given a short polyline.
func Example(code Code) (ShapeCode, bool) {
	e, ok := catalogue[code]
	if !ok {
		return ShapeCode{}, false
	}
	if code == Code99 {
		s, err := NewFreeForm(exampleCurve(), exampleDiameter, 0)
		return s, err == nil
	}
	s, err := New(code, exampleDiameter, 0, e.example)
	return s, err == nil
}

const exampleDiameter = 0.012

func exampleCurve() geom.Curve {
	return geom.Polyline{Points: []r3.Vec{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}}
}
