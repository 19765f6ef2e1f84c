package shapecode

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/geom"
)

// Code is the BS 8666 shape code, e.g. "21"
type Code string

// BS 8666:2020 shape codes
const (
	Code00 Code = "00"
	Code11 Code = "11"
	Code12 Code = "12"
	Code13 Code = "13"
	Code14 Code = "14"
	Code15 Code = "15"
	Code21 Code = "21"
	Code22 Code = "22"
	Code23 Code = "23"
	Code24 Code = "24"
	Code25 Code = "25"
	Code26 Code = "26"
	Code27 Code = "27"
	Code28 Code = "28"
	Code29 Code = "29"
	Code31 Code = "31"
	Code32 Code = "32"
	Code33 Code = "33"
	Code34 Code = "34"
	Code35 Code = "35"
	Code36 Code = "36"
	Code41 Code = "41"
	Code44 Code = "44"
	Code46 Code = "46"
	Code47 Code = "47"
	Code48 Code = "48"
	Code51 Code = "51"
	Code52 Code = "52"
	Code56 Code = "56"
	Code63 Code = "63"
	Code64 Code = "64"
	Code67 Code = "67"
	Code75 Code = "75"
	Code77 Code = "77"
	Code98 Code = "98"
	Code99 Code = "99"
)

// Field names a scheduled dimension
type Field string

const (
	A Field = "A"
	B Field = "B"
	C Field = "C"
	D Field = "D"
	E Field = "E"
	F Field = "F"
	R Field = "R" // preformed radius (shape code 67)
)

// ShapeCode is one scheduled bar shape. Dimensions are in metres and measured
// to the outer faces of the bar, as scheduled. Only the fields declared for the
// code are used; the others are ignored.
//
// ShapeCode is a value: operations take it by value and never modify it.
type ShapeCode struct {
	Code       Code
	Diameter   float64 // d - nominal bar diameter
	BendRadius float64 // r - internal bend radius

	A, B, C, D, E, F float64
	R                float64

	// Curve is the centreline of a free-form bar (shape code 99)
	Curve geom.Curve
}

// Dims holds named dimensions for New
type Dims map[Field]float64

// Dim returns the value of a named dimension
func (s ShapeCode) Dim(f Field) float64 {
	switch f {
	case A:
		return s.A
	case B:
		return s.B
	case C:
		return s.C
	case D:
		return s.D
	case E:
		return s.E
	case F:
		return s.F
	case R:
		return s.R
	}
	return 0
}

func (s ShapeCode) with(f Field, v float64) ShapeCode {
	switch f {
	case A:
		s.A = v
	case B:
		s.B = v
	case C:
		s.C = v
	case D:
		s.D = v
	case E:
		s.E = v
	case F:
		s.F = v
	case R:
		s.R = v
	}
	return s
}

// InputError reports shape input that cannot be turned into a ShapeCode
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// ParseCode accepts "21", "SC21", "ShapeCode21" or "BS8666-21" and returns the code.
func ParseCode(s string) (Code, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	for _, prefix := range []string{"SHAPECODE", "BS8666-", "SC"} {
		t = strings.TrimPrefix(t, prefix)
	}
	t = strings.TrimSpace(t)
	if len(t) == 1 {
		t = "0" + t
	}
	c := Code(t)
	if !Recognised(c) {
		return "", inputErrorf("shape code %q not recognised", s)
	}
	return c, nil
}

// New creates a ShapeCode from named dimensions (metres). A zero bend radius
// means the scheduling radius for the diameter. Every field the code declares
// must be given, and no other.
func New(code Code, diameter, bendRadius float64, dims Dims) (ShapeCode, error) {
	info, ok := catalogue[code]
	if !ok {
		return ShapeCode{}, inputErrorf("shape code %q not recognised", string(code))
	}
	if diameter <= 0 {
		return ShapeCode{}, inputErrorf("invalid diameter: d=%.4f", diameter)
	}
	if bendRadius == 0 {
		bendRadius = bs8666.SchedulingRadius(diameter)
	}
	s := ShapeCode{Code: code, Diameter: diameter, BendRadius: bendRadius}

	declared := make(map[Field]bool, len(info.fields))
	for _, f := range info.fields {
		declared[f] = true
		v, ok := dims[f]
		if !ok {
			return ShapeCode{}, inputErrorf("shape code %s requires dimension %s", code, f)
		}
		s = s.with(f, v)
	}
	var extra []string
	for f := range dims {
		if !declared[f] {
			extra = append(extra, string(f))
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return ShapeCode{}, inputErrorf("shape code %s has no dimension %s", code, strings.Join(extra, ", "))
	}
	return s, nil
}

// NewFreeForm creates a shape code 99 bar following curve.
func NewFreeForm(curve geom.Curve, diameter, bendRadius float64) (ShapeCode, error) {
	if !curveOK(curve) {
		return ShapeCode{}, inputErrorf("shape code 99 requires a curve")
	}
	s, err := New(Code99, diameter, bendRadius, nil)
	if err != nil {
		return ShapeCode{}, err
	}
	s.Curve = curve
	return s, nil
}

// curveOK reports whether c can be measured and sampled. A nil *geom.PolyCurve,
// or one holding a nil segment, is not usable even when wrapped in a non-nil
// interface.
func curveOK(c geom.Curve) bool {
	if c == nil {
		return false
	}
	pc, ok := c.(*geom.PolyCurve)
	if !ok {
		return true
	}
	if pc == nil {
		return false
	}
	for _, seg := range pc.Curves {
		if !curveOK(seg) {
			return false
		}
	}
	return true
}

// nonFinite returns the first declared dimension of s that is infinite or NaN.
func nonFinite(s ShapeCode) (Field, bool) {
	for _, f := range catalogue[s.Code].fields {
		if v := s.Dim(f); math.IsInf(v, 0) || math.IsNaN(v) {
			return f, true
		}
	}
	return "", false
}

// WithMinimumBendRadius returns s with its bend radius raised to the scheduling
// radius when it is smaller, together with a warning. s itself is unchanged.
func WithMinimumBendRadius(s ShapeCode) (ShapeCode, diag.List) {
	if s.Diameter <= 0 {
		return s, nil
	}
	min := bs8666.SchedulingRadius(s.Diameter)
	if s.BendRadius >= min {
		return s, nil
	}
	old := s.BendRadius
	s.BendRadius = min
	return s, diag.List{diag.Warningf(
		"bend radius %.4f below minimum scheduling radius %.4f for d=%.4f; using %.4f",
		old, min, s.Diameter, min)}
}
