package shapecode

import (
	"math"

	"github.com/alexiusacademia/gorebar/internal/diag"
)

// BS 8666:2020 Table 4 - total length of bar measured along the centreline.
// Each formula sums the scheduled dimensions and deducts an allowance of r and
// d per bend for the shortening of the neutral axis.
var lengths = map[Code]func(s ShapeCode) float64{
	Code00: func(s ShapeCode) float64 { return s.A },
	Code11: func(s ShapeCode) float64 { return s.A + s.B - 0.5*s.BendRadius - s.Diameter },
	Code12: func(s ShapeCode) float64 { return s.A + s.B - 0.43*s.BendRadius - 1.2*s.Diameter },
	Code13: func(s ShapeCode) float64 { return s.A + 0.57*s.B + s.C - 1.6*s.Diameter },
	Code14: func(s ShapeCode) float64 { return s.A + s.C - 4*s.Diameter },
	Code15: func(s ShapeCode) float64 { return s.A + s.C },
	Code21: uBar,
	Code22: func(s ShapeCode) float64 {
		return s.A + s.B + 0.57*s.C + s.D - 0.5*s.BendRadius - 2.6*s.Diameter
	},
	Code23: uBar,
	Code24: sumABC,
	Code25: func(s ShapeCode) float64 { return s.A + s.B + s.E },
	Code26: sumABC,
	Code27: singleDeduction(func(s ShapeCode) float64 { return s.A + s.B + s.C }),
	Code28: singleDeduction(func(s ShapeCode) float64 { return s.A + s.B + s.C }),
	Code29: sumABC,
	Code31: threeBends,
	Code32: threeBends,
	Code33: func(s ShapeCode) float64 { return 2*s.A + 1.7*s.B + 2*(s.C-4*s.Diameter) },
	Code34: singleDeduction(func(s ShapeCode) float64 { return s.A + s.B + s.C + s.E }),
	Code35: singleDeduction(func(s ShapeCode) float64 { return s.A + s.B + s.C + s.E }),
	Code36: func(s ShapeCode) float64 { return s.A + s.B + s.C + s.D - s.BendRadius - 2*s.Diameter },
	Code41: fourBends,
	Code44: fourBends,
	Code46: func(s ShapeCode) float64 { return s.A + 2*s.B + s.C + s.E },
	Code47: func(s ShapeCode) float64 { return 2*s.A + s.B + 2*s.C + 1.5*s.BendRadius - 3*s.Diameter },
	Code48: func(s ShapeCode) float64 { return 2*s.A + s.B + 2*s.C },
	Code51: closedLink,
	Code52: closedLink,
	Code56: sixBends,
	Code63: func(s ShapeCode) float64 {
		return 2*s.A + 3*s.B + 2*s.C - 3*s.BendRadius - 6*s.Diameter
	},
	Code64: sixBends,
	Code67: func(s ShapeCode) float64 { return s.A },
	Code75: func(s ShapeCode) float64 { return math.Pi*(s.A-s.Diameter) + s.B },
	Code77: helixLength,
	Code98: func(s ShapeCode) float64 {
		return s.A + 2*s.B + s.C + s.D - 2*s.BendRadius - 4*s.Diameter
	},
	Code99: func(s ShapeCode) float64 {
		if s.Curve == nil {
			return 0
		}
		return s.Curve.Length()
	},
}

func sumABC(s ShapeCode) float64 { return s.A + s.B + s.C }

func uBar(s ShapeCode) float64 {
	return s.A + s.B + s.C - s.BendRadius - 2*s.Diameter
}

func threeBends(s ShapeCode) float64 {
	return s.A + s.B + s.C + s.D - 1.5*s.BendRadius - 3*s.Diameter
}

func fourBends(s ShapeCode) float64 {
	return s.A + s.B + s.C + s.D + s.E - 2*s.BendRadius - 4*s.Diameter
}

func closedLink(s ShapeCode) float64 {
	return 2*(s.A+s.B+s.C) - 2.5*s.BendRadius - 5*s.Diameter
}

func sixBends(s ShapeCode) float64 {
	return s.A + s.B + s.C + 2*s.D + s.E + s.F - 3*s.BendRadius - 6*s.Diameter
}

// singleDeduction applies the allowance for one 90° bend to sum.
func singleDeduction(sum func(ShapeCode) float64) func(ShapeCode) float64 {
	return func(s ShapeCode) float64 {
		return sum(s) - 0.5*s.BendRadius - s.Diameter
	}
}

// helixLength ignores the pitch while it is at most a fifth of the diameter.
func helixLength(s ShapeCode) float64 {
	circumference := math.Pi * (s.A - s.Diameter)
	if s.B > s.A/5 {
		return s.C * math.Hypot(circumference, s.B)
	}
	return s.C * circumference
}

// Length returns the flat length of the bar. It is never negative: an invalid
// shape yields 0 and an Error, and a formula that goes negative is clamped to 0
// with a Warning.
func Length(s ShapeCode) (float64, diag.List) {
	if s.Diameter <= 0 {
		return 0, diag.List{diag.Errorf("invalid diameter: d=%.4f", s.Diameter)}
	}
	formula, ok := lengths[s.Code]
	if !ok {
		tracer().Debugf("length: no formula for %q", s.Code)
		return 0, diag.List{notRecognised(s.Code)}
	}
	if s.Code == Code99 && !curveOK(s.Curve) {
		return 0, diag.List{diag.Errorf("shape code 99 requires a curve")}
	}
	if f, bad := nonFinite(s); bad {
		return 0, diag.List{diag.Errorf("dimension %s of shape code %s is not finite", f, s.Code)}
	}
	l := formula(s)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, diag.List{diag.Errorf("length of shape code %s is undefined", s.Code)}
	}
	if l < 0 {
		return 0, diag.List{diag.Warningf("length of shape code %s is negative (%.4f), using 0", s.Code, l)}
	}
	tracer().Debugf("length %s = %.4f", s.Code, l)
	return l, nil
}
