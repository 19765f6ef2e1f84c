package shapecode

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/geom"
)

// bar is a shape together with the diameter and bend radius it is checked for.
type bar struct {
	ShapeCode
	d, r float64
}

type rule func(b bar) *Violation

func violate(rule, format string, args ...any) *Violation {
	return &Violation{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

var rules = map[Code][]rule{
	Code00: nil,
	Code11: {endLeg(A, 90), endLeg(B, 90)},
	Code12: {
		endLeg(A, 90), endLeg(B, 90),
		atLeast(A, "r + 6d", func(b bar) float64 { return b.r + 6*b.d }),
		atLeast(B, "r + 6d", func(b bar) float64 { return b.r + 6*b.d }),
		preformed("bend radius", func(b bar) float64 { return b.r }),
	},
	Code13: {
		hook(B),
		endLeg(A, 180), endLeg(C, 180),
		atLeast(A, "B/2 + 5d", func(b bar) float64 { return b.B/2 + 5*b.d }),
		atLeast(C, "B/2 + 5d", func(b bar) float64 { return b.B/2 + 5*b.d }),
	},
	Code14: {
		rightTriangle(C, B, D),
		endLegAt(A, func(b bar) float64 { return degrees(math.Atan2(b.B, -b.D)) }),
		endLegAt(C, func(b bar) float64 { return degrees(math.Atan2(b.B, -b.D)) }),
	},
	Code15: {
		rightTriangle(C, B, D),
		endLegAt(A, func(b bar) float64 { return degrees(math.Atan2(b.B, b.D)) }),
		endLegAt(C, func(b bar) float64 { return degrees(math.Atan2(b.B, b.D)) }),
	},
	Code21: {endLeg(A, 90), internalLeg(B), endLeg(C, 90)},
	Code22: {
		endLeg(A, 90), internalLeg(B), hook(C), endLeg(D, 180),
		atLeast(D, "C/2 + 5d", func(b bar) float64 { return b.C/2 + 5*b.d }),
	},
	Code23: {endLeg(A, 90), internalLeg(B), endLeg(C, 90)},
	Code24: {
		rightTriangle(B, D, E),
		endLegAt(A, func(b bar) float64 { return degrees(math.Atan2(b.E, b.D)) }),
		endLegAt(C, func(b bar) float64 { return 90 - degrees(math.Atan2(b.E, b.D)) }),
	},
	Code25: {
		rightTriangle(B, C, D),
		endLegAt(A, func(b bar) float64 { return degrees(math.Atan2(b.C, b.D)) }),
		endLegAt(E, func(b bar) float64 { return 180 - degrees(math.Atan2(b.C, b.D)) }),
	},
	Code26: {
		rightTriangle(B, D, E),
		endLegAt(A, crank26), endLegAt(C, crank26),
	},
	Code27: {
		shorter(D, A),
		endLegAt(A, func(b bar) float64 { return degrees(math.Atan2(b.D, leg(b.A, b.D))) }),
		internalLeg(B), endLeg(C, 90),
	},
	Code28: {
		shorter(D, C),
		endLeg(A, 90), internalLeg(B),
		endLegAt(C, func(b bar) float64 { return degrees(math.Atan2(b.D, leg(b.C, b.D))) }),
	},
	Code29: {
		rightTriangle(B, D, E),
		endLegAt(A, crank29), endLegAt(C, crank29),
	},
	Code31: {endLeg(A, 90), internalLeg(B), internalLeg(C), endLeg(D, 90)},
	Code32: {endLeg(A, 90), internalLeg(B), internalLeg(C), endLeg(D, 90)},
	Code33: {
		hook(B), internalLeg(A), endLeg(C, 180),
		shorter(C, A),
	},
	Code34: {
		shorter(D, C),
		endLeg(A, 90), internalLeg(B),
		endLegAt(E, func(b bar) float64 { return degrees(math.Atan2(b.D, leg(b.C, b.D))) }),
	},
	Code35: {
		shorter(D, C),
		endLeg(A, 90), internalLeg(B),
		endLegAt(E, func(b bar) float64 { return degrees(math.Atan2(b.D, leg(b.C, b.D))) }),
	},
	Code36: {
		shorter(E, D),
		endLeg(A, 90), internalLeg(B), internalLeg(C),
		endLegAt(D, func(b bar) float64 { return degrees(math.Atan2(b.E, leg(b.D, b.E))) }),
	},
	Code41: {endLeg(A, 90), internalLeg(B), internalLeg(C), internalLeg(D), endLeg(E, 90)},
	Code44: {endLeg(A, 90), internalLeg(B), internalLeg(C), internalLeg(D), endLeg(E, 90)},
	Code46: {
		shorter(D, B),
		endLegAt(A, crank46), internalLeg(C), endLegAt(E, crank46),
	},
	Code47: {internalLeg(A), internalLeg(B), endLeg(C, 90)},
	Code48: {internalLeg(A), internalLeg(B), endLeg(C, 135)},
	Code51: {internalLeg(A), internalLeg(B), endLeg(C, 90)},
	Code52: {internalLeg(A), internalLeg(B), endLeg(C, 135)},
	Code56: {
		internalLeg(A), internalLeg(B), internalLeg(C), internalLeg(D),
		endLeg(E, 90), endLeg(F, 90),
	},
	Code63: {internalLeg(A), internalLeg(B), endLeg(C, 90)},
	Code64: {
		endLeg(A, 90), internalLeg(B), internalLeg(C), internalLeg(D), internalLeg(E),
		endLeg(F, 90),
	},
	Code67: {
		atLeast(R, "the scheduling radius", func(b bar) float64 { return b.r }),
		preformed("radius R", func(b bar) float64 { return b.R }),
		openArc,
	},
	Code75: {
		atLeast(A, "the hook diameter", func(b bar) float64 { return bs8666.HookDiameter(b.d, b.r) }),
		endLeg(B, 180),
	},
	Code77: {
		atLeast(A, "the hook diameter", func(b bar) float64 { return bs8666.HookDiameter(b.d, b.r) }),
		atLeast(B, "the bar diameter", func(b bar) float64 { return b.d }),
		turns(C),
	},
	Code98: {endLeg(A, 90), internalLeg(B), internalLeg(C), endLeg(D, 90)},
	Code99: nil,
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func crank26(b bar) float64 { return degrees(math.Atan2(b.D, b.E)) }
func crank29(b bar) float64 { return degrees(math.Atan2(b.D, -b.E)) }
func crank46(b bar) float64 { return degrees(math.Asin(b.D / b.B)) }

// endLeg requires the minimum end projection beyond a bend of the given angle.
func endLeg(f Field, angle float64) rule {
	return endLegAt(f, func(bar) float64 { return angle })
}

func endLegAt(f Field, angle func(b bar) float64) rule {
	return func(b bar) *Violation {
		a := angle(b)
		min := bs8666.EndProjection(b.d, b.r, a)
		if v := b.Dim(f); v < min-geom.Tolerance {
			return violate("end projection",
				"%s = %.4f is less than the minimum end projection %.4f after a %.0f° bend", f, v, min, a)
		}
		return straight(b, f, a)
	}
}

// internalLeg requires room for the bends at both ends of a leg.
func internalLeg(f Field) rule {
	return func(b bar) *Violation {
		min := 2 * (b.r + b.d)
		if v := b.Dim(f); v < min-geom.Tolerance {
			return violate("internal leg",
				"%s = %.4f is shorter than the %.4f taken up by its bends", f, v, min)
		}
		return straight(b, f, 90)
	}
}

// straight requires a straight leg to exceed the bend radius plus the end
// projection of the bend next to it.
func straight(b bar, f Field, angle float64) *Violation {
	min := b.r + bs8666.EndProjection(b.d, b.r, angle)
	if v := b.Dim(f); v <= min+geom.Tolerance {
		return violate("straight length",
			"%s = %.4f does not exceed bend radius plus end projection r + P = %.4f", f, v, min)
	}
	return nil
}

// turns bounds the number of turns of a coil.
func turns(f Field) rule {
	return func(b bar) *Violation {
		if v := b.Dim(f); v > MaxTurns {
			return violate("turns", "%s = %.0f turns exceeds the maximum of %d", f, v, MaxTurns)
		}
		return nil
	}
}

func hook(f Field) rule {
	return func(b bar) *Violation {
		lo, hi := bs8666.HookDiameter(b.d, b.r), bs8666.MaximumHookDiameter(b.d)
		v := b.Dim(f)
		if v < lo-geom.Tolerance {
			return violate("hook diameter", "%s = %.4f is less than the hook diameter %.4f", f, v, lo)
		}
		if v > hi+geom.Tolerance {
			return violate("hook diameter", "%s = %.4f exceeds the maximum hook diameter %.4f", f, v, hi)
		}
		return nil
	}
}

// rightTriangle requires hyp² = a² + b² within the scheduling tolerance.
func rightTriangle(hyp, a, b Field) rule {
	return func(x bar) *Violation {
		h := math.Hypot(x.Dim(a), x.Dim(b))
		if math.Abs(x.Dim(hyp)-h) > bs8666.MacroDistance {
			return violate("right triangle",
				"%s = %.4f does not match %s and %s, expected %.4f", hyp, x.Dim(hyp), a, b, h)
		}
		return nil
	}
}

// shorter requires a projection to be shorter than the inclined leg it belongs to.
func shorter(projection, inclined Field) rule {
	return func(b bar) *Violation {
		if b.Dim(projection) >= b.Dim(inclined) {
			return violate("inclination", "%s = %.4f must be shorter than %s = %.4f",
				projection, b.Dim(projection), inclined, b.Dim(inclined))
		}
		return nil
	}
}

func atLeast(f Field, what string, min func(b bar) float64) rule {
	return func(b bar) *Violation {
		m := min(b)
		if v := b.Dim(f); v < m-geom.Tolerance {
			return violate("minimum dimension", "%s = %.4f is less than %s = %.4f", f, v, what, m)
		}
		return nil
	}
}

// preformed limits a radius to what must be bent rather than sprung on site.
func preformed(what string, radius func(b bar) float64) rule {
	return func(b bar) *Violation {
		max := bs8666.MaximumPreformedRadius(b.d)
		if v := radius(b); v > max {
			return violate("preformed radius",
				"%s %.4f exceeds %.4f, above which the bar is supplied straight", what, v, max)
		}
		return nil
	}
}

func openArc(b bar) *Violation {
	circle := 2 * math.Pi * (b.R + b.d/2)
	if b.A >= circle {
		return violate("arc length", "A = %.4f closes the circle of circumference %.4f", b.A, circle)
	}
	return nil
}
