package bs8666

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// BS 8666:2020 Scheduling Constants (all lengths in metres)

const (
	// Tolerance on scheduled dimensions (right-angle triangle checks)
	MacroDistance = 1e-3

	// Bend angle at or above which the general end projection applies
	GeneralBendAngle = 150.0 // degrees

	// Hook diameter upper bound is MaximumHookAllowance + 2d
	MaximumHookAllowance = 0.4

	// Mass of reinforcing steel, kg/m³
	SteelDensity = 7850.0
)

// Table 2 - Minimum scheduling radii and end projections
var (
	tableDiameters = []float64{0.006, 0.008, 0.010, 0.012, 0.016, 0.020, 0.025, 0.032, 0.040, 0.050}

	// r - minimum scheduling radius
	tableRadius = []float64{0.012, 0.016, 0.020, 0.024, 0.032, 0.070, 0.087, 0.112, 0.140, 0.175}

	// P - minimum end projection, bends >= 150°
	tableGeneralProjection = []float64{0.110, 0.115, 0.120, 0.125, 0.130, 0.190, 0.240, 0.305, 0.380, 0.475}

	// P - minimum end projection, bends < 150°
	tableLinksProjection = []float64{0.070, 0.075, 0.080, 0.090, 0.115, 0.135, 0.160, 0.205, 0.255, 0.320}
)

// Table 3 - Radius above which a bar is supplied straight and sprung to curvature on site
var tablePreformedRadius = []float64{2.4, 2.75, 3.5, 4.25, 7.5, 14.0, 30.0, 43.0, 58.0, 100.0}

var (
	radiusFit    = mustFit(tableDiameters, tableRadius)
	generalFit   = mustFit(tableDiameters, tableGeneralProjection)
	linksFit     = mustFit(tableDiameters, tableLinksProjection)
	preformedFit = mustFit(tableDiameters, tablePreformedRadius)
)

func mustFit(xs, ys []float64) interp.PiecewiseLinear {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		panic(err)
	}
	return pl
}

// SchedulingRadius returns the minimum bend radius for a bar diameter.
// Non-standard diameters are interpolated; values outside the table are clamped.
// BS 8666:2020 Table 2
func SchedulingRadius(diameter float64) float64 {
	return radiusFit.Predict(diameter)
}

// GeneralEndProjection returns the minimum straight beyond a bend of 150° or more,
// measured to the outer face of the bar. A bend radius above the scheduling
// radius lengthens the projection by the difference.
// BS 8666:2020 Table 2
func GeneralEndProjection(diameter, bendRadius float64) float64 {
	return generalFit.Predict(diameter) + radiusExcess(diameter, bendRadius)
}

// LinksEndProjection returns the minimum straight beyond a bend of less than 150°.
// BS 8666:2020 Table 2
func LinksEndProjection(diameter, bendRadius float64) float64 {
	return linksFit.Predict(diameter) + radiusExcess(diameter, bendRadius)
}

// EndProjection selects the general or links end projection by bend angle (degrees).
func EndProjection(diameter, bendRadius, bendAngle float64) float64 {
	if bendAngle >= GeneralBendAngle {
		return GeneralEndProjection(diameter, bendRadius)
	}
	return LinksEndProjection(diameter, bendRadius)
}

func radiusExcess(diameter, bendRadius float64) float64 {
	return math.Max(0, bendRadius-SchedulingRadius(diameter))
}

// HookDiameter returns the outer diameter of a 180° bend: 2(r + d).
// A zero bend radius means the scheduling radius.
func HookDiameter(diameter, bendRadius float64) float64 {
	if bendRadius <= 0 {
		bendRadius = SchedulingRadius(diameter)
	}
	return 2 * (bendRadius + diameter)
}

// MaximumHookDiameter returns the largest hook scheduled as a bend: 0.4 + 2d.
func MaximumHookDiameter(diameter float64) float64 {
	return MaximumHookAllowance + 2*diameter
}

// MaximumPreformedRadius returns the largest radius for which a preformed curve is
// required. Bars bent to a larger radius are supplied straight.
// BS 8666:2020 Table 3
func MaximumPreformedRadius(diameter float64) float64 {
	return preformedFit.Predict(diameter)
}

// BendOffset returns the neutral axis radius of a bend: r + d/2.
func BendOffset(diameter, bendRadius float64) float64 {
	return bendRadius + diameter/2
}

// MassPerMetre returns the mass of one metre of bar (kg/m), from the nominal
// cross-sectional area.
// BS 8666:2020 Table 1
func MassPerMetre(diameter float64) float64 {
	return SteelDensity * math.Pi * diameter * diameter / 4
}
