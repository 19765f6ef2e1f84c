package shapecode

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompliantStraightAndSingleBend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	ok, diags := IsCompliantFor(ShapeCode{Code: Code00, A: 1.0}, 0.012)
	assert.True(t, ok)
	assert.Empty(t, diags)

	s := ShapeCode{Code: Code11, Diameter: 0.012, BendRadius: 0.05, A: 0.3, B: 0.3}
	ok, diags = IsCompliant(s)
	assert.True(t, ok, diags.String())
}

func TestNonPositiveDiameterNeverComplies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	for _, c := range Codes() {
		s, _ := Example(c)
		for _, d := range []float64{0, -0.012} {
			ok, diags := IsCompliantFor(s, d)
			assert.False(t, ok, c)
			assert.Contains(t, diags.First(), "invalid diameter", c)
		}
	}
}

func TestNotRecognisedNeverComplies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	v := Validate(ShapeCode{Code: "42", A: 1}, Params{Diameter: 0.012})
	assert.False(t, v.IsCompliant)
	assert.Equal(t, "shape code", v.Rule)
	assert.Contains(t, v.Message, "not recognised")
	assert.Len(t, v.Diagnostics, 1)
}

func TestRuleOrderShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s := ShapeCode{Code: Code21, Diameter: 0.012, BendRadius: 0.024, A: 0.05, B: 0.05, C: 0.3}
	v := Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "end projection", v.Rule)
	assert.Contains(t, v.Message, "A = ")
	assert.Len(t, v.Diagnostics, 1)

	s.A = 0.3
	v = Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "internal leg", v.Rule)

	// the bend radius is checked before any dimension
	v = Validate(s, Params{Diameter: 0.012, BendRadius: 0.010})
	assert.Equal(t, "bend radius", v.Rule)

	s.C = 0
	v = Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "dimensions", v.Rule)
}

func TestEndProjectionGrowsWithRadius(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	// r + P is 0.114 at the scheduling radius and 0.166 at r = 0.05
	s := ShapeCode{Code: Code11, Diameter: 0.012, A: 0.13, B: 0.3}
	ok, diags := IsCompliantWith(s, 0.012, 0.024)
	assert.True(t, ok, diags.String())
	ok, diags = IsCompliantWith(s, 0.012, 0.05)
	assert.False(t, ok)
	assert.Contains(t, diags.First(), "r + P")

	// P itself grows to 0.116
	s.A = 0.1
	ok, diags = IsCompliantWith(s, 0.012, 0.05)
	assert.False(t, ok)
	assert.Contains(t, diags.First(), "end projection")
}

func TestStraightLengthExceedsRadiusPlusProjection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	u := ShapeCode{Code: Code21, Diameter: 0.012, A: 0.3, B: 0.4, C: 0.3}
	topHat := ShapeCode{Code: Code41, Diameter: 0.012, A: 0.2, B: 0.2, C: 0.3, D: 0.2, E: 0.2}
	for _, tc := range []struct {
		name  string
		s     ShapeCode
		r     float64
		field Field
		value float64
		ok    bool
	}{
		{"21 end leg at r + P", u, 0.024, A, 0.114, false},
		{"21 end leg above r + P", u, 0.024, A, 0.1145, true},
		{"21 end leg below r + P", u, 0.024, A, 0.1135, false},
		{"21 internal leg at r + P", u, 0.024, B, 0.114, false},
		{"21 internal leg above r + P", u, 0.024, B, 0.1145, true},
		{"21 internal leg below r + P", u, 0.024, B, 0.1135, false},
		{"21 end leg at larger radius", u, 0.05, C, 0.166, false},
		{"21 end leg above larger radius", u, 0.05, C, 0.1665, true},
		{"21 end leg below larger radius", u, 0.05, C, 0.1655, false},
		{"41 end leg at r + P", topHat, 0.024, E, 0.114, false},
		{"41 end leg above r + P", topHat, 0.024, E, 0.1145, true},
		{"41 internal leg below r + P", topHat, 0.024, D, 0.1135, false},
		{"41 internal leg above r + P", topHat, 0.024, D, 0.1145, true},
		{"41 internal leg at larger radius", topHat, 0.05, B, 0.166, false},
		{"41 internal leg above larger radius", topHat, 0.05, B, 0.1665, true},
	} {
		s := tc.s.with(tc.field, tc.value)
		v := Validate(s, Params{Diameter: 0.012, BendRadius: tc.r})
		assert.Equal(t, tc.ok, v.IsCompliant, "%s: %s", tc.name, v.Message)
		if !tc.ok {
			assert.Equal(t, "straight length", v.Rule, tc.name)
		}
	}

	// short legs that clear the end projection alone
	short := ShapeCode{Code: Code21, Diameter: 0.012, BendRadius: 0.024, A: 0.095, B: 0.1, C: 0.095}
	ok, diags := IsCompliant(short)
	assert.False(t, ok)
	assert.Contains(t, diags.First(), "A = 0.0950")
}

func TestNonFiniteDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	helix, _ := Example(Code77)
	helix.C = math.Inf(1)
	v := Validate(helix, Params{Diameter: 0.012})
	assert.False(t, v.IsCompliant)
	assert.Equal(t, "dimensions", v.Rule)

	helix.C = math.NaN()
	v = Validate(helix, Params{Diameter: 0.012})
	assert.Equal(t, "dimensions", v.Rule)

	helix.C = 1e9
	v = Validate(helix, Params{Diameter: 0.012})
	assert.Equal(t, "turns", v.Rule)

	helix.C = MaxTurns
	assert.True(t, Validate(helix, Params{Diameter: 0.012}).IsCompliant)
}

func TestTypedNilCurveNeverComplies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	var nilCurve *geom.PolyCurve
	for _, c := range []geom.Curve{nilCurve, geom.Join(nilCurve), &geom.PolyCurve{}} {
		s := ShapeCode{Code: Code99, Diameter: 0.012, Curve: c}
		v := Validate(s, Params{Diameter: 0.012})
		assert.False(t, v.IsCompliant)
		assert.Equal(t, "curve", v.Rule)
	}
}

func TestHookLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code13)
	s.B = 0.05
	v := Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "hook diameter", v.Rule)
	assert.Contains(t, v.Message, "less than")

	s.B = 0.6
	v = Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "hook diameter", v.Rule)
	assert.Contains(t, v.Message, "exceeds")
}

func TestRightTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code26)
	s.B += 0.0005
	ok, _ := IsCompliantFor(s, 0.012)
	assert.True(t, ok, "within macro tolerance")

	s.B += 0.01
	v := Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "right triangle", v.Rule)

	var violation *Violation
	require.ErrorAs(t, v.Err(), &violation)
	assert.Equal(t, Code26, violation.Code)
}

func TestPreformedArc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code67)
	s.R = 10
	v := Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "preformed radius", v.Rule)

	s.R = 1
	s.A = 7
	v = Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "arc length", v.Rule)
}

func TestMinimumDimension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code22)
	s.C = 0.3
	s.D = 0.18 // above r + P, below C/2 + 5d
	v := Validate(s, Params{Diameter: 0.012})
	assert.Equal(t, "minimum dimension", v.Rule)
}

func TestFreeFormNeedsCurve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	v := Validate(ShapeCode{Code: Code99}, Params{Diameter: 0.012})
	assert.False(t, v.IsCompliant)
	assert.Equal(t, "curve", v.Rule)
}
