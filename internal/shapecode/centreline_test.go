package shapecode

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCentrelineStraight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s := ShapeCode{Code: Code00, Diameter: 0.012, A: 1.0}
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	require.Len(t, curve.Curves, 1)
	assert.Equal(t, geom.Line{From: geom.Pt(-0.5, 0), To: geom.Pt(0.5, 0)}, curve.Curves[0])
	assert.Equal(t, 1.0, curve.Length())
}

func TestCentrelineSingleBend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s := ShapeCode{Code: Code11, Diameter: 0.012, BendRadius: 0.05, A: 0.3, B: 0.3}
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	require.Len(t, curve.Curves, 3)
	_, isLine := curve.Curves[0].(geom.Line)
	arc, isArc := curve.Curves[1].(geom.Arc)
	_, isLine2 := curve.Curves[2].(geom.Line)
	assert.True(t, isLine && isArc && isLine2)

	// bend offset r + d/2
	assert.InDelta(t, 0.056, arc.Radius(), 1e-12)
	assert.InDelta(t, math.Pi/2, arc.Sweep(), 1e-9)
	assert.True(t, geom.EqualWithin(geom.Pt(0, 0.294), curve.StartPoint(), 1e-12))
	assert.True(t, geom.EqualWithin(geom.Pt(0.294, 0), curve.EndPoint(), 1e-12))
	// the developed centreline agrees with the scheduling formula to within a millimetre
	assert.InDelta(t, 0.563, curve.Length(), 0.002)
}

func TestCentrelineHookIsHalfCircle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s := ShapeCode{Code: Code13, Diameter: 0.012, BendRadius: 0.024, A: 0.3, B: 0.2, C: 0.3}
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	lines, arcs, _ := curve.Counts()
	assert.Equal(t, 2, lines)
	assert.Equal(t, 2, arcs)

	var sweep float64
	for _, c := range curve.Curves {
		if a, ok := c.(geom.Arc); ok {
			assert.InDelta(t, 0.094, a.Radius(), 1e-12)
			sweep += a.Sweep()
		}
	}
	assert.InDelta(t, math.Pi, sweep, 1e-9)
	// the two legs come back parallel, B - d apart
	assert.InDelta(t, 0.188, curve.EndPoint().X-curve.StartPoint().X, 1e-9)
}

func TestCentrelineAngled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, ok := Example(Code26)
	require.True(t, ok)
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	lines, arcs, _ := curve.Counts()
	assert.Equal(t, 3, lines)
	assert.Equal(t, 2, arcs)
	// the crank rises D between parallel legs
	assert.InDelta(t, s.D, curve.EndPoint().Y-curve.StartPoint().Y, 1e-9)
	assert.InDelta(t, s.A+s.E+s.C, curve.EndPoint().X-curve.StartPoint().X, 1e-9)
}

func TestCentrelineSpatial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code98)
	curve, diags := Centreline(s)
	require.NotNil(t, curve)
	assert.Len(t, diags.Filter(diag.Note), 1)
	assert.InDelta(t, s.C-s.Diameter, curve.EndPoint().Z, 1e-9)
}

func TestCentrelineCoils(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	helix, _ := Example(Code77)
	curve, diags := Centreline(helix)
	require.Empty(t, diags)
	_, _, sampled := curve.Counts()
	assert.Equal(t, 1, sampled)
	assert.InDelta(t, helix.B*helix.C, curve.EndPoint().Z, 1e-9)
	assert.InDelta(t, (helix.A-helix.Diameter)/2, r3.Norm(curve.StartPoint()), 1e-12)
	l, _ := Length(helix)
	assert.InDelta(t, l, curve.Length(), 0.01*l)

	link, _ := Example(Code75)
	curve, diags = Centreline(link)
	require.Empty(t, diags)
	assert.Greater(t, curve.EndPoint().Z, 0.0)
}

func TestCentrelinePreformedArc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code67)
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	require.Len(t, curve.Curves, 1)
	assert.InDelta(t, s.A, curve.Length(), 1e-9)
	assert.InDelta(t, 0, curve.StartPoint().Y-curve.EndPoint().Y, 1e-12)

	s.A = 7
	curve, diags = Centreline(s)
	assert.Nil(t, curve)
	assert.True(t, diags.HasErrors())
}

func TestCentrelineBendTooLargeForLeg(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s := ShapeCode{Code: Code21, Diameter: 0.012, BendRadius: 0.024, A: 0.3, B: 0.05, C: 0.3}
	curve, diags := Centreline(s)
	assert.Nil(t, curve)
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.First(), "bends need")
}

func TestCentrelineDegenerateTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code27)
	s.D = s.A * 2
	curve, diags := Centreline(s)
	assert.Nil(t, curve)
	assert.Contains(t, diags.First(), "no direction")
}

func TestCentrelineProvisionalNote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	s, _ := Example(Code14)
	curve, diags := Centreline(s)
	require.NotNil(t, curve)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Note, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "provisional")
}

func TestCentrelineFreeForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	pl := geom.Polyline{Points: []r3.Vec{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 1)}}
	s, err := NewFreeForm(pl, 0.016, 0)
	require.NoError(t, err)
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	assert.Equal(t, 3.0, curve.Length())

	s.Curve = nil
	curve, diags = Centreline(s)
	assert.Nil(t, curve)
	assert.True(t, diags.HasErrors())
}

func TestCentrelineFreeFormIsNotShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	given := geom.Join(geom.Line{From: geom.Pt(0, 0), To: geom.Pt(1, 0)})
	s, err := NewFreeForm(given, 0.012, 0)
	require.NoError(t, err)
	curve, diags := Centreline(s)
	require.Empty(t, diags)
	assert.NotSame(t, given, curve)

	given.Curves[0] = geom.Line{From: geom.Pt(0, 0), To: geom.Pt(5, 0)}
	assert.Equal(t, 1.0, curve.Length())
}

func TestCentrelineTypedNilCurve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	var nilCurve *geom.PolyCurve
	_, err := NewFreeForm(nilCurve, 0.012, 0)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)

	for _, c := range []geom.Curve{nilCurve, geom.Join(geom.Line{To: geom.Pt(1, 0)}, nilCurve), &geom.PolyCurve{}} {
		s := ShapeCode{Code: Code99, Diameter: 0.012, Curve: c}
		curve, diags := Centreline(s)
		assert.Nil(t, curve)
		assert.True(t, diags.HasErrors())
	}
}

func TestCentrelineCoilTurnsAreBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	helix, _ := Example(Code77)
	for _, c := range []float64{math.Inf(1), math.NaN(), 1e9, MaxTurns + 1} {
		helix.C = c
		curve, diags := Centreline(helix)
		assert.Nil(t, curve, c)
		assert.True(t, diags.HasErrors(), c)
	}
	helix.C = MaxTurns
	curve, diags := Centreline(helix)
	require.NotNil(t, curve, diags.String())
	assert.Len(t, curve.Sample(1), MaxTurns*SamplesPerTurn+1)

	link, _ := Example(Code75)
	link.B = 1e9
	curve, diags = Centreline(link)
	assert.Nil(t, curve)
	assert.True(t, diags.HasErrors())

	u := ShapeCode{Code: Code21, Diameter: 0.012, BendRadius: 0.024, A: math.NaN(), B: 0.4, C: 0.3}
	curve, diags = Centreline(u)
	assert.Nil(t, curve)
	assert.Contains(t, diags.First(), "not finite")
}

func TestCentrelineNotRecognised(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	curve, diags := Centreline(ShapeCode{Code: "42", Diameter: 0.012, A: 1})
	assert.Nil(t, curve)
	assert.Contains(t, diags.First(), "not recognised")

	curve, diags = Centreline(ShapeCode{Code: Code00, A: 1})
	assert.Nil(t, curve)
	assert.Contains(t, diags.First(), "invalid diameter")
}
