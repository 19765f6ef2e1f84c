package schedule

import (
	"testing"

	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFormatsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.schedule")
	defer teardown()
	//
	var loaded []*Schedule
	for _, name := range []string{"testdata/slab.json", "testdata/slab.yaml", "testdata/slab.bbs"} {
		s, err := LoadFromFile(name)
		require.NoError(t, err, name)
		loaded = append(loaded, s)
	}
	want := loaded[0]
	assert.Equal(t, "Level 2 slab", want.Name)
	require.Len(t, want.Bars, 4)
	assert.Equal(t, Bar{
		Mark: "B01", Code: "21", Diameter: 12, BendRadius: 24,
		Dims:     map[string]float64{"A": 300, "B": 400, "C": 300},
		Quantity: 4,
	}, want.Bars[0])
	for _, s := range loaded[1:] {
		assert.Equal(t, want.Name, s.Name)
		require.Len(t, s.Bars, len(want.Bars))
		for i := range want.Bars {
			assert.Equal(t, want.Bars[i].Mark, s.Bars[i].Mark)
			assert.Equal(t, want.Bars[i].Diameter, s.Bars[i].Diameter)
			assert.Equal(t, want.Bars[i].Dims, s.Bars[i].Dims)
			assert.Equal(t, want.Bars[i].Points, s.Bars[i].Points)
			assert.Equal(t, want.Bars[i].Quantity, s.Bars[i].Quantity)
		}
	}
}

func TestLoadRejects(t *testing.T) {
	_, err := LoadFromFile("testdata/missing.json")
	assert.Error(t, err)

	_, err = LoadFromFile("testdata/slab.txt")
	assert.Error(t, err)
}

func TestParseBBS(t *testing.T) {
	s, err := ParseBBS(`
		# no title
		"edge 1" 13 d=10 A=250 B=150 C=250 n=2;
		L7 77 d=12 A=500 B=100 C=3;
	`)
	require.NoError(t, err)
	assert.Equal(t, "", s.Name)
	require.Len(t, s.Bars, 2)
	assert.Equal(t, "edge 1", s.Bars[0].Mark)
	assert.Equal(t, "13", s.Bars[0].Code)
	assert.Equal(t, 2, s.Bars[0].Quantity)
	assert.Equal(t, 3.0, s.Bars[1].Dims["C"])
}

func TestParseBBSErrors(t *testing.T) {
	_, err := ParseBBS(`B01 21 d=12 A=300 B=400 C=300`)
	assert.ErrorContains(t, err, "parse error")

	_, err = ParseBBS(`B01 21 d=12 x=3;`)
	assert.ErrorContains(t, err, `unknown attribute "x"`)

	_, err = ParseBBS(`B01 21 d=12 A=300 A=200;`)
	assert.ErrorContains(t, err, "given twice")

	_, err = ParseBBS(`B01 21 d=12 n=2.5;`)
	assert.ErrorContains(t, err, "whole")
}

func TestValidate(t *testing.T) {
	var s Schedule
	assert.ErrorContains(t, s.Validate(), "no bars")

	s.Bars = []Bar{{Mark: "B1", Code: "00"}, {Mark: "B1", Code: "00"}}
	var verr *ValidationError
	assert.ErrorAs(t, s.Validate(), &verr)

	s.Bars = []Bar{{Code: "00"}}
	assert.ErrorContains(t, s.Validate(), "no mark")
}

func TestBarShapeCode(t *testing.T) {
	b := Bar{Mark: "B01", Code: "SC21", Diameter: 12, Dims: map[string]float64{"a": 300, "B": 400, "C": 300}}
	s, err := b.ShapeCode()
	require.NoError(t, err)
	assert.Equal(t, shapecode.Code21, s.Code)
	assert.InDelta(t, 0.012, s.Diameter, 1e-12)
	assert.InDelta(t, 0.024, s.BendRadius, 1e-12)
	assert.InDelta(t, 0.3, s.A, 1e-12)

	_, err = Bar{Mark: "B02", Code: "99", Diameter: 12}.ShapeCode()
	assert.ErrorContains(t, err, "at least two points")

	_, err = Bar{Mark: "B03", Code: "21", Diameter: 12, Dims: map[string]float64{"A": 300}}.ShapeCode()
	assert.Error(t, err)
}
