package schedule

import (
	"fmt"
	"testing"

	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.schedule")
	defer teardown()
	//
	s, err := LoadFromFile("testdata/slab.bbs")
	require.NoError(t, err)
	rows := Evaluate(s.Bars, 2)
	require.Len(t, rows, 4)

	b01 := rows[0]
	assert.Equal(t, "B01", b01.Bar.Mark)
	assert.True(t, b01.OK(), b01.Diagnostics.String())
	assert.InDelta(t, 0.952, b01.Length, 1e-9)
	assert.InDelta(t, 4*0.952, b01.TotalLength, 1e-9)
	assert.NotNil(t, b01.Centreline)

	b02 := rows[1]
	assert.InDelta(t, 6.0, b02.Length, 1e-9)
	assert.InDelta(t, 120.0, b02.TotalLength, 1e-9)

	// bend radius raised to the minimum with a warning
	b03 := rows[2]
	assert.True(t, b03.OK())
	assert.InDelta(t, 0.024, b03.Shape.BendRadius, 1e-12)
	assert.Len(t, b03.Diagnostics.Filter(diag.Warning), 1)

	b04 := rows[3]
	assert.InDelta(t, 1.5, b04.Length, 1e-12)
	assert.True(t, b04.OK())
}

func TestEvaluateKeepsGoingPastBadBars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.schedule")
	defer teardown()
	//
	bars := []Bar{
		{Mark: "ok", Code: "00", Diameter: 12, Dims: map[string]float64{"A": 1000}},
		{Mark: "unknown", Code: "42", Diameter: 12},
		{Mark: "short", Code: "21", Diameter: 12, Dims: map[string]float64{"A": 300, "B": 50, "C": 300}},
		{Mark: "ok2", Code: "11", Diameter: 12, Dims: map[string]float64{"A": 300, "B": 300}},
	}
	rows := Evaluate(bars, 0)
	require.Len(t, rows, 4)
	assert.True(t, rows[0].OK())

	assert.False(t, rows[1].OK())
	assert.Contains(t, rows[1].Diagnostics.First(), "not recognised")

	assert.False(t, rows[2].OK())
	assert.Equal(t, "internal leg", rows[2].Compliance.Rule)
	assert.Nil(t, rows[2].Centreline)

	assert.True(t, rows[3].OK())
}

func TestEvaluatePreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.schedule")
	defer teardown()
	//
	var bars []Bar
	for i := 1; i <= 50; i++ {
		bars = append(bars, Bar{
			Mark: fmt.Sprintf("B%02d", i), Code: "00", Diameter: 10,
			Dims: map[string]float64{"A": float64(100 * i)},
		})
	}
	rows := Evaluate(bars, 8)
	for i, r := range rows {
		assert.Equal(t, bars[i].Mark, r.Bar.Mark)
		assert.InDelta(t, 0.1*float64(i+1), r.Length, 1e-9)
	}

	totals := Totals(rows)
	assert.InDelta(t, 0.1*50*51/2, totals[10], 1e-9)
	assert.Empty(t, Evaluate(nil, 4))
}
