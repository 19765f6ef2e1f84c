package shapecode

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	for in, want := range map[string]Code{
		"21":          Code21,
		"SC21":        Code21,
		"sc11":        Code11,
		"ShapeCode99": Code99,
		"BS8666-67":   Code67,
		" 0 ":         Code00,
	} {
		got, err := ParseCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCode("42")
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
	assert.Contains(t, err.Error(), "not recognised")
}

func TestNew(t *testing.T) {
	s, err := New(Code21, 0.012, 0, Dims{A: 0.3, B: 0.4, C: 0.3})
	require.NoError(t, err)
	assert.Equal(t, Code21, s.Code)
	assert.InDelta(t, 0.024, s.BendRadius, 1e-12)
	assert.Equal(t, 0.4, s.Dim(B))
	assert.Equal(t, 0.0, s.Dim(D))
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(Code21, 0.012, 0, Dims{A: 0.3, B: 0.4})
	assert.ErrorContains(t, err, "requires dimension C")

	_, err = New(Code21, 0.012, 0, Dims{A: 0.3, B: 0.4, C: 0.3, F: 0.1})
	assert.ErrorContains(t, err, "has no dimension F")

	_, err = New("42", 0.012, 0, nil)
	assert.ErrorContains(t, err, "not recognised")

	_, err = New(Code00, 0, 0, Dims{A: 1})
	assert.ErrorContains(t, err, "invalid diameter")

	_, err = NewFreeForm(nil, 0.012, 0)
	assert.Error(t, err)
}

func TestWithMinimumBendRadius(t *testing.T) {
	s, err := New(Code11, 0.012, 0.010, Dims{A: 0.3, B: 0.3})
	require.NoError(t, err)
	fixed, diags := WithMinimumBendRadius(s)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "below minimum scheduling radius")
	assert.InDelta(t, 0.024, fixed.BendRadius, 1e-12)
	assert.Equal(t, 0.010, s.BendRadius)

	again, diags := WithMinimumBendRadius(fixed)
	assert.Empty(t, diags)
	assert.Equal(t, fixed, again)
}

func TestCatalogue(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, len(builders))
	assert.Equal(t, Code00, codes[0])
	assert.Equal(t, Code99, codes[len(codes)-1])
	for _, c := range codes {
		_, hasLength := lengths[c]
		_, hasRules := rules[c]
		assert.True(t, hasLength, "no length formula for %s", c)
		assert.True(t, hasRules, "no rules for %s", c)
		info, ok := Describe(c)
		require.True(t, ok)
		assert.NotEmpty(t, info.Description)
	}
	info, _ := Describe(Code26)
	assert.False(t, info.Provisional)
	info, _ = Describe(Code48)
	assert.True(t, info.Provisional)
}

// every catalogue example is a valid, compliant bar with a connected centreline
func TestExamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gorebar.shapecode")
	defer teardown()
	//
	for _, c := range Codes() {
		s, ok := Example(c)
		require.True(t, ok, c)

		curve, diags := Centreline(s)
		require.NotNil(t, curve, "%s: %s", c, diags)
		assert.False(t, diags.HasErrors(), "%s: %s", c, diags)
		assert.True(t, curve.IsConnected(), c)

		l, diags := Length(s)
		assert.Empty(t, diags, c)
		assert.Greater(t, l, 0.0, c)

		v := Validate(s, Params{Diameter: s.Diameter, BendRadius: s.BendRadius})
		assert.True(t, v.IsCompliant, "%s: %s", c, v.Message)
		assert.NoError(t, v.Err())
	}
}
