// Package schedule reads bar bending schedules and evaluates every bar in them.
//
// Schedules are written in millimetres, the way they are drawn up. Bars are
// converted to metres for the shape code engine.
package schedule

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer traces with key 'gorebar.schedule'.
func tracer() tracing.Trace {
	return tracing.Select("gorebar.schedule")
}

// Schedule is a bar bending schedule
type Schedule struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Bars        []Bar  `json:"bars" yaml:"bars"`
}

// Bar is one scheduled bar mark
type Bar struct {
	Mark       string             `json:"mark" yaml:"mark"`
	Code       string             `json:"code" yaml:"code"`
	Diameter   float64            `json:"diameter" yaml:"diameter"`                           // mm
	BendRadius float64            `json:"bend_radius,omitempty" yaml:"bend_radius,omitempty"` // mm, 0 = scheduling radius
	Dims       map[string]float64 `json:"dims,omitempty" yaml:"dims,omitempty"`               // mm

	// Centreline points of a free-form bar (shape code 99), mm
	Points []Point `json:"points,omitempty" yaml:"points,omitempty"`

	Quantity int `json:"quantity,omitempty" yaml:"quantity,omitempty"` // 0 means 1
}

// Point is a centreline point of a free-form bar
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
	Z float64 `json:"z,omitempty" yaml:"z,omitempty"`
}

const mm = 1e-3

// Validate checks the schedule itself. Whether each bar complies with BS 8666
// is left to Evaluate.
func (s *Schedule) Validate() error {
	if len(s.Bars) == 0 {
		return &ValidationError{"schedule has no bars"}
	}
	marks := make(map[string]bool, len(s.Bars))
	for i, b := range s.Bars {
		if strings.TrimSpace(b.Mark) == "" {
			return &ValidationError{msg: fmt.Sprintf("bar %d has no mark", i+1)}
		}
		if marks[b.Mark] {
			return &ValidationError{msg: fmt.Sprintf("bar mark %s is scheduled twice", b.Mark)}
		}
		marks[b.Mark] = true
		if b.Quantity < 0 {
			return &ValidationError{msg: fmt.Sprintf("bar %s has negative quantity", b.Mark)}
		}
	}
	return nil
}

// Count returns the number of bars of this mark.
func (b Bar) Count() int {
	if b.Quantity == 0 {
		return 1
	}
	return b.Quantity
}

// ShapeCode converts the bar to an engine shape, in metres.
func (b Bar) ShapeCode() (shapecode.ShapeCode, error) {
	code, err := shapecode.ParseCode(b.Code)
	if err != nil {
		return shapecode.ShapeCode{}, err
	}
	if code == shapecode.Code99 {
		if len(b.Points) < 2 {
			return shapecode.ShapeCode{}, &ValidationError{
				msg: fmt.Sprintf("bar %s: shape code 99 needs at least two points", b.Mark)}
		}
		pts := make([]r3.Vec, len(b.Points))
		for i, p := range b.Points {
			pts[i] = r3.Vec{X: p.X * mm, Y: p.Y * mm, Z: p.Z * mm}
		}
		return shapecode.NewFreeForm(geom.Polyline{Points: pts}, b.Diameter*mm, b.BendRadius*mm)
	}
	dims := make(shapecode.Dims, len(b.Dims))
	for name, v := range b.Dims {
		dims[shapecode.Field(strings.ToUpper(name))] = v * mm
	}
	return shapecode.New(code, b.Diameter*mm, b.BendRadius*mm, dims)
}

// ValidationError reports a malformed schedule
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
