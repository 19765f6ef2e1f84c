package shapecode

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/geom"
)

// Params is the bar a shape is checked for.
type Params struct {
	Diameter   float64
	BendRadius float64 // zero means the scheduling radius for Diameter
}

// Compliance is the verdict of Validate. A failed check names the first rule
// that did not hold; later rules are not evaluated.
type Compliance struct {
	Code        Code
	IsCompliant bool
	Rule        string
	Message     string
	Diagnostics diag.List
}

// Err returns the failed rule as a *Violation, or nil for a compliant shape.
func (c Compliance) Err() error {
	if c.IsCompliant {
		return nil
	}
	return &Violation{Code: c.Code, Rule: c.Rule, Message: c.Message}
}

// Violation is a BS 8666 rule a shape does not satisfy.
type Violation struct {
	Code    Code
	Rule    string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("shape code %s: %s: %s", v.Code, v.Rule, v.Message)
}

// Validate checks s against BS 8666 for the bar in p. Checks run in a fixed
// order and stop at the first failure:
//
//	diameter > 0, code recognised, bend radius >= scheduling radius,
//	declared dimensions positive and finite, then the rules of the shape code.
func Validate(s ShapeCode, p Params) Compliance {
	d := p.Diameter
	if d <= 0 {
		return failed(s.Code, "diameter", "invalid diameter: d=%.4f", d)
	}
	codeRules, ok := rules[s.Code]
	if !ok {
		tracer().Debugf("validate: no rules for %q", s.Code)
		return failed(s.Code, "shape code", "%s", notRecognised(s.Code).Message)
	}
	r := p.BendRadius
	if r == 0 {
		r = bs8666.SchedulingRadius(d)
	}
	if min := bs8666.SchedulingRadius(d); r < min-geom.Tolerance {
		return failed(s.Code, "bend radius",
			"bend radius %.4f is below the minimum scheduling radius %.4f for d=%.4f", r, min, d)
	}
	for _, f := range catalogue[s.Code].fields {
		if v := s.Dim(f); !(v > 0) || math.IsInf(v, 1) {
			return failed(s.Code, "dimensions", "%s must be positive and finite, is %.4f", f, v)
		}
	}
	if s.Code == Code99 && (!curveOK(s.Curve) || !(s.Curve.Length() > geom.Tolerance)) {
		return failed(s.Code, "curve", "free-form bar needs a curve of positive length")
	}

	b := bar{ShapeCode: s, d: d, r: r}
	for _, check := range codeRules {
		if v := check(b); v != nil {
			tracer().Debugf("validate %s: %s: %s", s.Code, v.Rule, v.Message)
			return failed(s.Code, v.Rule, "%s", v.Message)
		}
	}
	return Compliance{
		Code:        s.Code,
		IsCompliant: true,
		Message:     fmt.Sprintf("shape code %s complies with BS 8666", s.Code),
	}
}

func failed(code Code, rule, format string, args ...any) Compliance {
	msg := fmt.Sprintf(format, args...)
	return Compliance{
		Code:        code,
		Rule:        rule,
		Message:     msg,
		Diagnostics: diag.List{diag.Errorf("%s", msg)},
	}
}

// IsCompliant checks s for its own diameter and bend radius.
func IsCompliant(s ShapeCode) (bool, diag.List) {
	c := Validate(s, Params{Diameter: s.Diameter, BendRadius: s.BendRadius})
	return c.IsCompliant, c.Diagnostics
}

// IsCompliantFor checks s for a bar of the given diameter bent at the
// scheduling radius.
func IsCompliantFor(s ShapeCode, diameter float64) (bool, diag.List) {
	c := Validate(s, Params{Diameter: diameter})
	return c.IsCompliant, c.Diagnostics
}

// IsCompliantWith checks s for a bar of the given diameter and bend radius.
func IsCompliantWith(s ShapeCode, diameter, bendRadius float64) (bool, diag.List) {
	c := Validate(s, Params{Diameter: diameter, BendRadius: bendRadius})
	return c.IsCompliant, c.Diagnostics
}
