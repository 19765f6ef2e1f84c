package shapecode

import (
	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/geom"
)

type builder func(s ShapeCode) (*geom.PolyCurve, error)

var builders = map[Code]builder{
	Code00: buildStraight,
	Code11: buildSingleBend,
	Code12: buildSingleBend,
	Code13: buildHookedU,
	Code14: buildObtuse,
	Code15: buildAcute,
	Code21: buildU,
	Code22: buildBendAndHook,
	Code23: buildZ,
	Code24: build24,
	Code25: build25,
	Code26: buildCrank,
	Code27: build27,
	Code28: build28,
	Code29: build29,
	Code31: buildOpenLink,
	Code32: build32,
	Code33: buildHookedLink,
	Code34: build34,
	Code35: build35,
	Code36: build36,
	Code41: buildTopHat,
	Code44: buildDoubleCrank,
	Code46: build46,
	Code47: buildLink47,
	Code48: buildLink48,
	Code51: buildLink51,
	Code52: buildLink52,
	Code56: build56,
	Code63: build63,
	Code64: build64,
	Code67: buildPreformedArc,
	Code75: buildCircularLink,
	Code77: buildHelix,
	Code98: buildSpatial,
	Code99: buildFreeForm,
}

// Centreline builds the neutral axis of the bent bar. The result is either a
// complete connected curve or nil with an Error diagnostic.
//
// Provisional shape codes are built as far as their construction is known and
// carry a Note saying so.
func Centreline(s ShapeCode) (*geom.PolyCurve, diag.List) {
	if s.Diameter <= 0 {
		return nil, diag.List{diag.Errorf("invalid diameter: d=%.4f", s.Diameter)}
	}
	build, ok := builders[s.Code]
	if !ok {
		tracer().Debugf("centreline: no builder for %q", s.Code)
		return nil, diag.List{notRecognised(s.Code)}
	}
	if f, bad := nonFinite(s); bad {
		return nil, diag.List{diag.Errorf("dimension %s of shape code %s is not finite", f, s.Code)}
	}
	curve, err := build(s)
	if err != nil {
		tracer().Debugf("centreline %s: %v", s.Code, err)
		return nil, diag.List{diag.Errorf("cannot build centreline for shape code %s: %v", s.Code, err)}
	}
	if !curve.IsConnected() {
		return nil, diag.List{diag.Errorf("centreline for shape code %s is not connected", s.Code)}
	}

	var diags diag.List
	if catalogue[s.Code].provisional {
		diags = append(diags, diag.Notef(
			"shape code %s centreline is provisional: construction not verified against the BS 8666 figure", s.Code))
	}
	lines, arcs, other := curve.Counts()
	tracer().Debugf("centreline %s: %d lines, %d arcs, %d sampled, length %.4f",
		s.Code, lines, arcs, other, curve.Length())
	return curve, diags
}

func notRecognised(code Code) diag.Diagnostic {
	return diag.Errorf("shape code %q not recognised", string(code))
}
