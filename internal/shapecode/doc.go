/*
Package shapecode models BS 8666 reinforcement bar shapes.

A ShapeCode is a value: a shape code discriminant, the bar diameter, the bend
radius and the named dimensions A to F (R for preformed arcs). Three sibling
operations work on it:

  - Centreline builds the bent neutral axis as lines and arcs,
  - Validate checks the dimensions against the BS 8666 rules,
  - Length computes the flat bar length from the standard's formulas.

None of them panics or returns an error for bad shapes. Problems come back as
diagnostics next to a neutral result (nil curve, false, zero length), so a
schedule of many bars can skip one bad bar and carry on.

All lengths are in metres.
*/
package shapecode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gorebar.shapecode'.
func tracer() tracing.Trace {
	return tracing.Select("gorebar.shapecode")
}
