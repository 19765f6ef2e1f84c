package schedule

import (
	"runtime"
	"sync"

	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/geom"
	"github.com/alexiusacademia/gorebar/internal/shapecode"
)

// Row is the evaluation of one bar mark
type Row struct {
	Bar   Bar
	Shape shapecode.ShapeCode

	Length      float64 // m, one bar
	TotalLength float64 // m, all bars of the mark
	Compliance  shapecode.Compliance
	Centreline  *geom.PolyCurve

	Diagnostics diag.List
}

// OK reports whether the bar was evaluated without errors and complies.
func (r Row) OK() bool {
	return r.Compliance.IsCompliant && !r.Diagnostics.HasErrors()
}

// Evaluate runs every bar through the shape code engine on up to workers
// goroutines (0 means one per CPU). Rows are returned in schedule order. A bar
// that cannot be evaluated gets a row carrying its diagnostics; the others are
// unaffected.
func Evaluate(bars []Bar, workers int) []Row {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(bars) {
		workers = len(bars)
	}
	rows := make([]Row, len(bars))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i] = evaluate(bars[i])
			}
		}()
	}
	for i := range bars {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return rows
}

func evaluate(b Bar) Row {
	row := Row{Bar: b}
	s, err := b.ShapeCode()
	if err != nil {
		tracer().Infof("bar %s skipped: %v", b.Mark, err)
		row.Diagnostics = diag.List{diag.Errorf("bar %s: %v", b.Mark, err)}
		return row
	}
	// an undersized bend radius is raised rather than rejected
	s, row.Diagnostics = shapecode.WithMinimumBendRadius(s)
	row.Shape = s

	var diags diag.List
	row.Length, diags = shapecode.Length(s)
	row.Diagnostics = append(row.Diagnostics, diags...)
	row.TotalLength = row.Length * float64(b.Count())

	row.Compliance = shapecode.Validate(s, shapecode.Params{Diameter: s.Diameter, BendRadius: s.BendRadius})
	row.Diagnostics = append(row.Diagnostics, row.Compliance.Diagnostics...)

	row.Centreline, diags = shapecode.Centreline(s)
	row.Diagnostics = append(row.Diagnostics, diags...)

	tracer().Debugf("bar %s: code %s, length %.4f, compliant %v", b.Mark, s.Code, row.Length, row.Compliance.IsCompliant)
	return row
}

// Totals sums the bar lengths of all rows, in metres, by bar diameter in mm.
func Totals(rows []Row) map[float64]float64 {
	totals := make(map[float64]float64)
	for _, r := range rows {
		if r.Length > 0 {
			totals[r.Bar.Diameter] += r.TotalLength
		}
	}
	return totals
}
