package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// samples per arc used when drawing
const arcSamples = 24

// DrawASCIICentreline sketches the plan view (XY projection) of a bar
// centreline in a grid of cols × rows characters. The bar is scaled to fit,
// keeping its proportions; a character cell is taken to be twice as tall as
// it is wide. S and E mark the start and end of the bar.
func DrawASCIICentreline(curve geom.Curve, cols, rows int) string {
	if curve == nil || cols < 3 || rows < 3 {
		return ""
	}
	pts := curve.Sample(arcSamples)
	if len(pts) == 0 {
		return ""
	}

	minX, maxX, minY, maxY := bounds(pts)
	w, h := maxX-minX, maxY-minY
	// metres per column; a row is two columns high
	scale := math.Max(w/float64(cols-1), 2*h/float64(rows-1))
	if scale == 0 {
		scale = 1
	}
	usedCols := int(math.Round(w/scale)) + 1
	usedRows := int(math.Round(h/(2*scale))) + 1

	grid := make([][]rune, usedRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", usedCols))
	}
	cell := func(p r3.Vec) (int, int) {
		c := int(math.Round((p.X - minX) / scale))
		r := usedRows - 1 - int(math.Round((p.Y-minY)/(2*scale)))
		return clamp(r, 0, usedRows-1), clamp(c, 0, usedCols-1)
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X)/scale, math.Abs(b.Y-a.Y)/(2*scale)))) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			r, c := cell(r3.Add(a, r3.Scale(t, r3.Sub(b, a))))
			grid[r][c] = '█'
		}
	}
	r, c := cell(pts[0])
	grid[r][c] = 'S'
	r, c = cell(pts[len(pts)-1])
	grid[r][c] = 'E'

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", usedCols)))
	for _, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(line)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", usedCols)))
	sb.WriteString(fmt.Sprintf("  %.0f mm × %.0f mm (plan)\n", w*1000, h*1000))
	return sb.String()
}

func bounds(pts []r3.Vec) (minX, maxX, minY, maxY float64) {
	minX, maxX = pts[0].X, pts[0].X
	minY, maxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	width += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-2-utf8.RuneCountInString(s))
	}
	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
