package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	barColour   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	jointColour = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ExportCentreline plots the plan view of a bar centreline, in millimetres, and
// saves it. The format follows the file extension (.png, .svg, .pdf); any other
// name gets .png appended. Segment joints are marked so the tangent points of
// each bend are visible.
func ExportCentreline(curve geom.Curve, title, filename string) error {
	if curve == nil {
		return fmt.Errorf("no centreline to export")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	pts := curve.Sample(arcSamples)
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X * 1000, Y: pt.Y * 1000}
	}
	barLine, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	barLine.LineStyle.Width = vg.Points(2)
	barLine.LineStyle.Color = barColour
	p.Add(barLine)

	if pc, ok := curve.(*geom.PolyCurve); ok && len(pc.Curves) > 1 {
		joints := make(plotter.XYs, 0, len(pc.Curves)-1)
		for _, c := range pc.Curves[1:] {
			s := c.StartPoint()
			joints = append(joints, plotter.XY{X: s.X * 1000, Y: s.Y * 1000})
		}
		scatter, err := plotter.NewScatter(joints)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = jointColour
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	ends, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{xys[0], xys[len(xys)-1]},
		Labels: []string{"start", "end"},
	})
	if err != nil {
		return err
	}
	p.Add(ends)

	// same scale on both axes
	minX, maxX, minY, maxY := bounds(pts)
	span := 1000 * math.Max(maxX-minX, maxY-minY) * 1.1
	if span == 0 {
		span = 100
	}
	cx, cy := 500*(minX+maxX), 500*(minY+maxY)
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

// ExportBarChart plots one bar per label, e.g. the cut lengths of a schedule.
func ExportBarChart(title, valueLabel string, labels []string, values []float64, filename string) error {
	if len(labels) != len(values) {
		return fmt.Errorf("%d labels for %d values", len(labels), len(values))
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = valueLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = barColour
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	width := vg.Length(math.Max(6, 0.4*float64(len(values)))) * vg.Inch
	return save(p, width, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
