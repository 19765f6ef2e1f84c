package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorebar/internal/diagram"
	"github.com/alexiusacademia/gorebar/internal/geom"
	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	centrelineDiagram bool
	centrelineOutput  string
)

var shapeCentrelineCmd = &cobra.Command{
	Use:   "centreline",
	Short: "List the centreline segments of a bar",
	Long: `Build the centreline of a bar as straight lines and bend arcs,
following the bar axis, and list its segments in millimetres.

Examples:
  # Segments of a U bar with a sketch
  gorebar shape centreline --code 21 --dia 12 --a 300 --b 400 --c 300 --diagram

  # Save a plot of a link
  gorebar shape centreline --code 51 --dia 10 --a 300 --b 200 --c 100 -o link.png`,
	Run: runShapeCentreline,
}

func init() {
	shapeCmd.AddCommand(shapeCentrelineCmd)
	addShapeFlags(shapeCentrelineCmd)

	shapeCentrelineCmd.Flags().BoolVar(&centrelineDiagram, "diagram", false, "Print a sketch of the bar in plan")
	shapeCentrelineCmd.Flags().StringVarP(&centrelineOutput, "output", "o", "", "Save a plot of the bar (.png, .svg or .pdf)")
}

func runShapeCentreline(cmd *cobra.Command, args []string) {
	s, err := shapeFromFlags(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	curve, diags := shapecode.Centreline(s)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SHAPE CODE %s CENTRELINE - BS 8666:2020\n", s.Code)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printShapeInput(s)

	if curve == nil {
		printDiagnostics(diags)
		return
	}

	fmt.Println("SEGMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tType\tStart (mm)\tEnd (mm)\tLength (mm)\tDetail")
	for i, c := range curve.Curves {
		kind, detail := describeSegment(c)
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%.1f\t%s\n",
			i+1, kind, formatPoint(c.StartPoint()), formatPoint(c.EndPoint()), c.Length()/mm, detail)
	}
	w.Flush()
	fmt.Println()

	lines, arcs, other := curve.Counts()
	fmt.Print(diagram.DrawSummaryBox("CENTRELINE", []string{
		fmt.Sprintf("Length along axis = %.1f mm", curve.Length()/mm),
		fmt.Sprintf("%d lines, %d arcs, %d other", lines, arcs, other),
	}))
	fmt.Println()

	if centrelineDiagram {
		fmt.Print(diagram.DrawASCIICentreline(curve, 60, 24))
		fmt.Println()
	}
	if centrelineOutput != "" {
		title := fmt.Sprintf("Shape code %s, d = %.0f mm", s.Code, s.Diameter/mm)
		if err := diagram.ExportCentreline(curve, title, centrelineOutput); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("  Plot saved to %s\n\n", centrelineOutput)
		}
	}
	printDiagnostics(diags)
}

func describeSegment(c geom.Curve) (string, string) {
	switch seg := c.(type) {
	case geom.Line:
		return "line", ""
	case geom.Arc:
		return "arc", fmt.Sprintf("R %.1f mm, %.1f°", seg.Radius()/mm, seg.Sweep()*180/math.Pi)
	case geom.Polyline:
		return "polyline", fmt.Sprintf("%d points", len(seg.Points))
	}
	return fmt.Sprintf("%T", c), ""
}

func formatPoint(p r3.Vec) string {
	if math.Abs(p.Z) < geom.Tolerance {
		return fmt.Sprintf("(%.1f, %.1f)", p.X/mm, p.Y/mm)
	}
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", p.X/mm, p.Y/mm, p.Z/mm)
}
