package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/geom"
	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

// millimetres to metres
const mm = 1e-3

var (
	// Bar inputs, shared by the shape subcommands (mm)
	shapeCodeName string
	shapeDia      float64
	shapeRadius   float64
	shapePoints   string

	// Dimensions (mm)
	shapeDims = map[shapecode.Field]*float64{
		shapecode.A: new(float64),
		shapecode.B: new(float64),
		shapecode.C: new(float64),
		shapecode.D: new(float64),
		shapecode.E: new(float64),
		shapecode.F: new(float64),
		shapecode.R: new(float64),
	}
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Single bar shape code calculations",
	Long: `Calculate, check and draw a single reinforcement bar by its
BS 8666:2020 shape code.

Subcommands:
  length      - Cut length of the bar
  check       - Compliance with the minimum dimensions of BS 8666
  centreline  - Segments of the bar centreline, with an optional plot
  codes       - List the supported shape codes

All dimensions are in millimetres, measured to the outside of the bar
as scheduled.`,
}

func init() {
	rootCmd.AddCommand(shapeCmd)
}

// addShapeFlags registers the bar flags on a shape subcommand.
func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&shapeCodeName, "code", "s", "", "Shape code, e.g. 21 or SC21 [required]")
	cmd.Flags().Float64Var(&shapeDia, "dia", 0, "Nominal bar diameter d (mm) [required]")
	cmd.Flags().Float64VarP(&shapeRadius, "radius", "r", 0, "Internal bend radius (mm), default is the scheduling radius")
	cmd.Flags().StringVar(&shapePoints, "points", "", "Shape code 99 centreline points, e.g. \"0,0 1000,0 1000,500\" (mm)")

	// Dimension flags
	cmd.Flags().Float64Var(shapeDims[shapecode.A], "a", 0, "Dimension A (mm)")
	cmd.Flags().Float64Var(shapeDims[shapecode.B], "b", 0, "Dimension B (mm)")
	cmd.Flags().Float64Var(shapeDims[shapecode.C], "c", 0, "Dimension C (mm)")
	cmd.Flags().Float64Var(shapeDims[shapecode.D], "d", 0, "Dimension D (mm)")
	cmd.Flags().Float64Var(shapeDims[shapecode.E], "e", 0, "Dimension E (mm)")
	cmd.Flags().Float64Var(shapeDims[shapecode.F], "f", 0, "Dimension F (mm)")
	cmd.Flags().Float64Var(shapeDims[shapecode.R], "arc-radius", 0, "Dimension R, arc or coil radius (mm)")

	cmd.MarkFlagRequired("code")
	cmd.MarkFlagRequired("dia")
}

// dimension flag names, in field order
var dimFlags = []struct {
	field shapecode.Field
	flag  string
}{
	{shapecode.A, "a"}, {shapecode.B, "b"}, {shapecode.C, "c"}, {shapecode.D, "d"},
	{shapecode.E, "e"}, {shapecode.F, "f"}, {shapecode.R, "arc-radius"},
}

// shapeFromFlags builds the bar given on the command line. Only dimensions
// that were set are passed on, so a missing or superfluous one is reported.
func shapeFromFlags(cmd *cobra.Command) (shapecode.ShapeCode, error) {
	code, err := shapecode.ParseCode(shapeCodeName)
	if err != nil {
		return shapecode.ShapeCode{}, err
	}
	if code == shapecode.Code99 {
		curve, err := parsePoints(shapePoints)
		if err != nil {
			return shapecode.ShapeCode{}, err
		}
		return shapecode.NewFreeForm(curve, shapeDia*mm, shapeRadius*mm)
	}
	dims := shapecode.Dims{}
	for _, df := range dimFlags {
		if cmd.Flags().Changed(df.flag) {
			dims[df.field] = *shapeDims[df.field] * mm
		}
	}
	return shapecode.New(code, shapeDia*mm, shapeRadius*mm, dims)
}

// parsePoints reads "x,y[,z] x,y[,z] ..." in millimetres into a polyline.
func parsePoints(s string) (geom.Curve, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ";", " "))
	if len(fields) < 2 {
		return nil, fmt.Errorf("shape code 99 needs at least two --points")
	}
	pts := make([]r3.Vec, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("point %q: want x,y or x,y,z", field)
		}
		var xyz [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", field, err)
			}
			xyz[i] = v * mm
		}
		pts = append(pts, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	return geom.Polyline{Points: pts}, nil
}

// printDiagnostics lists diagnostics below a result, most severe first.
func printDiagnostics(list diag.List) {
	if len(list) == 0 {
		return
	}
	fmt.Println("DIAGNOSTICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, d := range list.Filter(diag.Error) {
		pterm.Error.Println(d.Message)
	}
	for _, d := range list.Filter(diag.Warning) {
		pterm.Warning.Println(d.Message)
	}
	for _, d := range list.Filter(diag.Note) {
		pterm.Info.Println(d.Message)
	}
	fmt.Println()
}

// printShapeInput echoes the bar in millimetres.
func printShapeInput(s shapecode.ShapeCode) {
	info, _ := shapecode.Describe(s.Code)
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape code:\t%s  %s\n", s.Code, info.Description)
	fmt.Fprintf(w, "  Bar diameter (d):\t%.0f mm\n", s.Diameter/mm)
	fmt.Fprintf(w, "  Bend radius (r):\t%.1f mm\n", s.BendRadius/mm)
	for _, f := range info.Fields {
		fmt.Fprintf(w, "  %s:\t%.1f mm\n", f, s.Dim(f)/mm)
	}
	if s.Curve != nil {
		fmt.Fprintf(w, "  Curve length:\t%.1f mm\n", s.Curve.Length()/mm)
	}
	w.Flush()
	fmt.Println()
}
