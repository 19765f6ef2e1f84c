package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/spf13/cobra"
)

// Bar the shape is checked for (mm); zero means the shape's own
var (
	checkDia    float64
	checkRadius float64
)

var shapeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a bar against the minimum dimensions of BS 8666",
	Long: `Check that a shape can be bent: bend radius, end projections,
internal legs, hook diameters and inclined legs are checked in turn
and the first rule that fails is reported.

The shape may be checked for a different bar than the one it was
scheduled with by giving --for-dia and --for-radius.

Examples:
  # Check a U bar
  gorebar shape check --code 21 --dia 12 --a 300 --b 400 --c 300

  # Would the same shape work for a 20 mm bar?
  gorebar shape check --code 21 --dia 12 --a 300 --b 400 --c 300 --for-dia 20`,
	Run: runShapeCheck,
}

func init() {
	shapeCmd.AddCommand(shapeCheckCmd)
	addShapeFlags(shapeCheckCmd)

	shapeCheckCmd.Flags().Float64Var(&checkDia, "for-dia", 0, "Check for this bar diameter instead (mm)")
	shapeCheckCmd.Flags().Float64Var(&checkRadius, "for-radius", 0, "Check for this bend radius instead (mm)")
}

func runShapeCheck(cmd *cobra.Command, args []string) {
	s, err := shapeFromFlags(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p := shapecode.Params{Diameter: s.Diameter, BendRadius: s.BendRadius}
	if cmd.Flags().Changed("for-dia") {
		p = shapecode.Params{Diameter: checkDia * mm}
	}
	if cmd.Flags().Changed("for-radius") {
		p.BendRadius = checkRadius * mm
	}
	result := shapecode.Validate(s, p)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SHAPE CODE %s COMPLIANCE CHECK - BS 8666:2020\n", s.Code)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printShapeInput(s)

	if p.Diameter > 0 {
		r := p.BendRadius
		if r == 0 {
			r = bs8666.SchedulingRadius(p.Diameter)
		}
		fmt.Println("MINIMUM DIMENSIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Checked for:\td = %.0f mm, r = %.1f mm\n", p.Diameter/mm, r/mm)
		fmt.Fprintf(w, "  Scheduling radius:\t%.1f mm\n", bs8666.SchedulingRadius(p.Diameter)/mm)
		fmt.Fprintf(w, "  End projection P (bends ≥ 150°):\t%.1f mm\n", bs8666.GeneralEndProjection(p.Diameter, r)/mm)
		fmt.Fprintf(w, "  End projection P (links):\t%.1f mm\n", bs8666.LinksEndProjection(p.Diameter, r)/mm)
		fmt.Fprintf(w, "  Internal leg:\t%.1f mm\n", 2*(r+p.Diameter)/mm)
		fmt.Fprintf(w, "  Straight leg, more than r + P:\t%.1f mm (links), %.1f mm (≥ 150°)\n",
			(r+bs8666.LinksEndProjection(p.Diameter, r))/mm, (r+bs8666.GeneralEndProjection(p.Diameter, r))/mm)
		fmt.Fprintf(w, "  Hook diameter:\t%.1f mm to %.1f mm\n",
			bs8666.HookDiameter(p.Diameter, r)/mm, bs8666.MaximumHookDiameter(p.Diameter)/mm)
		w.Flush()
		fmt.Println()
	}

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.IsCompliant {
		fmt.Printf("  ✓ %s\n", result.Message)
	} else {
		fmt.Printf("  ⚠ %s: %s\n", result.Rule, result.Message)
	}
	fmt.Println()
	printDiagnostics(result.Diagnostics)
}
