package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/diagram"
	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/spf13/cobra"
)

var shapeLengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Calculate the cut length of a bar",
	Long: `Calculate the cut length of a bar from its shape code dimensions,
using the BS 8666:2020 length formulae.

Examples:
  # Shape code 21 (U bar), 12 mm bar at the scheduling radius
  gorebar shape length --code 21 --dia 12 --a 300 --b 400 --c 300

  # Shape code 11 with a 50 mm bend radius
  gorebar shape length --code 11 --dia 12 --radius 50 --a 300 --b 300`,
	Run: runShapeLength,
}

func init() {
	shapeCmd.AddCommand(shapeLengthCmd)
	addShapeFlags(shapeLengthCmd)
}

func runShapeLength(cmd *cobra.Command, args []string) {
	s, err := shapeFromFlags(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	length, diags := shapecode.Length(s)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SHAPE CODE %s CUT LENGTH - BS 8666:2020\n", s.Code)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printShapeInput(s)

	if !diags.HasErrors() {
		fmt.Print(diagram.DrawSummaryBox("CUT LENGTH", []string{
			fmt.Sprintf("L = %.0f mm", length/mm),
		}))
		fmt.Println()
	}
	printDiagnostics(diags)
}
