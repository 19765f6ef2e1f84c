package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/gorebar/internal/bs8666"
	"github.com/alexiusacademia/gorebar/internal/diag"
	"github.com/alexiusacademia/gorebar/internal/diagram"
	"github.com/alexiusacademia/gorebar/internal/schedule"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	scheduleWorkers int
	scheduleChart   string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule FILE",
	Short: "Evaluate a bar bending schedule",
	Long: `Evaluate every bar of a bar bending schedule: cut length, total
length, compliance with BS 8666 and the bar centreline. A bar that
cannot be evaluated is reported and the rest of the schedule is still
evaluated.

The file format follows the extension:
  .json        - {"name": ..., "bars": [{"mark": "B01", "code": "21", ...}]}
  .yaml, .yml  - the same structure in YAML
  .bbs         - one bar per statement:
                 schedule "Level 2 slab"
                 B01 21 d=12 r=24 A=300 B=400 C=300 n=4;

All dimensions are in millimetres.

Examples:
  gorebar schedule slab.bbs
  gorebar schedule slab.yaml --workers 4 --chart lengths.png`,
	Args: cobra.ExactArgs(1),
	Run:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().IntVarP(&scheduleWorkers, "workers", "w", 0, "Bars evaluated in parallel (0 = one per CPU)")
	scheduleCmd.Flags().StringVar(&scheduleChart, "chart", "", "Save a chart of total length per mark (.png, .svg or .pdf)")
}

func runSchedule(cmd *cobra.Command, args []string) {
	s, err := schedule.LoadFromFile(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	rows := schedule.Evaluate(s.Bars, scheduleWorkers)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BAR BENDING SCHEDULE - %s\n", s.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if s.Description != "" {
		fmt.Printf("  %s\n\n", s.Description)
	}

	fmt.Println("BARS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Mark\tCode\td (mm)\tNo.\tL (mm)\tTotal (m)\tStatus")
	failed := 0
	for _, row := range rows {
		status := "✓"
		if !row.OK() {
			status = "⚠"
			failed++
		}
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%d\t%.0f\t%.2f\t%s\n",
			row.Bar.Mark, row.Bar.Code, row.Bar.Diameter, row.Bar.Count(),
			row.Length/mm, row.TotalLength, status)
	}
	w.Flush()
	fmt.Println()

	printScheduleDiagnostics(rows)
	printScheduleTotals(rows)

	if failed > 0 {
		fmt.Printf("  %d of %d bars need attention\n\n", failed, len(rows))
	} else {
		fmt.Printf("  All %d bars comply with BS 8666\n\n", len(rows))
	}

	if scheduleChart != "" {
		labels := make([]string, len(rows))
		values := make([]float64, len(rows))
		for i, row := range rows {
			labels[i] = row.Bar.Mark
			values[i] = row.TotalLength
		}
		if err := diagram.ExportBarChart(s.Name, "Total length (m)", labels, values, scheduleChart); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Chart saved to %s\n\n", scheduleChart)
	}
}

func printScheduleDiagnostics(rows []schedule.Row) {
	header := false
	for _, row := range rows {
		if len(row.Diagnostics) == 0 {
			continue
		}
		if !header {
			fmt.Println("DIAGNOSTICS:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			header = true
		}
		for _, d := range row.Diagnostics {
			msg := fmt.Sprintf("%s: %s", row.Bar.Mark, d.Message)
			switch d.Severity {
			case diag.Error:
				pterm.Error.Println(msg)
			case diag.Warning:
				pterm.Warning.Println(msg)
			default:
				pterm.Info.Println(msg)
			}
		}
	}
	if header {
		fmt.Println()
	}
}

func printScheduleTotals(rows []schedule.Row) {
	totals := schedule.Totals(rows)
	dias := make([]float64, 0, len(totals))
	for d := range totals {
		dias = append(dias, d)
	}
	sort.Float64s(dias)

	fmt.Println("TOTALS BY DIAMETER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  d (mm)\tLength (m)\tMass (kg)")
	var mass float64
	for _, d := range dias {
		m := totals[d] * bs8666.MassPerMetre(d*mm)
		mass += m
		fmt.Fprintf(w, "  %.0f\t%.2f\t%.1f\n", d, totals[d], m)
	}
	fmt.Fprintf(w, "  \t\t%.1f\n", mass)
	w.Flush()
	fmt.Println()
}
