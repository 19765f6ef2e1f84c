package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gorebar/internal/shapecode"
	"github.com/spf13/cobra"
)

var codesExamples bool

var shapeCodesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the supported shape codes",
	Long: `List the BS 8666:2020 shape codes with the dimensions each one
takes. Codes marked * have geometry that is provisional.

Examples:
  gorebar shape codes
  gorebar shape codes --examples`,
	Run: runShapeCodes,
}

func init() {
	shapeCmd.AddCommand(shapeCodesCmd)
	shapeCodesCmd.Flags().BoolVar(&codesExamples, "examples", false, "Show example dimensions and lengths for a 12 mm bar")
}

func runShapeCodes(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHAPE CODES - BS 8666:2020")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if codesExamples {
		fmt.Fprintln(w, "  Code\tDimensions\tDescription\tExample (mm)\tL (mm)")
	} else {
		fmt.Fprintln(w, "  Code\tDimensions\tDescription")
	}
	for _, code := range shapecode.Codes() {
		info, _ := shapecode.Describe(code)
		mark := ""
		if info.Provisional {
			mark = "*"
		}
		fields := make([]string, len(info.Fields))
		for i, f := range info.Fields {
			fields[i] = string(f)
		}
		fmt.Fprintf(w, "  %s%s\t%s\t%s", code, mark, strings.Join(fields, " "), info.Description)
		if codesExamples {
			fmt.Fprintf(w, "\t%s\t%s", formatExample(info), exampleLength(code))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  * provisional geometry")
	fmt.Println()
}

func formatExample(info shapecode.Info) string {
	fields := make([]string, 0, len(info.Example))
	for f := range info.Example {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%.0f", f, info.Example[shapecode.Field(f)]/mm)
	}
	return strings.Join(parts, " ")
}

func exampleLength(code shapecode.Code) string {
	s, ok := shapecode.Example(code)
	if !ok {
		return "-"
	}
	length, diags := shapecode.Length(s)
	if diags.HasErrors() {
		return "-"
	}
	return fmt.Sprintf("%.0f", length/mm)
}
