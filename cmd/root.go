package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorebar/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gorebar",
	Short: "BS 8666 reinforcement bar shape code tool",
	Long: `gorebar - Go Reinforcement Bar Shapes

A CLI tool for scheduling reinforcement bars to BS 8666:2020.

This tool helps detailers and schedulers:
  - Calculate cut lengths for every standard shape code
  - Check shapes against the minimum dimensions of BS 8666
  - Build and plot bar centrelines
  - Evaluate complete bar bending schedules

Dimensions on the command line and in schedule files are in millimetres.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorebar v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Reinforcement Bar Shapes (BS 8666:2020)              ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for scheduling reinforcement bars")
		fmt.Println("  to BS 8666:2020 shape codes.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cut length of every standard shape code")
		fmt.Println("    • Compliance with minimum end projections, legs and hooks")
		fmt.Println("    • Bar centrelines as lines and arcs, with plots")
		fmt.Println("    • Bar bending schedules from JSON, YAML or .bbs files")
		fmt.Println()
		fmt.Println("  Use 'gorebar --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace engine decisions to stderr")
}
