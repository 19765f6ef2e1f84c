package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorebar",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Reinforcement Bar Shape Code Tool")
		fmt.Println("Based on BS 8666:2020 (Scheduling, dimensioning, cutting and bending of steel reinforcement)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
