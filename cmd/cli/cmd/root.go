// Package cmd provides the CLI commands for glazing-quote.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glazing-quote",
	Short: "Price glass and window products from the command line",
	Long: `glazing-quote prices windows, doors and glass panels without a running
server or database. The price command reads a self-contained request file
holding the model, glass, color, services and adjustments for one item and
prints the itemized breakdown.

Examples:
  glazing-quote price item.json
  glazing-quote price --format json item.json
  cat item.json | glazing-quote price -`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("glazing-quote version 0.1.0")
	},
}
