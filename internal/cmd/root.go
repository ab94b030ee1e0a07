package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salesoffice",
	Short: "Sales office record system",
	Long: `Sales office keeps track of products, customers and their purchases
in a relational database.

The same operations are available over a REST API (serve) and an
interactive shell (shell).`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
