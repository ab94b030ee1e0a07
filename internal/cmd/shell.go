package cmd

import (
	"fmt"
	"os"

	"github.com/ivolkov/salesoffice/internal/config"
	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/repository"
	"github.com/ivolkov/salesoffice/internal/shell"
	"github.com/spf13/cobra"
)

var genSeed int64

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive command shell",
	Long: `Read commands from standard input and run them against the database,
one at a time. Type "exit" to quit.

Commands follow the form: <entity> <action> [args...], for example:
  product create Widget Acme piece
  purchase get-all 0 20
  query 4 1`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for generated data (0 means random)")
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	gen := datagen.NewRandom()
	if genSeed != 0 {
		gen = datagen.New(genSeed)
	}

	runner := shell.NewRunner(
		repository.NewProductRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewPurchaseRepository(db),
		gen,
		os.Stdout,
	)

	return runner.Run(cmd.Context(), os.Stdin)
}
