package cmd

import (
	"context"
	"fmt"

	"github.com/ivolkov/salesoffice/internal/config"
	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/repository"
	"github.com/spf13/cobra"
)

var (
	dropFirst bool
	seedCount int
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the database schema",
	Long: `Creates the products, customers and purchases tables.

With --seed N the command also inserts N synthetic products and
customers and N purchases referencing them.`,
	RunE: setupDatabase,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	setupCmd.Flags().IntVar(&seedCount, "seed", 0, "Number of synthetic rows to insert per table")
}

func setupDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("Creating schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	if seedCount > 0 {
		fmt.Printf("Inserting %d synthetic rows per table...\n", seedCount)
		if err := seedData(cmd.Context(), db, seedCount); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	}

	fmt.Println("Database setup complete")
	return nil
}

func seedData(ctx context.Context, db *database.DB, count int) error {
	gen := datagen.NewRandom()

	if _, err := repository.NewProductRepository(db).Generate(ctx, count, gen); err != nil {
		return err
	}
	if _, err := repository.NewCustomerRepository(db).Generate(ctx, count, gen); err != nil {
		return err
	}
	if _, err := repository.NewPurchaseRepository(db).Generate(ctx, count, gen); err != nil {
		return err
	}

	return nil
}
