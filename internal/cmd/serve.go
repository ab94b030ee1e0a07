package cmd

import (
	"fmt"

	"github.com/ivolkov/salesoffice/internal/config"
	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sales office HTTP server",
	Long: `Start the HTTP server which exposes:
- CRUD endpoints for products, customers and purchases
- Filter, sort and group queries
- Analytics endpoints for customer purchases and product sales`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	fmt.Println("Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	srv := server.NewServer(db, logger)

	fmt.Printf("Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
