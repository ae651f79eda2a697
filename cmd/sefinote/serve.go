package main

import (
	"fmt"
	"os"

	"github.com/sefinote/sefinote/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

// @title Sefinote API
// @version 1.0
// @description Tree-of-life note taking API
// @host localhost:8470
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a Sefinote server instance",
	Long: `Start the Sefinote server: API, web UI, and database.

Examples:
  sefinote serve                # Run with config defaults
  sefinote serve --port 8080    # Override port

Environment variables:
  SEFINOTE_SERVER_PORT      Server port (default: 8470)
  SEFINOTE_DATABASE_DRIVER  Database driver: sqlite, postgres
  SEFINOTE_DATABASE_DSN     Database connection string
  SEFINOTE_AUTH_JWT_SECRET  JWT signing secret
  ADMIN_EMAIL               Bootstrap admin email
  ADMIN_PASSWORD            Bootstrap admin password`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := server.Config{
		Port:    servePort,
		Version: Version,
	}

	if err := server.RunWithSignalHandling(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
