package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutapp/carbon-coach/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for surveys, mission generation, activity logging, and impact projections.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := server.Config{
		Port:           servePort,
		DatabaseURL:    databaseURL,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		ClimatiqAPIKey: os.Getenv("CLIMATIQ_API_KEY"),
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
