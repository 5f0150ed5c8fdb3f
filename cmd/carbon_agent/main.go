// Package main provides the entry point for the carbon coach CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "carbon_agent",
	Short: "Carbon Coach mission generation pipeline",
	Long:  "Carbon Coach estimates a user's carbon baseline from an onboarding survey, classifies their sustainability profile, and generates personalized reduction missions via a REST API or step-by-step CLI commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
