package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutapp/carbon-coach/internal/estimation"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the monthly carbon baseline for a survey",
	Long:  "Runs only the estimation stage. Uses the Climatiq API when a key is configured and falls back to the built-in rate tables otherwise.",
	RunE:  runEstimate,
}

var (
	estimateSurvey   string
	estimateClimatiq string
)

func init() {
	estimateCmd.Flags().StringVarP(&estimateSurvey, "survey", "s", "", "Path to survey responses JSON file (required)")
	estimateCmd.Flags().StringVar(&estimateClimatiq, "climatiq-key", "", "Climatiq API key (or set CLIMATIQ_API_KEY)")

	if err := estimateCmd.MarkFlagRequired("survey"); err != nil {
		panic(fmt.Sprintf("failed to mark survey flag as required: %v", err))
	}

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	survey, err := loadSurveyFile(estimateSurvey)
	if err != nil {
		return err
	}

	client, err := newEstimationClient(estimateClimatiq)
	if err != nil {
		return fmt.Errorf("failed to create estimation client: %w", err)
	}

	baseline := estimation.NewEngine(client).EstimateBaseline(context.Background(), survey)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]float64{"baseline_co2_kg": baseline})
}
