package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutapp/carbon-coach/internal/config"
	"github.com/sproutapp/carbon-coach/internal/observability"
	"github.com/sproutapp/carbon-coach/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full mission generation pipeline",
	Long:  "Runs estimation, profiling, opportunity ranking, and mission generation for a survey file and prints the resulting state as JSON.",
	RunE:  runGenerate,
}

var (
	generateSurvey     string
	generateAPIKey     string
	generateClimatiq   string
	generateConfigPath string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateSurvey, "survey", "s", "", "Path to survey responses JSON file")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&generateClimatiq, "climatiq-key", "", "Climatiq API key (or set CLIMATIQ_API_KEY)")
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to config JSON file")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed pipeline output")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if generateConfigPath != "" {
		fileCfg, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return err
		}
		merged := (&config.Config{
			Survey:         generateSurvey,
			APIKey:         generateAPIKey,
			ClimatiqAPIKey: generateClimatiq,
		}).MergeWithDefaults(*fileCfg)
		generateSurvey = merged.Survey
		generateAPIKey = merged.APIKey
		generateClimatiq = merged.ClimatiqAPIKey
		if fileCfg.Verbose {
			generateVerbose = true
		}
	}

	if generateSurvey == "" {
		return fmt.Errorf("survey file is required (use --survey or a config file)")
	}

	survey, err := loadSurveyFile(generateSurvey)
	if err != nil {
		return err
	}

	ctx := context.Background()

	llmClient, err := newLLMClient(ctx, generateAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	if llmClient != nil {
		defer func() { _ = llmClient.Close() }()
	}

	estimator, err := newEstimationClient(generateClimatiq)
	if err != nil {
		return fmt.Errorf("failed to create estimation client: %w", err)
	}

	state, err := pipeline.Run(ctx, survey, pipeline.RunOptions{
		EstimationClient: estimator,
		LLMClient:        llmClient,
		Verbose:          generateVerbose,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if generateVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintBaseline(state)
		printer.PrintProfile(state)
		printer.PrintMissions(state)
		printer.PrintProgress(state)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(state)
}
