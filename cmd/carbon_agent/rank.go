package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutapp/carbon-coach/internal/ranking"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank opportunity areas for a survey",
	Long:  "Runs only the opportunity ranking stage and prints the top reduction categories in order.",
	RunE:  runRank,
}

var rankSurvey string

func init() {
	rankCmd.Flags().StringVarP(&rankSurvey, "survey", "s", "", "Path to survey responses JSON file (required)")

	if err := rankCmd.MarkFlagRequired("survey"); err != nil {
		panic(fmt.Sprintf("failed to mark survey flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	survey, err := loadSurveyFile(rankSurvey)
	if err != nil {
		return err
	}

	areas := ranking.RankOpportunities(survey)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{"opportunity_areas": areas})
}
