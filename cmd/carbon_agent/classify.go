package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutapp/carbon-coach/internal/profiling"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the sustainability profile for a survey",
	Long:  "Runs only the profiling stage and prints the BEGINNER, INTERMEDIATE, or EXPERT classification.",
	RunE:  runClassify,
}

var classifySurvey string

func init() {
	classifyCmd.Flags().StringVarP(&classifySurvey, "survey", "s", "", "Path to survey responses JSON file (required)")

	if err := classifyCmd.MarkFlagRequired("survey"); err != nil {
		panic(fmt.Sprintf("failed to mark survey flag as required: %v", err))
	}

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	survey, err := loadSurveyFile(classifySurvey)
	if err != nil {
		return err
	}

	profileType := profiling.Classify(survey)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]string{"profile_type": string(profileType)})
}
