package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sproutapp/carbon-coach/internal/estimation"
	"github.com/sproutapp/carbon-coach/internal/llm"
	"github.com/sproutapp/carbon-coach/internal/types"
)

// loadSurveyFile reads survey responses from a JSON file.
func loadSurveyFile(path string) (*types.SurveyResponse, error) {
	if path == "" {
		return nil, fmt.Errorf("survey path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey file %s: %w", path, err)
	}

	var survey types.SurveyResponse
	if err := json.Unmarshal(data, &survey); err != nil {
		return nil, fmt.Errorf("failed to parse survey JSON: %w", err)
	}

	return &survey, nil
}

// newLLMClient creates a Gemini client when an API key is available, either
// from the flag or the environment. A nil client degrades the pipeline to
// the fallback mission set.
func newLLMClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil
	}
	return llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
}

// newEstimationClient creates a Climatiq client when an API key is
// available. A nil client means the closed-form fallback tables are used.
func newEstimationClient(apiKey string) (estimation.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("CLIMATIQ_API_KEY")
	}
	if apiKey == "" {
		return nil, nil
	}
	return estimation.NewClimatiqClient(apiKey)
}
