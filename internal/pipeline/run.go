// Package pipeline provides the high-level orchestration for mission
// generation: estimate baseline, classify profile, rank opportunities,
// generate missions. Stages run strictly in that order over one state
// record; every stage degrades to a deterministic fallback, so a run never
// fails outright.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/sproutapp/carbon-coach/internal/estimation"
	"github.com/sproutapp/carbon-coach/internal/generation"
	"github.com/sproutapp/carbon-coach/internal/llm"
	"github.com/sproutapp/carbon-coach/internal/profiling"
	"github.com/sproutapp/carbon-coach/internal/ranking"
	"github.com/sproutapp/carbon-coach/internal/types"
)

// RunOptions holds the external collaborators for one pipeline run. Both
// clients are optional: a nil estimation client means fallback tables only,
// a nil LLM client means the static mission set.
type RunOptions struct {
	EstimationClient estimation.Client
	LLMClient        llm.Client
	Verbose          bool
}

// Run executes the four stages over a fresh PipelineState and returns the
// populated state. The returned error is always nil today; the signature
// keeps room for context cancellation without breaking callers.
func Run(ctx context.Context, survey *types.SurveyResponse, opts RunOptions) (*types.PipelineState, error) {
	state := types.NewPipelineState(survey)

	// Stage 1: baseline footprint. EstimateBaseline never fails; service
	// errors degrade to fallback arithmetic inside the engine.
	engine := estimation.NewEngine(opts.EstimationClient)
	state.BaselineCO2Kg = engine.EstimateBaseline(ctx, state.Survey)
	if opts.Verbose {
		log.Printf("[pipeline] baseline: %.2f kg CO2/month", state.BaselineCO2Kg)
	}

	// Stage 2: experience tier. Pure function of the survey.
	state.ProfileType = profiling.Classify(state.Survey)
	if opts.Verbose {
		log.Printf("[pipeline] profile: %s", state.ProfileType)
	}

	// Stage 3: opportunity areas. Pure function of the survey.
	state.OpportunityAreas = ranking.RankOpportunities(state.Survey)
	if opts.Verbose {
		log.Printf("[pipeline] opportunities: %v", state.OpportunityAreas)
	}

	// Stage 4: missions. Any generation failure substitutes the static set
	// and annotates the state; the run still succeeds.
	gen := generation.NewGenerator(opts.LLMClient)
	missions, err := gen.Generate(ctx, state)
	if err != nil {
		log.Printf("[pipeline] mission generation failed, using fallback set: %v", err)
		state.Missions = generation.FallbackMissions()
		state.Error = fmt.Sprintf("mission generation failed: %v", err)
	} else {
		state.Missions = missions
	}
	if opts.Verbose {
		log.Printf("[pipeline] generated %d missions", len(state.Missions))
	}

	return state, nil
}
