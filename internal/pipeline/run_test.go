package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutapp/carbon-coach/internal/generation"
	"github.com/sproutapp/carbon-coach/internal/llm"
	"github.com/sproutapp/carbon-coach/internal/types"
)

// failingEstimator always errors, forcing fallback arithmetic.
type failingEstimator struct{}

func (failingEstimator) Estimate(context.Context, string, float64) (float64, error) {
	return 0, errors.New("service unavailable")
}

// stubLLM returns a canned response or error for every generation call.
type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) GenerateContent(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) GenerateJSON(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub" }

func (s *stubLLM) Close() error { return nil }

func missionsJSON(t *testing.T, n int) string {
	t.Helper()
	missions := make([]types.Mission, n)
	for i := range missions {
		missions[i] = types.Mission{
			Title:       fmt.Sprintf("Mission %d", i),
			Description: "Do the thing.",
			Category:    types.CategoryEnergy,
			CO2SavedKg:  1.0,
			XPReward:    10,
			Tips:        []string{"one", "two"},
			MissionType: types.MissionOneTime,
		}
	}
	data, err := json.Marshal(missions)
	require.NoError(t, err)
	return string(data)
}

func TestRun_BothServicesFailing(t *testing.T) {
	survey := &types.SurveyResponse{
		CommuteMethod:   "I drive alone",
		CommuteDistance: 15,
		DietType:        "I eat meat with most meals",
		FlightFrequency: "Never or almost never",
	}

	state, err := Run(context.Background(), survey, RunOptions{
		EstimationClient: failingEstimator{},
		LLMClient:        &stubLLM{err: errors.New("model offline")},
	})
	require.NoError(t, err, "a pipeline run never fails outright")

	// fallback commute 0.404*15*2*20 = 242.4 plus meat-heavy diet 250
	assert.Equal(t, 492.4, state.BaselineCO2Kg)
	assert.Equal(t, generation.FallbackMissions(), state.Missions)
	assert.NotEmpty(t, state.Error)
}

func TestRun_EmptySurvey(t *testing.T) {
	state, err := Run(context.Background(), &types.SurveyResponse{}, RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, state.BaselineCO2Kg)
	assert.Equal(t, types.ProfileBeginner, state.ProfileType)
	assert.Equal(t, []types.Category{
		types.CategoryTransportation,
		types.CategoryFood,
		types.CategoryEnergy,
	}, state.OpportunityAreas)
	assert.GreaterOrEqual(t, len(state.Missions), 3)
	assert.NotEmpty(t, state.Error, "no LLM client means the fallback set was used")
}

func TestRun_NilSurvey(t *testing.T) {
	state, err := Run(context.Background(), nil, RunOptions{})
	require.NoError(t, err)
	require.NotNil(t, state.Survey)
	assert.Equal(t, 0.0, state.BaselineCO2Kg)
}

func TestRun_SuccessfulGeneration(t *testing.T) {
	survey := &types.SurveyResponse{CommuteMethod: "I drive alone", CommuteDistance: 10}

	state, err := Run(context.Background(), survey, RunOptions{
		LLMClient: &stubLLM{response: missionsJSON(t, 9)},
	})
	require.NoError(t, err)

	assert.Len(t, state.Missions, 9)
	assert.Empty(t, state.Error)
}

func TestRun_TooFewMissionsFallsBack(t *testing.T) {
	state, err := Run(context.Background(), &types.SurveyResponse{}, RunOptions{
		LLMClient: &stubLLM{response: missionsJSON(t, 4)},
	})
	require.NoError(t, err)

	assert.Equal(t, generation.FallbackMissions(), state.Missions)
	assert.NotEmpty(t, state.Error)
}

func TestRun_Idempotent(t *testing.T) {
	survey := &types.SurveyResponse{
		CommuteMethod:   "Public transit",
		CommuteDistance: 8,
		DietType:        "I eat meat a few times a week",
		TimeCommitment:  "15-30 minutes a day",
	}
	opts := RunOptions{LLMClient: &stubLLM{response: missionsJSON(t, 8)}}

	first, err := Run(context.Background(), survey, opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), survey, opts)
	require.NoError(t, err)

	assert.Equal(t, first.BaselineCO2Kg, second.BaselineCO2Kg)
	assert.Equal(t, first.ProfileType, second.ProfileType)
	assert.Equal(t, first.OpportunityAreas, second.OpportunityAreas)
}
