package estimation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// stubClient returns a fixed figure or error for every estimate call.
type stubClient struct {
	co2e  float64
	err   error
	calls int
}

func (s *stubClient) Estimate(_ context.Context, _ string, _ float64) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.co2e, nil
}

func TestEstimateBaseline_EmptySurvey(t *testing.T) {
	engine := NewEngine(nil)
	got := engine.EstimateBaseline(context.Background(), &types.SurveyResponse{})
	assert.Equal(t, 0.0, got)
}

func TestEstimateBaseline_FallbackArithmetic(t *testing.T) {
	engine := NewEngine(nil) // no client: fallback tables only

	survey := &types.SurveyResponse{
		CommuteMethod:   "I drive alone",
		CommuteDistance: 15,
		DietType:        "I eat meat with most meals",
		FlightFrequency: "Never or almost never",
	}

	// 0.404 * 15 * 2 * 20 = 242.4 commute, 250 food, 0 flights
	got := engine.EstimateBaseline(context.Background(), survey)
	assert.InDelta(t, 492.4, got, 0.001)
}

func TestEstimateBaseline_ServiceErrorFallsBack(t *testing.T) {
	client := &stubClient{err: &APIError{StatusCode: 500, Message: "non-success status"}}
	engine := NewEngine(client)

	survey := &types.SurveyResponse{
		CommuteMethod:   "I drive alone",
		CommuteDistance: 15,
	}

	got := engine.EstimateBaseline(context.Background(), survey)
	assert.InDelta(t, 242.4, got, 0.001)
	assert.Equal(t, 1, client.calls)
}

func TestEstimateBaseline_ServiceFigureUsed(t *testing.T) {
	client := &stubClient{co2e: 100.0}
	engine := NewEngine(client)

	survey := &types.SurveyResponse{
		CommuteMethod:   "I carpool with others",
		CommuteDistance: 10,
		FlightFrequency: "3-5 times",
	}

	// Two service calls (commute, flight), each returning 100.
	got := engine.EstimateBaseline(context.Background(), survey)
	assert.InDelta(t, 200.0, got, 0.001)
	assert.Equal(t, 2, client.calls)
}

func TestEstimateBaseline_ZeroEmissionCommuteSkipsService(t *testing.T) {
	client := &stubClient{co2e: 999}
	engine := NewEngine(client)

	for _, mode := range []string{"I bike", "I walk", "I work/study from home"} {
		survey := &types.SurveyResponse{CommuteMethod: mode, CommuteDistance: 30}
		got := engine.EstimateBaseline(context.Background(), survey)
		assert.Equal(t, 0.0, got, "mode %q should be zero emission", mode)
	}
	assert.Equal(t, 0, client.calls)
}

func TestEstimateBaseline_UnmappedCommuteUsesMixedRate(t *testing.T) {
	engine := NewEngine(nil)

	survey := &types.SurveyResponse{CommuteMethod: "Scooter", CommuteDistance: 10}
	// default 0.25 * 10 * 2 * 20 = 100
	got := engine.EstimateBaseline(context.Background(), survey)
	assert.InDelta(t, 100.0, got, 0.001)
}

func TestEstimateBaseline_FlightBuckets(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		frequency string
		want      float64
	}{
		{"Never or almost never", 0},
		{"1-2 times", 400},
		{"3-5 times", 1000},
		{"6-10 times", 2000},
		{"More than 10 times", 3000},
		{"whenever", 0}, // unknown label maps to the zero bucket
	}

	for _, tt := range tests {
		t.Run(tt.frequency, func(t *testing.T) {
			survey := &types.SurveyResponse{FlightFrequency: tt.frequency}
			assert.InDelta(t, tt.want, engine.EstimateBaseline(context.Background(), survey), 0.001)
		})
	}
}

func TestEstimateBaseline_DietTable(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		diet string
		want float64
	}{
		{"I eat meat with most meals", 250},
		{"I eat meat several times a week", 180},
		{"I eat meat occasionally (1-2x/week)", 120},
		{"Pescatarian (fish but no meat)", 90},
		{"Vegetarian", 60},
		{"Vegan", 40},
		{"Fruitarian", 150}, // unknown label defaults
	}

	for _, tt := range tests {
		t.Run(tt.diet, func(t *testing.T) {
			survey := &types.SurveyResponse{DietType: tt.diet}
			assert.InDelta(t, tt.want, engine.EstimateBaseline(context.Background(), survey), 0.001)
		})
	}
}

func TestEstimateBaseline_Deterministic(t *testing.T) {
	client := &stubClient{co2e: 42.0}
	engine := NewEngine(client)

	survey := &types.SurveyResponse{
		CommuteMethod:   "I drive alone",
		CommuteDistance: 8,
		DietType:        "Vegetarian",
	}

	first := engine.EstimateBaseline(context.Background(), survey)
	second := engine.EstimateBaseline(context.Background(), survey)
	assert.Equal(t, first, second)
}

func TestEstimateBaseline_Rounding(t *testing.T) {
	client := &stubClient{co2e: 10.005}
	engine := NewEngine(client)

	survey := &types.SurveyResponse{CommuteMethod: "I drive alone", CommuteDistance: 1}
	got := engine.EstimateBaseline(context.Background(), survey)
	assert.InDelta(t, 10.01, got, 0.0001)
}
