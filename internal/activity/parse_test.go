package activity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutapp/carbon-coach/internal/llm"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) GenerateContent(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub" }

func (s *stubClient) Close() error { return nil }

const busResponse = `{
  "summary": "Bus commute",
  "category": "transportation",
  "emoji": "🚌",
  "climatiq_estimate": {
    "activity_type": "transportation",
    "details": {"mode": "bus", "distance_km": 10}
  },
  "confidence": 90
}`

func TestParse_StructuredResponse(t *testing.T) {
	parser := NewParser(&stubClient{response: busResponse})

	parsed := parser.Parse(context.Background(), "took the bus to work")
	require.NotNil(t, parsed)
	assert.True(t, parsed.Recognized())
	assert.Equal(t, "Bus commute", parsed.Summary)
	assert.Equal(t, "transportation", parsed.Estimate.ActivityType)
	assert.Equal(t, 10.0, parsed.Estimate.Details["distance_km"])
}

func TestParse_FencedResponse(t *testing.T) {
	parser := NewParser(&stubClient{response: "```json\n" + busResponse + "\n```"})

	parsed := parser.Parse(context.Background(), "took the bus to work")
	assert.True(t, parsed.Recognized())
}

func TestParse_LowConfidenceIsNotRecognized(t *testing.T) {
	response := `{"summary": "Watched TV", "category": "energy", "emoji": "🌱",
		"climatiq_estimate": {"activity_type": "energy", "details": {}}, "confidence": 20}`
	parser := NewParser(&stubClient{response: response})

	parsed := parser.Parse(context.Background(), "watched tv all day")
	assert.False(t, parsed.Recognized())
}

func TestParse_ModelErrorFallsBack(t *testing.T) {
	parser := NewParser(&stubClient{err: errors.New("quota exceeded")})

	parsed := parser.Parse(context.Background(), "biked to the store instead of driving")
	require.NotNil(t, parsed)
	assert.False(t, parsed.Recognized(), "fallback parses are never auto-accepted")
	assert.Equal(t, "energy", parsed.Category)
}

func TestParse_NilClientFallsBack(t *testing.T) {
	parser := NewParser(nil)
	parsed := parser.Parse(context.Background(), "line dried my laundry")
	assert.False(t, parsed.Recognized())
}

func TestParse_FallbackTruncatesSummary(t *testing.T) {
	parser := NewParser(nil)
	long := strings.Repeat("walked to the park ", 10)

	parsed := parser.Parse(context.Background(), long)
	assert.Len(t, parsed.Summary, summaryMaxLen)
}

func TestParse_ProseFallsBack(t *testing.T) {
	parser := NewParser(&stubClient{response: "That sounds like a great eco action!"})
	parsed := parser.Parse(context.Background(), "carpooled to work")
	assert.False(t, parsed.Recognized())
}
