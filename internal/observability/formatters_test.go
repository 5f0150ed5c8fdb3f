package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutapp/carbon-coach/internal/types"
	"github.com/sproutapp/carbon-coach/internal/validation"
)

func testState() *types.PipelineState {
	return &types.PipelineState{
		Survey:        &types.SurveyResponse{},
		BaselineCO2Kg: 312.5,
		ProfileType:   types.ProfileIntermediate,
		OpportunityAreas: []types.Category{
			types.CategoryTransportation,
			types.CategoryFood,
		},
		Missions: []types.Mission{
			{
				Title:       "Try a meatless Monday",
				Category:    types.CategoryFood,
				CO2SavedKg:  2.3,
				XPReward:    20,
				MissionType: types.MissionOneTime,
			},
			{
				Title:       "Take the bus to work",
				Category:    types.CategoryTransportation,
				CO2SavedKg:  4.0,
				XPReward:    15,
				MissionType: types.MissionRepeatable,
			},
		},
	}
}

func TestPrintBaseline(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBaseline(testState())

	out := buf.String()
	assert.Contains(t, out, "BASELINE FOOTPRINT")
	assert.Contains(t, out, "312.50 kg")
}

func TestPrintBaseline_NilState(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBaseline(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(testState())

	out := buf.String()
	assert.Contains(t, out, "USER PROFILE")
	assert.Contains(t, out, "INTERMEDIATE")
	assert.Contains(t, out, "1. transportation")
	assert.Contains(t, out, "2. food")
}

func TestPrintMissions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMissions(testState())

	out := buf.String()
	assert.Contains(t, out, "GENERATED MISSIONS")
	assert.Contains(t, out, "Try a meatless Monday")
	assert.Contains(t, out, "20 XP")
	assert.NotContains(t, out, "fallback set used")
}

func TestPrintMissions_FallbackNote(t *testing.T) {
	state := testState()
	state.Error = "mission generation failed: API call failed"

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMissions(state)
	assert.Contains(t, buf.String(), "fallback set used")
}

func TestPrintMissions_TruncatesList(t *testing.T) {
	state := testState()
	for i := 0; i < 8; i++ {
		state.Missions = append(state.Missions, types.Mission{
			Title:       "Another mission",
			Category:    types.CategoryEnergy,
			MissionType: types.MissionOneTime,
		})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMissions(state)
	assert.Contains(t, buf.String(), "more missions")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgress(testState())

	out := buf.String()
	assert.Contains(t, out, "PROGRESS POTENTIAL")
	assert.Contains(t, out, "35")
}

func TestPrintViolations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations(nil)
	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintViolations(t *testing.T) {
	violations := []validation.Violation{
		{Index: 0, Field: "xp_reward", Message: "xp_reward 150 outside 0..100"},
		{Index: 2, Field: "category", Message: "unknown category \"travel\"", Repairable: true},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations(violations)

	out := buf.String()
	assert.Contains(t, out, "Found 2 violations")
	assert.Contains(t, out, "mission 0: xp_reward")
	assert.Contains(t, out, "mission 2: category")
}

func TestBoxLinesStartAndEndWithBorders(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBaseline(testState())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))
	for _, line := range lines[1 : len(lines)-1] {
		first := []rune(line)[0]
		assert.Contains(t, string([]rune{'│', '├'}), string(first), "line %q", line)
	}
}
