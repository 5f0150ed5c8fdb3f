package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutapp/carbon-coach/internal/types"
)

func TestClassify_EmptySurveyIsBeginner(t *testing.T) {
	// A blank survey still scores the zero habit count toward beginner.
	got := Classify(&types.SurveyResponse{})
	assert.Equal(t, types.ProfileBeginner, got)
}

func TestClassify_ClearBeginner(t *testing.T) {
	survey := &types.SurveyResponse{
		TimeCommitment:    "5-10 minutes a day",
		CarbonAwareness:   "I have no idea",
		CurrentHabits:     []string{"None of these yet"},
		AchievableChanges: "Tiny habits I can do daily",
	}
	assert.Equal(t, types.ProfileBeginner, Classify(survey))
}

func TestClassify_ClearIntermediate(t *testing.T) {
	survey := &types.SurveyResponse{
		TimeCommitment:    "15-30 minutes a day",
		CarbonAwareness:   "I have a rough sense of it",
		CurrentHabits:     []string{"Recycling", "Reusable bags"},
		AchievableChanges: "Small weekly challenges",
	}
	assert.Equal(t, types.ProfileIntermediate, Classify(survey))
}

func TestClassify_ClearExpert(t *testing.T) {
	survey := &types.SurveyResponse{
		TimeCommitment:    "1+ hours a day",
		CarbonAwareness:   "I've calculated it before",
		CurrentHabits:     []string{"Recycling", "Composting", "Meatless days", "Line drying"},
		AchievableChanges: "I'm ready for all of it",
	}
	assert.Equal(t, types.ProfileExpert, Classify(survey))
}

func TestClassify_ExpertWinsTieWithIntermediate(t *testing.T) {
	// expert 3 (time), intermediate 3 (awareness 2 + appetite 1), beginner 2 (no habits)
	survey := &types.SurveyResponse{
		TimeCommitment:    "1+ hours a day",
		CarbonAwareness:   "I have a rough sense of it",
		AchievableChanges: "Small weekly challenges",
	}
	assert.Equal(t, types.ProfileExpert, Classify(survey))
}

func TestClassify_ExpertWinsTieWithBeginner(t *testing.T) {
	// beginner 3 (time), expert 3 (habits 2 + appetite 1), intermediate 0
	survey := &types.SurveyResponse{
		TimeCommitment:    "5-10 minutes a day",
		CurrentHabits:     []string{"a", "b", "c", "d"},
		AchievableChanges: "I'm ready for all of it",
	}
	assert.Equal(t, types.ProfileExpert, Classify(survey))
}

func TestClassify_IntermediateWinsTieWithBeginner(t *testing.T) {
	// beginner 3 (habits 2 + appetite 1), intermediate 3 (time), expert 0
	survey := &types.SurveyResponse{
		TimeCommitment:    "15-30 minutes a day",
		AchievableChanges: "Tiny habits I can do daily",
	}
	assert.Equal(t, types.ProfileIntermediate, Classify(survey))
}

func TestClassify_Deterministic(t *testing.T) {
	survey := &types.SurveyResponse{
		TimeCommitment:  "30-60 minutes a day",
		CarbonAwareness: "I actively track it",
		CurrentHabits:   []string{"Recycling"},
	}
	first := Classify(survey)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(survey))
	}
}

func TestClassify_HabitSentinelCountsAsZero(t *testing.T) {
	withSentinel := Classify(&types.SurveyResponse{CurrentHabits: []string{"None of these yet"}})
	withNone := Classify(&types.SurveyResponse{})
	assert.Equal(t, withNone, withSentinel)
}
