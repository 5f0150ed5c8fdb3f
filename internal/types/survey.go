// Package types defines the shared data model for the carbon coach pipeline.
package types

import (
	"encoding/json"
	"strings"
)

// SurveyResponse holds a user's onboarding survey answers.
// Every field is optional: an absent answer is a zero value, never an error.
// JSON tags match the survey_responses storage columns.
type SurveyResponse struct {
	CommuteMethod      string   `json:"commute_method,omitempty"`
	CommuteDistance    int      `json:"commute_distance,omitempty"` // one-way miles
	FlightFrequency    string   `json:"flight_frequency,omitempty"`
	DietType           string   `json:"diet_type,omitempty"`
	EatingOutFrequency string   `json:"eating_out_frequency,omitempty"`
	CookingHabits      string   `json:"cooking_habits,omitempty"`
	ShoppingHabits     []string `json:"shopping_habits,omitempty"`
	ClothingFrequency  string   `json:"clothing_frequency,omitempty"`
	ShoppingLocation   string   `json:"shopping_location,omitempty"`
	PurchaseBehavior   string   `json:"purchase_behavior,omitempty"`
	HousingType        string   `json:"housing_type,omitempty"`
	EnergyControl      string   `json:"energy_control,omitempty"`
	CurrentHabits      []string `json:"current_habits,omitempty"`
	CarbonAwareness    string   `json:"carbon_awareness,omitempty"`
	TimeCommitment     string   `json:"time_commitment,omitempty"`
	Motivation         string   `json:"motivation,omitempty"`
	AchievableChanges  string   `json:"achievable_changes,omitempty"`
}

// HabitCount returns the number of currently practiced sustainable habits.
// The single sentinel answer "None of these yet" counts as zero.
func (s *SurveyResponse) HabitCount() int {
	if len(s.CurrentHabits) == 1 && strings.Contains(s.CurrentHabits[0], "None of these yet") {
		return 0
	}
	return len(s.CurrentHabits)
}

// IsEmpty reports whether the survey carries no signal at all.
func (s *SurveyResponse) IsEmpty() bool {
	return s.CommuteMethod == "" && s.CommuteDistance == 0 &&
		s.FlightFrequency == "" && s.DietType == "" &&
		s.EatingOutFrequency == "" && s.CookingHabits == "" &&
		len(s.ShoppingHabits) == 0 && s.ClothingFrequency == "" &&
		s.ShoppingLocation == "" && s.PurchaseBehavior == "" &&
		s.HousingType == "" && s.EnergyControl == "" &&
		len(s.CurrentHabits) == 0 && s.CarbonAwareness == "" &&
		s.TimeCommitment == "" && s.Motivation == "" &&
		s.AchievableChanges == ""
}

// PromptJSON renders the survey as indented JSON for inclusion in LLM prompts.
func (s *SurveyResponse) PromptJSON() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
