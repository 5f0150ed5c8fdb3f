package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// Mission status values.
const (
	MissionStatusAvailable = "available"
	MissionStatusCompleted = "completed"
)

// Activity type values.
const (
	ActivityTypeFreeform = "freeform"
	ActivityTypeMission  = "mission"
)

// SurveyRow is a stored onboarding survey.
type SurveyRow struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Responses types.SurveyResponse `json:"responses"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ProfileRow is a user's classification plus accumulated game stats.
type ProfileRow struct {
	UserID                 uuid.UUID         `json:"user_id"`
	ProfileType            types.ProfileType `json:"profile_type"`
	BaselineCO2Kg          float64           `json:"baseline_co2_kg"`
	OpportunityAreas       []types.Category  `json:"opportunity_areas"`
	TotalXP                int               `json:"total_xp"`
	CurrentLevel           int               `json:"current_level"`
	XPCurrentLevel         int               `json:"xp_current_level"`
	XPToNextLevel          int               `json:"xp_to_next_level"`
	PlantStage             int               `json:"plant_stage"`
	TotalCO2SavedKg        float64           `json:"total_co2_saved"`
	TotalMissionsCompleted int               `json:"total_missions_completed"`
	TotalMoneySaved        float64           `json:"total_money_saved"`
	CurrentStreakDays      int               `json:"current_streak_days"`
	LongestStreakDays      int               `json:"longest_streak_days"`
	LastActivityDate       *time.Time        `json:"last_activity_date,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// MissionRow is a stored mission with its lifecycle status.
type MissionRow struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	types.Mission
}

// ActivityRow is one feed entry, either a completed mission or a freeform
// log.
type ActivityRow struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	ActivityType string         `json:"activity_type"`
	MissionID    *uuid.UUID     `json:"mission_id,omitempty"`
	UserInput    *string        `json:"user_input,omitempty"`
	Summary      string         `json:"ai_summary"`
	Category     types.Category `json:"detected_category"`
	XPEarned     int            `json:"xp_earned"`
	CO2SavedKg   float64        `json:"co2_saved_kg"`
	MoneySaved   *float64       `json:"money_saved,omitempty"`
	Emoji        string         `json:"emoji"`
	CreatedAt    time.Time      `json:"created_at"`
}
