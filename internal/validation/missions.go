// Package validation checks generated mission records against the mission
// schema and classifies each violation as repairable or advisory.
package validation

import (
	"fmt"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// XP bounds for a single mission.
const (
	MinXPReward = 0
	MaxXPReward = 100
)

// Tips bounds for a single mission.
const (
	MinTips = 2
	MaxTips = 3
)

// Violation describes one schema problem in a generated mission record.
type Violation struct {
	Index   int    // position of the mission in the generated list
	Field   string // offending field name
	Message string
	// Repairable violations are fixed in place by the generator (the record
	// is kept); advisory violations are logged only.
	Repairable bool
}

func (v Violation) String() string {
	return fmt.Sprintf("mission[%d].%s: %s", v.Index, v.Field, v.Message)
}

// CheckMission validates a single mission record. Enum violations on
// category and mission_type are repairable; range and shape problems on the
// remaining fields are advisory so a slightly sloppy but usable record is
// kept as generated.
func CheckMission(m *types.Mission, index int) []Violation {
	var violations []Violation

	if !m.MissionType.Valid() {
		violations = append(violations, Violation{
			Index:      index,
			Field:      "mission_type",
			Message:    fmt.Sprintf("invalid value %q", string(m.MissionType)),
			Repairable: true,
		})
	}

	if !m.Category.Valid() {
		violations = append(violations, Violation{
			Index:      index,
			Field:      "category",
			Message:    fmt.Sprintf("invalid value %q", string(m.Category)),
			Repairable: true,
		})
	}

	if m.Title == "" {
		violations = append(violations, Violation{
			Index:   index,
			Field:   "title",
			Message: "empty title",
		})
	}

	if m.XPReward < MinXPReward || m.XPReward > MaxXPReward {
		violations = append(violations, Violation{
			Index:   index,
			Field:   "xp_reward",
			Message: fmt.Sprintf("value %d outside [%d, %d]", m.XPReward, MinXPReward, MaxXPReward),
		})
	}

	if m.CO2SavedKg < 0 {
		violations = append(violations, Violation{
			Index:   index,
			Field:   "co2_saved_kg",
			Message: fmt.Sprintf("negative value %v", m.CO2SavedKg),
		})
	}

	if m.MoneySaved < 0 {
		violations = append(violations, Violation{
			Index:   index,
			Field:   "money_saved",
			Message: fmt.Sprintf("negative value %v", m.MoneySaved),
		})
	}

	if len(m.Tips) < MinTips || len(m.Tips) > MaxTips {
		violations = append(violations, Violation{
			Index:   index,
			Field:   "tips",
			Message: fmt.Sprintf("%d tips, want %d-%d", len(m.Tips), MinTips, MaxTips),
		})
	}

	return violations
}

// CheckMissions validates a full generated list.
func CheckMissions(missions []types.Mission) []Violation {
	var all []Violation
	for i := range missions {
		all = append(all, CheckMission(&missions[i], i)...)
	}
	return all
}
