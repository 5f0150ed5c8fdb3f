// Package profiling assigns a discrete experience tier to a user from
// weighted survey signals.
package profiling

import (
	"strings"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// Signal weights. Four independent signals each add to exactly one
// accumulator: time commitment is the strongest signal, appetite for
// change the weakest.
const (
	timeCommitmentWeight  = 3
	awarenessWeight       = 2
	habitCountWeight      = 2
	appetiteWeight        = 1
)

// Classify returns the user's experience tier. It is a pure function of the
// four scored survey fields and is deterministic for a given survey.
//
// Ties resolve EXPERT first, then INTERMEDIATE, then BEGINNER. The order is
// load-bearing: a user who scores evenly across tiers is classified at the
// highest tier, which changes the mission mix they receive.
func Classify(survey *types.SurveyResponse) types.ProfileType {
	var beginner, intermediate, expert int

	// Time commitment
	timeCommitment := survey.TimeCommitment
	switch {
	case strings.Contains(timeCommitment, "5-10 minutes"):
		beginner += timeCommitmentWeight
	case strings.Contains(timeCommitment, "15-30 minutes"),
		strings.Contains(timeCommitment, "30-60 minutes"):
		intermediate += timeCommitmentWeight
	case strings.Contains(timeCommitment, "1+ hours"):
		expert += timeCommitmentWeight
	}

	// Carbon awareness
	awareness := survey.CarbonAwareness
	switch {
	case strings.Contains(awareness, "no idea"):
		beginner += awarenessWeight
	case strings.Contains(awareness, "rough sense"):
		intermediate += awarenessWeight
	case strings.Contains(awareness, "calculated it"),
		strings.Contains(awareness, "actively track"):
		expert += awarenessWeight
	}

	// Currently practiced habits
	habitCount := survey.HabitCount()
	switch {
	case habitCount == 0:
		beginner += habitCountWeight
	case habitCount <= 3:
		intermediate += habitCountWeight
	default:
		expert += habitCountWeight
	}

	// Stated appetite for change
	appetite := survey.AchievableChanges
	switch {
	case strings.Contains(appetite, "Tiny habits"):
		beginner += appetiteWeight
	case strings.Contains(appetite, "Small weekly"),
		strings.Contains(appetite, "Monthly commitments"):
		intermediate += appetiteWeight
	case strings.Contains(appetite, "Bigger lifestyle"),
		strings.Contains(appetite, "ready for all"):
		expert += appetiteWeight
	}

	maxScore := max(beginner, intermediate, expert)
	switch {
	case expert == maxScore:
		return types.ProfileExpert
	case intermediate == maxScore:
		return types.ProfileIntermediate
	default:
		return types.ProfileBeginner
	}
}
