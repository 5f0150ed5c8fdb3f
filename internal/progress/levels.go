// Package progress implements the XP, level, plant-stage and streak
// mechanics. Everything here is a pure function so the persistence layer can
// apply activity results transactionally.
package progress

// CalculateLevel returns the greatest level whose cumulative XP threshold is
// at or below totalXP. Level n costs n*100 XP on top of level n-1, so the
// threshold for level n is the sum of i*100 for i from 2 to n.
func CalculateLevel(totalXP int) int {
	level := 1
	xpNeeded := 0
	for xpNeeded <= totalXP {
		level++
		xpNeeded += level * 100
	}
	return level - 1
}

// LevelThreshold returns the cumulative XP required to reach a level.
// Level 1 is free; level 2 needs 200, level 3 needs 500.
func LevelThreshold(level int) int {
	total := 0
	for i := 2; i <= level; i++ {
		total += i * 100
	}
	return total
}

// XPWithinLevel reports progress inside the current level: XP earned past
// the current threshold and XP remaining to the next one.
func XPWithinLevel(totalXP int) (inLevel, toNext int) {
	level := CalculateLevel(totalXP)
	inLevel = totalXP - LevelThreshold(level)
	toNext = LevelThreshold(level+1) - totalXP
	return inLevel, toNext
}

// MaxPlantStage is the final growth stage.
const MaxPlantStage = 7

// PlantStage maps a level to the plant growth stage shown to the user.
func PlantStage(level int) int {
	switch {
	case level <= 2:
		return 1
	case level <= 4:
		return 2
	case level <= 7:
		return 3
	case level <= 10:
		return 4
	case level <= 15:
		return 5
	case level <= 20:
		return 6
	default:
		return MaxPlantStage
	}
}

// plantStageNames is indexed by stage (1-based).
var plantStageNames = [MaxPlantStage + 1]string{
	"",
	"Seed",
	"Sprout",
	"Seedling",
	"Young Tree",
	"Mature Tree",
	"Ancient Tree",
	"Forest Guardian",
}

// PlantStageName returns the display name for a stage; out-of-range stages
// clamp to the nearest valid one.
func PlantStageName(stage int) string {
	if stage < 1 {
		stage = 1
	}
	if stage > MaxPlantStage {
		stage = MaxPlantStage
	}
	return plantStageNames[stage]
}
