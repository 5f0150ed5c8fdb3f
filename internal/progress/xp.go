package progress

import "github.com/sproutapp/carbon-coach/internal/types"

// XP formula constants. Base plus 5 XP per kg saved (capped), plus a small
// category bonus, with a hard total cap.
const (
	baseXP   = 10
	xpPerKg  = 5
	co2XPCap = 40
	totalCap = 50
)

// categoryBonuses rewards the highest-impact domain a bit more.
var categoryBonuses = map[types.Category]int{
	types.CategoryTransportation: 10,
	types.CategoryFood:           5,
	types.CategoryEnergy:         5,
	types.CategoryShopping:       5,
}

// CalculateXP returns the XP awarded for a logged activity based on its CO2
// savings and category. Unknown categories earn no bonus.
func CalculateXP(co2SavedKg float64, category types.Category) int {
	co2XP := int(co2SavedKg * xpPerKg)
	if co2XP > co2XPCap {
		co2XP = co2XPCap
	}

	total := baseXP + co2XP + categoryBonuses[category]
	if total > totalCap {
		total = totalCap
	}
	return total
}
