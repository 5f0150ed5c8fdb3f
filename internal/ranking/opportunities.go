// Package ranking scores the four life-domains by emission-reduction
// potential and selects the top contributors for a user.
package ranking

import (
	"sort"
	"strings"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// maxOpportunities caps the returned list.
const maxOpportunities = 3

// DefaultOpportunities is the fallback list used when every domain scores
// zero (e.g. an entirely blank survey).
var DefaultOpportunities = []types.Category{
	types.CategoryTransportation,
	types.CategoryFood,
	types.CategoryEnergy,
}

// domainScore pairs a category with its computed impact score.
type domainScore struct {
	category types.Category
	score    int
}

// RankOpportunities returns 1-3 domain tags ordered by descending impact
// score. Ties keep the stable input order (transportation, food, shopping,
// energy). Domains scoring zero or less are dropped; an empty result falls
// back to DefaultOpportunities.
func RankOpportunities(survey *types.SurveyResponse) []types.Category {
	scores := []domainScore{
		{types.CategoryTransportation, transportationScore(survey)},
		{types.CategoryFood, foodScore(survey)},
		{types.CategoryShopping, shoppingScore(survey)},
		{types.CategoryEnergy, energyScore(survey)},
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	areas := make([]types.Category, 0, maxOpportunities)
	for _, ds := range scores[:maxOpportunities] {
		if ds.score > 0 {
			areas = append(areas, ds.category)
		}
	}

	if len(areas) == 0 {
		return append([]types.Category(nil), DefaultOpportunities...)
	}
	return areas
}

// transportationScore: solo or mixed driving, long commutes, frequent flights.
func transportationScore(survey *types.SurveyResponse) int {
	score := 0
	if survey.CommuteMethod == "I drive alone" || survey.CommuteMethod == "Mix of multiple methods" {
		score += 3
	}
	if survey.CommuteDistance > 10 {
		score += 2
	}
	if strings.Contains(survey.FlightFrequency, "More than") {
		score += 2
	}
	return score
}

// foodScore: meat-heavy diets, frequent eating out, little home cooking.
func foodScore(survey *types.SurveyResponse) int {
	score := 0
	if strings.Contains(survey.DietType, "meat with most meals") {
		score += 3
	}
	if strings.Contains(survey.EatingOutFrequency, "Daily") ||
		strings.Contains(survey.EatingOutFrequency, "4-6 times") {
		score += 2
	}
	if strings.Contains(survey.CookingHabits, "don't cook") ||
		strings.Contains(survey.CookingHabits, "Rarely") {
		score += 1
	}
	return score
}

// shoppingScore: frequent clothing purchases, buy-new-immediately, online-first.
func shoppingScore(survey *types.SurveyResponse) int {
	score := 0
	if strings.Contains(survey.ClothingFrequency, "Monthly") {
		score += 2
	}
	if survey.PurchaseBehavior == "Buy it new immediately" {
		score += 2
	}
	if strings.Contains(survey.ShoppingLocation, "Mostly online") {
		score += 1
	}
	return score
}

// energyScore: control over home energy and detached housing.
func energyScore(survey *types.SurveyResponse) int {
	score := 0
	if strings.Contains(survey.EnergyControl, "Full control") ||
		strings.Contains(survey.EnergyControl, "Some control") {
		score += 3
	}
	if strings.Contains(survey.HousingType, "House") {
		score += 2
	}
	return score
}
