// Package impact computes the Future Impact projections: savings pace over
// the trailing 30 days, a best-case scenario if the user adopts every
// suggested mission, and a lifetime category breakdown. Pure functions over
// in-memory records; the server layer feeds them from the database.
package impact

import (
	"math"
	"sort"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// minMonthlyPace keeps the projection graph from flatlining at zero for a
// brand-new user.
const minMonthlyPace = 1.0

// missionsPerMonth assumes an adopted mission is repeated weekly.
const missionsPerMonth = 4

// topActionsPerCategory caps the per-category action list.
const topActionsPerCategory = 5

// ActivityRecord is the slice of a logged activity the impact math needs.
type ActivityRecord struct {
	Category   types.Category
	CO2SavedKg float64
	Summary    string
}

// Projection holds projected kg CO2 saved at the three graph horizons.
type Projection struct {
	OneMonth  float64 `json:"1_month"`
	SixMonths float64 `json:"6_months"`
	OneYear   float64 `json:"1_year"`
}

// CategoryShare is one slice of the lifetime breakdown.
type CategoryShare struct {
	Category   types.Category `json:"category"`
	Percentage int            `json:"percentage"`
	AmountKg   float64        `json:"amount_kg"`
}

// ActionStat aggregates repeated activities with the same summary.
type ActionStat struct {
	Name  string  `json:"name"`
	CO2Kg float64 `json:"co2"`
	Count int     `json:"count"`
}

// MonthlyPace sums the last 30 days of savings, floored at minMonthlyPace.
func MonthlyPace(co2SavedLast30d float64) float64 {
	if co2SavedLast30d < minMonthlyPace {
		return minMonthlyPace
	}
	return co2SavedLast30d
}

// Project expands a monthly pace to the three graph horizons.
func Project(monthlyPace float64) Projection {
	return Projection{
		OneMonth:  round1(monthlyPace),
		SixMonths: round1(monthlyPace * 6),
		OneYear:   round1(monthlyPace * 12),
	}
}

// BestCasePace adds the user's open missions to the pace, assuming each
// adopted mission is repeated weekly.
func BestCasePace(monthlyPace, openMissionSavingsKg float64) float64 {
	return monthlyPace + openMissionSavingsKg*missionsPerMonth
}

// breakdownOrder fixes the presentation order of the category slices.
var breakdownOrder = []types.Category{
	types.CategoryTransportation,
	types.CategoryFood,
	types.CategoryShopping,
	types.CategoryEnergy,
}

// defaultBreakdown is shown before the user has logged anything.
var defaultBreakdown = []CategoryShare{
	{Category: types.CategoryTransportation, Percentage: 40},
	{Category: types.CategoryFood, Percentage: 35},
	{Category: types.CategoryShopping, Percentage: 15},
	{Category: types.CategoryEnergy, Percentage: 10},
}

// Breakdown aggregates lifetime activities into per-category shares and the
// top actions within each category. Activities with unknown categories count
// toward energy. With no savings at all, a fixed default distribution is
// returned so the chart is never empty.
func Breakdown(activities []ActivityRecord) ([]CategoryShare, map[types.Category][]ActionStat) {
	totals := map[types.Category]float64{}
	actions := map[types.Category]map[string]*ActionStat{}
	for _, cat := range breakdownOrder {
		actions[cat] = map[string]*ActionStat{}
	}

	var lifetime float64
	for _, a := range activities {
		cat := a.Category
		if !cat.Valid() {
			cat = types.CategoryEnergy
		}
		totals[cat] += a.CO2SavedKg
		lifetime += a.CO2SavedKg

		stat, ok := actions[cat][a.Summary]
		if !ok {
			stat = &ActionStat{Name: a.Summary}
			actions[cat][a.Summary] = stat
		}
		stat.CO2Kg += a.CO2SavedKg
		stat.Count++
	}

	topActions := map[types.Category][]ActionStat{}
	for cat, byName := range actions {
		stats := make([]ActionStat, 0, len(byName))
		for _, stat := range byName {
			stats = append(stats, *stat)
		}
		sort.SliceStable(stats, func(i, j int) bool {
			if stats[i].CO2Kg != stats[j].CO2Kg {
				return stats[i].CO2Kg > stats[j].CO2Kg
			}
			return stats[i].Name < stats[j].Name
		})
		if len(stats) > topActionsPerCategory {
			stats = stats[:topActionsPerCategory]
		}
		for i := range stats {
			stats[i].CO2Kg = round1(stats[i].CO2Kg)
		}
		topActions[cat] = stats
	}

	if lifetime <= 0 {
		return append([]CategoryShare(nil), defaultBreakdown...), topActions
	}

	shares := make([]CategoryShare, 0, len(breakdownOrder))
	for _, cat := range breakdownOrder {
		shares = append(shares, CategoryShare{
			Category:   cat,
			Percentage: int(math.Round(totals[cat] / lifetime * 100)),
			AmountKg:   round1(totals[cat]),
		})
	}
	return shares, topActions
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
