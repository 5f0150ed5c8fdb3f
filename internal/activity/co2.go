package activity

import "github.com/sproutapp/carbon-coach/internal/types"

// MaxCO2PerActivity caps a single logged activity's savings to keep the XP
// economy exploit-free.
const MaxCO2PerActivity = 10.0

// minCO2PerActivity is the floor; even a vague action counts a little.
const minCO2PerActivity = 0.1

// carKgPerKm is the reference emission rate an avoided car trip would have.
const carKgPerKm = 0.25

// alternativeKgPerKm is the emission rate of each alternative commute mode.
var alternativeKgPerKm = map[string]float64{
	"bus":     0.05,
	"bicycle": 0.0,
	"walk":    0.0,
	"train":   0.04,
	"carpool": 0.125,
}

// unknownModeKgPerKm applies to modes the model invents.
const unknownModeKgPerKm = 0.1

// EstimateCO2 converts a parsed estimate into saved kg CO2 using fixed
// heuristic rates. Transportation compares the chosen mode against a car
// trip; food credits a plant-based meal; energy credits hours of avoided
// phantom power; shopping is a flat credit. The result has a small floor so
// every recognized action scores something.
func EstimateCO2(est Estimate) float64 {
	var saved float64

	switch est.ActivityType {
	case "transportation":
		mode := detailString(est.Details, "mode", "bus")
		distanceKm := detailFloat(est.Details, "distance_km", 10)
		alt, ok := alternativeKgPerKm[mode]
		if !ok {
			alt = unknownModeKgPerKm
		}
		saved = (carKgPerKm - alt) * distanceKm
	case "food":
		if detailBool(est.Details, "is_plant_based", true) {
			saved = 1.8 // average meat meal vs plant meal
		}
	case "energy":
		hours := detailFloat(est.Details, "hours", 4)
		saved = hours * 0.05 // phantom power
	case "shopping":
		saved = 0.5 // reusable bag, secondhand, etc.
	}

	if saved < minCO2PerActivity {
		return minCO2PerActivity
	}
	return saved
}

// EstimateMoneySaved gives a rough dollar figure for a saved activity.
// Transportation back-solves km from the CO2 figure at $0.60/km; food is a
// flat per-meal estimate; energy converts through $0.13/kWh at 0.42 kg/kWh.
func EstimateMoneySaved(category types.Category, co2SavedKg float64) float64 {
	switch category {
	case types.CategoryTransportation:
		return (co2SavedKg / carKgPerKm) * 0.60
	case types.CategoryFood:
		return 3.0
	case types.CategoryEnergy:
		return (co2SavedKg / 0.42) * 0.13
	}
	return 0.0
}

// detailString reads an optional string detail with a default.
func detailString(details map[string]any, key, fallback string) string {
	if v, ok := details[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// detailFloat reads an optional numeric detail with a default. JSON numbers
// decode as float64.
func detailFloat(details map[string]any, key string, fallback float64) float64 {
	if v, ok := details[key].(float64); ok {
		return v
	}
	return fallback
}

// detailBool reads an optional boolean detail with a default.
func detailBool(details map[string]any, key string, fallback bool) bool {
	if v, ok := details[key].(bool); ok {
		return v
	}
	return fallback
}
