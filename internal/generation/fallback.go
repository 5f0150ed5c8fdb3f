package generation

import "github.com/sproutapp/carbon-coach/internal/types"

// FallbackMissions returns the static starter set used whenever generation
// fails. Three easy missions covering shopping, energy and food so a new
// user always has something to do.
func FallbackMissions() []types.Mission {
	return []types.Mission{
		{
			Title:       "Use a reusable water bottle today",
			Description: "Skip the disposable plastic bottles and bring your own reusable water bottle. This simple switch saves plastic waste and money.",
			Category:    types.CategoryShopping,
			CO2SavedKg:  0.5,
			MoneySaved:  2.0,
			XPReward:    10,
			Tips: []string{
				"Keep your bottle in your bag",
				"Add flavor with lemon or cucumber",
				"Clean it daily for freshness",
			},
			MissionType: types.MissionOneTime,
		},
		{
			Title:       "Unplug devices before bed tonight",
			Description: "Before you go to sleep, unplug phone chargers, laptop chargers, and other devices that draw phantom power when not in use.",
			Category:    types.CategoryEnergy,
			CO2SavedKg:  1.2,
			MoneySaved:  1.5,
			XPReward:    15,
			Tips: []string{
				"Use a power strip for easy unplugging",
				"Make it part of your bedtime routine",
				"Focus on bedroom and office first",
			},
			MissionType: types.MissionRepeatable,
		},
		{
			Title:       "Try one meatless meal this week",
			Description: "Choose one day this week and opt for a vegetarian or plant-based meal. Explore new flavors while reducing your carbon footprint.",
			Category:    types.CategoryFood,
			CO2SavedKg:  2.3,
			MoneySaved:  5.0,
			XPReward:    20,
			Tips: []string{
				"Try a veggie burger or falafel",
				"Make it Meatless Monday",
				"Ask friends for restaurant recommendations",
			},
			MissionType: types.MissionOneTime,
		},
	}
}
