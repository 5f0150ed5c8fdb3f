package estimation

import "github.com/sproutapp/carbon-coach/internal/types"

// milesToKm converts statute miles to kilometers.
const milesToKm = 1.60934

// workdaysPerMonth is the assumed number of commuting days in a month.
// Monthly commute distance = one-way miles x 2 (round trip) x 20 days.
const workdaysPerMonth = 20

// commuteActivityIDs maps survey commute answers to estimation-service
// activity descriptors. Zero-emission modes map to the empty string.
var commuteActivityIDs = map[string]string{
	"I drive alone":                               activityCar,
	"I carpool with others":                       activityCar,
	"Public transportation (bus, train, subway)":  activityRail,
	"I bike":                                      "",
	"I walk":                                      "",
	"I work/study from home":                      "",
	"Mix of multiple methods":                     activityCar,
}

// commuteKgPerMile is the fallback emission rate table, kg CO2 per mile.
var commuteKgPerMile = map[string]float64{
	"I drive alone":                              0.404,
	"I carpool with others":                      0.202,
	"Public transportation (bus, train, subway)": 0.14,
	"I bike":                  0,
	"I walk":                  0,
	"I work/study from home":  0,
	"Mix of multiple methods": 0.25,
}

// defaultCommuteRate applies to unmapped commute answers (the mixed rate).
const defaultCommuteRate = 0.25

// flightAnnualMiles maps a flight-frequency answer to an assumed annual mileage.
var flightAnnualMiles = map[string]int{
	"Never or almost never": 0,
	"1-2 times":             2000,
	"3-5 times":             5000,
	"6-10 times":            10000,
	"More than 10 times":    15000,
}

// flightFallbackKg maps a flight-frequency answer to a fixed annual kg figure.
var flightFallbackKg = map[string]float64{
	"Never or almost never": 0,
	"1-2 times":             400,
	"3-5 times":             1000,
	"6-10 times":            2000,
	"More than 10 times":    3000,
}

// dietMonthlyKg maps a diet answer to a fixed monthly kg figure. There is no
// service path for food; this table is the only source.
var dietMonthlyKg = map[string]float64{
	"I eat meat with most meals":          250,
	"I eat meat several times a week":     180,
	"I eat meat occasionally (1-2x/week)": 120,
	"Pescatarian (fish but no meat)":      90,
	"Vegetarian":                          60,
	"Vegan":                               40,
}

// defaultDietKg applies to unrecognized diet answers.
const defaultDietKg = 150

// fallbackCommuteKg computes the monthly commute estimate from the rate table.
func fallbackCommuteKg(survey *types.SurveyResponse) float64 {
	if survey.CommuteMethod == "" {
		return 0
	}
	rate, ok := commuteKgPerMile[survey.CommuteMethod]
	if !ok {
		rate = defaultCommuteRate
	}
	return rate * float64(survey.CommuteDistance) * 2 * workdaysPerMonth
}

// fallbackFlightKg computes the flight estimate from the per-bucket table.
func fallbackFlightKg(survey *types.SurveyResponse) float64 {
	return flightFallbackKg[survey.FlightFrequency]
}

// foodKg computes the food estimate. Always the table lookup.
func foodKg(survey *types.SurveyResponse) float64 {
	if survey.DietType == "" {
		return 0
	}
	if kg, ok := dietMonthlyKg[survey.DietType]; ok {
		return kg
	}
	return defaultDietKg
}
