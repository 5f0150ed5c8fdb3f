package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutapp/carbon-coach/internal/types"
)

func TestEstimateCO2_Transportation(t *testing.T) {
	est := Estimate{
		ActivityType: "transportation",
		Details:      map[string]any{"mode": "bus", "distance_km": 10.0},
	}
	// (0.25 - 0.05) * 10
	assert.InDelta(t, 2.0, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_TransportationDefaults(t *testing.T) {
	est := Estimate{ActivityType: "transportation", Details: map[string]any{}}
	// default mode bus over default 10 km
	assert.InDelta(t, 2.0, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_UnknownModeUsesMiddleRate(t *testing.T) {
	est := Estimate{
		ActivityType: "transportation",
		Details:      map[string]any{"mode": "scooter", "distance_km": 10.0},
	}
	assert.InDelta(t, 1.5, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_PlantBasedMeal(t *testing.T) {
	est := Estimate{ActivityType: "food", Details: map[string]any{"is_plant_based": true}}
	assert.InDelta(t, 1.8, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_NonPlantMealGetsFloor(t *testing.T) {
	est := Estimate{ActivityType: "food", Details: map[string]any{"is_plant_based": false}}
	assert.InDelta(t, minCO2PerActivity, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_EnergyHours(t *testing.T) {
	est := Estimate{ActivityType: "energy", Details: map[string]any{"hours": 8.0}}
	assert.InDelta(t, 0.4, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_Shopping(t *testing.T) {
	est := Estimate{ActivityType: "shopping", Details: map[string]any{}}
	assert.InDelta(t, 0.5, EstimateCO2(est), 1e-9)
}

func TestEstimateCO2_UnknownTypeGetsFloor(t *testing.T) {
	est := Estimate{ActivityType: "mystery", Details: map[string]any{}}
	assert.InDelta(t, minCO2PerActivity, EstimateCO2(est), 1e-9)
}

func TestEstimateMoneySaved(t *testing.T) {
	// transportation back-solves km at $0.60/km
	assert.InDelta(t, 6.0, EstimateMoneySaved(types.CategoryTransportation, 2.5), 1e-9)
	assert.InDelta(t, 3.0, EstimateMoneySaved(types.CategoryFood, 1.8), 1e-9)
	assert.InDelta(t, 0.13, EstimateMoneySaved(types.CategoryEnergy, 0.42), 1e-9)
	assert.Zero(t, EstimateMoneySaved(types.CategoryShopping, 0.5))
}
