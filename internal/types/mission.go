package types

// Category is a life-domain a mission or activity belongs to.
type Category string

// The four life-domains ranked by the opportunity ranker.
const (
	CategoryTransportation Category = "transportation"
	CategoryFood           Category = "food"
	CategoryEnergy         Category = "energy"
	CategoryShopping       Category = "shopping"
)

// Categories lists all valid categories in stable ranking order.
// The order matters: the opportunity ranker breaks score ties by it.
var Categories = []Category{
	CategoryTransportation,
	CategoryFood,
	CategoryShopping,
	CategoryEnergy,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTransportation, CategoryFood, CategoryEnergy, CategoryShopping:
		return true
	}
	return false
}

// MissionType describes how often a mission can be completed.
// It is independent of Category and must never be cross-assigned.
type MissionType string

const (
	MissionOneTime    MissionType = "one_time"
	MissionRepeatable MissionType = "repeatable"
	MissionStreak     MissionType = "streak"
)

// Valid reports whether t is one of the three known mission types.
func (t MissionType) Valid() bool {
	switch t {
	case MissionOneTime, MissionRepeatable, MissionStreak:
		return true
	}
	return false
}

// Mission is a single suggested sustainability action.
type Mission struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	CO2SavedKg  float64     `json:"co2_saved_kg"`
	MoneySaved  float64     `json:"money_saved,omitempty"`
	XPReward    int         `json:"xp_reward"`
	Tips        []string    `json:"tips"`
	MissionType MissionType `json:"mission_type"`
}
