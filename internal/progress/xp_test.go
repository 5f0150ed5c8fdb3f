package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutapp/carbon-coach/internal/types"
)

func TestCalculateXP(t *testing.T) {
	// base 10 + 2.0*5 + food bonus 5
	assert.Equal(t, 25, CalculateXP(2.0, types.CategoryFood))

	// transportation gets the bigger bonus
	assert.Equal(t, 30, CalculateXP(2.0, types.CategoryTransportation))

	// unknown category earns no bonus
	assert.Equal(t, 20, CalculateXP(2.0, types.Category("other")))
}

func TestCalculateXP_Caps(t *testing.T) {
	// CO2 component caps at 40; total caps at 50
	assert.Equal(t, 50, CalculateXP(100, types.CategoryFood))
	assert.Equal(t, 50, CalculateXP(8.5, types.CategoryTransportation))
}

func TestCalculateXP_ZeroSavings(t *testing.T) {
	assert.Equal(t, 15, CalculateXP(0, types.CategoryEnergy))
}
