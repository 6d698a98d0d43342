package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStickDeflectionIsMeasuredFromCenter(t *testing.T) {
	// GIVEN / WHEN / THEN
	assert.Equal(t, int32(0), stickDeflection(1500, 1500))
	assert.Equal(t, int32(250), stickDeflection(1750, 1500))
	assert.Equal(t, int32(250), stickDeflection(1250, 1500))

	// capped at full deflection
	assert.Equal(t, int32(500), stickDeflection(2100, 1500))
}

func TestMostDeflectedStickPicksLargerOfRollAndPitch(t *testing.T) {
	// GIVEN
	input := &CycleInput{}
	input.RcData[Roll] = 1600
	input.RcData[Pitch] = 1100

	// WHEN
	mostDeflected := mostDeflectedStick(input, 1500)

	// THEN pitch wins with 400 over roll's 100
	assert.Equal(t, int32(400), mostDeflected)
}

func TestHorizonStrengthMWRewrite(t *testing.T) {
	// GIVEN the default sensitivity of 100

	// WHEN / THEN strength is maximal at center stick
	assert.Equal(t, int32(100), horizonStrengthMWRewrite(0, 100))

	// and zero at full deflection
	assert.Equal(t, int32(0), horizonStrengthMWRewrite(500, 100))

	// GIVEN a sensitivity of 80 at half deflection
	// WHEN / THEN the linear fade lands in between
	assert.Equal(t, int32(50), horizonStrengthMWRewrite(250, 80))
}

func TestHorizonStrengthLuxFloat(t *testing.T) {
	// WHEN / THEN strength is maximal at center stick
	assert.Equal(t, 1.0, horizonStrengthLuxFloat(0, 75))

	// and zero at full deflection
	assert.Equal(t, 0.0, horizonStrengthLuxFloat(500, 50))

	// a sensitivity of zero forces pure rate mode over the whole curve
	assert.Equal(t, 0.0, horizonStrengthLuxFloat(0, 0))
	assert.Equal(t, 0.0, horizonStrengthLuxFloat(250, 0))

	// higher sensitivity keeps more self-leveling at partial deflection
	assert.Greater(t,
		horizonStrengthLuxFloat(250, 100),
		horizonStrengthLuxFloat(250, 25))
}
