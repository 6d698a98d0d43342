package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tbeckfield/rotorpid/internal/configuration"
)

// helper to create a minimal tuning profile with only the given roll/pitch/yaw
// integer gains set
func createIntProfile(p uint8, i uint8, d uint8) *configuration.PidProfileConfig {
	gains := configuration.AxisGainsConfig{P: p, I: i, D: d}
	return &configuration.PidProfileConfig{
		Roll:  gains,
		Pitch: gains,
		Yaw:   gains,
		Level: configuration.LevelGainsConfig{P: 90, I: 10, D: 100},
	}
}

func createInput() *CycleInput {
	return &CycleInput{
		GyroScale: 1.0 / 16.4,
		CycleTime: 2048,
		DT:        0.002048,
		PIDWeight: [AxisCount]uint8{100, 100, 100},
	}
}

func testRates(roll uint8, pitch uint8, yaw uint8) *configuration.RatesConfig {
	return &configuration.RatesConfig{Roll: roll, Pitch: pitch, Yaw: yaw}
}

var testRx = &configuration.RxConfig{MidRC: 1500}

func TestMWRewriteAllZeroInputsProduceZeroOutput(t *testing.T) {
	// GIVEN
	controller := NewController(ControllerMWRewrite, false)
	profile := createIntProfile(40, 30, 23)
	input := createInput()

	// WHEN
	output := controller.Compute(profile, testRates(0, 0, 0), 500, testRx, input)

	// THEN
	assert.Equal(t, [AxisCount]int32{0, 0, 0}, output)
}

func TestMWRewriteFirstCycleDerivativeTracksGyro(t *testing.T) {
	// GIVEN
	controller := NewController(ControllerMWRewrite, true)
	profile := createIntProfile(0, 0, 30)
	input := createInput()
	input.GyroADC[Roll] = 400

	// WHEN
	output := controller.Compute(profile, testRates(0, 0, 0), 500, testRx, input)

	// THEN
	// rate error is -gyro/4 = -100, rescaled by 0xFFFF/(2048>>4) = 511
	// and >>6 gives -799, *30 and >>8 gives -94
	assert.Equal(t, int32(-94), output[Roll])
	terms := controller.Terms()
	assert.Equal(t, int32(0), terms[Roll].P)
	assert.Equal(t, int32(0), terms[Roll].I)
	assert.Equal(t, int32(-94), terms[Roll].D)
}

func TestMWRewriteIntegratorPlateausAtWindupLimit(t *testing.T) {
	// GIVEN
	controller := NewController(ControllerMWRewrite, true)
	profile := createIntProfile(40, 30, 0)
	input := createInput()
	input.RcCommand[Yaw] = 500

	// WHEN
	var output [AxisCount]int32
	for cycle := 0; cycle < 200; cycle++ {
		output = controller.Compute(profile, testRates(0, 0, 0), 500, testRx, input)
	}

	// THEN
	// desired yaw rate (27*500)>>5 = 421, P term (421*40)>>7 = 131,
	// I term saturated at the windup limit >>13 = 256
	assert.Equal(t, int32(256<<13), controller.state.errorGyroI[Yaw])
	assert.Equal(t, int32(131+256), output[Yaw])

	// WHEN one more saturated cycle runs
	output = controller.Compute(profile, testRates(0, 0, 0), 500, testRx, input)

	// THEN the output does not grow any further
	assert.Equal(t, int32(131+256), output[Yaw])
}

func TestMWRewriteOutputIsClampedToSafeRange(t *testing.T) {
	// GIVEN
	controller := NewController(ControllerMWRewrite, false)
	profile := createIntProfile(40, 0, 0)
	input := createInput()
	input.GyroADC[Pitch] = 400000

	// WHEN
	output := controller.Compute(profile, testRates(0, 0, 0), 500, testRx, input)

	// THEN
	assert.Equal(t, int32(-1000), output[Pitch])
}

func TestMWRewriteYawIgnoresAngleMode(t *testing.T) {
	// GIVEN identical yaw input with and without angle mode
	profile := createIntProfile(40, 30, 23)

	acro := createInput()
	acro.RcCommand[Yaw] = 300
	acro.Attitude[Yaw] = 500

	angle := createInput()
	angle.RcCommand[Yaw] = 300
	angle.Attitude[Yaw] = 500
	angle.AngleMode = true

	// WHEN
	acroOutput := NewController(ControllerMWRewrite, false).
		Compute(profile, testRates(0, 0, 70), 500, testRx, acro)
	angleOutput := NewController(ControllerMWRewrite, false).
		Compute(profile, testRates(0, 0, 70), 500, testRx, angle)

	// THEN
	assert.Equal(t, acroOutput[Yaw], angleOutput[Yaw])
}

func TestMWRewriteAngleModeRegulatesTiltAngle(t *testing.T) {
	// GIVEN a 30 degree angle error in angle mode
	controller := NewController(ControllerMWRewrite, false)
	profile := createIntProfile(40, 0, 0)
	input := createInput()
	input.RcCommand[Roll] = 200
	input.Attitude[Roll] = 100
	input.AngleMode = true

	// WHEN
	output := controller.Compute(profile, testRates(0, 0, 0), 500, testRx, input)

	// THEN
	// error angle constrain(400, +-500) - 100 = 300, desired rate
	// (300*90)>>4 = 1687, P term (1687*40)>>7 = 527
	assert.Equal(t, int32(527), output[Roll])
}

func TestMWRewriteAngleErrorIsLimitedToMaxInclination(t *testing.T) {
	// GIVEN a stick command far beyond the configured inclination limit
	controller := NewController(ControllerMWRewrite, false)
	profile := createIntProfile(40, 0, 0)
	input := createInput()
	input.RcCommand[Roll] = 450
	input.AngleMode = true

	// WHEN
	output := controller.Compute(profile, testRates(0, 0, 0), 300, testRx, input)

	// THEN
	// error angle is clamped to 300, desired rate (300*90)>>4 = 1687
	assert.Equal(t, int32(527), output[Roll])
}

func TestMWRewritePidWeightAttenuatesPTerm(t *testing.T) {
	// GIVEN the same input at full and half weight
	profile := createIntProfile(40, 0, 0)

	full := createInput()
	full.RcCommand[Yaw] = 500

	half := createInput()
	half.RcCommand[Yaw] = 500
	half.PIDWeight = [AxisCount]uint8{50, 50, 50}

	// WHEN
	fullOutput := NewController(ControllerMWRewrite, false).
		Compute(profile, testRates(0, 0, 0), 500, testRx, full)
	halfOutput := NewController(ControllerMWRewrite, false).
		Compute(profile, testRates(0, 0, 0), 500, testRx, half)

	// THEN
	// (421*40*100/100)>>7 = 131 vs (421*40*50/100)>>7 = 65
	assert.Equal(t, int32(131), fullOutput[Yaw])
	assert.Equal(t, int32(65), halfOutput[Yaw])
}

func TestMWRewritePTermFilterBypassIsNoOp(t *testing.T) {
	// GIVEN two controllers, one with the P-term filter disabled and one
	// with a 20Hz cutoff
	unfiltered := NewController(ControllerMWRewrite, false)
	filtered := NewController(ControllerMWRewrite, false)

	bypassProfile := createIntProfile(40, 0, 0)
	filterProfile := createIntProfile(40, 0, 0)
	filterProfile.PTermCutHz = 20

	input := createInput()
	input.RcCommand[Yaw] = 500

	// WHEN
	first := unfiltered.Compute(bypassProfile, testRates(0, 0, 0), 500, testRx, input)
	second := unfiltered.Compute(bypassProfile, testRates(0, 0, 0), 500, testRx, input)
	firstFiltered := filtered.Compute(filterProfile, testRates(0, 0, 0), 500, testRx, input)

	// THEN the bypassed P term responds instantly and identically every
	// cycle, while the filtered one ramps up from zero
	assert.Equal(t, first[Yaw], second[Yaw])
	assert.Equal(t, int32(131), first[Yaw])
	assert.Less(t, firstFiltered[Yaw], first[Yaw])
	assert.Greater(t, firstFiltered[Yaw], int32(0))
}
