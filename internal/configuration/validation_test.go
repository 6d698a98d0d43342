package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Configuration {
	return Configuration{
		LoopTickRate:       2 * time.Millisecond,
		LoopTimeWindowSize: 100,
		Controller: ControllerConfig{
			Type:                ControllerTypeMWRewrite,
			MaxAngleInclination: 500,
		},
		Profile: PidProfileConfig{
			Roll:  DefaultAxisGains,
			Pitch: DefaultAxisGains,
			Yaw:   DefaultYawGains,
			Level: DefaultLevelGains,
		},
		Rx: RxConfig{MidRC: 1500},
	}
}

func TestValidateDefaultConfig(t *testing.T) {
	// GIVEN
	config := validConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateZeroTickRate(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.LoopTickRate = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loopTickRate")
}

func TestValidateUnknownControllerType(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Controller.Type = "bangbang"

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported controller type")
}

func TestValidateMaxAngleInclinationBounds(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Controller.MaxAngleInclination = 950

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "maxAngleInclination")
}

func TestValidateTpaBreakpointRequiredWithRate(t *testing.T) {
	// GIVEN a TPA rate without a usable breakpoint
	config := validConfig()
	config.Controller.TpaRate = 20
	config.Controller.TpaBreakpoint = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tpaBreakpoint")
}

func TestValidateTpaDisabledIgnoresBreakpoint(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Controller.TpaRate = 0
	config.Controller.TpaBreakpoint = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateUncontrolledAxis(t *testing.T) {
	// GIVEN a pitch axis with no P gain in either representation
	config := validConfig()
	config.Profile.Pitch.P = 0
	config.Profile.Pitch.PF = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pitch")
}

func TestValidateNegativeFloatGain(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Profile.Roll.DF = -0.01

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "roll")
}

func TestValidateMidRcBounds(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Rx.MidRC = 900

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "midrc")
}

func TestValidateStatisticsPort(t *testing.T) {
	// GIVEN
	config := validConfig()
	config.Statistics.Enabled = true
	config.Statistics.Port = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "statistics port")
}
