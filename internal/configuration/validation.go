package configuration

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validateLoop(config)
	if err != nil {
		return err
	}
	err = validateController(config)
	if err != nil {
		return err
	}
	err = validateProfile(config)
	if err != nil {
		return err
	}
	err = validateRx(config)
	if err != nil {
		return err
	}
	return validateStatistics(config)
}

func validateLoop(config *Configuration) error {
	if config.LoopTickRate <= 0 {
		return errors.New("loopTickRate must be positive")
	}
	if config.LoopTimeWindowSize <= 0 {
		return errors.New("loopTimeWindowSize must be positive")
	}
	return nil
}

func validateController(config *Configuration) error {
	supportedTypes := []string{ControllerTypeMWRewrite, ControllerTypeLuxFloat}
	if !slices.Contains(supportedTypes, config.Controller.Type) {
		return fmt.Errorf("unsupported controller type '%s', use one of: %s",
			config.Controller.Type, strings.Join(supportedTypes, " | "))
	}

	if config.Controller.MaxAngleInclination < 100 || config.Controller.MaxAngleInclination > 900 {
		return fmt.Errorf("maxAngleInclination must be in [100, 900] decidegrees, got %d",
			config.Controller.MaxAngleInclination)
	}

	if config.Controller.TpaRate > 100 {
		return fmt.Errorf("tpaRate is a percentage, must be in [0, 100], got %d",
			config.Controller.TpaRate)
	}
	if config.Controller.TpaRate > 0 &&
		(config.Controller.TpaBreakpoint < 1000 || config.Controller.TpaBreakpoint > 2000) {
		return fmt.Errorf("tpaBreakpoint must be a throttle value in [1000, 2000], got %d",
			config.Controller.TpaBreakpoint)
	}

	return nil
}

func validateProfile(config *Configuration) error {
	profile := &config.Profile

	for axis, gains := range map[string]*AxisGainsConfig{
		"roll":  &profile.Roll,
		"pitch": &profile.Pitch,
		"yaw":   &profile.Yaw,
	} {
		if gains.PF < 0 || gains.IF < 0 || gains.DF < 0 {
			return fmt.Errorf("profile %s: float gains must not be negative", axis)
		}
		if gains.P == 0 && gains.PF == 0 {
			return fmt.Errorf("profile %s: P gain is zero in both representations, axis would be uncontrolled", axis)
		}
	}

	if profile.Level.PF < 0 || profile.Level.IF < 0 {
		return errors.New("profile level: float gains must not be negative")
	}

	return nil
}

func validateRx(config *Configuration) error {
	if config.Rx.MidRC < 1200 || config.Rx.MidRC > 1700 {
		return fmt.Errorf("rx midrc must be in [1200, 1700], got %d", config.Rx.MidRC)
	}
	return nil
}

func validateStatistics(config *Configuration) error {
	if !config.Statistics.Enabled {
		return nil
	}
	if config.Statistics.Port <= 0 || config.Statistics.Port >= 65535 {
		return fmt.Errorf("statistics port must be in (0, 65535), got %d", config.Statistics.Port)
	}
	return nil
}
