package sim

import (
	"time"

	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/controller"
	"github.com/tbeckfield/rotorpid/internal/pid"
)

// GyroScale converts raw gyro units to deg/s, modeled after a 2000dps
// MEMS gyro at 16.4 lsb per deg/s.
const GyroScale = 1.0 / 16.4

// Craft is a first-order rigid-body model that closes the loop on the bench:
// it serves as both the input source (gyro, receiver, attitude) and the mixer
// sink of a RateLoop. Mixer output accelerates the body rates, damping decays
// them, and roll/pitch attitude is integrated from the rates.
//
// A Craft is driven by a single loop goroutine; stick and mode setters must
// be called before the loop starts or between synchronous cycles.
type Craft struct {
	responseGain float64
	damping      float64
	midrc        int16
	dt           float64

	rates    [pid.AxisCount]float64 // deg/s
	attitude [2]float64             // roll/pitch, degrees

	sticks   [pid.AxisCount]int16
	throttle int16

	angleMode   bool
	horizonMode bool
	armed       bool
}

func NewCraft(
	simConfig configuration.SimulationConfig,
	rxConfig configuration.RxConfig,
	tickRate time.Duration,
) *Craft {
	return &Craft{
		responseGain: simConfig.ResponseGain,
		damping:      simConfig.Damping,
		midrc:        rxConfig.MidRC,
		dt:           tickRate.Seconds(),
		throttle:     1000,
	}
}

// SetSticks sets the per-axis stick commands in receiver deflection units
// (about -500 to +500 from center).
func (c *Craft) SetSticks(roll int16, pitch int16, yaw int16) {
	c.sticks = [pid.AxisCount]int16{roll, pitch, yaw}
}

func (c *Craft) SetThrottle(throttle int16) {
	c.throttle = throttle
}

func (c *Craft) SetModes(angleMode bool, horizonMode bool) {
	c.angleMode = angleMode
	c.horizonMode = horizonMode
}

func (c *Craft) SetArmed(armed bool) {
	c.armed = armed
}

// Rates returns the current body rates in deg/s.
func (c *Craft) Rates() [pid.AxisCount]float64 {
	return c.rates
}

func (c *Craft) Read() controller.FlightState {
	state := controller.FlightState{
		GyroScale: GyroScale,
		Throttle:  c.throttle,

		AngleMode:   c.angleMode,
		HorizonMode: c.horizonMode,
		Armed:       c.armed,
	}

	for axis := 0; axis < pid.AxisCount; axis++ {
		state.RcCommand[axis] = c.sticks[axis]
		state.RcData[axis] = c.midrc + c.sticks[axis]
		state.GyroADC[axis] = int32(c.rates[axis] / GyroScale)
	}

	// attitude estimate in decidegrees, yaw heading is not modeled
	state.Attitude[pid.Roll] = int16(c.attitude[0] * 10)
	state.Attitude[pid.Pitch] = int16(c.attitude[1] * 10)

	return state
}

func (c *Craft) Apply(output [pid.AxisCount]int32) {
	if !c.armed {
		return
	}

	for axis := 0; axis < pid.AxisCount; axis++ {
		accel := c.responseGain*float64(output[axis]) - c.damping*c.rates[axis]
		c.rates[axis] += accel * c.dt
	}

	c.attitude[0] += c.rates[pid.Roll] * c.dt
	c.attitude[1] += c.rates[pid.Pitch] * c.dt
}
