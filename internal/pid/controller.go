package pid

import (
	"github.com/tbeckfield/rotorpid/internal/configuration"
)

// ControllerType selects which of the two rate controller implementations
// subsequent cycles will run. The set of variants is closed.
type ControllerType int

const (
	// ControllerMWRewrite is the fixed-point integer controller.
	ControllerMWRewrite ControllerType = iota
	// ControllerLuxFloat is the floating-point controller.
	ControllerLuxFloat
)

// ControllerTypeFromName maps a configuration name to a ControllerType.
// Unknown names fall back to the integer controller.
func ControllerTypeFromName(name string) ControllerType {
	switch name {
	case configuration.ControllerTypeLuxFloat:
		return ControllerLuxFloat
	case configuration.ControllerTypeMWRewrite:
		return ControllerMWRewrite
	default:
		return ControllerMWRewrite
	}
}

func (t ControllerType) String() string {
	switch t {
	case ControllerLuxFloat:
		return configuration.ControllerTypeLuxFloat
	default:
		return configuration.ControllerTypeMWRewrite
	}
}

// CycleInput carries the ambient flight state for exactly one control cycle.
// All of it is owned by external collaborators (receiver, gyro, attitude
// estimator, mode logic, scheduler) and is read-only to this package.
type CycleInput struct {
	// RcCommand holds the per-axis stick commands, pre-scaled by the
	// receiver stage.
	RcCommand [AxisCount]int16
	// RcData holds the raw per-axis receiver channel values, used to
	// measure stick deflection from center in horizon mode.
	RcData [AxisCount]int16

	// GyroADC holds the raw per-axis gyro readings, GyroScale converts
	// them to degrees per second.
	GyroADC   [AxisCount]int32
	GyroScale float64

	// Attitude holds the estimated craft orientation in decidegrees.
	Attitude [AxisCount]int16

	AngleMode   bool
	HorizonMode bool
	TuningMode  bool
	Armed       bool

	// CycleTime is the measured duration of the last control cycle in
	// microseconds, DT the same duration in seconds. The scheduler
	// guarantees both are nonzero (and CycleTime >= 16).
	CycleTime uint16
	DT        float64

	// PIDWeight attenuates the P and D contributions per axis,
	// 100 means unscaled.
	PIDWeight [AxisCount]uint8
}

// Terms is the per-axis P/I/D breakdown recorded for telemetry.
type Terms struct {
	P int32
	I int32
	D int32
}

// AxisObserver is invoked once per axis per cycle while the craft is armed
// and tuning mode is active. The auto-tuning algorithm hooks in here; it
// observes axis state but never mutates it.
type AxisObserver func(axis Axis, rateError int32, output int32)

// Controller owns the persistent per-axis state and dispatches each cycle to
// the active variant. It must only ever be driven by a single goroutine, the
// external scheduler serializes cycles.
type Controller struct {
	state          *State
	controllerType ControllerType

	recordTerms bool
	terms       [AxisCount]Terms

	observer AxisObserver
}

// NewController creates a controller of the given type with all-zero state.
// recordTerms enables the per-axis P/I/D diagnostics.
func NewController(controllerType ControllerType, recordTerms bool) *Controller {
	return &Controller{
		state:          NewState(),
		controllerType: controllerType,
		recordTerms:    recordTerms,
	}
}

// SetType swaps the active controller variant. Accumulated integrator,
// derivative and filter state intentionally carries over to the new variant.
func (c *Controller) SetType(controllerType ControllerType) {
	c.controllerType = controllerType
}

func (c *Controller) Type() ControllerType {
	return c.controllerType
}

// SetObserver installs the per-axis tuning observer.
func (c *Controller) SetObserver(observer AxisObserver) {
	c.observer = observer
}

// ResetIntegrators zeroes the integral accumulators of both variants.
// Triggered externally, typically on disarm.
func (c *Controller) ResetIntegrators() {
	c.state.ResetIntegrators()
}

// Terms returns the P/I/D breakdown of the last cycle. Only meaningful when
// the controller records terms.
func (c *Controller) Terms() [AxisCount]Terms {
	return c.terms
}

// Compute runs the active controller variant for one cycle and returns the
// per-axis correction for the motor mixer, clamped to [-1000, 1000].
func (c *Controller) Compute(
	profile *configuration.PidProfileConfig,
	rates *configuration.RatesConfig,
	maxAngleInclination int32,
	rx *configuration.RxConfig,
	input *CycleInput,
) [AxisCount]int32 {
	switch c.controllerType {
	case ControllerLuxFloat:
		return c.computeLuxFloat(profile, rates, maxAngleInclination, rx, input)
	default:
		return c.computeMWRewrite(profile, rates, maxAngleInclination, rx, input)
	}
}

func (c *Controller) observe(axis Axis, rateError int32, output int32, input *CycleInput) {
	if c.observer != nil && input.TuningMode && input.Armed {
		c.observer(axis, rateError, output)
	}
}
