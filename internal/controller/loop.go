package controller

import (
	"context"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/pid"
	"github.com/tbeckfield/rotorpid/internal/ui"
	"github.com/tbeckfield/rotorpid/internal/util"
)

// FlightState is the ambient flight state sampled at the start of a cycle.
// It is owned by the input source, the loop never mutates it.
type FlightState struct {
	RcCommand [pid.AxisCount]int16
	RcData    [pid.AxisCount]int16

	GyroADC   [pid.AxisCount]int32
	GyroScale float64

	Attitude [pid.AxisCount]int16

	Throttle int16

	AngleMode   bool
	HorizonMode bool
	TuningMode  bool
	Armed       bool
}

// InputSource supplies the ambient flight state, once per cycle.
type InputSource interface {
	Read() FlightState
}

// MixerSink consumes the per-axis corrections produced each cycle.
type MixerSink interface {
	Apply(output [pid.AxisCount]int32)
}

// Snapshot is a point-in-time copy of the loop's observable state, taken for
// statistics export.
type Snapshot struct {
	Output [pid.AxisCount]int32
	Terms  [pid.AxisCount]pid.Terms

	AvgCycleTime float64
	Cycles       uint64
}

// RateLoop drives the rate controller at a fixed tick rate. It is the
// "external scheduler" the control core relies on: cycles are strictly
// serialized, the measured cycle time is fed back into the controller, and
// the integrators are reset when the craft disarms.
type RateLoop struct {
	controller *pid.Controller
	source     InputSource
	sink       MixerSink

	tickRate  time.Duration
	lastCycle time.Time
	wasArmed  bool

	loopTimes *rolling.PointPolicy

	// guards the snapshot fields, which are read by the statistics
	// collector from outside the loop goroutine
	mu         sync.Mutex
	lastOutput [pid.AxisCount]int32
	lastTerms  [pid.AxisCount]pid.Terms
	cycleCount uint64
}

func NewRateLoop(
	controller *pid.Controller,
	source InputSource,
	sink MixerSink,
	tickRate time.Duration,
	loopTimeWindowSize int,
) *RateLoop {
	return &RateLoop{
		controller: controller,
		source:     source,
		sink:       sink,
		tickRate:   tickRate,
		loopTimes:  util.CreateRollingWindow(loopTimeWindowSize),
	}
}

func (l *RateLoop) Run(ctx context.Context) error {
	ui.Info("Starting rate loop (%s controller, tick rate %s)",
		l.controller.Type(), l.tickRate)

	tick := time.Tick(l.tickRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			l.Cycle()
		}
	}
}

// Cycle runs exactly one control cycle against the measured wall-clock cycle
// time. Callers must serialize invocations, a concurrent second caller would
// corrupt the controller's state.
func (l *RateLoop) Cycle() {
	now := time.Now()
	dt := now.Sub(l.lastCycle)
	if l.lastCycle.IsZero() {
		dt = l.tickRate
	}
	l.lastCycle = now

	l.CycleWithDT(dt)
}

// CycleWithDT runs one control cycle with an externally supplied cycle
// duration. Bench tools that run faster than real time use this to keep the
// controller's time normalization deterministic.
func (l *RateLoop) CycleWithDT(dt time.Duration) {
	state := l.source.Read()

	if l.wasArmed && !state.Armed {
		l.controller.ResetIntegrators()
		ui.Debug("Disarmed, integrators reset")
	}
	l.wasArmed = state.Armed

	config := &configuration.CurrentConfig
	weight := PidWeight(state.Throttle, config.Controller.TpaRate, config.Controller.TpaBreakpoint)

	input := &pid.CycleInput{
		RcCommand: state.RcCommand,
		RcData:    state.RcData,
		GyroADC:   state.GyroADC,
		GyroScale: state.GyroScale,
		Attitude:  state.Attitude,

		AngleMode:   state.AngleMode,
		HorizonMode: state.HorizonMode,
		TuningMode:  state.TuningMode,
		Armed:       state.Armed,

		CycleTime: measuredCycleTime(dt),
		DT:        dt.Seconds(),

		PIDWeight: [pid.AxisCount]uint8{weight, weight, weight},
	}

	output := l.controller.Compute(
		&config.Profile,
		&config.Rates,
		config.Controller.MaxAngleInclination,
		&config.Rx,
		input,
	)

	l.sink.Apply(output)

	l.loopTimes.Append(float64(dt.Microseconds()))

	l.mu.Lock()
	l.lastOutput = output
	l.lastTerms = l.controller.Terms()
	l.cycleCount++
	l.mu.Unlock()
}

// Snapshot returns a copy of the loop's observable state. Safe to call from
// other goroutines.
func (l *RateLoop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Output:       l.lastOutput,
		Terms:        l.lastTerms,
		AvgCycleTime: util.GetWindowAvg(l.loopTimes),
		Cycles:       l.cycleCount,
	}
}

// measuredCycleTime converts the measured cycle duration into the coarse
// microsecond value the integer controller consumes. The controller's
// fixed-point time normalization requires a nonzero value of at least 16us,
// the loop upholds that precondition here.
func measuredCycleTime(dt time.Duration) uint16 {
	us := dt.Microseconds()
	if us < 16 {
		us = 16
	}
	if us > 0xFFFF {
		us = 0xFFFF
	}
	return uint16(us)
}

// PidWeight derives the per-axis PID attenuation from throttle: 100 below
// the TPA breakpoint, fading linearly to 100-tpaRate at full throttle.
func PidWeight(throttle int16, tpaRate uint8, tpaBreakpoint int16) uint8 {
	if tpaRate == 0 || throttle <= tpaBreakpoint {
		return 100
	}

	span := int32(2000 - tpaBreakpoint)
	if span <= 0 {
		return 100 - tpaRate
	}
	excess := util.Min(int32(throttle-tpaBreakpoint), span)
	return uint8(100 - int32(tpaRate)*excess/span)
}
