package pid

import (
	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/util"
)

const (
	// gyroIMax bounds the integer integrator: the accumulator is clamped
	// to +/- gyroIMax<<13 so the consumed I term never exceeds gyroIMax.
	gyroIMax = 256

	// maxOutput bounds the per-axis correction handed to the mixer.
	maxOutput = 1000
)

// computeMWRewrite is the fixed-point integer rate controller. All arithmetic
// uses scaled int32 values with bit-shifts standing in for fixed-point
// division. The order of operations matters: the integrator accumulates at
// full precision and is only divided down when the term is consumed,
// otherwise long-run drift correction would lose precision.
func (c *Controller) computeMWRewrite(
	profile *configuration.PidProfileConfig,
	rates *configuration.RatesConfig,
	maxAngleInclination int32,
	rx *configuration.RxConfig,
	input *CycleInput,
) [AxisCount]int32 {
	s := c.state
	var axisPID [AxisCount]int32

	horizonLevelStrength := int32(100)
	if input.HorizonMode {
		// Progressively turn off the self-level strength as the stick is banged over
		horizonLevelStrength = horizonStrengthMWRewrite(
			mostDeflectedStick(input, rx.MidRC),
			profile.Level.D,
		)
	}

	for axis := 0; axis < AxisCount; axis++ {
		rate := int32(rates.ForAxis(axis))

		// desired angle rate depending on flight mode
		var angleRateTmp int32
		if axis == int(Yaw) {
			// yaw is always gyro-controlled
			angleRateTmp = ((rate + 27) * int32(input.RcCommand[Yaw])) >> 5
		} else {
			errorAngle := util.Constrain(2*int32(input.RcCommand[axis]),
				-maxAngleInclination, +maxAngleInclination) - int32(input.Attitude[axis])

			if !input.AngleMode {
				// control is gyro based (ACRO and HORIZON), direct stick control on the rate loop
				angleRateTmp = ((rate + 27) * int32(input.RcCommand[axis])) >> 4
				if input.HorizonMode {
					// mix angle error into the desired rate for a little auto-level feel
					angleRateTmp += (errorAngle * int32(profile.Level.I) * horizonLevelStrength / 100) >> 4
				}
			} else {
				// ANGLE mode regulates tilt angle directly
				angleRateTmp = (errorAngle * int32(profile.Level.P)) >> 4
			}
		}

		rateError := angleRateTmp - input.GyroADC[axis]/4

		gains := profile.ForAxis(axis)

		pTerm := (rateError * int32(gains.P) * int32(input.PIDWeight[axis]) / 100) >> 7
		if profile.PTermCutHz != 0 {
			pTerm = int32(s.ptermFilter[axis].Apply(float64(pTerm), profile.PTermCutHz, input.DT))
		}

		// no division before accumulating, precision is what keeps
		// long-time drift in check. Time correction is normalized to a
		// 2048us reference cycle so I scaling is build independent.
		s.errorGyroI[axis] += ((rateError * int32(input.CycleTime)) >> 11) * int32(gains.I)
		s.errorGyroI[axis] = util.Constrain(s.errorGyroI[axis], -gyroIMax<<13, +gyroIMax<<13)
		iTerm := s.errorGyroI[axis] >> 13

		delta := rateError - s.lastError[axis]
		s.lastError[axis] = rateError

		// cycle time is jittery, so the raw difference would be scaled by a
		// different dt each time. Rescaling by the measured cycle time fixes that.
		delta = (delta * int32(uint16(0xFFFF)/(input.CycleTime>>4))) >> 6
		deltaSum := s.delta1[axis] + s.delta2[axis] + delta
		s.delta2[axis] = s.delta1[axis]
		s.delta1[axis] = delta

		if profile.DTermCutHz != 0 {
			deltaSum = int32(s.dtermFilter[axis].Apply(float64(deltaSum), profile.DTermCutHz, input.DT))
		}

		dTerm := (deltaSum * int32(gains.D) * int32(input.PIDWeight[axis]) / 100) >> 8

		axisPID[axis] = util.Constrain(pTerm+iTerm+dTerm, -maxOutput, +maxOutput)

		c.observe(Axis(axis), rateError, axisPID[axis], input)

		if c.recordTerms {
			c.terms[axis] = Terms{P: pTerm, I: iTerm, D: dTerm}
		}
	}

	return axisPID
}
