package pid

import (
	"math"

	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/util"
)

const (
	// luxITermLimit bounds the float integrator (and thereby the consumed
	// I term) symmetrically every cycle.
	luxITermLimit = 250.0
	// luxDTermLimit bounds the float D term before it is summed.
	luxDTermLimit = 300.0
)

// computeLuxFloat is the floating-point rate controller. It shares the
// seven-step structure and state roles of the integer variant but normalizes
// by the precise measured cycle duration instead of rescaling against a fixed
// reference, which makes its tuning feel continuous across loop rates.
func (c *Controller) computeLuxFloat(
	profile *configuration.PidProfileConfig,
	rates *configuration.RatesConfig,
	maxAngleInclination int32,
	rx *configuration.RxConfig,
	input *CycleInput,
) [AxisCount]int32 {
	s := c.state
	var axisPID [AxisCount]int32

	horizonLevelStrength := 1.0
	if input.HorizonMode {
		horizonLevelStrength = horizonStrengthLuxFloat(
			mostDeflectedStick(input, rx.MidRC),
			profile.HorizonSensitivity,
		)
	}

	for axis := 0; axis < AxisCount; axis++ {
		rate := float64(rates.ForAxis(axis))

		// desired angle rate depending on flight mode
		var angleRate float64
		if axis == int(Yaw) {
			// yaw is always gyro-controlled, 100dps to 1100dps max rate
			angleRate = (rate + 10) * float64(input.RcCommand[Yaw]) / 50.0
		} else {
			errorAngle := float64(util.Constrain(int32(input.RcCommand[axis]),
				-maxAngleInclination, +maxAngleInclination)-int32(input.Attitude[axis])) / 10.0

			if input.AngleMode {
				angleRate = errorAngle * profile.Level.PF
			} else {
				// 200dps to 1200dps max roll/pitch rate
				angleRate = (rate + 20) * float64(input.RcCommand[axis]) / 50.0
				if input.HorizonMode {
					angleRate += errorAngle * profile.Level.IF * horizonLevelStrength
				}
			}
		}

		gyroRate := float64(input.GyroADC[axis]) * input.GyroScale
		rateError := angleRate - gyroRate

		gains := profile.ForAxis(axis)

		pTerm := rateError * gains.PF * float64(input.PIDWeight[axis]) / 100
		if profile.PTermCutHz != 0 {
			pTerm = s.ptermFilter[axis].Apply(pTerm, profile.PTermCutHz, input.DT)
		}

		s.errorGyroIf[axis] = util.Constrainf(
			s.errorGyroIf[axis]+rateError*input.DT*gains.IF*10,
			-luxITermLimit, +luxITermLimit)
		iTerm := s.errorGyroIf[axis]

		delta := rateError - s.lastErrorf[axis]
		s.lastErrorf[axis] = rateError

		// continuous-time derivative: dividing by the measured dt cancels
		// cycle time jitter
		delta *= 1.0 / input.DT
		deltaSum := s.delta1f[axis] + s.delta2f[axis] + delta
		s.delta2f[axis] = s.delta1f[axis]
		s.delta1f[axis] = delta

		if profile.DTermCutHz != 0 {
			deltaSum = s.dtermFilter[axis].Apply(deltaSum, profile.DTermCutHz, input.DT)
		}

		dTerm := util.Constrainf(
			(deltaSum/3.0)*gains.DF*float64(input.PIDWeight[axis])/100,
			-luxDTermLimit, +luxDTermLimit)

		axisPID[axis] = util.Constrain(int32(math.Round(pTerm+iTerm+dTerm)), -maxOutput, +maxOutput)

		c.observe(Axis(axis), int32(rateError), axisPID[axis], input)

		if c.recordTerms {
			c.terms[axis] = Terms{P: int32(pTerm), I: int32(iTerm), D: int32(dTerm)}
		}
	}

	return axisPID
}
