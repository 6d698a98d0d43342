package pid

import (
	"github.com/tbeckfield/rotorpid/internal/util"
)

// fullStickDeflection is the receiver-unit distance from stick center to a
// fully deflected stick.
const fullStickDeflection = 500

// stickDeflection returns the magnitude of a stick's deflection from the
// configured center, capped at full deflection.
func stickDeflection(rcData int16, midrc int16) int32 {
	return util.Min(util.Abs(int32(rcData)-int32(midrc)), fullStickDeflection)
}

// mostDeflectedStick returns the larger of the roll and pitch stick
// deflections. Horizon mode fades its self-leveling with this value.
func mostDeflectedStick(input *CycleInput, midrc int16) int32 {
	stickPosAil := stickDeflection(input.RcData[Roll], midrc)
	stickPosEle := stickDeflection(input.RcData[Pitch], midrc)

	if stickPosAil > stickPosEle {
		return stickPosAil
	}
	return stickPosEle
}

// horizonStrengthMWRewrite derives the integer-variant horizon blend factor,
// 100 at center stick fading to 0 at full deflection. levelSensitivity is the
// level-profile D gain: 0 leans fully towards leveling, 255 towards rate
// control, 100 is the tuned default.
func horizonStrengthMWRewrite(mostDeflected int32, levelSensitivity uint8) int32 {
	strength := (fullStickDeflection - mostDeflected) / 5

	return util.Constrain(10*(strength-100)*(10*int32(levelSensitivity)/80)/100+100, 0, 100)
}

// horizonStrengthLuxFloat derives the float-variant horizon blend factor in
// [0, 1]. A sensitivity of zero disables auto-leveling for the whole stick
// range. The curve differs numerically from the integer variant on purpose:
// pilots tune against the specific variant they fly.
func horizonStrengthLuxFloat(mostDeflected int32, sensitivity uint8) float64 {
	strength := float64(fullStickDeflection-mostDeflected) / fullStickDeflection

	if sensitivity == 0 {
		return 0
	}
	return util.Constrainf((strength-1)*(100/float64(sensitivity))+1, 0, 1)
}
