package configuration

const (
	ControllerTypeMWRewrite = "mwrewrite"
	ControllerTypeLuxFloat  = "luxfloat"
)

type ControllerConfig struct {
	// Type selects the rate controller implementation,
	// one of: mwrewrite | luxfloat.
	Type string `json:"type"`

	// MaxAngleInclination limits the commanded tilt angle in decidegrees.
	MaxAngleInclination int32 `json:"maxAngleInclination"`

	// RecordTerms enables the per-axis P/I/D diagnostics breakdown.
	RecordTerms bool `json:"recordTerms"`

	// TpaRate is the percentage by which P and D are attenuated at full
	// throttle, zero disables throttle PID attenuation.
	TpaRate uint8 `json:"tpaRate"`
	// TpaBreakpoint is the throttle value above which attenuation starts.
	TpaBreakpoint int16 `json:"tpaBreakpoint"`
}

// RatesConfig maps stick deflection to commanded angular rate per axis.
type RatesConfig struct {
	Roll  uint8 `json:"roll"`
	Pitch uint8 `json:"pitch"`
	Yaw   uint8 `json:"yaw"`
}

// ForAxis returns the rate setting of the given axis (0 roll, 1 pitch, 2 yaw).
func (c *RatesConfig) ForAxis(axis int) uint8 {
	switch axis {
	case 0:
		return c.Roll
	case 1:
		return c.Pitch
	default:
		return c.Yaw
	}
}

// RxConfig describes the receiver stick geometry.
type RxConfig struct {
	// MidRC is the receiver channel value at stick center.
	MidRC int16 `json:"midrc"`
}
