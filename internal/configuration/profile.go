package configuration

// AxisGainsConfig holds the gain triple of one axis in both numeric
// representations: P/I/D are the fixed-point integer gains consumed by the
// mwrewrite controller, PF/IF/DF the real-valued gains consumed by luxfloat.
type AxisGainsConfig struct {
	P uint8 `json:"p"`
	I uint8 `json:"i"`
	D uint8 `json:"d"`

	PF float64 `json:"pf"`
	IF float64 `json:"if"`
	DF float64 `json:"df"`
}

// LevelGainsConfig holds the angle/horizon mode gains. P/I are the integer
// level gains (angle-hold P and horizon I-equivalent), D doubles as the
// integer variant's horizon sensitivity. PF is the float angle-hold gain,
// IF the float horizon gain.
type LevelGainsConfig struct {
	P uint8 `json:"p"`
	I uint8 `json:"i"`
	D uint8 `json:"d"`

	PF float64 `json:"pf"`
	IF float64 `json:"if"`
}

// PidProfileConfig is the tuning profile of the rate controllers. It is
// owned by configuration and read-only to the control core for the duration
// of a cycle.
type PidProfileConfig struct {
	Roll  AxisGainsConfig  `json:"roll"`
	Pitch AxisGainsConfig  `json:"pitch"`
	Yaw   AxisGainsConfig  `json:"yaw"`
	Level LevelGainsConfig `json:"level"`

	// PTermCutHz and DTermCutHz are the low-pass cutoff frequencies for
	// the P and D terms, zero disables the respective filter.
	PTermCutHz uint8 `json:"ptermCutHz"`
	DTermCutHz uint8 `json:"dtermCutHz"`

	// HorizonSensitivity scales the float variant's horizon strength
	// curve, zero forces pure rate control.
	HorizonSensitivity uint8 `json:"horizonSensitivity"`
}

// ForAxis returns the gain triple of the given axis (0 roll, 1 pitch, 2 yaw).
func (c *PidProfileConfig) ForAxis(axis int) *AxisGainsConfig {
	switch axis {
	case 0:
		return &c.Roll
	case 1:
		return &c.Pitch
	default:
		return &c.Yaw
	}
}

var (
	DefaultAxisGains = AxisGainsConfig{
		P: 40, I: 30, D: 23,
		PF: 1.4, IF: 0.4, DF: 0.03,
	}
	DefaultYawGains = AxisGainsConfig{
		P: 85, I: 45, D: 0,
		PF: 3.5, IF: 0.4, DF: 0.01,
	}
	DefaultLevelGains = LevelGainsConfig{
		P: 90, I: 10, D: 100,
		PF: 5.0, IF: 3.0,
	}
)
