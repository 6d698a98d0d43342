package configuration

// SimulationConfig tunes the bench craft model that feeds the control loop
// when no real sensor source is attached.
type SimulationConfig struct {
	// ResponseGain converts mixer output into angular acceleration,
	// deg/s^2 per output unit.
	ResponseGain float64 `json:"responseGain"`
	// Damping is the first-order decay applied to the body rates, 1/s.
	Damping float64 `json:"damping"`
}
