package pid

import "math"

// Pt1Filter is a single-pole IIR low-pass filter with explicit per-instance
// state. Each (axis, term) pair owns its own instance; instances are never
// shared across axes or between the P and D roles.
type Pt1Filter struct {
	state float64
	rc    float64
}

// Apply advances the filter by one sample and returns the filtered value.
// The filter time constant is derived from cutHz on first use and kept for
// the lifetime of the instance. dt is the sample interval in seconds.
func (f *Pt1Filter) Apply(input float64, cutHz uint8, dt float64) float64 {
	if f.rc == 0 {
		f.rc = 1.0 / (2.0 * math.Pi * float64(cutHz))
	}
	f.state = f.state + dt/(f.rc+dt)*(input-f.state)
	return f.state
}
