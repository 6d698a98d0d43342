package pid

// State holds every per-axis value that must survive across control cycles:
// the integral accumulators of both numeric variants, the last rate error and
// the two most recent derivative samples (again per variant, since their
// units differ), and the low-pass filter state for the P and D terms.
//
// The filter instances are shared between the two controller variants because
// filtering is float arithmetic in both; the error and derivative histories
// are kept separately per variant so that their fixed-point and real-valued
// scaling never mix.
type State struct {
	errorGyroI  [AxisCount]int32
	errorGyroIf [AxisCount]float64

	lastError  [AxisCount]int32
	lastErrorf [AxisCount]float64

	delta1  [AxisCount]int32
	delta2  [AxisCount]int32
	delta1f [AxisCount]float64
	delta2f [AxisCount]float64

	ptermFilter [AxisCount]Pt1Filter
	dtermFilter [AxisCount]Pt1Filter
}

// NewState creates a fresh all-zero controller state.
func NewState() *State {
	return &State{}
}

// ResetIntegrators zeroes both numeric representations of every axis's
// integral accumulator. Derivative history and filter state are deliberately
// left untouched, so the D term keeps smoothing across arm/disarm
// transitions. The operation is idempotent.
func (s *State) ResetIntegrators() {
	for axis := 0; axis < AxisCount; axis++ {
		s.errorGyroI[axis] = 0
		s.errorGyroIf[axis] = 0
	}
}
