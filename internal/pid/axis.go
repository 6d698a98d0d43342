package pid

// Axis identifies one rotational degree of freedom of the craft.
// Per-axis arrays throughout this package are indexed by it, and the
// controllers always process axes in Roll, Pitch, Yaw order. Roll and
// Pitch are subject to angle-limited control, Yaw never is.
type Axis int

const (
	Roll Axis = iota
	Pitch
	Yaw

	// AxisCount is the number of controlled axes.
	AxisCount = 3
)

func (a Axis) String() string {
	switch a {
	case Roll:
		return "roll"
	case Pitch:
		return "pitch"
	case Yaw:
		return "yaw"
	}
	return "unknown"
}
