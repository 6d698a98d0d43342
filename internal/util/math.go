package util

// Constrain clamps value to the closed range [min, max].
func Constrain(value int32, min int32, max int32) int32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Constrainf clamps value to the closed range [min, max].
func Constrainf(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Coerce returns a value that is within the given bounds.
func Coerce(value float64, min float64, max float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// Abs returns the absolute value of value.
func Abs(value int32) int32 {
	if value < 0 {
		return -value
	}
	return value
}

// Min returns the smaller of a and b.
func Min(a int32, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Avg calculates the average of all values in the given array
func Avg(values []float64) float64 {
	sum := 0.0
	for i := 0; i < len(values); i++ {
		sum += values[i]
	}
	return sum / (float64(len(values)))
}
