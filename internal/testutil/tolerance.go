package testutil

import "math"

// Near reports whether got is within eps of want (absolute tolerance).
func Near(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps
}

// RelNear reports whether got is within eps of want relative to |want|.
func RelNear(got, want, eps float64) bool {
	return math.Abs(got-want) <= eps*math.Abs(want)
}
