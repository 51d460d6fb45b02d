// Package testutil provides deterministic signal fixtures shared by the
// estimator tests.
package testutil

import "math"

// LCGValues returns n deterministic samples in [-1, 1] from a small linear
// congruential generator. Fixtures built from these sequences can be
// reproduced exactly by the reference computation that pins golden values.
func LCGValues(seed int64, n int) []float64 {
	out := make([]float64, n)

	x := seed
	for i := range out {
		x = (1103515245*x + 12345) & 0x7FFFFFFF
		out[i] = float64(x%2001-1000) / 1000
	}

	return out
}

// Pulse returns a biphasic waveform of the given length centered at center,
// shaped like the first derivative of a Gaussian.
func Pulse(length int, center float64) []float64 {
	out := make([]float64, length)
	for t := range out {
		d := float64(t) - center
		out[t] = d * math.Exp(-d*d/18)
	}

	return out
}

// DelayedPulseMatrix builds channels holding the same biphasic pulse, each
// row delayed by shift samples relative to the previous one.
func DelayedPulseMatrix(rows, cols int, shift, center float64) [][]float64 {
	sig := make([][]float64, rows)
	for r := range sig {
		sig[r] = Pulse(cols, center+shift*float64(r))
	}

	return sig
}

// CloneMatrix returns a deep copy of sig.
func CloneMatrix(sig [][]float64) [][]float64 {
	out := make([][]float64, len(sig))
	for i, row := range sig {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// MatricesEqual reports exact element-wise equality.
func MatricesEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}

		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
