package conduction

import "github.com/cwbudde/algo-emg/internal/testutil"

// fixture5x30 is five independent pseudo-random channels of 30 samples.
// The golden values in these tests were produced by the reference
// computation on exactly this matrix.
func fixture5x30() [][]float64 {
	flat := testutil.LCGValues(1, 150)

	sig := make([][]float64, 5)
	for r := range sig {
		sig[r] = flat[r*30 : (r+1)*30]
	}

	return sig
}

// fixture5x29 slices five 29-sample windows out of one pseudo-random
// waveform, each channel delayed two samples relative to the previous one.
func fixture5x29() [][]float64 {
	base := testutil.LCGValues(7, 37)

	sig := make([][]float64, 5)
	for r := range sig {
		sig[r] = base[8-2*r : 8-2*r+29]
	}

	return sig
}
