// Package spectra computes per-channel discrete Fourier transforms for the
// beamforming likelihood.
//
// The likelihood phase terms are defined on a DFT of exactly the channel
// length, so signals are never zero-padded here. Power-of-two lengths go
// through a planned FFT; every other length falls back to an
// arbitrary-size FFT backend.
package spectra

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// Rows returns the DFT of every row of sig, each transform sized to the
// exact row length. The input is not modified.
func Rows(sig [][]float64) ([][]complex128, error) {
	if len(sig) == 0 {
		return nil, fmt.Errorf("spectra: empty signal matrix")
	}

	cols := len(sig[0])
	if cols == 0 {
		return nil, fmt.Errorf("spectra: empty channel")
	}

	out := make([][]complex128, len(sig))

	var plan *algofft.Plan[complex128]
	if isPowerOf2(cols) {
		p, err := algofft.NewPlan64(cols)
		if err != nil {
			return nil, fmt.Errorf("spectra: failed to create FFT plan: %w", err)
		}

		plan = p
	}

	for r, row := range sig {
		if len(row) != cols {
			return nil, fmt.Errorf("spectra: row %d has %d samples, want %d", r, len(row), cols)
		}

		in := make([]complex128, cols)
		for i, v := range row {
			in[i] = complex(v, 0)
		}

		if plan != nil {
			dst := make([]complex128, cols)
			if err := plan.Forward(dst, in); err != nil {
				return nil, fmt.Errorf("spectra: forward FFT failed: %w", err)
			}

			out[r] = dst

			continue
		}

		out[r] = fft.FFT(in)
	}

	return out, nil
}

// HalfBins returns the number of positive-frequency bins the likelihood
// derivatives evaluate for a channel of length c. Half-to-even rounding
// keeps odd and even lengths consistent with the reference computation.
func HalfBins(c int) int {
	return int(math.RoundToEven(float64(c) / 2))
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
