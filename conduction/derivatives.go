package conduction

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-emg/internal/spectra"
)

// Derivatives returns the first and second derivative of the multichannel
// beamforming log-likelihood with respect to the delay teta, evaluated
// with the given row as the reference channel.
//
// Channels keep their array-geometry ordering: the channel at original
// index j is weighted by its signed position offset j-row relative to the
// reference. Only the positive-frequency half of each channel spectrum is
// evaluated, exploiting the conjugate symmetry of real signals.
//
// The second derivative may be zero or negative near inflection points of
// the likelihood; that is a valid result, not an error. The input matrix
// is never modified.
func Derivatives(sig [][]float64, row int, teta float64) (de1, de2 float64, err error) {
	if err := validateMatrix(sig); err != nil {
		return 0, 0, err
	}

	if row < 0 || row >= len(sig) {
		return 0, 0, fmt.Errorf("%w: reference row %d out of range [0,%d)", ErrShape, row, len(sig))
	}

	rows, err := spectra.Rows(sig)
	if err != nil {
		return 0, 0, err
	}

	de1, de2 = derivativesAt(rows, row, teta)

	return de1, de2, nil
}

// derivativesAt evaluates both derivatives from precomputed row spectra,
// so one set of DFTs can be shared across every reference choice and
// Newton iteration.
func derivativesAt(rows [][]complex128, row int, teta float64) (de1, de2 float64) {
	rtot := len(rows)
	m := float64(rtot - 1)
	cols := float64(len(rows[0]))
	half := spectra.HalfBins(len(rows[0]))

	for k := 1; k <= half; k++ {
		// cross-spectral terms between every unordered pair of
		// non-reference channels
		var pairIm, pairRe float64

		for i := 0; i < rtot; i++ {
			if i == row {
				continue
			}

			for u := i + 1; u < rtot; u++ {
				if u == row {
					continue
				}

				arg := 2 * math.Pi * float64(k) * float64(i-u) / cols
				cross := rows[i][k] * cmplx.Conj(rows[u][k]) * cmplx.Exp(complex(0, arg*teta))

				pairIm -= imag(cross) * arg
				pairRe -= real(cross) * arg * arg
			}
		}

		// cross-spectral terms between the reference channel and every
		// other channel
		var refAcc1, refAcc2 complex128

		for i := 0; i < rtot; i++ {
			if i == row {
				continue
			}

			arg := 2 * math.Pi * float64(k) * float64(i-row) / cols
			phase := cmplx.Exp(complex(0, arg*teta))

			refAcc1 += rows[i][k] * phase * complex(arg, 0)
			refAcc2 += rows[i][k] * phase * complex(arg*arg, 0)
		}

		conjRef := cmplx.Conj(rows[row][k])

		de1 += pairIm*2/(m*m) + 2*imag(conjRef*refAcc1)/m
		de2 += pairRe*2/(m*m) + 2*real(conjRef*refAcc2)/m
	}

	de1 *= 2 / cols
	de2 *= 2 / cols

	return de1, de2
}
