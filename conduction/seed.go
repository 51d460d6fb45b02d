package conduction

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-emg/internal/polyfit"
	"github.com/cwbudde/algo-vecmath"
)

// SeedDelay returns an initial estimate of the propagation delay between
// two channels, in samples.
//
// Integer lags are scanned over the delay range implied by the configured
// conduction-velocity bounds, scoring each lag with the truncated
// dot-product correlation of the overlapping samples. An interior peak is
// refined to sub-sample resolution with a parabolic fit through the three
// correlation values around it; a peak on either range boundary is
// returned as the integer lag. Ties pick the smallest lag.
//
// ied is the inter-electrode distance in millimetres, fsamp the sampling
// frequency in Hz.
func (e *Estimator) SeedDelay(sig1, sig2 []float64, ied, fsamp float64) (float64, error) {
	if len(sig1) == 0 || len(sig2) == 0 {
		return 0, fmt.Errorf("%w: seed signals must be non-empty", ErrShape)
	}

	if len(sig1) != len(sig2) {
		return 0, fmt.Errorf("%w: seed signals differ in length: %d != %d", ErrShape, len(sig1), len(sig2))
	}

	if err := validateGeometry(ied, fsamp); err != nil {
		return 0, err
	}

	iedM := ied / 1000
	tetaMin := int(math.Floor(iedM / e.cfg.MaxCV * fsamp))
	tetaMax := int(math.Ceil(iedM / e.cfg.MinCV * fsamp))

	n := len(sig1)
	corr := make([]float64, tetaMax-tetaMin+1)
	prod := make([]float64, n)

	for i := range corr {
		lag := tetaMin + i
		if lag >= n {
			// no overlap left, correlation stays zero
			continue
		}

		overlap := prod[:n-lag]
		vecmath.MulBlock(overlap, sig1[:n-lag], sig2[lag:])

		sum := 0.0
		for _, v := range overlap {
			sum += v
		}

		corr[i] = sum
	}

	best := 0
	for i := 1; i < len(corr); i++ {
		if corr[i] > corr[best] {
			best = i
		}
	}

	lag := tetaMin + best
	if best == 0 || best == len(corr)-1 {
		return float64(lag), nil
	}

	x := []float64{float64(lag - 1), float64(lag), float64(lag + 1)}

	vertex, err := polyfit.Vertex(x, corr[best-1:best+2])
	if err != nil {
		// flat neighborhood around the peak, keep the integer lag
		return float64(lag), nil
	}

	return vertex, nil
}

// SeedDelay is the one-shot variant of [Estimator.SeedDelay] using the
// default conduction-velocity search range.
func SeedDelay(sig1, sig2 []float64, ied, fsamp float64) (float64, error) {
	return NewEstimator(DefaultConfig()).SeedDelay(sig1, sig2, ied, fsamp)
}
