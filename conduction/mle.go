package conduction

import (
	"math"

	"github.com/cwbudde/algo-emg/internal/spectra"
)

const (
	// tolerance is the convergence criterion on consecutive delay
	// iterates, in samples.
	tolerance = 5e-5

	// maxTrials caps the Newton-Raphson loop; the last iterate is
	// returned even when the tolerance was never met.
	maxTrials = 30

	// maxStep clamps the Newton step, in samples.
	maxStep = 0.5
)

// Result holds the outcome of one maximum-likelihood estimation.
type Result struct {
	// CV is the estimated conduction velocity in m/s.
	CV float64

	// Delay is the final inter-channel delay estimate in samples.
	Delay float64

	// Converged reports whether consecutive iterates came within the
	// convergence tolerance before the trial cap. When false, Delay and
	// CV hold the last iterate and should be treated with suspicion.
	Converged bool

	// Trials is the number of Newton iterations performed.
	Trials int

	// Residual is the final difference between consecutive delay
	// iterates, in samples.
	Residual float64
}

// Optimize refines an initial delay estimate via damped Newton-Raphson on
// the multichannel beamforming log-likelihood and converts the result to a
// conduction velocity.
//
// Each channel serves once as reference per iteration and the derivative
// contributions are summed; machine epsilon is added to each accumulator
// so exactly-zero denominators cannot occur. When the curvature is not
// positive the step falls back to half a sample against the gradient
// sign; a flat non-convex point keeps the iterate in place and reports
// convergence. Channel spectra are computed once per call and reused
// across references and iterations.
//
// ied is the inter-electrode distance in millimetres, fsamp the sampling
// frequency in Hz.
func (e *Estimator) Optimize(sig [][]float64, initialTeta, ied, fsamp float64) (Result, error) {
	if err := validateMatrix(sig); err != nil {
		return Result{}, err
	}

	if err := validateGeometry(ied, fsamp); err != nil {
		return Result{}, err
	}

	rows, err := spectra.Rows(sig)
	if err != nil {
		return Result{}, err
	}

	eps := math.Nextafter(1, 2) - 1

	t := initialTeta
	teta := 10.0 // sentinel, forces at least one iteration for any plausible seed
	trial := 0
	residual := math.Abs(teta - t)

	for residual >= tolerance && trial < maxTrials {
		trial++
		teta = t

		var de1, de2 float64

		for row := range rows {
			d1, d2 := derivativesAt(rows, row, teta)
			de1 += d1 + eps
			de2 += d2 + eps
		}

		var u float64

		switch {
		case de2 > 0:
			u = -de1 / de2
			if math.Abs(u) > maxStep {
				u = -math.Copysign(maxStep, de1)
			}
		case de1 != 0:
			u = -math.Copysign(maxStep, de1)
		default:
			// flat and non-convex: nowhere to go, stay put
			u = 0
		}

		t = teta + u
		residual = math.Abs(teta - t)
	}

	return Result{
		CV:        ied / 1000 / (teta / fsamp),
		Delay:     teta,
		Converged: residual < tolerance,
		Trials:    trial,
		Residual:  residual,
	}, nil
}

// Optimize is the one-shot variant of [Estimator.Optimize] using the
// default configuration.
func Optimize(sig [][]float64, initialTeta, ied, fsamp float64) (Result, error) {
	return NewEstimator(DefaultConfig()).Optimize(sig, initialTeta, ied, fsamp)
}

// Estimate runs the full estimation: it seeds the delay from a channel
// pair near the middle of the array (channels 1 and 2 when more than
// three channels are available, channels 0 and 1 otherwise) and refines
// it with [Estimator.Optimize]. The reported velocity is non-negative.
func (e *Estimator) Estimate(sig [][]float64, ied, fsamp float64) (Result, error) {
	if err := validateMatrix(sig); err != nil {
		return Result{}, err
	}

	sig1, sig2 := sig[0], sig[1]
	if len(sig) > 3 {
		sig1, sig2 = sig[1], sig[2]
	}

	seed, err := e.SeedDelay(sig1, sig2, ied, fsamp)
	if err != nil {
		return Result{}, err
	}

	res, err := e.Optimize(sig, seed, ied, fsamp)
	if err != nil {
		return Result{}, err
	}

	res.CV = math.Abs(res.CV)

	return res, nil
}

// Estimate is the one-shot variant of [Estimator.Estimate] using the
// default configuration.
func Estimate(sig [][]float64, ied, fsamp float64) (Result, error) {
	return NewEstimator(DefaultConfig()).Estimate(sig, ied, fsamp)
}
