package conduction

import (
	"errors"
	"fmt"
)

const (
	defaultMinCV = 1.0  // m/s
	defaultMaxCV = 10.0 // m/s
)

// Validation errors.
var (
	ErrShape    = errors.New("conduction: invalid signal shape")
	ErrGeometry = errors.New("conduction: invalid electrode geometry")
)

// Config holds the conduction-velocity search range that bounds the coarse
// delay scan.
type Config struct {
	// MinCV and MaxCV bound plausible conduction velocities in m/s.
	// The defaults of 1 and 10 m/s are slightly wider than the
	// physiological range of muscle fibers.
	MinCV float64
	MaxCV float64
}

// DefaultConfig returns the default search range.
func DefaultConfig() Config {
	return Config{
		MinCV: defaultMinCV,
		MaxCV: defaultMaxCV,
	}
}

// Estimator estimates muscle-fiber conduction velocity from a matrix of
// time-aligned, differentiated channel waveforms.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator with the given search range.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: normalizeConfig(cfg)}
}

func normalizeConfig(cfg Config) Config {
	if cfg.MinCV <= 0 {
		cfg.MinCV = defaultMinCV
	}

	if cfg.MaxCV <= 0 {
		cfg.MaxCV = defaultMaxCV
	}

	if cfg.MaxCV < cfg.MinCV {
		cfg.MinCV, cfg.MaxCV = cfg.MaxCV, cfg.MinCV
	}

	return cfg
}

// validateMatrix checks the invariants every matrix-consuming operation
// relies on: at least two channels, at least three samples per channel,
// all rows of equal length.
func validateMatrix(sig [][]float64) error {
	if len(sig) < 2 {
		return fmt.Errorf("%w: need at least 2 channels, got %d", ErrShape, len(sig))
	}

	cols := len(sig[0])
	if cols < 3 {
		return fmt.Errorf("%w: channels must have at least 3 samples, got %d", ErrShape, cols)
	}

	for i, row := range sig {
		if len(row) != cols {
			return fmt.Errorf("%w: channel %d has %d samples, want %d", ErrShape, i, len(row), cols)
		}
	}

	return nil
}

func validateGeometry(ied, fsamp float64) error {
	if ied <= 0 {
		return fmt.Errorf("%w: inter-electrode distance must be positive, got %g mm", ErrGeometry, ied)
	}

	if fsamp <= 0 {
		return fmt.Errorf("%w: sampling frequency must be positive, got %g Hz", ErrGeometry, fsamp)
	}

	return nil
}
