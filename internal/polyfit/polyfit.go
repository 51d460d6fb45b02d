// Package polyfit provides the small least-squares helpers used by the
// sub-sample peak refinement.
package polyfit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Quadratic fits y = a*x^2 + b*x + c in the least-squares sense.
// At least three points are required.
func Quadratic(x, y []float64) (a, b, c float64, err error) {
	if len(x) != len(y) {
		return 0, 0, 0, fmt.Errorf("polyfit: x/y length mismatch: %d != %d", len(x), len(y))
	}

	if len(x) < 3 {
		return 0, 0, 0, fmt.Errorf("polyfit: quadratic fit requires at least 3 points, got %d", len(x))
	}

	vand := mat.NewDense(len(x), 3, nil)
	for i, xi := range x {
		vand.Set(i, 0, xi*xi)
		vand.Set(i, 1, xi)
		vand.Set(i, 2, 1)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(vand, mat.NewVecDense(len(y), y)); err != nil {
		return 0, 0, 0, fmt.Errorf("polyfit: quadratic fit failed: %w", err)
	}

	return coef.AtVec(0), coef.AtVec(1), coef.AtVec(2), nil
}

// Vertex fits a quadratic through the points and returns the abscissa of
// its extremum, -b/(2a).
func Vertex(x, y []float64) (float64, error) {
	a, b, _, err := Quadratic(x, y)
	if err != nil {
		return 0, err
	}

	if a == 0 {
		return 0, fmt.Errorf("polyfit: degenerate quadratic has no vertex")
	}

	return -b / (2 * a), nil
}
