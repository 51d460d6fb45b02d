package conduction

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-emg/internal/testutil"
)

func TestDerivativesGolden(t *testing.T) {
	sig := fixture5x30()

	de1, de2, err := Derivatives(sig, 0, 1)
	if err != nil {
		t.Fatalf("Derivatives error: %v", err)
	}

	if !testutil.Near(de1, 1.709745695271, 1e-6) {
		t.Fatalf("de1=%.12f want 1.709745695271", de1)
	}

	if !testutil.Near(de2, -76.717072595298, 1e-6) {
		t.Fatalf("de2=%.12f want -76.717072595298", de2)
	}
}

func TestDerivativesGoldenInteriorReference(t *testing.T) {
	sig := fixture5x30()

	de1, de2, err := Derivatives(sig, 2, 1.5)
	if err != nil {
		t.Fatalf("Derivatives error: %v", err)
	}

	if !testutil.Near(de1, 7.370139375818, 1e-6) {
		t.Fatalf("de1=%.12f want 7.370139375818", de1)
	}

	if !testutil.Near(de2, 33.557035205909, 1e-6) {
		t.Fatalf("de2=%.12f want 33.557035205909", de2)
	}
}

func TestDerivativesNonPositiveCurvatureIsValid(t *testing.T) {
	// the golden fixture has de2 < 0 at teta=1 with row 0 as reference;
	// that must come back as a plain value, not an error
	_, de2, err := Derivatives(fixture5x30(), 0, 1)
	if err != nil {
		t.Fatalf("Derivatives error: %v", err)
	}

	if de2 >= 0 {
		t.Fatalf("expected negative curvature on this fixture, got %f", de2)
	}
}

func TestDerivativesDoesNotMutateInput(t *testing.T) {
	sig := fixture5x30()
	orig := testutil.CloneMatrix(sig)

	for row := range sig {
		if _, _, err := Derivatives(sig, row, 1.2); err != nil {
			t.Fatalf("Derivatives row=%d error: %v", row, err)
		}
	}

	if !testutil.MatricesEqual(sig, orig) {
		t.Fatalf("input matrix was modified")
	}
}

func TestDerivativesShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		sig  [][]float64
		row  int
	}{
		{"single channel", [][]float64{{1, 2, 3}}, 0},
		{"short rows", [][]float64{{1, 2}, {3, 4}}, 0},
		{"ragged", [][]float64{{1, 2, 3}, {4, 5}}, 0},
		{"row negative", [][]float64{{1, 2, 3}, {4, 5, 6}}, -1},
		{"row out of range", [][]float64{{1, 2, 3}, {4, 5, 6}}, 2},
	}

	for _, tt := range tests {
		_, _, err := Derivatives(tt.sig, tt.row, 1)
		if err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}

		if !errors.Is(err, ErrShape) {
			t.Fatalf("%s: error %v does not wrap ErrShape", tt.name, err)
		}
	}
}
