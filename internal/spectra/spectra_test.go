package spectra

import (
	"math"
	"math/cmplx"
	"testing"
)

// naiveDFT is the O(n^2) reference transform.
func naiveDFT(row []float64) []complex128 {
	n := len(row)

	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for t, v := range row {
			sum += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*float64(k)*float64(t)/float64(n)))
		}

		out[k] = sum
	}

	return out
}

func signalRows(cols int) [][]float64 {
	sig := make([][]float64, 3)
	for r := range sig {
		sig[r] = make([]float64, cols)
		for t := range sig[r] {
			sig[r][t] = math.Sin(0.3*float64(t)+float64(r)) + 0.5*math.Cos(0.7*float64(t))
		}
	}

	return sig
}

func TestRowsMatchesNaiveDFT(t *testing.T) {
	// 32 takes the planned power-of-two path, 29 the arbitrary-size path
	for _, cols := range []int{29, 32} {
		sig := signalRows(cols)

		rows, err := Rows(sig)
		if err != nil {
			t.Fatalf("Rows(cols=%d) error: %v", cols, err)
		}

		if len(rows) != len(sig) {
			t.Fatalf("row count mismatch: %d != %d", len(rows), len(sig))
		}

		for r := range sig {
			want := naiveDFT(sig[r])

			if len(rows[r]) != cols {
				t.Fatalf("cols=%d row %d: transform length %d", cols, r, len(rows[r]))
			}

			for k := range want {
				if cmplx.Abs(rows[r][k]-want[k]) > 1e-9 {
					t.Fatalf("cols=%d row=%d bin=%d: got %v want %v", cols, r, k, rows[r][k], want[k])
				}
			}
		}
	}
}

func TestRowsDoesNotMutateInput(t *testing.T) {
	sig := signalRows(29)

	orig := make([][]float64, len(sig))
	for i, row := range sig {
		orig[i] = append([]float64(nil), row...)
	}

	if _, err := Rows(sig); err != nil {
		t.Fatalf("Rows error: %v", err)
	}

	for i := range sig {
		for j := range sig[i] {
			if sig[i][j] != orig[i][j] {
				t.Fatalf("input modified at [%d][%d]", i, j)
			}
		}
	}
}

func TestRowsErrors(t *testing.T) {
	if _, err := Rows(nil); err == nil {
		t.Fatalf("expected error for empty matrix")
	}

	if _, err := Rows([][]float64{{}}); err == nil {
		t.Fatalf("expected error for empty channel")
	}

	if _, err := Rows([][]float64{{1, 2, 3}, {1, 2}}); err == nil {
		t.Fatalf("expected error for ragged matrix")
	}
}

func TestHalfBins(t *testing.T) {
	tests := []struct {
		c    int
		want int
	}{
		{3, 2},
		{4, 2},
		{5, 2},
		{29, 14},
		{30, 15},
		{31, 16},
		{32, 16},
	}

	for _, tt := range tests {
		if got := HalfBins(tt.c); got != tt.want {
			t.Errorf("HalfBins(%d)=%d want %d", tt.c, got, tt.want)
		}
	}
}
