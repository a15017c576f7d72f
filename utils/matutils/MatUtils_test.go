package matutils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMaxRow(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		0, 0, 0, 0,
		-1, 2, 2, 1,
		-3, -2, -5, -2,
	})

	for i, want := range []int{0, 1, 1} {
		if got := MaxRow(m, i); got != want {
			t.Errorf("row %d: want %d, have %d", i, want, got)
		}
	}
}
