package matutils_test

import (
	"strings"
	"testing"

	"github.com/samuelfneumann/gopomdp/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

func TestMaxVec(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{1}, 0},
		{[]float64{0, 0, 1, 0}, 2},
		{[]float64{-1, -1, -1}, 0},
		{[]float64{3, 5, 5, 1}, 1},
	}

	for _, test := range tests {
		v := mat.NewVecDense(len(test.values), test.values)
		if got := matutils.MaxVec(v); got != test.want {
			t.Errorf("maxVec(%v): want %v, got %v", test.values, test.want,
				got)
		}
	}
}

func TestVecFill(t *testing.T) {
	v := matutils.VecFill(4, -1)
	if v.Len() != 4 {
		t.Fatalf("vecFill: want length 4, got %v", v.Len())
	}
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != -1 {
			t.Errorf("vecFill: want -1 at %v, got %v", i, v.AtVec(i))
		}
	}
}

func TestFormat(t *testing.T) {
	s := matutils.Format(mat.NewVecDense(2, []float64{1, 2}))
	if !strings.Contains(s, "1") || !strings.Contains(s, "2") {
		t.Errorf("format: unexpected output %q", s)
	}
}
