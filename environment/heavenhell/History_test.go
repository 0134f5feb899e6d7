package heavenhell_test

import (
	"testing"

	"github.com/samuelfneumann/gopomdp/environment/heavenhell"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestHistoryEviction(t *testing.T) {
	h := heavenhell.NewHistory(3, 2)
	h.Reset(mat.NewVecDense(2, []float64{0, 0}))

	if h.Len() != 3 {
		t.Fatalf("reset: want length 3, got %v", h.Len())
	}
	want := []float64{-1, -1, -1, -1, 0, 0}
	if got := h.Flatten().RawVector().Data; !floats.Equal(got, want) {
		t.Errorf("reset: want %v, got %v", want, got)
	}

	for i := 1; i <= 4; i++ {
		h.Push(mat.NewVecDense(2, []float64{float64(i), float64(i)}))
		if h.Len() > h.Cap() {
			t.Errorf("push: length %v exceeds capacity %v", h.Len(), h.Cap())
		}
	}

	want = []float64{2, 2, 3, 3, 4, 4}
	if got := h.Flatten().RawVector().Data; !floats.Equal(got, want) {
		t.Errorf("push: want %v, got %v", want, got)
	}
}

func TestHistorySingleFrame(t *testing.T) {
	h := heavenhell.NewHistory(1, 2)
	h.Reset(mat.NewVecDense(2, []float64{1, 0}))
	h.Push(mat.NewVecDense(2, []float64{0, 1}))

	want := []float64{0, 1}
	if got := h.Flatten().RawVector().Data; !floats.Equal(got, want) {
		t.Errorf("push: want %v, got %v", want, got)
	}
}
