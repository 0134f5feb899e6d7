package environment_test

import (
	"testing"

	"github.com/samuelfneumann/gopomdp/environment"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestSpecContains(t *testing.T) {
	spec := environment.NewBoxSpec(2, environment.Observation, -1, 1,
		environment.Continuous)

	tests := []struct {
		v    *mat.VecDense
		want bool
	}{
		{mat.NewVecDense(2, []float64{0, 0}), true},
		{mat.NewVecDense(2, []float64{-1, 1}), true},
		{mat.NewVecDense(2, []float64{-1.1, 0}), false},
		{mat.NewVecDense(2, []float64{0, 1.1}), false},
		{mat.NewVecDense(3, nil), false},
	}

	for _, test := range tests {
		if got := spec.Contains(test.v); got != test.want {
			t.Errorf("contains(%v): want %v, got %v", test.v.RawVector().Data,
				test.want, got)
		}
	}
}

func TestNewSpecMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newSpec: expected panic for mismatched bounds")
		}
	}()

	environment.NewSpec(mat.NewVecDense(2, nil), environment.Action,
		mat.NewVecDense(1, nil), mat.NewVecDense(2, nil),
		environment.Continuous)
}

func TestUniformStarter(t *testing.T) {
	bounds := []r1.Interval{{Min: -0.2, Max: 0.2}, {Min: 3, Max: 4}}
	src := rand.NewSource(1)
	s := environment.NewUniformStarter(bounds, src)

	for i := 0; i < 100; i++ {
		start := s.Start()
		for j, b := range bounds {
			if v := start.AtVec(j); v < b.Min || v > b.Max {
				t.Errorf("start: dimension %v: %v ∉ [%v, %v]", j, v, b.Min,
					b.Max)
			}
		}
	}

	// Reseeding the source reproduces the samples
	src.Seed(5)
	first := s.Start().AtVec(0)
	src.Seed(5)
	if second := s.Start().AtVec(0); first != second {
		t.Errorf("start: want %v after reseeding, got %v", first, second)
	}
}

func TestCategoricalStarter(t *testing.T) {
	s := environment.NewCategoricalStarter([]int{2, 5}, rand.NewSource(2))

	for i := 0; i < 100; i++ {
		start := s.Start()
		if v := start.AtVec(0); v != 0 && v != 1 {
			t.Errorf("start: %v ∉ {0, 1}", v)
		}
		if v := start.AtVec(1); v < 0 || v > 4 || v != float64(int(v)) {
			t.Errorf("start: %v ∉ {0, ..., 4}", v)
		}
	}
}

func TestWeightedStarter(t *testing.T) {
	weights := []float64{0, 0, 1, 0}
	s := environment.NewWeightedStarter([][]float64{weights}, rand.NewSource(3))

	for i := 0; i < 20; i++ {
		if v := s.Start().AtVec(0); v != 2 {
			t.Errorf("start: want 2, got %v", v)
		}
	}
}

func TestStepLimit(t *testing.T) {
	limit := environment.NewStepLimit(3)

	step := ts.New(ts.Mid, 0, 1, nil, 2)
	if limit.End(&step) {
		t.Error("end: episode should not end before the limit")
	}

	step = ts.New(ts.Mid, 0, 1, nil, 3)
	if !limit.End(&step) || step.EndType() != ts.Timeout {
		t.Errorf("end: want timeout at the limit, got %v", step.EndType())
	}

	step = ts.New(ts.Mid, 0, 1, nil, 1)
	step.SetEnd(ts.TerminalStateReached)
	if !limit.End(&step) || step.EndType() != ts.TerminalStateReached {
		t.Errorf("end: terminal step should keep its end type, got %v",
			step.EndType())
	}
}

func TestFunctionEnder(t *testing.T) {
	ender := environment.NewFunctionEnder(func(step *ts.TimeStep) bool {
		return step.Reward > 0
	}, ts.TerminalStateReached)

	step := ts.New(ts.Mid, 0, 1, nil, 1)
	if ender.End(&step) || step.Last() {
		t.Error("end: episode should not end")
	}

	step = ts.New(ts.Mid, 1, 1, nil, 1)
	if !ender.End(&step) || !step.Last() ||
		step.EndType() != ts.TerminalStateReached {
		t.Error("end: episode should end with a terminal state")
	}
}
