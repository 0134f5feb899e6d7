package wrappers_test

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gopomdp/environment/classiccontrol/mountaincar"
	"github.com/samuelfneumann/gopomdp/environment/heavenhell"
	"github.com/samuelfneumann/gopomdp/environment/pomdp"
	"github.com/samuelfneumann/gopomdp/environment/wrappers"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestNewTimeLimit(t *testing.T) {
	m, _, err := mountaincar.NewVelocity(mountaincar.DefaultParams(),
		mountaincar.DefaultDiscount, 10)
	if err != nil {
		t.Fatalf("newVelocity: %v", err)
	}

	cutoff := 200
	env, err := wrappers.NewTimeLimit(m, cutoff)
	if err != nil {
		t.Fatal(err)
	}

	for episode := 0; episode < 2; episode++ {
		if _, err := env.Reset(); err != nil {
			t.Errorf("reset: %v", err)
		}

		// No force never reaches a goal from rest
		done := false
		i := 0
		var step ts.TimeStep
		for !done {
			step, done, err = env.Step(mat.NewVecDense(1, []float64{0.0}))
			if err != nil {
				t.Fatalf("step: %v", err)
			}
			i++
		}
		if i != cutoff {
			t.Errorf("step: expected done == true when i == %v, got i == %v",
				cutoff, i)
		}
		if step.EndType() != ts.Timeout {
			t.Errorf("step: want end type %v, got %v", ts.Timeout,
				step.EndType())
		}
	}
}

func TestTimeLimitKeepsTermination(t *testing.T) {
	m, _, err := mountaincar.NewOptLower(mountaincar.DefaultParams(),
		mountaincar.DefaultDiscount, 0)
	if err != nil {
		t.Fatalf("newOptLower: %v", err)
	}

	env, err := wrappers.NewTimeLimit(m, 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	step, done, err := env.Step(mat.NewVecDense(1, []float64{1.0}))
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !done || step.EndType() != ts.TerminalStateReached {
		t.Errorf("step: want termination with end type %v, got done=%v %v",
			ts.TerminalStateReached, done, step.EndType())
	}
	if env.Steps() != 1 {
		t.Errorf("steps: want 1, got %v", env.Steps())
	}
}

func TestTimeLimitPassesErrors(t *testing.T) {
	o, err := heavenhell.New(pomdp.NewHeavenHell(pomdp.DefaultDiscount, 0), 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	env, err := wrappers.NewTimeLimit(o, 10)
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = env.Step(mat.NewVecDense(1, []float64{0}))
	if !errors.Is(err, heavenhell.ErrNotReady) {
		t.Errorf("step: want ErrNotReady, got %v", err)
	}
}

func TestTimeLimitIllegal(t *testing.T) {
	m, _, err := mountaincar.NewOptLower(mountaincar.DefaultParams(),
		mountaincar.DefaultDiscount, 0)
	if err != nil {
		t.Fatalf("newOptLower: %v", err)
	}

	if _, err := wrappers.NewTimeLimit(m, 0); err == nil {
		t.Error("newTimeLimit: expected error for non-positive limit")
	}
}
