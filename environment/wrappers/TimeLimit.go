// Package wrappers provides environment wrappers which alter the
// behaviour of an environment without changing its dynamics
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gopomdp/environment"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"gonum.org/v1/gonum/mat"
)

// TimeLimit wraps an environment and ends episodes after a fixed
// number of steps. Episodes which end this way have end type
// timestep.Timeout. Episodes which the wrapped environment ends before
// the limit keep their own end type.
//
// TimeLimit itself implements the environment.Environment interface,
// and is therefore itself an Environment.
type TimeLimit struct {
	environment.Environment
	limit environment.StepLimit
	steps int
}

// NewTimeLimit returns a new TimeLimit ending episodes of env after
// episodeSteps steps
func NewTimeLimit(env environment.Environment,
	episodeSteps int) (*TimeLimit, error) {
	if episodeSteps < 1 {
		return nil, fmt.Errorf("newTimeLimit: episode steps must be "+
			"positive, got %v", episodeSteps)
	}

	return &TimeLimit{
		Environment: env,
		limit:       environment.NewStepLimit(episodeSteps),
	}, nil
}

// Reset resets the wrapped environment and the step counter
func (t *TimeLimit) Reset() (ts.TimeStep, error) {
	t.steps = 0
	return t.Environment.Reset()
}

// Step takes one step in the wrapped environment, ending the episode
// if the step limit is reached
func (t *TimeLimit) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	step, _, err := t.Environment.Step(a)
	if err != nil {
		return step, true, err
	}
	t.steps++

	// The step limit counts steps since the last Reset, which may differ
	// from the wrapped environment's own step numbering
	number := step.Number
	step.Number = t.steps
	last := t.limit.End(&step)
	step.Number = number

	return step, last, nil
}

// Steps returns the number of steps taken since the last Reset
func (t *TimeLimit) Steps() int {
	return t.steps
}

// Limit returns the maximum number of steps per episode
func (t *TimeLimit) Limit() int {
	return t.limit.Steps()
}

// Unwrap returns the wrapped environment
func (t *TimeLimit) Unwrap() environment.Environment {
	return t.Environment
}
