package environment

import ts "github.com/samuelfneumann/gopomdp/timestep"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is timestep.Timeout. A
// timestep that already ended for another reason is left untouched.
func (s StepLimit) End(t *ts.TimeStep) bool {
	if t.Last() {
		return true
	}
	if t.Number >= s.episodeSteps {
		t.SetEnd(ts.Timeout)
		return true
	}
	return false
}

// Steps returns the step limit
func (s StepLimit) Steps() int {
	return s.episodeSteps
}
