package environment

import ts "github.com/samuelfneumann/gopomdp/timestep"

// FunctionEnder ends an episode whenever a function of a timestep
// returns true.
type FunctionEnder struct {
	end     func(*ts.TimeStep) bool
	endType ts.EndType
}

// NewFunctionEnder returns a new FunctionEnder which ends episodes with
// end type endType when f returns true.
func NewFunctionEnder(f func(*ts.TimeStep) bool, endType ts.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is the appropriate ending
// type.
func (f *FunctionEnder) End(t *ts.TimeStep) bool {
	if f.end(t) {
		t.SetEnd(f.endType)
		return true
	}
	return false
}
