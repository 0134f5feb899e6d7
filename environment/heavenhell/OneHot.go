// Package heavenhell implements the location-signal version of the
// Heaven-Hell POMDP with one-hot observations.
//
// Each observation frame consists of two one-hot segments: the agent's
// location in the maze (LocationSize slots) and the signal given by the
// priest (SignalSize slots). Observations returned to the agent are the
// most recent frames concatenated, oldest first.
package heavenhell

import (
	"errors"
	"fmt"
	"math"

	env "github.com/samuelfneumann/gopomdp/environment"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"github.com/samuelfneumann/gopomdp/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

const (
	LocationSize int = 10
	SignalSize   int = 3
	FrameSize    int = LocationSize + SignalSize

	// States in which the priest reveals where heaven is
	HeavenLeftPriest  int = 9
	HeavenRightPriest int = 19

	// Signals
	HeavenLeft  int = 0
	HeavenRight int = 1
	NoSignal    int = 2

	DefaultMemory int = 1
)

// ErrNotReady is returned by Step when the environment was not reset
// since construction or since the last episode ended
var ErrNotReady = errors.New("not ready yet / episode terminated, " +
	"please reset")

// Model is a discrete POMDP stepped functionally, with the state owned
// by the caller
type Model interface {
	ResetFunctional() int
	StepFunctional(state, action int) (next, obs int, reward float64,
		done bool, err error)
	Actions() int
	Discount() float64
	Seed(seed uint64)
}

// OneHot wraps a Heaven-Hell Model, converting its integer states into
// one-hot location and signal frames and returning the last memory
// frames as the observation.
//
// An episode ends exactly when the Model gives a reward of +1 or -1,
// that is when heaven or hell is reached. OneHot must be Reset before
// the first Step and after every episode.
//
// OneHot implements the environment.Environment interface.
type OneHot struct {
	model  Model
	memory int

	history  *History
	state    int
	ready    bool
	ender    env.Ender
	lastStep ts.TimeStep
}

// New returns a new OneHot environment over model, remembering the
// last memory frames. The returned environment must be Reset before
// use.
func New(model Model, memory int) (*OneHot, error) {
	if memory < 1 {
		return nil, fmt.Errorf("new: memory must be positive, got %v", memory)
	}

	ender := env.NewFunctionEnder(func(t *ts.TimeStep) bool {
		return t.Reward == 1.0 || t.Reward == -1.0
	}, ts.TerminalStateReached)

	return &OneHot{
		model:  model,
		memory: memory,
		ender:  ender,
	}, nil
}

// SetMemory sets the number of frames in observations returned after
// the next Reset. An episode in progress is not affected.
func (o *OneHot) SetMemory(size int) error {
	if size < 1 {
		return fmt.Errorf("setMemory: memory must be positive, got %v", size)
	}
	o.memory = size
	return nil
}

// Memory returns the number of frames observations will hold after the
// next Reset
func (o *OneHot) Memory() int {
	return o.memory
}

// State returns the underlying Model state
func (o *OneHot) State() int {
	return o.state
}

// Ready returns whether the environment can be stepped
func (o *OneHot) Ready() bool {
	return o.ready
}

// History returns the current frame history
func (o *OneHot) History() *History {
	return o.history
}

// Reset starts a new episode and returns its first timestep
func (o *OneHot) Reset() (ts.TimeStep, error) {
	o.state = o.model.ResetFunctional()
	o.ready = true

	o.history = NewHistory(o.memory, FrameSize)
	o.history.Reset(o.frame(o.state))

	o.lastStep = ts.New(ts.First, 0, o.model.Discount(),
		o.history.Flatten(), 0)
	return o.lastStep, nil
}

// Step takes one environmental step given a 1-dimensional action
// holding the index of a discrete Model action. Step returns
// ErrNotReady if the environment has not been reset since construction
// or since the last episode ended.
func (o *OneHot) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	if !o.ready {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", ErrNotReady)
	}

	if a.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions should be "+
			"1-dimensional, got %v dimensions", a.Len())
	}
	action := a.AtVec(0)
	if action != math.Trunc(action) {
		return ts.TimeStep{}, false, fmt.Errorf("step: illegal action %v, "+
			"actions must be integral", action)
	}

	next, _, reward, _, err := o.model.StepFunctional(o.state, int(action))
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %v", err)
	}
	o.state = next
	o.history.Push(o.frame(next))

	nextStep := ts.New(ts.Mid, reward, o.model.Discount(),
		o.history.Flatten(), o.lastStep.Number+1)
	if o.ender.End(&nextStep) {
		o.ready = false
	}

	o.lastStep = nextStep
	return nextStep, nextStep.Last(), nil
}

// Seed reseeds the underlying Model
func (o *OneHot) Seed(seed uint64) []uint64 {
	o.model.Seed(seed)
	return []uint64{seed}
}

// Close implements the environment.Environment interface
func (o *OneHot) Close() error {
	return nil
}

// ActionSpec returns the action specification of the environment
func (o *OneHot) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(o.model.Actions() - 1)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment. Padding frames in the history are all -1, so the lower
// bound is -1 rather than 0.
func (o *OneHot) ObservationSpec() env.Spec {
	memory := o.memory
	if o.history != nil {
		memory = o.history.Cap()
	}

	return env.NewBoxSpec(FrameSize*memory, env.Observation, Sentinel, 1.0,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (o *OneHot) DiscountSpec() env.Spec {
	discount := o.model.Discount()
	return env.NewBoxSpec(1, env.Discount, discount, discount, env.Continuous)
}

// RewardSpec returns the reward specification of the environment
func (o *OneHot) RewardSpec() env.Spec {
	return env.NewBoxSpec(1, env.Reward, -1.0, 1.0, env.Discrete)
}

func (o *OneHot) String() string {
	str := "HeavenHell  |  State: %v  |  Location: %v  |  Signal: %v"
	return fmt.Sprintf(str, o.state, Location(o.state), Signal(o.state))
}

// frame returns the one-hot location and signal frame of state
func (o *OneHot) frame(state int) *mat.VecDense {
	frame := mat.NewVecDense(FrameSize, nil)
	frame.SetVec(Location(state), 1.0)
	frame.SetVec(LocationSize+Signal(state), 1.0)
	return frame
}

// Decode returns the location and signal encoded in a single
// observation frame. Sentinel frames decode to location 0 and
// signal HeavenLeft.
func Decode(frame mat.Vector) (location, signal int) {
	if frame.Len() != FrameSize {
		panic(fmt.Sprintf("decode: frame length %v must be %v", frame.Len(),
			FrameSize))
	}
	v := mat.VecDenseCopyOf(frame)
	location = matutils.MaxVec(v.SliceVec(0, LocationSize))
	signal = matutils.MaxVec(v.SliceVec(LocationSize, FrameSize))
	return location, signal
}

// Location returns the maze cell of state. Both mazes share the same
// cells, so states s and s+LocationSize are at the same location.
func Location(state int) int {
	return state % LocationSize
}

// Signal returns the priest signal observed in state
func Signal(state int) int {
	switch state {
	case HeavenLeftPriest:
		return HeavenLeft
	case HeavenRightPriest:
		return HeavenRight
	default:
		return NoSignal
	}
}
