// Package mountaincar implements partially observable versions of the
// classic control environment "Mountain Car" in which the goal of the
// car is hidden.
//
// The car drives along a one dimensional track with heaven at one end
// and hell at the other. Which end is heaven changes from episode to
// episode and is only revealed by a priest standing off-centre on the
// track. See Goal for details.
//
// Two variants are provided. In Velocity, actions are forces applied to
// the car. In OptLower, actions are target positions, and the car is
// moved there by an (imagined) optimal lower level controller whose
// trajectory is reported as a fixed number of waypoints. Both variants
// share the reward and termination rules of Goal.
package mountaincar

import (
	"fmt"

	env "github.com/samuelfneumann/gopomdp/environment"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	MinPosition    float64 = -1.2
	MaxPosition    float64 = 1.2
	MaxSpeed       float64 = 0.2
	Power          float64 = 0.0015 // Engine power
	Gravity        float64 = 0.0025 // Gravity of the classic hilly track
	GoalPosition   float64 = 1.0    // Distance of heaven and hell from 0
	PriestPosition float64 = 0.5
	PriestDelta    float64 = 0.1
	StartBound     float64 = 0.2 // Starting positions lie in ±StartBound
	Waypoints      int     = 10

	MinAction     float64 = -5.0
	MaxAction     float64 = 5.0
	MinEasyAction float64 = -100.0
	MaxEasyAction float64 = 100.0

	DefaultDiscount float64 = 0.99
)

// Params describes the physical parameters of a Mountain Car
// environment
type Params struct {
	Position     r1.Interval // Legal positions of the car
	MaxSpeed     float64
	Action       r1.Interval // Legal forces, Velocity only
	Power        float64
	Gravity      float64 // Velocity only, 0 for a flat track
	GoalPosition float64
	Priest       float64
	PriestDelta  float64
	Start        r1.Interval // Starting positions
	Waypoints    int         // Waypoints per step, OptLower only
}

// DefaultParams returns the default Mountain Car parameters
func DefaultParams() Params {
	return Params{
		Position:     r1.Interval{Min: MinPosition, Max: MaxPosition},
		MaxSpeed:     MaxSpeed,
		Action:       r1.Interval{Min: MinAction, Max: MaxAction},
		Power:        Power,
		GoalPosition: GoalPosition,
		Priest:       PriestPosition,
		PriestDelta:  PriestDelta,
		Start:        r1.Interval{Min: -StartBound, Max: StartBound},
		Waypoints:    Waypoints,
	}
}

// EasyParams returns the default parameters with a much stronger
// action range, so that a single action can carry the car most of the
// way to either goal
func EasyParams() Params {
	p := DefaultParams()
	p.Action = r1.Interval{Min: MinEasyAction, Max: MaxEasyAction}
	return p
}

// ClassicParams returns the default parameters on the classic hilly
// track of height sin(3x), where gravity pulls the car towards the
// valley at -π/6
func ClassicParams() Params {
	p := DefaultParams()
	p.Gravity = Gravity
	return p
}

// Validate returns an error if the parameters do not describe a legal
// environment
func (p Params) Validate() error {
	if p.Position.Min >= p.Position.Max {
		return fmt.Errorf("validate: empty position interval %v", p.Position)
	}
	if p.GoalPosition <= 0 || p.GoalPosition > p.Position.Max ||
		-p.GoalPosition < p.Position.Min {
		return fmt.Errorf("validate: goal position %v must lie in (0, %v]",
			p.GoalPosition, p.Position.Max)
	}
	if p.Start.Min > p.Start.Max || p.Start.Min <= -p.GoalPosition ||
		p.Start.Max >= p.GoalPosition {
		return fmt.Errorf("validate: start interval %v must lie strictly "+
			"between the goals", p.Start)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("validate: max speed must be positive, got %v",
			p.MaxSpeed)
	}
	if p.Gravity < 0 {
		return fmt.Errorf("validate: gravity must be non-negative, got %v",
			p.Gravity)
	}
	if p.Action.Min > p.Action.Max {
		return fmt.Errorf("validate: empty action interval %v", p.Action)
	}
	if p.PriestDelta < 0 {
		return fmt.Errorf("validate: priest delta must be non-negative, "+
			"got %v", p.PriestDelta)
	}
	if p.Waypoints < 2 {
		return fmt.Errorf("validate: need at least 2 waypoints, got %v",
			p.Waypoints)
	}
	return nil
}

// base implements the underlying Mountain Car environment. It tracks
// the Goal task, the car's position, and the last timestep, but does
// not compute next states given actions. The Velocity and OptLower
// structs each embed a base environment and calculate the next states
// from actions.
//
// Note that this struct does not implement the environment.Environment
// interface and is used only to unify the two variants by storing and
// updating variables that are common to both.
type base struct {
	*Goal
	params   Params
	position float64
	discount float64
	lastStep ts.TimeStep
	ender    env.Ender
}

// newBase creates a new base environment
func newBase(p Params, discount float64, seed uint64) (*base, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("newBase: %v", err)
	}

	task := NewGoal(p.Start, p.GoalPosition, p.Priest, p.PriestDelta, seed)
	m := &base{
		Goal:     task,
		params:   p,
		discount: discount,
	}
	m.ender = env.NewFunctionEnder(func(*ts.TimeStep) bool {
		return m.AtGoal(m.position)
	}, ts.TerminalStateReached)

	return m, nil
}

// reset starts a new episode, sampling a starting position and the
// side of heaven. The starting position is returned.
func (m *base) reset() float64 {
	m.position = m.Start().AtVec(0)
	m.Resample()
	return m.position
}

// update moves the car to position, emitting obs as the observation.
// This function checks whether or not the next TimeStep is the last in
// the episode and calculates its reward as defined by the Goal task.
// It returns the next TimeStep and whether or not it is the last in
// the episode.
func (m *base) update(position float64, obs *mat.VecDense) (ts.TimeStep,
	bool) {
	m.position = position

	reward := m.GetReward(position)
	nextStep := ts.New(ts.Mid, reward, m.discount, obs, m.lastStep.Number+1)
	m.ender.End(&nextStep)

	m.lastStep = nextStep
	return nextStep, nextStep.Last()
}

// first records obs as the first observation of a new episode
func (m *base) first(obs *mat.VecDense) ts.TimeStep {
	m.lastStep = ts.New(ts.First, 0, m.discount, obs, 0)
	return m.lastStep
}

// Position returns the current position of the car
func (m *base) Position() float64 {
	return m.position
}

// Bounds returns the legal positions of the car
func (m *base) Bounds() r1.Interval {
	return m.params.Position
}

// Params returns the physical parameters of the environment
func (m *base) Params() Params {
	return m.params
}

// CurrentTimeStep returns the last timestep returned by the environment
func (m *base) CurrentTimeStep() ts.TimeStep {
	return m.lastStep
}

// Close implements the environment.Environment interface
func (m *base) Close() error {
	return nil
}

// DiscountSpec returns the discounting specification of the environment
func (m *base) DiscountSpec() env.Spec {
	return env.NewBoxSpec(1, env.Discount, m.discount, m.discount,
		env.Continuous)
}

// actionValue returns the single value of a 1-dimensional action
func actionValue(a *mat.VecDense) (float64, error) {
	if a.Len() != 1 {
		return 0, fmt.Errorf("actions should be 1-dimensional, got %v "+
			"dimensions", a.Len())
	}
	return a.AtVec(0), nil
}
