package mountaincar

import (
	"fmt"

	env "github.com/samuelfneumann/gopomdp/environment"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"github.com/samuelfneumann/gopomdp/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// OptLower implements the heaven-hell Mountain Car environment with
// position actions. The agent picks a target position and an optimal
// lower level controller drives the car there in a straight line
// within a single step. There is no velocity.
//
// The trajectory of the lower level controller is reported as
// Params.Waypoints evenly spaced positions from the previous position
// to the target, both included. Each step's observation interleaves
// each waypoint with the direction of heaven observed there:
//
//	[p_0, d_0, p_1, d_1, ..., p_K-1, d_K-1]
//
// The first observation of an episode is all zeros, except for the
// last waypoint position which holds the starting position.
//
// Actions are 1-dimensional target positions. Targets outside of the
// legal positions are clipped.
//
// OptLower implements the environment.Environment interface
type OptLower struct {
	*base
	waypoints []float64
}

// NewOptLower creates a new OptLower Mountain Car environment, which
// starts ready to use
func NewOptLower(p Params, discount float64, seed uint64) (*OptLower,
	ts.TimeStep, error) {
	baseEnv, err := newBase(p, discount, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newOptLower: %v", err)
	}

	mountainCar := &OptLower{base: baseEnv}
	firstStep, err := mountainCar.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newOptLower: %v", err)
	}

	return mountainCar, firstStep, nil
}

// Reset resets the environment and returns a starting state drawn from
// the environment's start interval
func (m *OptLower) Reset() (ts.TimeStep, error) {
	position := m.reset()
	m.waypoints = []float64{position}

	obs := mat.NewVecDense(2*m.params.Waypoints, nil)
	obs.SetVec(obs.Len()-2, position)

	return m.first(obs), nil
}

// Step moves the car to the target position given by action a and
// returns the next timestep as a timestep.TimeStep and a bool
// indicating whether or not the episode has ended.
func (m *OptLower) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	value, err := actionValue(a)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: %v", err)
	}
	target := floatutils.ClipInterval(value, m.params.Position)

	waypoints := floatutils.Linspace(m.position, target, m.params.Waypoints)
	directions := make([]float64, len(waypoints))
	for i, position := range waypoints {
		directions[i] = m.Direction(position)
	}
	m.waypoints = waypoints

	obs := floatutils.Interleave(waypoints, directions)
	nextStep, last := m.update(target, mat.NewVecDense(len(obs), obs))

	return nextStep, last, nil
}

// Waypoints returns the positions the car passed through on the last
// step, starting at its previous position. After a reset only the
// starting position is returned.
func (m *OptLower) Waypoints() []float64 {
	return append([]float64(nil), m.waypoints...)
}

// ActionSpec returns the action specification of the environment
func (m *OptLower) ActionSpec() env.Spec {
	return env.NewBoxSpec(1, env.Action, m.params.Position.Min,
		m.params.Position.Max, env.Continuous)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *OptLower) ObservationSpec() env.Spec {
	n := 2 * m.params.Waypoints
	lowerBound := mat.NewVecDense(n, nil)
	upperBound := mat.NewVecDense(n, nil)
	for i := 0; i < m.params.Waypoints; i++ {
		lowerBound.SetVec(2*i, m.params.Position.Min)
		lowerBound.SetVec(2*i+1, -1.0)
		upperBound.SetVec(2*i, m.params.Position.Max)
		upperBound.SetVec(2*i+1, 1.0)
	}

	return env.NewSpec(mat.NewVecDense(n, nil), env.Observation, lowerBound,
		upperBound, env.Continuous)
}

// String returns a string representation of the environment
func (m *OptLower) String() string {
	str := "Mountain Car (Optimal Lower Level)  |  Position: %v  |  %v"
	return fmt.Sprintf(str, m.position, m.Goal)
}
