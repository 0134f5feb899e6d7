package mountaincar

import (
	"fmt"
	"math"

	env "github.com/samuelfneumann/gopomdp/environment"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"github.com/samuelfneumann/gopomdp/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// Velocity implements the heaven-hell Mountain Car environment with
// force actions. With the default zero gravity the track is flat, so
// the car accelerates in the direction of the applied force and keeps
// its speed otherwise. A positive Params.Gravity gives the classic
// hilly track, on which gravity adds -gravity*cos(3x) to the velocity
// at each step.
//
// Observations consist of the x position of the car, its velocity, and
// the direction of heaven as given by the priest, which is 0 away from
// the priest. Position and velocity are bounded by the Params of the
// environment. Upon reaching the minimum or maximum position the
// velocity of the car is set to 0.
//
// Actions are 1-dimensional and continuous and determine the force to
// apply to the car. Actions outside of the Params' action interval are
// clipped to stay within it.
//
// Velocity implements the environment.Environment interface
type Velocity struct {
	*base
	velocity float64
}

// NewVelocity creates a new Velocity Mountain Car environment, which
// starts ready to use
func NewVelocity(p Params, discount float64, seed uint64) (*Velocity,
	ts.TimeStep, error) {
	baseEnv, err := newBase(p, discount, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newVelocity: %v", err)
	}

	mountainCar := &Velocity{base: baseEnv}
	firstStep, err := mountainCar.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newVelocity: %v", err)
	}

	return mountainCar, firstStep, nil
}

// Reset resets the environment and returns a starting state drawn from
// the environment's start interval. The car starts at rest.
func (m *Velocity) Reset() (ts.TimeStep, error) {
	m.reset()
	m.velocity = 0

	return m.first(m.observation()), nil
}

// Step takes one environmental step given action a and returns the next
// timestep as a timestep.TimeStep and a bool indicating whether or not
// the episode has ended.
func (m *Velocity) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	value, err := actionValue(a)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: %v", err)
	}

	// Clip action to legal range
	force := floatutils.ClipInterval(value, m.params.Action)

	// Update the velocity
	velocity := m.velocity + force*m.params.Power -
		m.params.Gravity*math.Cos(3*m.position)
	velocity = floatutils.Clip(velocity, -m.params.MaxSpeed, m.params.MaxSpeed)

	// Update the position
	position := floatutils.ClipInterval(m.position+velocity, m.params.Position)

	// Stop the car at the walls
	if (position <= m.params.Position.Min && velocity < 0) ||
		(position >= m.params.Position.Max && velocity > 0) {
		velocity = 0
	}
	m.velocity = velocity

	nextStep, last := m.update(position, m.observationAt(position))
	return nextStep, last, nil
}

// Velocity returns the current velocity of the car
func (m *Velocity) Velocity() float64 {
	return m.velocity
}

// ActionSpec returns the action specification of the environment
func (m *Velocity) ActionSpec() env.Spec {
	return env.NewBoxSpec(1, env.Action, m.params.Action.Min,
		m.params.Action.Max, env.Continuous)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *Velocity) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(3, nil)
	lowerBound := mat.NewVecDense(3, []float64{m.params.Position.Min,
		-m.params.MaxSpeed, -1.0})
	upperBound := mat.NewVecDense(3, []float64{m.params.Position.Max,
		m.params.MaxSpeed, 1.0})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Continuous)
}

// String returns a string representation of the environment
func (m *Velocity) String() string {
	str := "Mountain Car  |  Position: %v  |  Speed: %v  |  %v"
	return fmt.Sprintf(str, m.position, m.velocity, m.Goal)
}

func (m *Velocity) observation() *mat.VecDense {
	return m.observationAt(m.position)
}

// observationAt returns the observation of the car at position with
// its current velocity
func (m *Velocity) observationAt(position float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{
		position,
		m.velocity,
		m.Direction(position),
	})
}
