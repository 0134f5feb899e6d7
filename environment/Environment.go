// Package environment outlines the interfaces and structs needed to
// implement concrete partially observable environments
package environment

import (
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines whether or not an episode should end. If it should,
// End modifies the timestep so that it is the last in the episode.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Environment implements a simulated environment. An Environment must
// be Reset before it is stepped.
type Environment interface {
	// Reset starts a new episode and returns its first timestep
	Reset() (ts.TimeStep, error)

	// Step takes one environmental step given an action, returning the
	// next timestep and whether or not the episode has ended
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)

	// Seed reseeds the environment's random source and returns the seed
	// used
	Seed(seed uint64) []uint64

	// Close releases any resources the environment holds
	Close() error

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
