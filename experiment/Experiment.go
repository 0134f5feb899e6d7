// Package experiment implements functionality for running rollouts of
// environments and reporting on them
package experiment

import (
	"fmt"

	env "github.com/samuelfneumann/gopomdp/environment"
	"github.com/samuelfneumann/gopomdp/experiment/tracker"
	ts "github.com/samuelfneumann/gopomdp/timestep"
)

// Rollout runs episodes of an environment, choosing each action
// uniformly at random from the environment's action specification.
// Rollouts track environment TimeSteps by sending them to Trackers,
// which cache the data of interest to be saved later.
type Rollout struct {
	env.Environment
	sampler  *UniformSampler
	episodes int
	trackers []tracker.Tracker
}

// NewRollout returns a new Rollout of episodes episodes on e. The seed
// seeds the action sampler only; e is seeded at construction.
func NewRollout(e env.Environment, seed uint64, episodes int,
	t ...tracker.Tracker) (*Rollout, error) {
	if episodes < 1 {
		return nil, fmt.Errorf("newRollout: episodes must be positive, "+
			"got %v", episodes)
	}

	sampler, err := NewUniformSampler(e.ActionSpec(), seed)
	if err != nil {
		return nil, fmt.Errorf("newRollout: %v", err)
	}

	return &Rollout{
		Environment: e,
		sampler:     sampler,
		episodes:    episodes,
		trackers:    t,
	}, nil
}

// Register registers a Tracker with the Rollout so that data generated
// during the rollout can be tracked and saved
func (r *Rollout) Register(t tracker.Tracker) {
	r.trackers = append(r.trackers, t)
}

// Episodes returns the number of episodes run by Run
func (r *Rollout) Episodes() int {
	return r.episodes
}

// RunEpisode runs a single episode and returns its last TimeStep
func (r *Rollout) RunEpisode() (ts.TimeStep, error) {
	step, err := r.Environment.Reset()
	if err != nil {
		return step, fmt.Errorf("runEpisode: could not reset: %v", err)
	}
	r.track(step)

	for !step.Last() {
		step, _, err = r.Environment.Step(r.sampler.Sample())
		if err != nil {
			return step, fmt.Errorf("runEpisode: step %v: %v",
				step.Number, err)
		}
		r.track(step)
	}

	return step, nil
}

// Run runs all episodes of the Rollout. If after is not nil, it is
// called with the index and last TimeStep of each finished episode.
func (r *Rollout) Run(after func(episode int, last ts.TimeStep)) error {
	for i := 0; i < r.episodes; i++ {
		last, err := r.RunEpisode()
		if err != nil {
			return fmt.Errorf("run: episode %v: %v", i, err)
		}
		if after != nil {
			after(i, last)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (r *Rollout) Save() error {
	for _, t := range r.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track sends the current timestep to each Tracker
func (r *Rollout) track(t ts.TimeStep) {
	for _, tracker := range r.trackers {
		tracker.Track(t)
	}
}
