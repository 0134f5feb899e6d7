package trackers

import (
	"github.com/samuelfneumann/gopomdp/experiment/tracker"
	ts "github.com/samuelfneumann/gopomdp/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength Tracker which will save
// its data at the specified location filename. If filename is empty,
// Save does nothing.
func NewEpisodeLength(filename string) tracker.Tracker {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if t is the last timestep in an
// episode
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Data returns the lengths of all finished episodes
func (e *EpisodeLength) Data() []float64 {
	return append([]float64(nil), e.episodeLengths...)
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() error {
	if e.filename == "" {
		return nil
	}
	return tracker.SaveData(e.filename, e.episodeLengths)
}
