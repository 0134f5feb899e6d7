package trackers_test

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gopomdp/experiment/tracker"
	"github.com/samuelfneumann/gopomdp/experiment/trackers"
	ts "github.com/samuelfneumann/gopomdp/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// episode returns the timesteps of an episode with the given rewards,
// the last of which ends the episode
func episode(rewards ...float64) []ts.TimeStep {
	obs := mat.NewVecDense(1, nil)
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, obs, 0)}
	for i, r := range rewards {
		step := ts.New(ts.Mid, r, 1, obs, i+1)
		if i == len(rewards)-1 {
			step.SetEnd(ts.TerminalStateReached)
		}
		steps = append(steps, step)
	}
	return steps
}

func TestReturn(t *testing.T) {
	dir := t.TempDir()
	r := trackers.NewReturn(filepath.Join(dir, "returns.bin"))

	for _, ep := range [][]float64{{0, 0, 1}, {-1}, {0.5, 0.5}} {
		for _, step := range episode(ep...) {
			r.Track(step)
		}
	}

	// An unfinished episode is not recorded
	for _, step := range episode(3, 3)[:2] {
		r.Track(step)
	}

	want := []float64{1, -1, 1}
	if got := r.Data(); !floats.Equal(got, want) {
		t.Errorf("data: want %v, got %v", want, got)
	}

	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved, err := tracker.LoadData(filepath.Join(dir, "returns.bin"))
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if !floats.Equal(saved, want) {
		t.Errorf("loadData: want %v, got %v", want, saved)
	}
}

func TestReturnNonSequential(t *testing.T) {
	r := trackers.NewReturn("")
	steps := episode(0, 0, 1)
	r.Track(steps[0])

	defer func() {
		if recover() == nil {
			t.Error("track: expected panic for non-sequential timesteps")
		}
	}()
	r.Track(steps[2])
}

func TestEpisodeLength(t *testing.T) {
	e := trackers.NewEpisodeLength("")

	for _, ep := range [][]float64{{0, 0, 1}, {-1}, {0, 0, 0, 0, 1}} {
		for _, step := range episode(ep...) {
			e.Track(step)
		}
	}
	for _, step := range episode(0, 0)[:2] {
		e.Track(step)
	}

	want := []float64{3, 1, 5}
	if got := e.Data(); !floats.Equal(got, want) {
		t.Errorf("data: want %v, got %v", want, got)
	}

	// Trackers without a file do not save
	if err := e.Save(); err != nil {
		t.Errorf("save: %v", err)
	}
}

func TestDataIsCopied(t *testing.T) {
	e := trackers.NewEpisodeLength("")
	for _, step := range episode(1) {
		e.Track(step)
	}

	data := e.Data()
	data[0] = 100
	if got := e.Data()[0]; got != 1 {
		t.Errorf("data: tracked lengths changed through returned slice, "+
			"got %v", got)
	}
}
