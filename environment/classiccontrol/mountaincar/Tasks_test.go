package mountaincar_test

import (
	"testing"

	"github.com/samuelfneumann/gopomdp/environment/classiccontrol/mountaincar"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestDirection(t *testing.T) {
	priest, delta := mountaincar.PriestPosition, mountaincar.PriestDelta

	tests := []struct {
		position, heaven float64
		want             float64
	}{
		{0.5, 1.0, 1.0},
		{0.5, -1.0, -1.0},
		{0.41, 1.0, 1.0},
		{0.59, -1.0, -1.0},
		{0.39, 1.0, 0.0},
		{0.61, 1.0, 0.0},
		{-0.5, 1.0, 0.0},
		{-0.5, -1.0, 0.0},
		{0.0, 1.0, 0.0},
	}

	for _, test := range tests {
		got := mountaincar.Direction(test.position, test.heaven, -test.heaven,
			priest, delta)
		if got != test.want {
			t.Errorf("direction(%v) with heaven at %v: want %v, got %v",
				test.position, test.heaven, test.want, got)
		}
	}
}

func TestDoneAndReward(t *testing.T) {
	tests := []struct {
		position, heaven float64
		done             bool
		reward           float64
	}{
		{1.0, 1.0, true, 1.0},
		{-1.0, 1.0, true, -1.0},
		{1.2, 1.0, true, 1.0},
		{-1.2, 1.0, true, -1.0},
		{1.0, -1.0, true, -1.0},
		{-1.0, -1.0, true, 1.0},
		{0.5, 1.0, false, 0.0},
		{0.99, -1.0, false, 0.0},
		{-0.99, 1.0, false, 0.0},
	}

	for _, test := range tests {
		hell := -test.heaven
		if done := mountaincar.Done(test.position, test.heaven, hell); done != test.done {
			t.Errorf("done(%v) with heaven at %v: want %v, got %v",
				test.position, test.heaven, test.done, done)
		}

		reward := mountaincar.Reward(test.position, test.heaven, hell)
		if reward != test.reward {
			t.Errorf("reward(%v) with heaven at %v: want %v, got %v",
				test.position, test.heaven, test.reward, reward)
		}
	}
}

// Rewards are only ever given on termination
func TestRewardImpliesDone(t *testing.T) {
	for _, heaven := range []float64{1.0, -1.0} {
		for position := -1.2; position <= 1.2; position += 0.01 {
			reward := mountaincar.Reward(position, heaven, -heaven)
			done := mountaincar.Done(position, heaven, -heaven)
			if reward != 0 && !done {
				t.Errorf("reward %v at %v without termination", reward,
					position)
			}
			if done && reward == 0 {
				t.Errorf("termination at %v without reward", position)
			}
		}
	}
}

func TestGoalResample(t *testing.T) {
	start := r1.Interval{Min: -0.2, Max: 0.2}
	g := mountaincar.NewGoal(start, 1.0, 0.5, 0.1, 11)

	sides := make(map[float64]int)
	for i := 0; i < 200; i++ {
		g.Resample()
		heaven, hell := g.HeavenPosition(), g.HellPosition()
		if heaven != -hell {
			t.Fatalf("resample: hell %v is not opposite heaven %v", hell,
				heaven)
		}
		if heaven != 1.0 && heaven != -1.0 {
			t.Fatalf("resample: illegal heaven position %v", heaven)
		}
		sides[heaven]++
	}

	if len(sides) != 2 {
		t.Errorf("resample: expected heaven on both sides, got %v", sides)
	}
}

func TestGoalStart(t *testing.T) {
	start := r1.Interval{Min: -0.2, Max: 0.2}
	g := mountaincar.NewGoal(start, 1.0, 0.5, 0.1, 3)

	for i := 0; i < 500; i++ {
		if s := g.Start().AtVec(0); s < start.Min || s > start.Max {
			t.Errorf("start: %v ∉ [%v, %v]", s, start.Min, start.Max)
		}
	}
}
