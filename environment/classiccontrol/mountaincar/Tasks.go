package mountaincar

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/gopomdp/environment"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	HeavenReward float64 = 1.0
	HellReward   float64 = -1.0
)

// Goal implements the heaven-hell task on Mountain Car. Heaven and hell
// sit at opposite ends of the track, GoalPosition away from the centre,
// and which end is heaven is chosen uniformly at random at the start of
// each episode. The only way to tell the two apart before reaching one
// is to visit the priest, which reveals the direction of heaven to any
// car within PriestDelta of PriestPosition.
//
// Rewards are +1 for reaching heaven, -1 for reaching hell, and 0
// otherwise. Episodes end when either heaven or hell is reached.
//
// All random draws, the start position and the side of heaven, come
// from a single source which is reseeded by Seed.
type Goal struct {
	src     rand.Source
	starter env.UniformStarter
	side    env.CategoricalStarter

	goalPosition   float64
	heavenPosition float64
	hellPosition   float64
	priestPosition float64
	priestDelta    float64
}

// NewGoal returns a new Goal task with starting positions sampled
// uniformly from start
func NewGoal(start r1.Interval, goalPosition, priestPosition,
	priestDelta float64, seed uint64) *Goal {
	src := rand.NewSource(seed)

	g := &Goal{
		src:            src,
		starter:        env.NewUniformStarter([]r1.Interval{start}, src),
		side:           env.NewCategoricalStarter([]int{2}, src),
		goalPosition:   goalPosition,
		priestPosition: priestPosition,
		priestDelta:    priestDelta,
	}
	g.setHeaven(goalPosition)

	return g
}

// Seed reseeds the task's random source
func (g *Goal) Seed(seed uint64) []uint64 {
	g.src.Seed(seed)
	return []uint64{seed}
}

// Start samples a starting position. Start does not change the
// position of heaven, use Resample for that.
func (g *Goal) Start() *mat.VecDense {
	return g.starter.Start()
}

// Resample places heaven at +GoalPosition or -GoalPosition with equal
// probability, with hell on the opposite side
func (g *Goal) Resample() {
	if g.side.Start().AtVec(0) == 0 {
		g.setHeaven(g.goalPosition)
	} else {
		g.setHeaven(-g.goalPosition)
	}
}

func (g *Goal) setHeaven(position float64) {
	g.heavenPosition = position
	g.hellPosition = -position
}

// HeavenPosition returns the position of heaven in the current episode
func (g *Goal) HeavenPosition() float64 { return g.heavenPosition }

// HellPosition returns the position of hell in the current episode
func (g *Goal) HellPosition() float64 { return g.hellPosition }

// PriestPosition returns the position of the priest
func (g *Goal) PriestPosition() float64 { return g.priestPosition }

// PriestDelta returns the distance from the priest within which the
// direction of heaven is observed
func (g *Goal) PriestDelta() float64 { return g.priestDelta }

// Direction returns the direction of heaven as observed at position
func (g *Goal) Direction(position float64) float64 {
	return Direction(position, g.heavenPosition, g.hellPosition,
		g.priestPosition, g.priestDelta)
}

// GetReward returns the reward for moving the car to position
func (g *Goal) GetReward(position float64) float64 {
	return Reward(position, g.heavenPosition, g.hellPosition)
}

// AtGoal returns whether position is at or beyond heaven or hell
func (g *Goal) AtGoal(position float64) bool {
	return Done(position, g.heavenPosition, g.hellPosition)
}

// Min returns the minimum attainable reward over all timesteps
func (g *Goal) Min() float64 { return HellReward }

// Max returns the maximum attainable reward over all timesteps
func (g *Goal) Max() float64 { return HeavenReward }

// RewardSpec returns the reward specification of the Task
func (g *Goal) RewardSpec() env.Spec {
	return env.NewBoxSpec(1, env.Reward, g.Min(), g.Max(), env.Discrete)
}

func (g *Goal) String() string {
	str := "Heaven: %v  |  Hell: %v  |  Priest: %v ± %v"
	return fmt.Sprintf(str, g.heavenPosition, g.hellPosition,
		g.priestPosition, g.priestDelta)
}

// Direction returns the direction of heaven observed by a car at
// position: 0 unless position is within delta of the priest, otherwise
// +1 if heaven is on the positive side and -1 if it is on the negative
// side.
func Direction(position, heaven, hell, priest, delta float64) float64 {
	if position < priest-delta || position > priest+delta {
		return 0.0
	}
	if heaven > hell {
		return 1.0
	}
	return -1.0
}

// Done returns whether position is at or beyond either of heaven or
// hell
func Done(position, heaven, hell float64) bool {
	return position >= math.Max(heaven, hell) ||
		position <= math.Min(heaven, hell)
}

// Reward returns the reward for a car at position: +1 at or beyond
// heaven, -1 at or beyond hell, and 0 otherwise
func Reward(position, heaven, hell float64) float64 {
	reward := 0.0
	if heaven > hell {
		if position >= heaven {
			reward = HeavenReward
		}
		if position <= hell {
			reward = HellReward
		}
	}

	if heaven < hell {
		if position >= hell {
			reward = HellReward
		}
		if position <= heaven {
			reward = HeavenReward
		}
	}
	return reward
}
