// Package pomdp implements discrete POMDP models which are stepped
// functionally: the caller owns the state and passes it back in on
// every step.
package pomdp

import (
	"fmt"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/gopomdp/environment"
)

// Heaven-Hell is attributed to Sebastian Thrun but first appeared in
// Geffner & Bonet: Solving Large POMDPs using Real Time DP 1998. Two
// mirrored mazes share one layout; only the priest in the bottom right
// corner knows which maze the agent is in:
//
//	Heaven  4  3  2  5  6  Hell
//	              1
//	              0
//	              7  8  9  Priest
//
//	  Hell 14 13 12 15 16  Heaven
//	             11
//	             10
//	             17 18 19  Priest
const (
	Cells  int = 10
	States int = 2 * Cells

	// Actions
	North   int = 0
	South   int = 1
	East    int = 2
	West    int = 3
	Actions int = 4

	// Cells of a single maze
	StartCell  int = 0
	LeftCell   int = 4
	RightCell  int = 6
	PriestCell int = 9

	HeavenReward float64 = 1.0
	HellReward   float64 = -1.0

	DefaultDiscount float64 = 0.95
)

// moves[c][a] is the cell reached from cell c by taking action a
var moves = [Cells][Actions]int{
	//  N  S  E  W
	{1, 7, 0, 0}, // 0
	{2, 0, 1, 1}, // 1
	{2, 1, 5, 3}, // 2
	{3, 3, 2, 4}, // 3
	{4, 4, 3, 4}, // 4
	{5, 5, 6, 2}, // 5
	{6, 6, 6, 5}, // 6
	{0, 7, 8, 7}, // 7
	{8, 8, 9, 7}, // 8
	{9, 9, 9, 8}, // 9
}

// HeavenHell implements the episodic Heaven-Hell POMDP. States are
// integers in [0, States): states [0, Cells) form the maze with heaven
// on the left and states [Cells, States) the maze with heaven on the
// right. Episodes start in the start cell of either maze with equal
// probability.
//
// HeavenHell does not keep track of the current state. Callers obtain a
// state from ResetFunctional and thread it through StepFunctional.
type HeavenHell struct {
	src      rand.Source
	starter  env.CategoricalStarter
	discount float64
}

// NewHeavenHell returns a new Heaven-Hell model with discount factor
// discount and random source seeded with seed
func NewHeavenHell(discount float64, seed uint64) *HeavenHell {
	src := rand.NewSource(seed)

	weights := make([]float64, States)
	weights[StartCell] = 0.5
	weights[Cells+StartCell] = 0.5
	starter := env.NewWeightedStarter([][]float64{weights}, src)

	return &HeavenHell{
		src:      src,
		starter:  starter,
		discount: discount,
	}
}

// Seed reseeds the start state distribution
func (h *HeavenHell) Seed(seed uint64) {
	h.src.Seed(seed)
}

// Actions returns the number of actions in the model
func (h *HeavenHell) Actions() int {
	return Actions
}

// Discount returns the discount factor of the model
func (h *HeavenHell) Discount() float64 {
	return h.discount
}

// ResetFunctional samples and returns a starting state
func (h *HeavenHell) ResetFunctional() int {
	return int(h.starter.Start().AtVec(0))
}

// StepFunctional takes action in state and returns the next state, the
// observation emitted on entering it, the reward for the transition,
// and whether the transition entered heaven or hell.
//
// The observation is the cell of the next state, except in the priest
// cell where it is PriestCell for the heaven-left maze and
// PriestCell+Cells for the heaven-right maze.
func (h *HeavenHell) StepFunctional(state, action int) (next, obs int,
	reward float64, done bool, err error) {
	if state < 0 || state >= States {
		return 0, 0, 0, false, fmt.Errorf("stepFunctional: illegal state "+
			"%v ∉ [0, %v)", state, States)
	}
	if action < 0 || action >= Actions {
		return 0, 0, 0, false, fmt.Errorf("stepFunctional: illegal action "+
			"%v ∉ [0, %v)", action, Actions)
	}

	maze, cell := state/Cells, state%Cells
	nextCell := moves[cell][action]
	next = maze*Cells + nextCell

	obs = nextCell
	if nextCell == PriestCell {
		obs = next
	}

	reward = Reward(next)
	return next, obs, reward, reward != 0, nil
}

// Reward returns the reward for entering state
func Reward(state int) float64 {
	heavenLeft := state < Cells
	switch state % Cells {
	case LeftCell:
		if heavenLeft {
			return HeavenReward
		}
		return HellReward

	case RightCell:
		if heavenLeft {
			return HellReward
		}
		return HeavenReward
	}
	return 0.0
}
