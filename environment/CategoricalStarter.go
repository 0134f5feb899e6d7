package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional categorical distribution. The categorical
// distributions sample values in (0, 1, 2, ... N).
type CategoricalStarter struct {
	features int
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i uniformly from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int, src rand.Source) CategoricalStarter {
	weights := make([][]float64, len(bounds))
	for i := range bounds {
		weights[i] = make([]float64, bounds[i])
		for j := range weights[i] {
			weights[i][j] = 1.0 / float64(bounds[i])
		}
	}

	return NewWeightedStarter(weights, src)
}

// NewWeightedStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... len(weights[i])-1) in proportion to
// weights[i]
func NewWeightedStarter(weights [][]float64, src rand.Source) CategoricalStarter {
	rand := make([]distuv.Categorical, len(weights))
	for i := range rand {
		if len(weights[i]) == 0 {
			panic(fmt.Sprintf("dimension %v has no categories", i))
		}
		rand[i] = distuv.NewCategorical(weights[i], src)
	}

	return CategoricalStarter{len(weights), rand}
}

// Start returns a starting state vector
func (c CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, c.features)
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(c.features, start)
}
