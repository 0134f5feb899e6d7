package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// UniformStarter returns starting states sampled uniformly from a
// hyperrectangle. Samples are drawn from the rand.Source the starter
// was constructed with, so reseeding that source reseeds the starter.
type UniformStarter struct {
	features int
	rand     *distmv.Uniform
}

// NewUniformStarter returns a new UniformStarter sampling dimension i
// uniformly from bounds[i]
func NewUniformStarter(bounds []r1.Interval, src rand.Source) UniformStarter {
	rand := distmv.NewUniform(bounds, src)

	return UniformStarter{len(bounds), rand}
}

// Start returns a starting state vector
func (u UniformStarter) Start() *mat.VecDense {
	return mat.NewVecDense(u.features, u.rand.Rand(nil))
}
