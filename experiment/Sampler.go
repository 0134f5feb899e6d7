package experiment

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	env "github.com/samuelfneumann/gopomdp/environment"
)

// UniformSampler samples actions uniformly at random from within the
// bounds of an action Spec. Discrete specifications are sampled over
// the integers within their bounds.
type UniformSampler struct {
	spec       env.Spec
	rng        *rand.Rand
	continuous []distuv.Uniform
}

// NewUniformSampler returns a new UniformSampler of actions in spec
func NewUniformSampler(spec env.Spec, seed uint64) (*UniformSampler,
	error) {
	if spec.Type != env.Action {
		return nil, fmt.Errorf("newUniformSampler: cannot sample actions "+
			"from a %v specification", spec.Type)
	}

	src := rand.NewSource(seed)
	s := &UniformSampler{spec: spec, rng: rand.New(src)}

	if spec.Cardinality == env.Continuous {
		s.continuous = make([]distuv.Uniform, spec.LowerBound.Len())
		for i := range s.continuous {
			s.continuous[i] = distuv.Uniform{
				Min: spec.LowerBound.AtVec(i),
				Max: spec.UpperBound.AtVec(i),
				Src: src,
			}
		}
	}
	return s, nil
}

// Sample returns a new action
func (s *UniformSampler) Sample() *mat.VecDense {
	n := s.spec.LowerBound.Len()
	action := mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		if s.spec.Cardinality == env.Continuous {
			action.SetVec(i, s.continuous[i].Rand())
			continue
		}

		low := int(s.spec.LowerBound.AtVec(i))
		high := int(s.spec.UpperBound.AtVec(i))
		action.SetVec(i, float64(low+s.rng.Intn(high-low+1)))
	}
	return action
}
