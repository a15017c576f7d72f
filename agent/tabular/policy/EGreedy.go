// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/windygrid/agent/tabular"
	env "github.com/samuelfneumann/windygrid/environment"
)

// EGreedy implements an ε-greedy policy over tabular action values.
//
// On each call to SelectAction, a single Bernoulli(ε) sample decides
// whether to explore. When exploring, an action is drawn uniformly from
// all actions. Otherwise the greedy action is taken, with ties broken
// towards the lowest action index. All randomness is drawn from the
// rand.Source the policy was created with.
type EGreedy struct {
	values *tabular.ActionValues

	explore distuv.Bernoulli
	uniform distuv.Categorical
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. The policy reads
// values, which are usually shared with a learner, and draws all random
// numbers from src.
func NewEGreedy(e float64, values *tabular.ActionValues,
	src rand.Source) (*EGreedy, error) {
	if !(e >= 0 && e <= 1) {
		return nil, fmt.Errorf("newEGreedy: epsilon %v must be in [0, 1]", e)
	}
	if values == nil {
		return nil, fmt.Errorf("newEGreedy: nil action values")
	}
	if src == nil {
		return nil, fmt.Errorf("newEGreedy: nil random source")
	}

	// Create the weights for the uniform categorical distribution
	_, _, actions := values.Dims()
	weights := make([]float64, actions)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &EGreedy{
		values:  values,
		explore: distuv.Bernoulli{P: e, Src: src},
		uniform: distuv.NewCategorical(weights, src),
	}, nil
}

// SelectAction selects an action in state s from an ε-greedy policy
func (p *EGreedy) SelectAction(s env.State) env.Action {
	if p.explore.Rand() == 1 {
		return env.Action(int(p.uniform.Rand()))
	}
	return p.values.Greedy(s)
}
