package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/windygrid/agent/tabular"
)

// NewGreedy creates a new Greedy policy
func NewGreedy(values *tabular.ActionValues, src rand.Source) (*EGreedy,
	error) {
	return NewEGreedy(0.0, values, src)
}
