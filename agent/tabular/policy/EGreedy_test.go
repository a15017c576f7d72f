package policy

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/windygrid/agent/tabular"
	env "github.com/samuelfneumann/windygrid/environment"
)

const seed uint64 = 192382

func TestNewEGreedyValidatesEpsilon(t *testing.T) {
	values := tabular.NewActionValues(7, 10, env.NumActions)
	for _, e := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		if _, err := NewEGreedy(e, values, rand.NewSource(seed)); err == nil {
			t.Errorf("epsilon %v should be rejected", e)
		}
	}
	for _, e := range []float64{0, 0.1, 1} {
		if _, err := NewEGreedy(e, values, rand.NewSource(seed)); err != nil {
			t.Errorf("epsilon %v should be accepted: %v", e, err)
		}
	}
}

func TestGreedySelectsLowestIndexMax(t *testing.T) {
	values := tabular.NewActionValues(7, 10, env.NumActions)
	p, err := NewGreedy(values, rand.NewSource(seed))
	if err != nil {
		t.Fatal(err)
	}
	s := env.NewState(2, 4)

	// All values equal
	for i := 0; i < 100; i++ {
		if a := p.SelectAction(s); a != env.Up {
			t.Fatalf("all equal: want %v, have %v", env.Up, a)
		}
	}

	cases := []struct {
		set  map[env.Action]float64
		want env.Action
	}{
		{map[env.Action]float64{env.Left: 1}, env.Left},
		{map[env.Action]float64{env.LeftDown: 1, env.Right: 1}, env.Right},
		{map[env.Action]float64{env.Up: -1, env.Down: -1, env.Left: -1},
			env.Right},
		{map[env.Action]float64{env.NoChange: 0.5, env.RightUp: 0.25},
			env.NoChange},
	}

	for _, c := range cases {
		values.Reset()
		for a, v := range c.set {
			values.Set(s, a, v)
		}
		for i := 0; i < 20; i++ {
			if a := p.SelectAction(s); a != c.want {
				t.Fatalf("%v: want %v, have %v", c.set, c.want, a)
			}
		}
	}
}

func TestEGreedyExploresUniformly(t *testing.T) {
	values := tabular.NewActionValues(7, 10, env.NumActions)
	s := env.NewState(3, 0)
	values.Set(s, env.Right, 100)

	p, err := NewEGreedy(1.0, values, rand.NewSource(seed))
	if err != nil {
		t.Fatal(err)
	}

	samples := 90_000
	counts := make([]int, env.NumActions)
	for i := 0; i < samples; i++ {
		a := p.SelectAction(s)
		if !a.Valid() {
			t.Fatalf("invalid action %v", a)
		}
		counts[a]++
	}

	expected := samples / env.NumActions
	for a, count := range counts {
		if count < expected*9/10 || count > expected*11/10 {
			t.Errorf("%v selected %d times, expected about %d",
				env.Action(a), count, expected)
		}
	}
}

func TestEGreedyMostlyGreedy(t *testing.T) {
	values := tabular.NewActionValues(7, 10, env.NumActions)
	s := env.NewState(3, 0)
	values.Set(s, env.LeftUp, 1)

	p, err := NewEGreedy(0.1, values, rand.NewSource(seed))
	if err != nil {
		t.Fatal(err)
	}

	samples := 10_000
	greedy := 0
	for i := 0; i < samples; i++ {
		if p.SelectAction(s) == env.LeftUp {
			greedy++
		}
	}

	// P(greedy) = 0.9 + 0.1 / 9
	frac := float64(greedy) / float64(samples)
	if frac < 0.88 || frac > 0.94 {
		t.Errorf("greedy action selected with frequency %v", frac)
	}
}

func TestEGreedyIsReproducible(t *testing.T) {
	values := tabular.NewActionValues(7, 10, env.NumActions)
	p1, _ := NewEGreedy(0.5, values, rand.NewSource(seed))
	p2, _ := NewEGreedy(0.5, values, rand.NewSource(seed))

	s := env.NewState(1, 1)
	for i := 0; i < 1000; i++ {
		if a1, a2 := p1.SelectAction(s), p2.SelectAction(s); a1 != a2 {
			t.Fatalf("selection %d differs with equal seeds: %v != %v", i,
				a1, a2)
		}
	}
}
