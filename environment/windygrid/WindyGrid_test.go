package windygrid

import (
	"testing"

	env "github.com/samuelfneumann/windygrid/environment"
)

func newDefault(t *testing.T) *WindyGrid {
	t.Helper()
	g, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return g
}

func TestNextStaysInBounds(t *testing.T) {
	g := newDefault(t)
	r, c := g.Dims()

	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			for _, a := range env.Actions() {
				s := env.NewState(row, col)
				next := g.Next(s, a)
				if !next.In(r, c) {
					t.Errorf("next(%v, %v) = %v is outside of the grid", s, a,
						next)
				}
			}
		}
	}
}

func TestNext(t *testing.T) {
	g := newDefault(t)

	cases := []struct {
		name  string
		state env.State
		a     env.Action
		want  env.State
	}{
		{"wind of origin column", env.NewState(3, 6), env.Right,
			env.NewState(1, 7)},
		{"clip at top left", env.NewState(0, 0), env.Up, env.NewState(0, 0)},
		{"no wind", env.NewState(3, 0), env.Right, env.NewState(3, 1)},
		{"wind on no change", env.NewState(3, 4), env.NoChange,
			env.NewState(2, 4)},
		{"strong wind on no change", env.NewState(5, 7), env.NoChange,
			env.NewState(3, 7)},
		{"clip top and right together", env.NewState(0, 9), env.RightUp,
			env.NewState(0, 9)},
		{"clip top through wind", env.NewState(1, 6), env.Up,
			env.NewState(0, 6)},
		{"clip bottom", env.NewState(6, 0), env.Down, env.NewState(6, 0)},
		{"clip bottom left", env.NewState(6, 0), env.LeftDown,
			env.NewState(6, 0)},
		{"diagonal in wind", env.NewState(4, 5), env.RightDown,
			env.NewState(4, 6)},
	}

	for _, c := range cases {
		if got := g.Next(c.state, c.a); !got.Equal(c.want) {
			t.Errorf("%s: next(%v, %v): want %v, have %v", c.name, c.state,
				c.a, c.want, got)
		}
	}
}

func TestNextIsDeterministic(t *testing.T) {
	g := newDefault(t)
	s := env.NewState(2, 5)
	first := g.Next(s, env.LeftUp)
	for i := 0; i < 10; i++ {
		if next := g.Next(s, env.LeftUp); !next.Equal(first) {
			t.Fatalf("next changed between calls: %v then %v", first, next)
		}
	}
}

func TestAtGoal(t *testing.T) {
	g := newDefault(t)
	if !g.AtGoal(DefaultGoal) {
		t.Errorf("goal %v should be at goal", DefaultGoal)
	}
	if g.AtGoal(DefaultStart) {
		t.Errorf("start %v should not be at goal", DefaultStart)
	}
	if g.AtGoal(env.NewState(DefaultGoal.Col, DefaultGoal.Row)) {
		t.Error("transposed goal should not be at goal")
	}
}

func TestWindIsCopied(t *testing.T) {
	c := DefaultConfig()
	g, err := New(c)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	c.Wind[6] = 0
	if got := g.Next(env.NewState(3, 6), env.Right); !got.Equal(
		env.NewState(1, 7)) {
		t.Errorf("changing the config wind changed the grid: have %v", got)
	}

	w := g.Wind()
	w[6] = 0
	if g.Wind()[6] != 2 {
		t.Error("Wind() should return a copy")
	}
}

func TestReward(t *testing.T) {
	g := newDefault(t)
	s := env.NewState(3, 6)
	if r := g.GetReward(s, env.Right, g.Next(s, env.Right)); r != -1.0 {
		t.Errorf("reward: want -1, have %v", r)
	}
}
