// Package render draws learned policies and learning curves
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/windygrid/agent/tabular"
	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/environment/windygrid"
)

// Diagram draws the greedy policy of some action values as a grid of
// action labels, one line per row of the gridworld:
//
//	Result of episode 1
//	|R |R |R |R |R |R |R |R |R |D |
//	...
//	 0  0  0  1  1  1  2  2  1  0
//
// The last line shows the wind of each column. When colours are enabled,
// the start cell is drawn green and the goal cell red.
type Diagram struct {
	grid *windygrid.WindyGrid
	au   aurora.Aurora
}

// NewDiagram returns a new Diagram of policies on grid
func NewDiagram(grid *windygrid.WindyGrid, colours bool) *Diagram {
	return &Diagram{grid: grid, au: aurora.NewAurora(colours)}
}

// Render writes the greedy policy with respect to values, headed by the
// episode number, to w
func (d *Diagram) Render(w io.Writer, values *tabular.ActionValues,
	episode int) error {
	_, err := fmt.Fprintf(w, "Result of episode %d\n%v", episode,
		d.Policy(values))
	return err
}

// Policy returns the greedy policy with respect to values as a diagram
// without a heading
func (d *Diagram) Policy(values *tabular.ActionValues) string {
	r, c := d.grid.Dims()
	var b strings.Builder

	for row := 0; row < r; row++ {
		b.WriteString("|")
		for col := 0; col < c; col++ {
			s := env.NewState(row, col)
			b.WriteString(d.cell(s, values.Greedy(s).Label()))
			b.WriteString("|")
		}
		b.WriteString("\n")
	}

	for _, wind := range d.grid.Wind() {
		b.WriteString(fmt.Sprintf(" %-2d", wind))
	}
	b.WriteString("\n")

	return b.String()
}

func (d *Diagram) cell(s env.State, label string) string {
	label = fmt.Sprintf("%-2s", label)
	switch {
	case d.grid.AtGoal(s):
		return d.au.Red(label).Bold().String()
	case s.Equal(d.grid.Start()):
		return d.au.Green(label).String()
	}
	return label
}
