package render

import (
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/samuelfneumann/windygrid/agent/tabular"
	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/environment/windygrid"
)

// CellSize is the width and height in pixels of a single grid cell in
// policy images
const CellSize = 48

// PolicyImage draws the greedy policy of values on grid as an image. Each
// cell holds the label of its greedy action; the start cell is shaded
// green, the goal cell red and a strip below the grid shows the wind of
// each column, darker for stronger wind.
func PolicyImage(grid *windygrid.WindyGrid,
	values *tabular.ActionValues) *gg.Context {
	r, c := grid.Dims()
	wind := grid.Wind()

	maxWind := 1
	for _, w := range wind {
		if w > maxWind {
			maxWind = w
		}
	}

	dc := gg.NewContext(c*CellSize, (r+1)*CellSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			s := env.NewState(row, col)
			x, y := float64(col*CellSize), float64(row*CellSize)

			switch {
			case grid.AtGoal(s):
				dc.SetRGB(0.95, 0.6, 0.6)
			case s.Equal(grid.Start()):
				dc.SetRGB(0.6, 0.9, 0.6)
			default:
				dc.SetRGB(1, 1, 1)
			}
			dc.DrawRectangle(x, y, CellSize, CellSize)
			dc.FillPreserve()
			dc.SetRGB(0.3, 0.3, 0.3)
			dc.SetLineWidth(1)
			dc.Stroke()

			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(values.Greedy(s).Label(), x+CellSize/2,
				y+CellSize/2, 0.5, 0.5)
		}
	}

	// Wind strip
	for col, w := range wind {
		x, y := float64(col*CellSize), float64(r*CellSize)
		shade := 1 - 0.6*float64(w)/float64(maxWind)
		dc.SetRGB(shade, shade, 1)
		dc.DrawRectangle(x, y, CellSize, CellSize)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(strconv.Itoa(w), x+CellSize/2,
			y+CellSize/2, 0.5, 0.5)
	}

	return dc
}

// EncodePolicyImage writes the image drawn by PolicyImage to w as a PNG
func EncodePolicyImage(w io.Writer, grid *windygrid.WindyGrid,
	values *tabular.ActionValues) error {
	if err := PolicyImage(grid, values).EncodePNG(w); err != nil {
		return errors.Wrap(err, "could not encode policy image")
	}
	return nil
}

// SavePolicyImage saves the image drawn by PolicyImage as a PNG file
func SavePolicyImage(filename string, grid *windygrid.WindyGrid,
	values *tabular.ActionValues) error {
	if err := PolicyImage(grid, values).SavePNG(filename); err != nil {
		return errors.Wrapf(err, "could not save policy image to %v",
			filename)
	}
	return nil
}
