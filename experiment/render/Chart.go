package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// EpisodeChart writes an HTML page to w with a line chart of the number
// of steps taken in each episode
func EpisodeChart(w io.Writer, title string, lengths []int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d episodes", len(lengths)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Steps"}),
	)

	episodes := make([]string, 0, len(lengths))
	items := make([]opts.LineData, 0, len(lengths))
	for i, l := range lengths {
		episodes = append(episodes, fmt.Sprintf("%d", i+1))
		items = append(items, opts.LineData{Value: l})
	}

	line.SetXAxis(episodes).AddSeries("steps per episode", items)

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "could not render episode chart")
	}
	return nil
}

// SaveEpisodeChart saves the page written by EpisodeChart to filename
func SaveEpisodeChart(filename, title string, lengths []int) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create chart file")
	}
	defer f.Close()

	return EpisodeChart(f, title, lengths)
}
