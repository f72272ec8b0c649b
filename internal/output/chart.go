package output

import (
	"bytes"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// TerminalChart renders the percentile band as an ASCII chart for
// terminal display.
type TerminalChart struct {
	Height int
	Width  int
}

// NewTerminalChart returns a chart with the default dimensions.
func NewTerminalChart() *TerminalChart {
	return &TerminalChart{Height: 15, Width: 80}
}

// Render plots the lower band, median and upper band of a detailed
// result. Without bands it falls back to a flat line at the mean.
func (tc *TerminalChart) Render(result *domain.SimulationResult) string {
	var buf bytes.Buffer

	caption := fmt.Sprintf("Portfolio value over %d years (%d trajectories)",
		result.Config.Years, result.Config.NumSimulations)

	if result.Detailed() {
		graph := asciigraph.PlotMany(
			[][]float64{result.LowerBand, result.MedianPath, result.UpperBand},
			asciigraph.Height(tc.Height),
			asciigraph.Width(tc.Width),
			asciigraph.Caption(caption),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue, asciigraph.Green),
			asciigraph.SeriesLegends("2.5th pct", "median", "97.5th pct"),
		)
		buf.WriteString(graph)
	} else {
		flat := make([]float64, result.Config.Years+1)
		for i := range flat {
			flat[i] = result.MeanFinalValue
		}
		graph := asciigraph.Plot(flat,
			asciigraph.Height(tc.Height),
			asciigraph.Width(tc.Width),
			asciigraph.Caption(caption),
		)
		buf.WriteString(graph)
	}

	buf.WriteString("\n")
	return buf.String()
}
