package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

func TestGenerateHTMLReport(t *testing.T) {
	report := &HTMLReport{Result: sampleDetailedResult(), Ensemble: sampleEnsemble()}
	path := filepath.Join(t.TempDir(), "out", "report.html")
	require.NoError(t, report.GenerateHTMLReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "chart.js")
	assert.Contains(t, html, "Portfolio Monte Carlo Simulation")
	assert.Contains(t, html, "Toggle log scale")
	assert.Contains(t, html, "rgba(52, 152, 219, 0.1)", "trajectories drawn as faint blue lines")
	assert.Contains(t, html, `"label":"Median"`)
	assert.Contains(t, html, `"label":"Trajectory 0"`)
	assert.Contains(t, html, "£812,345.67")
}

func TestGenerateHTMLReportWithoutEnsemble(t *testing.T) {
	report := &HTMLReport{Result: sampleDetailedResult()}
	html, err := report.generateHTMLContent()
	require.NoError(t, err)

	assert.NotContains(t, html, "Trajectory 0")
	assert.Contains(t, html, `"label":"Median"`)
}

func TestHTMLReportCapsPlottedTrajectories(t *testing.T) {
	ens := &domain.Ensemble{
		Values:   make([][]float64, maxPlottedTrajectories+50),
		Depleted: make([]bool, maxPlottedTrajectories+50),
	}
	for i := range ens.Values {
		ens.Values[i] = []float64{1, 2}
	}

	report := &HTMLReport{Result: sampleResult(), Ensemble: ens}
	paths, err := report.generatePathDatasets()
	require.NoError(t, err)

	assert.Equal(t, maxPlottedTrajectories, strings.Count(paths, `"label":"Trajectory`))
}

func TestTerminalChartRender(t *testing.T) {
	chart := NewTerminalChart()

	detailed := chart.Render(sampleDetailedResult())
	assert.Contains(t, detailed, "Portfolio value over 30 years")
	assert.Contains(t, detailed, "median")

	summary := chart.Render(sampleResult())
	assert.Contains(t, summary, "Portfolio value over 30 years")
}
