package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func sampleEnsemble() *domain.Ensemble {
	return &domain.Ensemble{
		Values: [][]float64{
			{500000, 510000, 530000},
			{500000, 450000, 0},
		},
		Depleted: []bool{false, true},
	}
}

func TestGenerateSummaryCSV(t *testing.T) {
	report := &SimulationCSVReport{Result: sampleResult()}
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, report.GenerateSummaryCSV(path))

	rows := readCSV(t, path)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Metric", "Value", "Description"}, rows[0])

	byMetric := map[string]string{}
	for _, row := range rows[1:] {
		byMetric[row[0]] = row[1]
	}
	assert.Equal(t, "£812,345.67", byMetric["Mean Final Value"])
	assert.Equal(t, "4.50%", byMetric["Depletion Probability"])
	assert.Equal(t, "3000", byMetric["Number of Simulations"])
	assert.Equal(t, "constant", byMetric["Withdrawal Policy"])
}

func TestGenerateBandsCSV(t *testing.T) {
	report := &SimulationCSVReport{Result: sampleDetailedResult()}
	path := filepath.Join(t.TempDir(), "bands.csv")
	require.NoError(t, report.GenerateBandsCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 4) // header + 3 years
	assert.Equal(t, []string{"Year", "P2.5", "Median", "P97.5"}, rows[0])
	assert.Equal(t, []string{"2", "300000.00", "530000.00", "800000.00"}, rows[3])
}

func TestGenerateBandsCSVRequiresDetailedRun(t *testing.T) {
	report := &SimulationCSVReport{Result: sampleResult()}
	err := report.GenerateBandsCSV(filepath.Join(t.TempDir(), "bands.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not detailed")
}

func TestGenerateTrajectoriesCSV(t *testing.T) {
	report := &SimulationCSVReport{Result: sampleResult(), Ensemble: sampleEnsemble()}
	path := filepath.Join(t.TempDir(), "paths.csv")
	require.NoError(t, report.GenerateTrajectoriesCSV(path))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"SimulationID", "Year0", "Year1", "Year2", "Depleted"}, rows[0])
	assert.Equal(t, []string{"1", "500000.00", "450000.00", "0.00", "true"}, rows[2])
}

func TestGenerateTrajectoriesCSVRequiresEnsemble(t *testing.T) {
	report := &SimulationCSVReport{Result: sampleResult()}
	err := report.GenerateTrajectoriesCSV(filepath.Join(t.TempDir(), "paths.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ensemble")
}
