package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// SimulationCSVReport generates CSV exports for a Monte Carlo run.
// Bands and trajectories are only available when the run was detailed.
type SimulationCSVReport struct {
	Result   *domain.SimulationResult
	Ensemble *domain.Ensemble
}

// GenerateSummaryCSV creates a summary CSV with aggregate statistics.
func (m *SimulationCSVReport) GenerateSummaryCSV(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Metric", "Value", "Description"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	r := m.Result
	cfg := r.Config
	summaryData := [][]string{
		{"Initial Investment", FormatCurrency(cfg.InitialInvestment), "Portfolio value at year 0"},
		{"Withdrawal Policy", cfg.Policy(), "constant (real amount) or dynamic (fraction of value)"},
		{"Annual Withdrawal", FormatCurrency(r.AnnualWithdrawal), "First-year withdrawal amount"},
		{"Mean Final Value", FormatCurrency(r.MeanFinalValue), "Mean portfolio value at end of horizon"},
		{"SD Final Value", FormatCurrency(r.StdFinalValue), "Population standard deviation of final values"},
		{"Inflation-Adjusted Mean", FormatCurrency(r.InflationAdjustedMean), "Mean final value in today's money"},
		{"Inflation-Adjusted SD", FormatCurrency(r.InflationAdjustedStd), "SD of final values in today's money"},
		{"Final-Year Withdrawal", FormatCurrency(r.FinalYearWithdrawal), "Reported end-of-horizon withdrawal figure"},
		{"Depletion Probability", FormatPercentagePoints(r.DepletionProbability), "Share of trajectories that ran out of money"},
		{"Years", strconv.Itoa(cfg.Years), "Simulation horizon"},
		{"Number of Simulations", strconv.Itoa(cfg.NumSimulations), "Total trajectories generated"},
	}

	for _, row := range summaryData {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}

	return nil
}

// GenerateBandsCSV creates a per-year CSV of the percentile band.
func (m *SimulationCSVReport) GenerateBandsCSV(outputPath string) error {
	if !m.Result.Detailed() {
		return fmt.Errorf("percentile bands not available: run was not detailed")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Year", "P2.5", "Median", "P97.5"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for year := range m.Result.MedianPath {
		row := []string{
			strconv.Itoa(year),
			strconv.FormatFloat(m.Result.LowerBand[year], 'f', 2, 64),
			strconv.FormatFloat(m.Result.MedianPath[year], 'f', 2, 64),
			strconv.FormatFloat(m.Result.UpperBand[year], 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}

	return nil
}

// GenerateTrajectoriesCSV creates a CSV of every trajectory, one row
// per simulation with a final column flagging depletion.
func (m *SimulationCSVReport) GenerateTrajectoriesCSV(outputPath string) error {
	if m.Ensemble == nil {
		return fmt.Errorf("trajectories not available: ensemble was not retained")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, 0, m.Ensemble.Steps()+2)
	header = append(header, "SimulationID")
	for year := 0; year < m.Ensemble.Steps(); year++ {
		header = append(header, fmt.Sprintf("Year%d", year))
	}
	header = append(header, "Depleted")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, trajectory := range m.Ensemble.Values {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(i))
		for _, v := range trajectory {
			row = append(row, strconv.FormatFloat(v, 'f', 2, 64))
		}
		row = append(row, strconv.FormatBool(m.Ensemble.Depleted[i]))
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}

	return nil
}
