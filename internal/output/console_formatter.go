package output

import (
	"bytes"
	"fmt"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// ConsoleFormatter renders the two-section text report: input
// parameters first, then the aggregate results.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	cfg := result.Config
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "Initial conditions")
	fmt.Fprintln(&buf, "==================")
	fmt.Fprintf(&buf, "     Portfolio initial value: %s\n", FormatCurrency(cfg.InitialInvestment))
	fmt.Fprintf(&buf, "              Inflation rate: %s\n", FormatPercentage(cfg.InflationRate))
	fmt.Fprintf(&buf, "   Expected portfolio return: %s\n", FormatPercentage(cfg.AnnualMeanReturn))
	fmt.Fprintf(&buf, "           Return volatility: %s\n", FormatPercentage(cfg.AnnualVolatility))
	fmt.Fprintf(&buf, "  Withdrawal amount per year: %s\n", FormatCurrency(result.AnnualWithdrawal))
	fmt.Fprintf(&buf, "      Annual withdrawal rate: %g\n", cfg.WithdrawalRate)
	fmt.Fprintf(&buf, "           Withdrawal policy: %s\n", cfg.Policy())
	fmt.Fprintf(&buf, "Simulation duration in years: %d\n", cfg.Years)
	fmt.Fprintf(&buf, "       Number of simulations: %d\n", cfg.NumSimulations)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Results:")
	fmt.Fprintln(&buf, "========")
	fmt.Fprintf(&buf, "Without inflation - mean final portfolio value: %s\n", FormatCurrency(result.MeanFinalValue))
	fmt.Fprintf(&buf, "Without inflation -   SD final portfolio value: %s\n", FormatCurrency(result.StdFinalValue))
	fmt.Fprintf(&buf, "Inflation-adjusted mean final portfolio value: %s\n", FormatCurrency(result.InflationAdjustedMean))
	fmt.Fprintf(&buf, "Inflation-adjusted -  SD final portfolio value: %s\n", FormatCurrency(result.InflationAdjustedStd))
	fmt.Fprintf(&buf, "Final-year withdrawal amount: %s\n", FormatCurrency(result.FinalYearWithdrawal))
	fmt.Fprintf(&buf, "Probability of portfolio depletion before %d years: %s\n",
		cfg.Years, FormatPercentagePoints(result.DepletionProbability))

	if result.Detailed() {
		last := len(result.MedianPath) - 1
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Final-year percentile band:")
		fmt.Fprintf(&buf, "   2.5th percentile: %s\n", FormatCurrency(result.LowerBand[last]))
		fmt.Fprintf(&buf, "             Median: %s\n", FormatCurrency(result.MedianPath[last]))
		fmt.Fprintf(&buf, "  97.5th percentile: %s\n", FormatCurrency(result.UpperBand[last]))
	}

	return buf.Bytes(), nil
}
