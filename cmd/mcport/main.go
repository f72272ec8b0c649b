package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mcscylla/portfolio-simulator/internal/config"
	"github.com/mcscylla/portfolio-simulator/internal/domain"
	"github.com/mcscylla/portfolio-simulator/internal/logging"
	"github.com/mcscylla/portfolio-simulator/internal/output"
	"github.com/mcscylla/portfolio-simulator/internal/simulation"
	"github.com/mcscylla/portfolio-simulator/internal/tui"
)

var (
	portfolioValue float64
	meanReturn     float64
	volatility     float64
	years          int
	simulations    int
	inflationRate  float64
	withdrawalRate float64
	dynamicPolicy  bool

	seed    int64
	workers int

	configFile string
	format     string
	csvDir     string
	htmlPath   string
	display    bool

	logLevel  string
	logPretty bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mcport",
		Short: "Monte Carlo retirement portfolio simulator",
		Long: "mcport estimates the probability distribution of a retirement " +
			"portfolio's value under random market returns and annual withdrawals.",
		RunE: runSimulation,
	}

	flags := rootCmd.Flags()
	flags.Float64VarP(&portfolioValue, "portfolio-value", "p", 500000, "starting amount in the portfolio")
	flags.Float64VarP(&meanReturn, "mean-return", "m", 0.07, "average annual return (e.g. 0.07 for 7%)")
	flags.Float64VarP(&volatility, "volatility", "v", 0.15, "annual return standard deviation")
	flags.IntVarP(&years, "years", "y", 30, "duration of the simulation in years")
	flags.IntVarP(&simulations, "simulations", "s", 3000, "number of trajectories to generate")
	flags.Float64VarP(&inflationRate, "inflation-rate", "i", 0.039, "average annual inflation")
	flags.Float64VarP(&withdrawalRate, "withdrawal-rate", "w", 0.03, "withdrawal rate (fraction per year)")
	flags.BoolVar(&dynamicPolicy, "dynamic-withdrawal", false, "withdraw a fraction of current value instead of a constant real amount")
	flags.BoolVarP(&display, "display", "d", false, "render an ASCII chart of the percentile band")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 picks a time-based seed)")
	flags.IntVar(&workers, "workers", 10, "concurrent trajectory workers")
	flags.StringVarP(&configFile, "config", "c", "", "YAML parameter file (flags override it)")
	flags.StringVarP(&format, "format", "f", "console", "report format: console or json")
	flags.StringVar(&csvDir, "csv-dir", "", "directory for CSV exports (summary, bands, trajectories)")
	flags.StringVar(&htmlPath, "html", "", "path for an interactive HTML report")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "log-pretty", false, "human-friendly log output")

	formCmd := &cobra.Command{
		Use:   "form",
		Short: "interactive parameter form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, seed)
		},
	}
	formCmd.Flags().AddFlagSet(flags)

	exampleCmd := &cobra.Command{
		Use:   "example-config [path]",
		Short: "write an example parameter file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mcport.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.NewInputParser().WriteExampleFile(path); err != nil {
				return err
			}
			fmt.Printf("wrote example configuration to %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(formCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig assembles the simulation parameters: file values first
// (when --config is given), then any flag the user set on the command
// line on top.
func buildConfig(cmd *cobra.Command) (domain.SimulationConfig, error) {
	cfg := domain.DefaultConfig()

	if configFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	flagBindings := map[string]func(){
		"portfolio-value":    func() { cfg.InitialInvestment = portfolioValue },
		"mean-return":        func() { cfg.AnnualMeanReturn = meanReturn },
		"volatility":         func() { cfg.AnnualVolatility = volatility },
		"years":              func() { cfg.Years = years },
		"simulations":        func() { cfg.NumSimulations = simulations },
		"inflation-rate":     func() { cfg.InflationRate = inflationRate },
		"withdrawal-rate":    func() { cfg.WithdrawalRate = withdrawalRate },
		"dynamic-withdrawal": func() { cfg.WithdrawalPolicy = policyFlagValue() },
	}
	for name, apply := range flagBindings {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return cfg, cfg.Validate()
}

func policyFlagValue() string {
	if dynamicPolicy {
		return domain.WithdrawalDynamic
	}
	return domain.WithdrawalConstant
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{Level: logLevel, Pretty: logPretty})

	sim := simulation.NewSimulator(seed)
	sim.Workers = workers
	sim.Logger = logging.EngineAdapter{L: logger}

	// Charts and exports need the trajectories; a plain report does not.
	needPaths := display || csvDir != "" || htmlPath != ""

	var result *domain.SimulationResult
	var ens *domain.Ensemble
	if needPaths {
		result, ens, err = sim.RunWithPaths(cfg)
	} else {
		result, err = sim.Run(cfg)
	}
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
	}
	report, err := formatter.Format(result)
	if err != nil {
		return err
	}
	os.Stdout.Write(report)

	if display {
		fmt.Println()
		fmt.Print(output.NewTerminalChart().Render(result))
	}

	if csvDir != "" {
		if err := writeCSVExports(result, ens, csvDir, logger); err != nil {
			return err
		}
	}

	if htmlPath != "" {
		html := &output.HTMLReport{Result: result, Ensemble: ens}
		if err := html.GenerateHTMLReport(htmlPath); err != nil {
			return err
		}
		logger.Info().Str("path", htmlPath).Msg("wrote HTML report")
	}

	return nil
}

func writeCSVExports(result *domain.SimulationResult, ens *domain.Ensemble, dir string, logger zerolog.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create CSV directory: %w", err)
	}

	report := &output.SimulationCSVReport{Result: result, Ensemble: ens}
	exports := []struct {
		name string
		gen  func(string) error
	}{
		{"summary.csv", report.GenerateSummaryCSV},
		{"bands.csv", report.GenerateBandsCSV},
		{"trajectories.csv", report.GenerateTrajectoriesCSV},
	}
	for _, e := range exports {
		path := filepath.Join(dir, e.name)
		if err := e.gen(path); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("wrote CSV export")
	}
	return nil
}
