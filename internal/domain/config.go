package domain

import (
	"fmt"
)

// Withdrawal policy identifiers accepted in configuration files and flags.
const (
	WithdrawalConstant = "constant"
	WithdrawalDynamic  = "dynamic"
)

// SimulationConfig holds every parameter a Monte Carlo run needs.
// Rates are decimal fractions (0.07 means 7%).
type SimulationConfig struct {
	InitialInvestment float64 `yaml:"initial_investment" json:"initial_investment"`
	AnnualMeanReturn  float64 `yaml:"annual_mean_return" json:"annual_mean_return"`
	AnnualVolatility  float64 `yaml:"annual_volatility" json:"annual_volatility"`
	Years             int     `yaml:"years" json:"years"`
	NumSimulations    int     `yaml:"num_simulations" json:"num_simulations"`
	InflationRate     float64 `yaml:"inflation_rate" json:"inflation_rate"`
	WithdrawalRate    float64 `yaml:"withdrawal_rate" json:"withdrawal_rate"`

	// WithdrawalPolicy selects how the yearly withdrawal is computed:
	// "constant" grows a fixed real amount with inflation, "dynamic"
	// takes a fraction of whatever the portfolio is worth that year.
	WithdrawalPolicy string `yaml:"withdrawal_policy" json:"withdrawal_policy"`
}

// DefaultConfig returns the stock parameter set used when nothing is
// overridden: a £500k portfolio drawn down 3% a year over 30 years.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		InitialInvestment: 500000,
		AnnualMeanReturn:  0.07,
		AnnualVolatility:  0.15,
		Years:             30,
		NumSimulations:    3000,
		InflationRate:     0.039,
		WithdrawalRate:    0.03,
		WithdrawalPolicy:  WithdrawalConstant,
	}
}

// Validate checks the configuration for values the simulation cannot
// run with. Checks run in a fixed order and the first failure is
// returned, so error text is stable for callers and tests.
func (c SimulationConfig) Validate() error {
	if c.InitialInvestment <= 0 {
		return fmt.Errorf("initial investment must be positive, got %g", c.InitialInvestment)
	}
	if c.AnnualVolatility < 0 {
		return fmt.Errorf("annual volatility cannot be negative, got %g", c.AnnualVolatility)
	}
	if c.Years < 0 {
		return fmt.Errorf("years cannot be negative, got %d", c.Years)
	}
	if c.NumSimulations < 1 {
		return fmt.Errorf("number of simulations must be at least 1, got %d", c.NumSimulations)
	}
	if c.InflationRate <= -1 {
		return fmt.Errorf("inflation rate must be greater than -1, got %g", c.InflationRate)
	}
	if c.WithdrawalRate < 0 || c.WithdrawalRate > 1 {
		return fmt.Errorf("withdrawal rate must be between 0 and 1, got %g", c.WithdrawalRate)
	}
	switch c.WithdrawalPolicy {
	case "", WithdrawalConstant, WithdrawalDynamic:
	default:
		return fmt.Errorf("unknown withdrawal policy %q (must be %q or %q)",
			c.WithdrawalPolicy, WithdrawalConstant, WithdrawalDynamic)
	}
	return nil
}

// Policy returns the effective withdrawal policy, defaulting to constant.
func (c SimulationConfig) Policy() string {
	if c.WithdrawalPolicy == "" {
		return WithdrawalConstant
	}
	return c.WithdrawalPolicy
}
