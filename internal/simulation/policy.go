package simulation

import (
	"math"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// WithdrawalFunc computes the amount taken out of the portfolio in a
// given year. prior is the balance at the end of the previous year,
// current the balance after this year's growth and before the
// withdrawal. year counts from 1.
type WithdrawalFunc func(prior, current float64, year int, cfg domain.SimulationConfig) float64

// constantRealWithdrawal keeps the withdrawal level in purchasing
// power terms: it starts at initial_investment * withdrawal_rate and
// its nominal amount rises with inflation each year.
func constantRealWithdrawal(_, _ float64, year int, cfg domain.SimulationConfig) float64 {
	base := cfg.InitialInvestment * cfg.WithdrawalRate
	return base * math.Pow(1+cfg.InflationRate, float64(year-1))
}

// dynamicWithdrawal takes a fixed fraction of whatever the portfolio
// is worth after this year's growth.
func dynamicWithdrawal(_, current float64, _ int, cfg domain.SimulationConfig) float64 {
	return current * cfg.WithdrawalRate
}

// policyFor maps the configured policy name to its withdrawal function.
func policyFor(cfg domain.SimulationConfig) WithdrawalFunc {
	if cfg.Policy() == domain.WithdrawalDynamic {
		return dynamicWithdrawal
	}
	return constantRealWithdrawal
}
