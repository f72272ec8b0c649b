package simulation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// Percentiles used for the per-year confidence band.
const (
	bandLowerPct  = 2.5
	bandMedianPct = 50
	bandUpperPct  = 97.5
)

// Aggregate reduces an ensemble to summary statistics. Standard
// deviations are population figures (divide by N, matching the
// ensemble being the whole population of generated trajectories).
// When detailed is true the per-year percentile bands are filled in.
func Aggregate(ens *domain.Ensemble, cfg domain.SimulationConfig, detailed bool) *domain.SimulationResult {
	finals := ens.FinalValues()

	depleted := 0
	for _, d := range ens.Depleted {
		if d {
			depleted++
		}
	}

	mean := stat.Mean(finals, nil)
	std := math.Sqrt(stat.PopVariance(finals, nil))

	inflationFactor := math.Pow(1+cfg.InflationRate, float64(cfg.Years))

	res := &domain.SimulationResult{
		Config:                cfg,
		DepletionProbability:  float64(depleted) / float64(ens.NumTrajectories()) * 100,
		MeanFinalValue:        mean,
		StdFinalValue:         std,
		InflationAdjustedMean: mean / inflationFactor,
		InflationAdjustedStd:  std / inflationFactor,
		AnnualWithdrawal:      cfg.InitialInvestment * cfg.WithdrawalRate,
	}

	if cfg.Policy() == domain.WithdrawalDynamic {
		res.FinalYearWithdrawal = res.InflationAdjustedMean * cfg.WithdrawalRate
	} else {
		res.FinalYearWithdrawal = cfg.InitialInvestment * cfg.WithdrawalRate
	}

	if detailed {
		res.LowerBand, res.MedianPath, res.UpperBand = percentileBands(ens)
	}
	return res
}

// percentileBands computes the 2.5th, 50th and 97.5th percentile of
// the trajectory values at every step of the horizon.
func percentileBands(ens *domain.Ensemble) (lower, median, upper domain.YearSeries) {
	steps := ens.Steps()
	lower = make(domain.YearSeries, steps)
	median = make(domain.YearSeries, steps)
	upper = make(domain.YearSeries, steps)

	column := make([]float64, ens.NumTrajectories())
	for step := 0; step < steps; step++ {
		for i, row := range ens.Values {
			column[i] = row[step]
		}
		sort.Float64s(column)
		lower[step] = percentile(column, bandLowerPct)
		median[step] = percentile(column, bandMedianPct)
		upper[step] = percentile(column, bandUpperPct)
	}
	return lower, median, upper
}

// percentile interpolates linearly between the order statistics of an
// already sorted slice. p is in [0, 100].
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
