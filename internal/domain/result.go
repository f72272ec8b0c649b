package domain

// Ensemble is the raw output of a Monte Carlo run: one row per
// trajectory, each row holding years+1 balances with index 0 set to
// the initial investment. Once a trajectory depletes, every later
// entry in its row is zero.
type Ensemble struct {
	Values   [][]float64 `json:"values"`
	Depleted []bool      `json:"depleted"`
}

// NumTrajectories returns the number of rows in the ensemble.
func (e *Ensemble) NumTrajectories() int {
	return len(e.Values)
}

// Steps returns the number of columns (years + 1), or 0 for an empty
// ensemble.
func (e *Ensemble) Steps() int {
	if len(e.Values) == 0 {
		return 0
	}
	return len(e.Values[0])
}

// FinalValues returns the last column of the ensemble, one ending
// balance per trajectory.
func (e *Ensemble) FinalValues() []float64 {
	out := make([]float64, len(e.Values))
	for i, row := range e.Values {
		out[i] = row[len(row)-1]
	}
	return out
}

// YearSeries holds one statistic sampled at every step of the horizon,
// index 0 being the starting year.
type YearSeries []float64

// SimulationResult is the aggregated summary of an ensemble. Monetary
// fields are nominal end-of-horizon pounds unless named otherwise.
type SimulationResult struct {
	Config SimulationConfig `json:"config"`

	// DepletionProbability is a percentage in [0, 100].
	DepletionProbability float64 `json:"depletion_probability"`

	MeanFinalValue float64 `json:"mean_final_value"`
	StdFinalValue  float64 `json:"std_final_value"`

	// Inflation-adjusted figures divide the nominal values by
	// (1 + inflation_rate)^years.
	InflationAdjustedMean float64 `json:"inflation_adjusted_mean"`
	InflationAdjustedStd  float64 `json:"inflation_adjusted_std"`

	// AnnualWithdrawal is the first-year withdrawal amount.
	// FinalYearWithdrawal is the reported end-of-horizon figure: for
	// the dynamic policy it is the withdrawal implied by the
	// inflation-adjusted mean, for the constant policy the unchanged
	// real amount.
	AnnualWithdrawal    float64 `json:"annual_withdrawal"`
	FinalYearWithdrawal float64 `json:"final_year_withdrawal"`

	// Percentile bands across trajectories per year. Empty unless the
	// run requested detailed aggregation.
	LowerBand  YearSeries `json:"lower_band,omitempty"`
	MedianPath YearSeries `json:"median_path,omitempty"`
	UpperBand  YearSeries `json:"upper_band,omitempty"`
}

// Detailed reports whether per-year percentile bands were computed.
func (r *SimulationResult) Detailed() bool {
	return len(r.MedianPath) > 0
}
