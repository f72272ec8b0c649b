package simulation

import (
	"math"
	"testing"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

func TestPercentileInterpolation(t *testing.T) {
	cases := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"median of four", []float64{1, 2, 3, 4}, 50, 2.5},
		{"min", []float64{1, 2, 3, 4}, 0, 1},
		{"max", []float64{1, 2, 3, 4}, 100, 4},
		{"exact order statistic", []float64{10, 20, 30, 40, 50}, 25, 20},
		{"lower band", []float64{10, 20, 30, 40, 50}, 2.5, 11},
		{"upper band", []float64{10, 20, 30, 40, 50}, 97.5, 49},
		{"single sample", []float64{42}, 97.5, 42},
		{"empty", nil, 50, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := percentile(c.sorted, c.p); !almostEqual(got, c.want, 1e-9) {
				t.Fatalf("percentile(%v, %g) got %g want %g", c.sorted, c.p, got, c.want)
			}
		})
	}
}

func TestAggregateHandComputed(t *testing.T) {
	ens := &domain.Ensemble{
		Values: [][]float64{
			{500, 400, 300},
			{500, 600, 100},
			{500, 200, 0},
			{500, 800, 400},
		},
		Depleted: []bool{false, false, true, false},
	}
	cfg := domain.SimulationConfig{
		InitialInvestment: 500,
		Years:             2,
		NumSimulations:    4,
		InflationRate:     0,
		WithdrawalRate:    0.04,
	}

	res := Aggregate(ens, cfg, false)

	// finals are [300, 100, 0, 400]: mean 200, population variance
	// ((100^2 + 100^2 + 200^2 + 200^2) / 4) = 25000.
	if !almostEqual(res.MeanFinalValue, 200, 1e-9) {
		t.Errorf("mean got %g want 200", res.MeanFinalValue)
	}
	if !almostEqual(res.StdFinalValue, math.Sqrt(25000), 1e-9) {
		t.Errorf("std got %g want %g", res.StdFinalValue, math.Sqrt(25000))
	}
	if res.DepletionProbability != 25 {
		t.Errorf("depletion got %g want 25", res.DepletionProbability)
	}
	if !almostEqual(res.AnnualWithdrawal, 20, 1e-9) {
		t.Errorf("annual withdrawal got %g want 20", res.AnnualWithdrawal)
	}
	// Zero inflation leaves adjusted figures nominal.
	if res.InflationAdjustedMean != res.MeanFinalValue {
		t.Errorf("adjusted mean got %g want %g", res.InflationAdjustedMean, res.MeanFinalValue)
	}
	if res.Detailed() {
		t.Error("bands should be absent without detailed aggregation")
	}
}

func TestAggregateInflationAdjustment(t *testing.T) {
	ens := &domain.Ensemble{
		Values:   [][]float64{{100, 214}},
		Depleted: []bool{false},
	}
	cfg := domain.SimulationConfig{
		InitialInvestment: 100,
		Years:             1,
		NumSimulations:    1,
		InflationRate:     0.07,
		WithdrawalRate:    0,
	}

	res := Aggregate(ens, cfg, false)
	if !almostEqual(res.InflationAdjustedMean, 200, 1e-9) {
		t.Errorf("adjusted mean got %g want 200", res.InflationAdjustedMean)
	}
}

func TestAggregateFinalWithdrawalByPolicy(t *testing.T) {
	ens := &domain.Ensemble{
		Values:   [][]float64{{1000, 2000}},
		Depleted: []bool{false},
	}
	cfg := domain.SimulationConfig{
		InitialInvestment: 1000,
		Years:             1,
		NumSimulations:    1,
		InflationRate:     0,
		WithdrawalRate:    0.05,
	}

	constant := Aggregate(ens, cfg, false)
	if !almostEqual(constant.FinalYearWithdrawal, 50, 1e-9) {
		t.Errorf("constant final withdrawal got %g want 50", constant.FinalYearWithdrawal)
	}

	cfg.WithdrawalPolicy = domain.WithdrawalDynamic
	dynamic := Aggregate(ens, cfg, false)
	if !almostEqual(dynamic.FinalYearWithdrawal, 100, 1e-9) {
		t.Errorf("dynamic final withdrawal got %g want 100", dynamic.FinalYearWithdrawal)
	}
}

func TestPercentileBandsOrderedAndAnchored(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.NumSimulations = 250
	cfg.Years = 20

	res, ens, err := NewSimulator(2024).RunWithPaths(cfg)
	if err != nil {
		t.Fatalf("RunWithPaths failed: %v", err)
	}
	if !res.Detailed() {
		t.Fatal("detailed run should carry bands")
	}
	if len(res.LowerBand) != ens.Steps() || len(res.MedianPath) != ens.Steps() || len(res.UpperBand) != ens.Steps() {
		t.Fatalf("band length mismatch: %d/%d/%d vs %d steps",
			len(res.LowerBand), len(res.MedianPath), len(res.UpperBand), ens.Steps())
	}

	// Every trajectory starts at the initial investment, so all three
	// bands are anchored there too.
	if res.LowerBand[0] != cfg.InitialInvestment || res.UpperBand[0] != cfg.InitialInvestment {
		t.Errorf("bands not anchored at initial investment: %g / %g",
			res.LowerBand[0], res.UpperBand[0])
	}

	for step := range res.MedianPath {
		if res.LowerBand[step] > res.MedianPath[step] || res.MedianPath[step] > res.UpperBand[step] {
			t.Fatalf("band ordering violated at step %d: %g / %g / %g",
				step, res.LowerBand[step], res.MedianPath[step], res.UpperBand[step])
		}
	}
}
