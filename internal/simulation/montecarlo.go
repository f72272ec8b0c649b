package simulation

import (
	"math/rand/v2"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
)

// seedFunc returns a pseudo-random seed (override for deterministic tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the default seed source.
func SetSeedFunc(f func() int64) { seedFunc = f }

// defaultWorkers bounds concurrent trajectory generation.
const defaultWorkers = 10

// Simulator runs Monte Carlo portfolio simulations. The zero value is
// not usable; construct with NewSimulator.
type Simulator struct {
	Seed    int64
	Workers int
	Logger  Logger
}

// NewSimulator creates a simulator. A zero seed picks a time-based one,
// so two runs with seed 0 will differ; any other seed is fully
// reproducible regardless of worker count.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = seedFunc()
	}
	return &Simulator{
		Seed:    seed,
		Workers: defaultWorkers,
		Logger:  NopLogger{},
	}
}

// Run simulates the configured ensemble and returns summary statistics.
func (s *Simulator) Run(cfg domain.SimulationConfig) (*domain.SimulationResult, error) {
	ens, err := s.Simulate(cfg)
	if err != nil {
		return nil, err
	}
	return Aggregate(ens, cfg, false), nil
}

// RunWithPaths is Run plus the raw ensemble and per-year percentile
// bands, for callers that render trajectories.
func (s *Simulator) RunWithPaths(cfg domain.SimulationConfig) (*domain.SimulationResult, *domain.Ensemble, error) {
	ens, err := s.Simulate(cfg)
	if err != nil {
		return nil, nil, err
	}
	return Aggregate(ens, cfg, true), ens, nil
}

// Simulate generates the raw ensemble: one row per trajectory, years+1
// balances each, row 0 pinned to the initial investment.
func (s *Simulator) Simulate(cfg domain.SimulationConfig) (*domain.Ensemble, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	withdraw := policyFor(cfg)

	s.Logger.Infof("running %d trajectories over %d years (policy=%s, seed=%d)",
		cfg.NumSimulations, cfg.Years, cfg.Policy(), s.Seed)

	ens := &domain.Ensemble{
		Values:   make([][]float64, cfg.NumSimulations),
		Depleted: make([]bool, cfg.NumSimulations),
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := 0; i < cfg.NumSimulations; i++ {
		wg.Add(1)
		go func(trajIndex int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			row := make([]float64, cfg.Years+1)
			depleted := s.runTrajectory(cfg, withdraw, trajIndex, row)
			ens.Values[trajIndex] = row
			ens.Depleted[trajIndex] = depleted
		}(i)
	}

	wg.Wait()

	s.Logger.Debugf("ensemble complete: %d x %d", ens.NumTrajectories(), ens.Steps())
	return ens, nil
}

// runTrajectory fills row with one portfolio path and reports whether
// it depleted. Each trajectory draws from its own substream keyed by
// index, so results do not depend on scheduling order.
func (s *Simulator) runTrajectory(cfg domain.SimulationConfig, withdraw WithdrawalFunc, index int, row []float64) bool {
	dist := distuv.Normal{
		Mu:    cfg.AnnualMeanReturn,
		Sigma: cfg.AnnualVolatility,
		Src:   rand.NewPCG(uint64(s.Seed), uint64(index)),
	}

	row[0] = cfg.InitialInvestment
	value := cfg.InitialInvestment

	for year := 1; year <= cfg.Years; year++ {
		annualReturn := dist.Rand()
		prior := value
		value *= 1 + annualReturn
		value -= withdraw(prior, value, year, cfg)

		// Balance exhausted: clamp and leave the rest of the row zero.
		if value <= 0 {
			return true
		}
		row[year] = value
	}
	return false
}
