package calculation

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// trialChunkSize fixes how trials are partitioned across workers. Each
// chunk draws from its own seeded source, so results for a given
// (seed, trial count) do not depend on scheduling or worker count.
const trialChunkSize = 1024

// maxConcurrentChunks limits simultaneous chunk goroutines.
const maxConcurrentChunks = 8

// seedFunc provides the seed when the caller passes 0.
var seedFunc = func() uint64 { return uint64(time.Now().UnixNano()) }

// MonteCarloConfig holds the trial count and PRNG seed for a simulation.
type MonteCarloConfig struct {
	NumTrials int    `json:"num_trials"`
	Seed      uint64 `json:"seed"`
}

// MonteCarloSimulator runs repeated randomized projections of one plan,
// resampling each asset's return per trial from a normal distribution with
// that asset's mean and volatility. Tax treatment is not modeled in the
// stochastic path. Assets are sampled independently; no covariance input
// exists in the data model, so cross-asset correlation is not simulated.
type MonteCarloSimulator struct {
	Logger Logger

	engine *ProjectionEngine
	config MonteCarloConfig
}

// NewMonteCarloSimulator creates a simulator over an engine's plan.
// A zero seed is replaced with a clock-derived one.
func NewMonteCarloSimulator(engine *ProjectionEngine, config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	return &MonteCarloSimulator{
		Logger: NopLogger{},
		engine: engine,
		config: config,
	}
}

// Summary holds the sample statistics of a simulation's totals. StdDev is
// the population standard deviation; percentiles interpolate linearly
// between order statistics.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	P95    float64 `json:"p95"`
	P05    float64 `json:"p05"`
}

// SimulationResult is the outcome of one Monte Carlo run: the per-trial
// totals in trial order plus their summary statistics.
type SimulationResult struct {
	Totals    []float64 `json:"totals"`
	Summary   Summary   `json:"summary"`
	NumTrials int       `json:"num_trials"`
	Seed      uint64    `json:"seed"`
}

// assetParams is the float64 snapshot of a portfolio asset used per trial.
type assetParams struct {
	proportion float64
	meanReturn float64
	stdDev     float64
}

// Run executes the simulation. Trials are independent; each draws one
// return per asset, weight-sums them, inflation-adjusts, and records the
// untaxed lump-sum plus annuity future value at the realized rate.
// Negative and zero totals are valid outcomes.
func (s *MonteCarloSimulator) Run() (*SimulationResult, error) {
	n := s.config.NumTrials
	if n < 1 {
		return nil, fmt.Errorf("number of trials must be at least 1, got %d", n)
	}

	assets := make([]assetParams, len(s.engine.plan.Portfolio.Assets))
	for i, a := range s.engine.plan.Portfolio.Assets {
		assets[i] = assetParams{
			proportion: a.Proportion.InexactFloat64(),
			meanReturn: a.ExpectedReturn.InexactFloat64(),
			stdDev:     a.StdDev.InexactFloat64(),
		}
	}

	s.Logger.Debugf("monte carlo: trials=%d seed=%d assets=%d", n, s.config.Seed, len(assets))

	totals := make([]float64, n)
	numChunks := (n + trialChunkSize - 1) / trialChunkSize

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentChunks)
	for c := 0; c < numChunks; c++ {
		wg.Add(1)
		go func(chunk int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			s.runChunk(chunk, assets, totals)
		}(c)
	}
	wg.Wait()

	summary, err := Summarize(totals)
	if err != nil {
		return nil, err
	}

	return &SimulationResult{
		Totals:    totals,
		Summary:   summary,
		NumTrials: n,
		Seed:      s.config.Seed,
	}, nil
}

// runChunk fills totals[lo:hi] for one chunk using a chunk-derived seed.
func (s *MonteCarloSimulator) runChunk(chunk int, assets []assetParams, totals []float64) {
	lo := chunk * trialChunkSize
	hi := lo + trialChunkSize
	if hi > len(totals) {
		hi = len(totals)
	}

	src := rand.NewSource(s.config.Seed + uint64(chunk))
	dists := make([]distuv.Normal, len(assets))
	for i, a := range assets {
		dists[i] = distuv.Normal{Mu: a.meanReturn, Sigma: a.stdDev, Src: src}
	}

	for t := lo; t < hi; t++ {
		var nominal float64
		for i, a := range assets {
			nominal += a.proportion * dists[i].Rand()
		}
		rate := s.engine.InflationAdjust(nominal)
		totals[t] = futureValueLumpSum(s.engine.currentSavings, rate, s.engine.years) +
			futureValueAnnuity(s.engine.annualSavings, rate, s.engine.years)
	}
}

// Summarize computes the summary statistics over a sequence of trial
// totals. An empty sequence is a caller contract violation.
func Summarize(outcomes []float64) (Summary, error) {
	if len(outcomes) == 0 {
		return Summary{}, fmt.Errorf("cannot summarize an empty outcome sequence")
	}

	sorted := append([]float64(nil), outcomes...)
	sort.Float64s(sorted)

	return Summary{
		Mean:   stat.Mean(outcomes, nil),
		Median: percentile(sorted, 50),
		StdDev: stat.PopStdDev(outcomes, nil),
		P95:    percentile(sorted, 95),
		P05:    percentile(sorted, 5),
	}, nil
}

// percentile returns the p-th percentile of an ascending-sorted, non-empty
// slice, interpolating linearly between order statistics (h = (n-1)*p/100).
// gonum's stat.Quantile implements a different interpolation convention, so
// this is written out.
func percentile(sorted []float64, p float64) float64 {
	h := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
