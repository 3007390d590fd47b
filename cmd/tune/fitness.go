package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/game"
	"github.com/pthm-cable/folio/telemetry"
)

// FitnessEvaluator runs headless pages and scores how close the sign
// field comes to filling its cap at the target time.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	targetSec  float64
	seeds      []int64
	baseConfig *config.Config

	mu          sync.Mutex
	lastFillSec float64 // mean fill time from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, targetSec float64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		targetSec:  targetSec,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastFillSec returns the mean fill time from the most recent evaluation.
func (fe *FitnessEvaluator) LastFillSec() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastFillSec
}

// runResult holds the results from a single headless run.
type runResult struct {
	fillTicks   int32 // tick the cap was reached, or maxTicks
	windowStats []telemetry.WindowStats
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Seeds run in parallel; fitness is the mean over seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	fitness := make([]float64, len(fe.seeds))
	fills := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result := fe.runSimulation(cfg, s)
			fills[idx] = float64(result.fillTicks) * cfg.Derived.DT
			fitness[idx] = fe.computeFitness(result, cfg.Derived.DT)
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalFill float64
	for i := range fe.seeds {
		totalFitness += fitness[i]
		totalFill += fills[i]
	}
	n := float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastFillSec = totalFill / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless run until the cap is reached
// or maxTicks, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) *runResult {
	result := &runResult{fillTicks: fe.maxTicks}

	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	defer g.Unload()

	capacity := cfg.Signs.Max
	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
		if g.SignCount() >= capacity {
			result.fillTicks = g.Tick()
			break
		}
	}
	return result
}

// copyConfig creates a copy of the base config. Config holds only
// value fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness scores a run as the squared relative error of its fill
// time against the target. A field that never fills is penalised by how
// far its last window was from the cap.
func (fe *FitnessEvaluator) computeFitness(r *runResult, dt float64) float64 {
	fillSec := float64(r.fillTicks) * dt
	rel := (fillSec - fe.targetSec) / fe.targetSec
	fitness := rel * rel

	if r.fillTicks >= fe.maxTicks && len(r.windowStats) > 0 {
		last := r.windowStats[len(r.windowStats)-1]
		if last.Cap > 0 {
			fitness += 1 - float64(last.Signs)/float64(last.Cap)
		}
	}
	return fitness
}

// sqrtFitness converts a fitness back to relative fill time error.
func sqrtFitness(f float64) float64 {
	return math.Sqrt(max(f, 0))
}
