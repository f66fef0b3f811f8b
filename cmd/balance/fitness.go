package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/game"
	"github.com/pthm-cable/smartyplants/garden"
	"github.com/pthm-cable/smartyplants/telemetry"
)

// FitnessEvaluator autoplays games over a fixed seed set and scores how close
// the outcomes are to the balance targets.
type FitnessEvaluator struct {
	params        *ParamVector
	seeds         []int64
	baseConfig    *config.Config
	targetWinRate float64
	targetSeasons float64

	// Best run tracking
	mu             sync.Mutex
	bestFitness    float64
	bestHallOfFame *telemetry.HallOfFame
	last           Evaluation
}

// Evaluation aggregates the games played for one parameter vector.
type Evaluation struct {
	WinRate     float64
	LossRate    float64
	MeanSeasons float64 // mean seasons to a win, or 0 without wins
	Fitness     float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config, targetWinRate, targetSeasons float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:        params,
		seeds:         seeds,
		baseConfig:    baseCfg,
		targetWinRate: targetWinRate,
		targetSeasons: targetSeasons,
		bestFitness:   math.Inf(1),
	}
}

// BestHallOfFame returns the hall of fame from the best evaluation.
func (fe *FitnessEvaluator) BestHallOfFame() *telemetry.HallOfFame {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestHallOfFame
}

// Last returns the most recent evaluation.
func (fe *FitnessEvaluator) Last() Evaluation {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// runResult holds the results from a single autoplayed game.
type runResult struct {
	state      garden.State
	seasons    int
	hallOfFame *telemetry.HallOfFame
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runGame(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	ev := fe.score(results)

	fe.mu.Lock()
	if ev.Fitness < fe.bestFitness {
		fe.bestFitness = ev.Fitness
		fe.bestHallOfFame = bestHallOfFame(results)
	}
	fe.last = ev
	fe.mu.Unlock()

	return ev.Fitness
}

// runGame plays one game to completion or the season limit.
func (fe *FitnessEvaluator) runGame(cfg *config.Config, seed int64) runResult {
	g := game.NewGameWithOptions(game.Options{Seed: seed, Config: cfg})
	res := game.NewAutoplayer(cfg.Autoplay).Run(g)
	return runResult{
		state:      res.Outcome.State,
		seasons:    res.Seasons,
		hallOfFame: g.HallOfFame(),
	}
}

// score turns game results into an Evaluation.
// Fitness is the squared miss on the win rate plus a smaller penalty for
// wins arriving far from the target season.
func (fe *FitnessEvaluator) score(results []runResult) Evaluation {
	var wins, losses int
	var winSeasons []float64
	for _, r := range results {
		switch r.state {
		case garden.Won:
			wins++
			winSeasons = append(winSeasons, float64(r.seasons))
		case garden.Lost:
			losses++
		}
	}

	n := float64(len(results))
	ev := Evaluation{
		WinRate:  float64(wins) / n,
		LossRate: float64(losses) / n,
	}
	rateErr := ev.WinRate - fe.targetWinRate
	ev.Fitness = rateErr * rateErr

	if len(winSeasons) > 0 {
		ev.MeanSeasons = stat.Mean(winSeasons, nil)
		if fe.targetSeasons > 0 {
			seasonErr := (ev.MeanSeasons - fe.targetSeasons) / fe.targetSeasons
			ev.Fitness += 0.25 * seasonErr * seasonErr
		}
	}
	return ev
}

// bestHallOfFame returns the hall of fame whose top plant is smartest.
func bestHallOfFame(results []runResult) *telemetry.HallOfFame {
	var best *telemetry.HallOfFame
	for _, r := range results {
		if best == nil || r.hallOfFame.TopIntelligence() > best.TopIntelligence() {
			best = r.hallOfFame
		}
	}
	return best
}
