package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/smartyplants/config"
)

// evalRow is one line of balance_log.csv.
type evalRow struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	WinRate     float64 `csv:"win_rate"`
	LossRate    float64 `csv:"loss_rate"`
	MeanSeasons float64 `csv:"mean_seasons"`
	Threshold   float64 `csv:"pest_threshold"`
	Chance      float64 `csv:"pest_chance"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 50, "Number of games per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	targetWin := flag.Float64("target-win-rate", 0.6, "Desired fraction of autoplayed games won")
	targetSeasons := flag.Float64("target-seasons", 12, "Desired mean seasons to a win (0 = ignore)")
	methodName := flag.String("method", "nelder-mead", "Optimizer: nelder-mead or cmaes")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if *outputDir == "" {
		fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fatal("failed to create output directory", "error", err)
	}

	if err := config.Init(*configPath); err != nil {
		fatal("failed to load config", "error", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(params, evalSeeds, baseCfg, *targetWin, *targetSeasons)

	var method optimize.Method
	switch *methodName {
	case "nelder-mead":
		method = &optimize.NelderMead{}
	case "cmaes":
		method = &optimize.CmaEsChol{InitStepSize: 0.3}
	default:
		fatal("unknown method", "method", *methodName)
	}

	logPath := filepath.Join(*outputDir, "balance_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		fatal("failed to create log file", "error", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			ev := evaluator.Last()
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = raw
			}

			row := []evalRow{{
				Eval:        evalCount,
				Fitness:     fitness,
				WinRate:     ev.WinRate,
				LossRate:    ev.LossRate,
				MeanSeasons: ev.MeanSeasons,
				Threshold:   raw[0],
				Chance:      raw[1],
			}}
			if evalCount == 1 {
				err = gocsv.Marshal(row, logFile)
			} else {
				err = gocsv.MarshalWithoutHeaders(row, logFile)
			}
			if err != nil {
				slog.Error("failed to write eval log", "error", err)
			}

			elapsed := time.Since(startTime)
			remaining := time.Duration(*maxEvals-evalCount) * (elapsed / time.Duration(evalCount))
			slog.Info("evaluation",
				"eval", evalCount,
				"win_rate", ev.WinRate,
				"loss_rate", ev.LossRate,
				"mean_seasons", ev.MeanSeasons,
				"fitness", fitness,
				"best", bestFitness,
				"elapsed", formatDuration(elapsed),
				"eta", formatDuration(remaining),
			)
			return fitness
		},
	}

	settings := &optimize.Settings{FuncEvaluations: *maxEvals}
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	slog.Info("starting balance run",
		"method", *methodName,
		"params", params.Dim(),
		"games_per_eval", *seeds,
		"max_evals", *maxEvals,
	)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		slog.Warn("optimization ended", "error", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	slog.Info("balance complete",
		"evals", evalCount,
		"duration", formatDuration(time.Since(startTime)),
		"best_fitness", bestFitness,
	)
	for i, spec := range params.Specs {
		slog.Info("best parameter", "name", spec.Name, "path", spec.Path, "value", bestParams[i])
	}

	bestCfg := baseCfg.Clone()
	params.ApplyToConfig(bestCfg, bestParams)
	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		slog.Error("failed to write best config", "error", err)
	} else {
		slog.Info("best config saved", "path", configOutPath)
	}

	if hof := evaluator.BestHallOfFame(); hof != nil {
		hofPath := filepath.Join(*outputDir, "hall_of_fame.json")
		data, err := hof.MarshalJSON()
		if err != nil {
			slog.Error("failed to marshal hall of fame", "error", err)
		} else if err := os.WriteFile(hofPath, data, 0644); err != nil {
			slog.Error("failed to write hall of fame", "error", err)
		} else {
			slog.Info("hall of fame saved", "path", hofPath)
		}
	}
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
