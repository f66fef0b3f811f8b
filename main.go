package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/game"
	"github.com/pthm-cable/smartyplants/garden"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output season stats via slog")
	verbose := flag.Bool("verbose", false, "Log every planter and stored seed each season")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	games := flag.Int("games", 1, "Number of games to autoplay, seeded seed, seed+1, ...")
	maxSeasons := flag.Int("max-seasons", 0, "Give up after N seasons (0 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	autoplay := cfg.Autoplay
	if *maxSeasons > 0 {
		autoplay.MaxSeasons = *maxSeasons
	}
	player := game.NewAutoplayer(autoplay)

	slog.Info("starting autoplay",
		"seed", rngSeed,
		"games", *games,
		"max_seasons", autoplay.MaxSeasons,
		"pest_threshold", cfg.Rules.PestDestructionThreshold,
		"pest_chance", cfg.Rules.PestDestructionChance,
		"certain_death_resistance", cfg.Derived.CertainDeathResistance,
		"goal_intelligence", cfg.Rules.GoalIntelligence,
	)

	var won, lost int
	for i := range *games {
		opts := game.Options{
			Seed:     rngSeed + int64(i),
			LogStats: *logStats,
		}
		if *outputDir != "" {
			opts.OutputDir = *outputDir
			if *games > 1 {
				opts.OutputDir = filepath.Join(*outputDir, fmt.Sprintf("game_%03d", i))
			}
		}

		g := game.NewGameWithOptions(opts)
		for !g.Over() && (autoplay.MaxSeasons <= 0 || g.Season() < autoplay.MaxSeasons) {
			player.Turn(g)
			if *verbose {
				g.LogWorldState()
			}
		}
		g.Unload()

		switch g.Outcome().State {
		case garden.Won:
			won++
		case garden.Lost:
			lost++
		default:
			slog.Info("season limit reached", "game", i, "season", g.Season())
		}
	}

	slog.Info("autoplay complete",
		"games", *games,
		"won", won,
		"lost", lost,
		"unfinished", *games-won-lost,
	)
}
