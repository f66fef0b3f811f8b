// Package game owns the state of one play session and exposes the
// operations the presentation layer calls into.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/garden"
	"github.com/pthm-cable/smartyplants/genetics"
	"github.com/pthm-cable/smartyplants/telemetry"
)

// hallOfFameSize is the number of plants kept in the hall of fame.
const hallOfFameSize = 10

// Options configures a new game.
type Options struct {
	Seed      int64          // RNG seed
	Source    genetics.Source // overrides the seeded RNG when set
	Config    *config.Config // nil = config.Cfg()
	LogStats  bool           // log season stats via slog
	OutputDir string         // directory for CSV output (empty = disabled)

	// StatsCallback is called with each season's stats.
	StatsCallback func(telemetry.SeasonStats)
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	rules garden.Rules
	rng   genetics.Source

	planters garden.Planters
	seeds    *garden.Seeds
	season   int
	outcome  garden.Outcome

	// Telemetry
	collector     *telemetry.Collector
	lineage       *telemetry.LineageTracker
	hallOfFame    *telemetry.HallOfFame
	milestones    *telemetry.MilestoneDetector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.SeasonStats)
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a game ready for its first season.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	var src genetics.Source = opts.Source
	if src == nil {
		src = rand.New(rand.NewSource(opts.Seed))
	}

	g := &Game{
		cfg:           cfg,
		rules:         RulesFromConfig(cfg),
		rng:           src,
		logStats:      opts.LogStats || cfg.Telemetry.LogStats,
		statsCallback: opts.StatsCallback,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	g.Restart()
	return g
}

// Restart resets the garden to the starting plants at season 1.
func (g *Game) Restart() {
	g.planters = garden.GenerateStartingPlants(g.cfg.Garden.Planters)
	g.seeds = garden.NewSeeds(g.cfg.Garden.SeedCapacity)
	g.season = 1
	g.outcome = garden.Outcome{State: garden.Playing, WinnerSlot: -1}

	g.collector = telemetry.NewCollector()
	g.lineage = telemetry.NewLineageTracker()
	g.hallOfFame = telemetry.NewHallOfFame(hallOfFameSize)
	g.milestones = telemetry.NewMilestoneDetector()

	for id, p := range g.planters {
		if plant, ok := p.LivingPlant(); ok {
			g.hallOfFame.Consider(g.lineage.Register(id, plant, "", "", g.season))
		}
	}

	slog.Info("game started",
		"planters", len(g.planters),
		"seed_capacity", g.seeds.Cap(),
		"goal_intelligence", g.rules.GoalIntelligence,
	)
}

// Planters returns the garden slots. Callers must not modify them.
func (g *Game) Planters() garden.Planters { return g.planters }

// Seeds returns the seed inventory. Callers must not modify it.
func (g *Game) Seeds() *garden.Seeds { return g.seeds }

// Season returns the current season number, starting at 1.
func (g *Game) Season() int { return g.season }

// Outcome returns the latest evaluated outcome.
func (g *Game) Outcome() garden.Outcome { return g.outcome }

// Rules returns the active rules.
func (g *Game) Rules() garden.Rules { return g.rules }

// Over reports whether the game has been won or lost.
func (g *Game) Over() bool { return g.outcome.State != garden.Playing }

// Lineage returns every plant grown so far in birth order.
func (g *Game) Lineage() []telemetry.LineageRecord { return g.lineage.All() }

// HallOfFame returns the smartest plants grown so far.
func (g *Game) HallOfFame() *telemetry.HallOfFame { return g.hallOfFame }

// Unload writes final output and closes output files.
func (g *Game) Unload() {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.WriteLineage(g.lineage.All()); err != nil {
		slog.Error("failed to write lineage", "error", err)
	}
	if err := g.outputManager.WriteHallOfFame(g.hallOfFame); err != nil {
		slog.Error("failed to write hall of fame", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}
