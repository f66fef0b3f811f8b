package game

import (
	"log/slog"

	"github.com/pthm-cable/smartyplants/garden"
	"github.com/pthm-cable/smartyplants/telemetry"
)

// NextSeason advances the garden one season, records what happened and
// re-evaluates the outcome. It does nothing once the game is over.
func (g *Game) NextSeason() garden.Outcome {
	if g.Over() {
		return g.outcome
	}

	report := g.planters.NextSeason(g.rules, g.rng)
	g.season++

	for _, ev := range report.Grown {
		rec := g.lineage.Register(ev.Slot, ev.Plant, ev.Seed.ParentName1.String(), ev.Seed.ParentName2.String(), g.season)
		g.hallOfFame.Consider(rec)
		g.record(telemetry.NewGrowEvent(g.season, ev.Slot, rec.Name))
	}
	for _, ev := range report.Killed {
		g.lineage.RecordDeath(ev.Slot, g.season)
		g.record(telemetry.NewPestKillEvent(g.season, ev.Slot, ev.Plant.Name.String(), ev.Chance))
		slog.Debug("plant destroyed by pests",
			"season", g.season,
			"slot", ev.Slot,
			"plant", ev.Plant.Name.String(),
			"chance", ev.Chance,
			"draw", ev.Draw,
		)
	}

	g.flushTelemetry()
	g.updateOutcome()
	return g.outcome
}

// updateOutcome evaluates win and lose and logs a transition.
func (g *Game) updateOutcome() {
	prev := g.outcome.State
	g.outcome = garden.Evaluate(g.planters, g.seeds, g.rules)
	if g.outcome.State == prev {
		return
	}

	switch g.outcome.State {
	case garden.Won:
		ph := g.outcome.Winner.Phenotype()
		slog.Info("game won",
			"season", g.season,
			"plant", g.outcome.Winner.Name.String(),
			"slot", g.outcome.WinnerSlot,
			"intelligence", ph.Intelligence,
			"pest_resistance", ph.PestResistance,
		)
	case garden.Lost:
		slog.Info("game lost", "season", g.season, "plants_grown", g.lineage.Count())
	}
}
