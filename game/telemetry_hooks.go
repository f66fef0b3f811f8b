package game

import (
	"log/slog"
)

// flushTelemetry closes the season's stats and handles milestones.
func (g *Game) flushTelemetry() {
	stats := g.collector.Flush(g.season, g.planters, g.seeds)

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteSeason(stats); err != nil {
			slog.Error("failed to write season stats", "error", err)
		}
	}

	for _, m := range g.milestones.Check(stats) {
		if g.logStats {
			m.LogMilestone()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteMilestone(m); err != nil {
				slog.Error("failed to write milestone", "error", err)
			}
		}
	}
}
