package game

import (
	"log/slog"

	"github.com/pthm-cable/smartyplants/garden"
)

// LogWorldState logs every slot and the seed inventory at debug level.
func (g *Game) LogWorldState() {
	for id, p := range g.planters {
		attrs := []any{"season", g.season, "slot", id, "kind", p.Kind.String()}
		switch p.Kind {
		case garden.Living, garden.Dead:
			ph := p.Plant.Phenotype()
			attrs = append(attrs,
				"plant", p.Plant.Name.String(),
				"intelligence", ph.Intelligence,
				"pest_resistance", ph.PestResistance,
			)
		case garden.Seeded:
			attrs = append(attrs, "seed", seedLabel(p.Seed))
		}
		slog.Debug("planter", attrs...)
	}
	for id, s := range g.seeds.All() {
		slog.Debug("stored seed", "season", g.season, "id", id, "seed", seedLabel(s), "intelligence", s.Phenotype().Intelligence)
	}
}
