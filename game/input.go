package game

import (
	"log/slog"

	"github.com/pthm-cable/smartyplants/genetics"
	"github.com/pthm-cable/smartyplants/telemetry"
)

// SplicePlanters breeds the plants in two slots into a new seed and stores it
// in the inventory. It returns false without creating a seed when either slot
// lacks a living plant, the slots are the same, the inventory is full or the
// game is over.
func (g *Game) SplicePlanters(from, to int) (genetics.Seed, bool) {
	if g.Over() || from == to || g.seeds.Full() {
		return genetics.Seed{}, false
	}
	p1, ok1 := g.livingPlant(from)
	p2, ok2 := g.livingPlant(to)
	if !ok1 || !ok2 {
		return genetics.Seed{}, false
	}

	seed := genetics.Splice(g.rng, p1, p2)
	g.seeds.Add(seed)
	g.record(telemetry.NewSpliceEvent(g.season, seedLabel(seed)))

	slog.Debug("plants spliced",
		"season", g.season,
		"parent_1", p1.Name.String(),
		"parent_2", p2.Name.String(),
		"seeds_held", g.seeds.Len(),
	)
	return seed, true
}

// PlantSeed moves a seed from the inventory into an empty or dead slot.
func (g *Game) PlantSeed(seedID, planterID int) bool {
	if g.Over() {
		return false
	}
	target, ok := g.planters.WithID(planterID)
	if !ok || !target.CanPlant() {
		return false
	}
	seed, ok := g.seeds.TakeWithID(seedID)
	if !ok {
		return false
	}

	g.planters.PlantSeed(planterID, seed)
	g.lineage.Release(planterID)
	g.record(telemetry.NewPlantEvent(g.season, planterID, seedLabel(seed)))

	slog.Debug("seed planted", "season", g.season, "slot", planterID, "seed", seedLabel(seed))
	return true
}

// DiscardSeed removes a seed from the inventory.
func (g *Game) DiscardSeed(seedID int) bool {
	seed, ok := g.seeds.TakeWithID(seedID)
	if !ok {
		return false
	}
	g.record(telemetry.NewDiscardEvent(g.season, seedLabel(seed)))
	return true
}

func (g *Game) livingPlant(id int) (genetics.Plant, bool) {
	p, ok := g.planters.WithID(id)
	if !ok {
		return genetics.Plant{}, false
	}
	return p.LivingPlant()
}

func (g *Game) record(e telemetry.Event) {
	g.collector.Record(e)
}

// seedLabel names a seed by its parents, e.g. "Roberto x Jessica".
func seedLabel(s genetics.Seed) string {
	return s.ParentName1.String() + " x " + s.ParentName2.String()
}
