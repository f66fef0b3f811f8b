package garden

import "github.com/pthm-cable/smartyplants/genetics"

// SlotEvent records what happened to one slot during a season.
type SlotEvent struct {
	Slot  int
	Plant genetics.Plant
	Seed  genetics.Seed
	// Chance and Draw are set for pest kills.
	Chance float64
	Draw   float64
}

// SeasonReport lists the growth and pest outcomes of one season.
type SeasonReport struct {
	Grown  []SlotEvent
	Killed []SlotEvent
}

// NextSeason advances every slot by one season in place. All planted seeds
// grow first; then every living plant, including ones that just grew, faces
// the pest check.
func (ps Planters) NextSeason(rules Rules, src genetics.Source) SeasonReport {
	var report SeasonReport

	for id, p := range ps {
		if p.Kind != Seeded {
			continue
		}
		plant := p.Seed.Grow(src)
		ps[id] = PlantPlanter(plant)
		report.Grown = append(report.Grown, SlotEvent{Slot: id, Plant: plant, Seed: p.Seed})
	}

	for id, p := range ps {
		if p.Kind != Living {
			continue
		}
		resistance := p.Plant.Phenotype().PestResistance
		if resistance >= rules.PestDestructionThreshold {
			continue
		}
		chance := rules.DestructionChance(resistance)
		draw := src.Float64()
		if draw <= chance {
			ps[id] = DeadPlanter(p.Plant.Clone())
			report.Killed = append(report.Killed, SlotEvent{
				Slot:   id,
				Plant:  p.Plant,
				Chance: chance,
				Draw:   draw,
			})
		}
	}

	return report
}
