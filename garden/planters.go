package garden

import (
	"github.com/samber/lo"

	"github.com/pthm-cable/smartyplants/genetics"
)

// Planters is the fixed, index-addressed set of garden slots.
type Planters []Planter

// NewPlanters returns n empty slots.
func NewPlanters(n int) Planters {
	return make(Planters, n)
}

// WithID returns the planter in slot id, or false if id is out of range.
func (ps Planters) WithID(id int) (Planter, bool) {
	if id < 0 || id >= len(ps) {
		return Planter{}, false
	}
	return ps[id], true
}

// Set replaces the contents of slot id. It returns false if id is out of range.
func (ps Planters) Set(id int, p Planter) bool {
	if id < 0 || id >= len(ps) {
		return false
	}
	ps[id] = p
	return true
}

// PlantSeed places a seed into an empty or dead slot.
func (ps Planters) PlantSeed(id int, s genetics.Seed) bool {
	p, ok := ps.WithID(id)
	if !ok || !p.CanPlant() {
		return false
	}
	ps[id] = SeedPlanter(s)
	return true
}

// HasGrowth reports whether any slot holds a living plant or a planted seed.
func (ps Planters) HasGrowth() bool {
	return lo.ContainsBy(ps, func(p Planter) bool {
		return p.Kind == Living || p.Kind == Seeded
	})
}

// Count returns the number of slots of the given kind.
func (ps Planters) Count(kind PlanterKind) int {
	return lo.CountBy(ps, func(p Planter) bool { return p.Kind == kind })
}

// LivingIDs returns the ids of slots holding living plants, in slot order.
func (ps Planters) LivingIDs() []int {
	var ids []int
	for id, p := range ps {
		if p.Kind == Living {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone returns a deep copy of the slots.
func (ps Planters) Clone() Planters {
	out := make(Planters, len(ps))
	for i, p := range ps {
		out[i] = Planter{Kind: p.Kind, Plant: p.Plant.Clone(), Seed: p.Seed}
	}
	return out
}
