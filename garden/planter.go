// Package garden holds the planter slots, the seed inventory and the
// season-by-season rules that decide whether the player wins or loses.
package garden

import "github.com/pthm-cable/smartyplants/genetics"

// PlanterKind identifies what a planter slot holds.
type PlanterKind uint8

const (
	Empty PlanterKind = iota
	Living
	Dead
	Seeded
)

func (k PlanterKind) String() string {
	switch k {
	case Living:
		return "plant"
	case Dead:
		return "dead_plant"
	case Seeded:
		return "seed"
	default:
		return "empty"
	}
}

// Planter is the contents of one garden slot. Plant is set for Living and
// Dead planters, Seed for Seeded ones.
type Planter struct {
	Kind  PlanterKind
	Plant genetics.Plant
	Seed  genetics.Seed
}

// EmptyPlanter returns an empty slot.
func EmptyPlanter() Planter { return Planter{} }

// PlantPlanter returns a slot holding a living plant.
func PlantPlanter(p genetics.Plant) Planter { return Planter{Kind: Living, Plant: p} }

// DeadPlanter returns a slot holding a dead plant.
func DeadPlanter(p genetics.Plant) Planter { return Planter{Kind: Dead, Plant: p} }

// SeedPlanter returns a slot holding a planted seed.
func SeedPlanter(s genetics.Seed) Planter { return Planter{Kind: Seeded, Seed: s} }

// LivingPlant returns the plant if the slot holds a living one.
func (p Planter) LivingPlant() (genetics.Plant, bool) {
	return p.Plant, p.Kind == Living
}

// CanPlant reports whether a seed may be planted in the slot.
func (p Planter) CanPlant() bool {
	return p.Kind == Empty || p.Kind == Dead
}
