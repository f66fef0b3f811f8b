package telemetry

import (
	"strings"

	"github.com/pthm-cable/smartyplants/genetics"
)

// LineageRecord describes one plant from birth to death.
type LineageRecord struct {
	ID             int    `csv:"id"`
	Name           string `csv:"name"`
	Parent1        string `csv:"parent_1"`
	Parent2        string `csv:"parent_2"`
	BornSeason     int    `csv:"born_season"`
	DiedSeason     int    `csv:"died_season"` // 0 while alive
	Intelligence   int    `csv:"intelligence"`
	PestResistance int    `csv:"pest_resistance"`
	Genes          string `csv:"genes"`
}

// Alive reports whether the plant has not died yet.
func (r LineageRecord) Alive() bool { return r.DiedSeason == 0 }

// LineageTracker records every plant grown during a game, keyed by slot
// while the plant occupies it.
type LineageTracker struct {
	records []LineageRecord
	bySlot  map[int]int
}

// NewLineageTracker creates a new lineage tracker.
func NewLineageTracker() *LineageTracker {
	return &LineageTracker{bySlot: make(map[int]int)}
}

// Register records a plant occupying a slot. Parents are empty for starting plants.
func (lt *LineageTracker) Register(slot int, plant genetics.Plant, parent1, parent2 string, season int) LineageRecord {
	ph := plant.Phenotype()
	rec := LineageRecord{
		ID:             len(lt.records) + 1,
		Name:           plant.Name.String(),
		Parent1:        parent1,
		Parent2:        parent2,
		BornSeason:     season,
		Intelligence:   ph.Intelligence,
		PestResistance: ph.PestResistance,
		Genes:          GeneSummary(plant.Genes),
	}
	lt.records = append(lt.records, rec)
	lt.bySlot[slot] = len(lt.records) - 1
	return rec
}

// RecordDeath marks the plant in a slot as dead and releases the slot.
func (lt *LineageTracker) RecordDeath(slot, season int) (LineageRecord, bool) {
	idx, ok := lt.bySlot[slot]
	if !ok {
		return LineageRecord{}, false
	}
	delete(lt.bySlot, slot)
	lt.records[idx].DiedSeason = season
	return lt.records[idx], true
}

// Release forgets the slot mapping without marking a death, e.g. when a dead
// plant is replaced by a seed.
func (lt *LineageTracker) Release(slot int) {
	delete(lt.bySlot, slot)
}

// All returns all records in birth order.
func (lt *LineageTracker) All() []LineageRecord {
	out := make([]LineageRecord, len(lt.records))
	copy(out, lt.records)
	return out
}

// Count returns the number of plants recorded.
func (lt *LineageTracker) Count() int {
	return len(lt.records)
}

// GeneSummary renders genes as a space-separated list, e.g. "stem_style:curvy(D) ...".
func GeneSummary(genes []genetics.Gene) string {
	parts := make([]string, len(genes))
	for i, g := range genes {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
