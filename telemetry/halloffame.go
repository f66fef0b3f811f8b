package telemetry

import (
	"encoding/json"
	"sort"
)

// HallOfFame keeps the smartest plants grown during a game, sorted by
// intelligence (descending), then pest resistance, then birth order.
type HallOfFame struct {
	entries []LineageRecord
	maxSize int
}

// NewHallOfFame creates a hall holding at most maxSize plants.
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 1 {
		maxSize = 1
	}
	return &HallOfFame{
		entries: make([]LineageRecord, 0, maxSize),
		maxSize: maxSize,
	}
}

// Consider evaluates a plant for entry. Returns true if it was added.
func (hof *HallOfFame) Consider(rec LineageRecord) bool {
	idx := sort.Search(len(hof.entries), func(i int) bool {
		return ranksBelow(hof.entries[i], rec)
	})

	// If hall is full and entry would be last, skip it
	if len(hof.entries) >= hof.maxSize && idx >= hof.maxSize {
		return false
	}

	hof.entries = append(hof.entries, LineageRecord{})
	copy(hof.entries[idx+1:], hof.entries[idx:])
	hof.entries[idx] = rec

	if len(hof.entries) > hof.maxSize {
		hof.entries = hof.entries[:hof.maxSize]
	}
	return true
}

// ranksBelow reports whether a ranks strictly below b.
func ranksBelow(a, b LineageRecord) bool {
	if a.Intelligence != b.Intelligence {
		return a.Intelligence < b.Intelligence
	}
	if a.PestResistance != b.PestResistance {
		return a.PestResistance < b.PestResistance
	}
	return a.ID > b.ID
}

// Entries returns the hall in rank order.
func (hof *HallOfFame) Entries() []LineageRecord {
	out := make([]LineageRecord, len(hof.entries))
	copy(out, hof.entries)
	return out
}

// Size returns the number of entries.
func (hof *HallOfFame) Size() int {
	return len(hof.entries)
}

// TopIntelligence returns the highest intelligence in the hall, or 0 if empty.
func (hof *HallOfFame) TopIntelligence() int {
	if len(hof.entries) == 0 {
		return 0
	}
	return hof.entries[0].Intelligence
}

type hallEntryJSON struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	Parent1        string `json:"parent_1,omitempty"`
	Parent2        string `json:"parent_2,omitempty"`
	BornSeason     int    `json:"born_season"`
	DiedSeason     int    `json:"died_season,omitempty"`
	Intelligence   int    `json:"intelligence"`
	PestResistance int    `json:"pest_resistance"`
	Genes          string `json:"genes"`
}

// MarshalJSON serializes the hall of fame to JSON.
func (hof *HallOfFame) MarshalJSON() ([]byte, error) {
	out := make([]hallEntryJSON, len(hof.entries))
	for i, e := range hof.entries {
		out[i] = hallEntryJSON{
			Rank:           i + 1,
			Name:           e.Name,
			Parent1:        e.Parent1,
			Parent2:        e.Parent2,
			BornSeason:     e.BornSeason,
			DiedSeason:     e.DiedSeason,
			Intelligence:   e.Intelligence,
			PestResistance: e.PestResistance,
			Genes:          e.Genes,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
