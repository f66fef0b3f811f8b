package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/garden"
	"github.com/pthm-cable/smartyplants/telemetry"
)

func init() {
	config.MustInit("")
}

// scriptedSource cycles through ints for Intn (clamped to n-1) and always
// returns f from Float64.
type scriptedSource struct {
	ints []int
	next int
	f    float64
}

func (s *scriptedSource) Float64() float64 { return s.f }

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.next%len(s.ints)]
	s.next++
	return min(v, n-1)
}

func TestNewGame(t *testing.T) {
	g := NewGameWithOptions(Options{Seed: 1})

	if g.Season() != 1 {
		t.Errorf("season = %d, want 1", g.Season())
	}
	if n := g.Planters().Count(garden.Living); n != 3 {
		t.Errorf("living = %d, want 3", n)
	}
	if !g.Seeds().Empty() || g.Seeds().Cap() != 4 {
		t.Errorf("seeds len = %d cap = %d", g.Seeds().Len(), g.Seeds().Cap())
	}
	if g.Over() {
		t.Error("new game should not be over")
	}
	if len(g.Lineage()) != 3 {
		t.Errorf("lineage = %d, want 3 starting plants", len(g.Lineage()))
	}
}

func TestSplicePlanters(t *testing.T) {
	g := NewGameWithOptions(Options{Seed: 2})

	tests := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"same slot", 0, 0, false},
		{"empty slot", 0, 3, false},
		{"out of range", 0, 9, false},
		{"two plants", 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed, ok := g.SplicePlanters(tt.from, tt.to)
			if ok != tt.want {
				t.Fatalf("SplicePlanters(%d, %d) = %v, want %v", tt.from, tt.to, ok, tt.want)
			}
			if ok && len(seed.Genes) != 8 {
				t.Errorf("seed has %d genes, want 8", len(seed.Genes))
			}
		})
	}

	for g.Seeds().Len() < g.Seeds().Cap() {
		if _, ok := g.SplicePlanters(1, 2); !ok {
			t.Fatal("splice below capacity failed")
		}
	}
	if _, ok := g.SplicePlanters(1, 2); ok {
		t.Error("splice into a full inventory should be rejected")
	}
	if g.Seeds().Len() != 4 {
		t.Errorf("seeds = %d, want 4", g.Seeds().Len())
	}
}

func TestPlantSeedAndGrow(t *testing.T) {
	g := NewGameWithOptions(Options{Seed: 3})
	if _, ok := g.SplicePlanters(0, 1); !ok {
		t.Fatal("splice failed")
	}

	if g.PlantSeed(0, 0) {
		t.Error("planting onto a living plant should fail")
	}
	if g.PlantSeed(5, 3) {
		t.Error("planting a missing seed should fail")
	}
	if !g.PlantSeed(0, 3) {
		t.Fatal("planting into the empty slot failed")
	}
	if !g.Seeds().Empty() {
		t.Error("planted seed should leave the inventory")
	}

	g.NextSeason()

	if g.Season() != 2 {
		t.Errorf("season = %d, want 2", g.Season())
	}
	p, _ := g.Planters().WithID(3)
	if p.Kind != garden.Living && p.Kind != garden.Dead {
		t.Errorf("slot 3 = %v, want a grown plant", p.Kind)
	}
	if len(g.Lineage()) != 4 {
		t.Errorf("lineage = %d, want 4", len(g.Lineage()))
	}
}

func TestDiscardSeed(t *testing.T) {
	g := NewGameWithOptions(Options{Seed: 4})
	g.SplicePlanters(0, 2)

	if g.DiscardSeed(1) {
		t.Error("discarding a missing seed should fail")
	}
	if !g.DiscardSeed(0) || !g.Seeds().Empty() {
		t.Error("discard failed")
	}
}

func TestScriptedWin(t *testing.T) {
	// Jessica x Francine drawing Loopy/Angular, Blue/Blue, Square/Triangle,
	// Yellow/Purple expresses Loopy, Blue, Square, Purple: intelligence 14,
	// pest resistance -2 (destruction chance 0.7).
	src := &scriptedSource{ints: []int{1, 1, 1, 1, 0, 1, 1, 0}, f: 0.9}
	g := NewGameWithOptions(Options{Source: src})

	seed, ok := g.SplicePlanters(1, 2)
	if !ok {
		t.Fatal("splice failed")
	}
	ph := seed.Phenotype()
	if ph.Intelligence != 14 || ph.PestResistance != -2 {
		t.Fatalf("seed phenotype = %+v", ph)
	}

	g.PlantSeed(0, 3)
	out := g.NextSeason()

	if out.State != garden.Won {
		t.Fatalf("state = %v, want won", out.State)
	}
	if out.WinnerSlot != 3 || out.Winner.Phenotype().Intelligence != 14 {
		t.Errorf("winner slot = %d", out.WinnerSlot)
	}
	if top := g.HallOfFame().TopIntelligence(); top != 14 {
		t.Errorf("hall of fame top = %d, want 14", top)
	}

	// Once won, nothing changes.
	season := g.Season()
	g.NextSeason()
	if g.Season() != season {
		t.Error("season advanced after the game ended")
	}
	if _, ok := g.SplicePlanters(0, 1); ok {
		t.Error("splice allowed after the game ended")
	}
}

func TestScriptedSeedDiesInFirstSeason(t *testing.T) {
	src := &scriptedSource{ints: []int{1, 1, 1, 1, 0, 1, 1, 0}, f: 0.0}
	g := NewGameWithOptions(Options{Source: src})

	g.SplicePlanters(1, 2)
	g.PlantSeed(0, 3)
	out := g.NextSeason()

	p, _ := g.Planters().WithID(3)
	if p.Kind != garden.Dead {
		t.Fatalf("slot 3 = %v, want dead", p.Kind)
	}
	if out.State != garden.Playing {
		t.Errorf("state = %v, want playing", out.State)
	}
	rec := g.Lineage()[3]
	if rec.DiedSeason != 2 || rec.BornSeason != 2 {
		t.Errorf("lineage record = %+v", rec)
	}
}

func TestLoseWhenEverythingDies(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Rules.PestDestructionThreshold = 100
	cfg.Rules.PestDestructionChance = 1

	var seasons []telemetry.SeasonStats
	g := NewGameWithOptions(Options{
		Config:        cfg,
		Source:        &scriptedSource{f: 0.5},
		StatsCallback: func(s telemetry.SeasonStats) { seasons = append(seasons, s) },
	})

	out := g.NextSeason()
	if out.State != garden.Lost {
		t.Fatalf("state = %v, want lost", out.State)
	}
	if len(seasons) != 1 || seasons[0].Killed != 3 || seasons[0].Living != 0 {
		t.Errorf("season stats = %+v", seasons)
	}
}

func TestStoredSeedPreventsLoss(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Rules.PestDestructionThreshold = 100
	cfg.Rules.PestDestructionChance = 1

	g := NewGameWithOptions(Options{Config: cfg, Source: &scriptedSource{f: 0.5}})
	g.SplicePlanters(0, 1)

	if out := g.NextSeason(); out.State != garden.Playing {
		t.Fatalf("state = %v, want playing while a seed is held", out.State)
	}
	if !g.PlantSeed(0, 0) {
		t.Fatal("planting into a dead slot failed")
	}
	if out := g.NextSeason(); out.State != garden.Lost {
		t.Errorf("state = %v, want lost after the last seed dies", out.State)
	}
}

func TestOutputFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	g := NewGameWithOptions(Options{Seed: 5, OutputDir: dir})
	NewAutoplayer(config.AutoplayConfig{MaxSeasons: 5}).Run(g)
	g.Unload()

	for _, name := range []string{"config.yaml", "seasons.csv", "milestones.csv", "lineage.csv", "hall_of_fame.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
