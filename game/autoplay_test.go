package game

import (
	"testing"

	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/garden"
)

func TestAutoplayDeterministic(t *testing.T) {
	cfg := config.AutoplayConfig{MaxSeasons: 30}

	run := func() (Result, int) {
		g := NewGameWithOptions(Options{Seed: 42})
		res := NewAutoplayer(cfg).Run(g)
		return res, len(g.Lineage())
	}

	r1, n1 := run()
	r2, n2 := run()
	if r1.Seasons != r2.Seasons || r1.Outcome.State != r2.Outcome.State || n1 != n2 {
		t.Errorf("runs differ: %+v/%d vs %+v/%d", r1, n1, r2, n2)
	}
	if r1.Seasons > cfg.MaxSeasons {
		t.Errorf("seasons = %d, exceeds limit %d", r1.Seasons, cfg.MaxSeasons)
	}
}

func TestAutoplayWinsAreGenuine(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGameWithOptions(Options{Seed: seed})
		res := NewAutoplayer(config.AutoplayConfig{MaxSeasons: 40}).Run(g)

		if res.Outcome.State != garden.Won {
			continue
		}
		if got := res.Outcome.Winner.Phenotype().Intelligence; got < g.Rules().GoalIntelligence {
			t.Errorf("seed %d: winner intelligence %d below goal", seed, got)
		}
		p, _ := g.Planters().WithID(res.Outcome.WinnerSlot)
		if p.Kind != garden.Living {
			t.Errorf("seed %d: winner slot holds %v", seed, p.Kind)
		}
	}
}

func TestAutoplayTurnSplicesAndPlants(t *testing.T) {
	g := NewGameWithOptions(Options{Seed: 9})
	a := NewAutoplayer(config.AutoplayConfig{SplicesPerTurn: 2})

	a.splice(g)
	if g.Seeds().Len() != 2 {
		t.Fatalf("seeds = %d, want 2", g.Seeds().Len())
	}

	ranked := a.rankSeeds(g)
	if len(ranked) != 2 {
		t.Fatalf("ranked = %v", ranked)
	}
	first, _ := g.Seeds().WithID(ranked[0])
	second, _ := g.Seeds().WithID(ranked[1])
	if first.Phenotype().Intelligence < second.Phenotype().Intelligence &&
		first.Phenotype().PestResistance < a.cfg.MinPestResist {
		t.Errorf("ranking put a weaker seed first: %+v before %+v", first.Phenotype(), second.Phenotype())
	}
}
