package game

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/garden"
	"github.com/pthm-cable/smartyplants/genetics"
)

// Autoplayer breeds the garden without a player: it splices the most
// promising pair of living plants, plants the best seeds into free slots and
// advances the season.
type Autoplayer struct {
	cfg config.AutoplayConfig
}

// NewAutoplayer creates an autoplayer with the given settings.
func NewAutoplayer(cfg config.AutoplayConfig) *Autoplayer {
	return &Autoplayer{cfg: cfg}
}

// Result summarizes an autoplayed game.
type Result struct {
	Outcome garden.Outcome
	Seasons int
}

// Run plays turns until the game ends or the season limit is reached.
func (a *Autoplayer) Run(g *Game) Result {
	for !g.Over() {
		if a.cfg.MaxSeasons > 0 && g.Season() >= a.cfg.MaxSeasons {
			break
		}
		a.Turn(g)
	}
	return Result{Outcome: g.Outcome(), Seasons: g.Season()}
}

// Turn plays one season.
func (a *Autoplayer) Turn(g *Game) {
	a.makeRoom(g)
	a.splice(g)
	a.plant(g)
	g.NextSeason()
}

type pair struct {
	from, to int
	score    int
}

// splice fills the inventory from the pair of living plants with the highest
// combined intelligence.
func (a *Autoplayer) splice(g *Game) {
	ids := g.Planters().LivingIDs()
	if len(ids) < 2 {
		return
	}

	intel := lo.SliceToMap(ids, func(id int) (int, int) {
		return id, g.Planters()[id].Plant.Phenotype().Intelligence
	})
	var pairs []pair
	for i, from := range ids {
		for _, to := range ids[i+1:] {
			pairs = append(pairs, pair{from: from, to: to, score: intel[from] + intel[to]})
		}
	}
	slices.SortStableFunc(pairs, func(x, y pair) int { return cmp.Compare(y.score, x.score) })

	limit := a.cfg.SplicesPerTurn
	if limit <= 0 {
		limit = g.Seeds().Cap()
	}
	for n := 0; n < limit && !g.Seeds().Full(); n++ {
		best := pairs[0]
		if _, ok := g.SplicePlanters(best.from, best.to); !ok {
			return
		}
	}
}

// plant fills free slots with the best-ranked seeds, as long as each seed
// would win or is smarter than every living plant.
func (a *Autoplayer) plant(g *Game) {
	for id, p := range g.Planters() {
		if !p.CanPlant() || g.Seeds().Empty() {
			continue
		}
		best := a.bestSeed(g)
		if !a.worthPlanting(g, best) {
			return
		}
		g.PlantSeed(best, id)
	}
}

func (a *Autoplayer) worthPlanting(g *Game, seedID int) bool {
	seed, ok := g.Seeds().WithID(seedID)
	if !ok {
		return false
	}
	intel := seed.Phenotype().Intelligence
	if intel >= g.Rules().GoalIntelligence {
		return true
	}
	for _, id := range g.Planters().LivingIDs() {
		if g.Planters()[id].Plant.Phenotype().Intelligence >= intel {
			return false
		}
	}
	return true
}

// makeRoom discards the worst seeds when the inventory is full, so the
// next splices have room. Without a free slot every seed but the best goes.
func (a *Autoplayer) makeRoom(g *Game) {
	if !g.Seeds().Full() || g.Seeds().Empty() {
		return
	}
	keep := g.Seeds().Len() - 1
	if !lo.ContainsBy(g.Planters(), garden.Planter.CanPlant) {
		keep = 1
	}
	for g.Seeds().Len() > keep {
		ranked := a.rankSeeds(g)
		g.DiscardSeed(ranked[len(ranked)-1])
	}
}

func (a *Autoplayer) bestSeed(g *Game) int {
	return a.rankSeeds(g)[0]
}

// rankSeeds returns inventory ids ordered best first. Seeds that would win
// lead, ordered by survival chance. The rest prefer seeds at or above the
// configured resistance floor, then intelligence.
func (a *Autoplayer) rankSeeds(g *Game) []int {
	rules := g.Rules()
	seeds := g.Seeds().All()
	ids := lo.Range(len(seeds))

	type key struct {
		wins     bool
		hardy    bool
		survival float64
		intel    int
	}
	keys := lo.Map(seeds, func(s genetics.Seed, _ int) key {
		ph := s.Phenotype()
		return key{
			wins:     ph.Intelligence >= rules.GoalIntelligence,
			hardy:    ph.PestResistance >= a.cfg.MinPestResist,
			survival: 1 - min(rules.DestructionChance(ph.PestResistance), 1),
			intel:    ph.Intelligence,
		}
	})

	slices.SortStableFunc(ids, func(x, y int) int {
		kx, ky := keys[x], keys[y]
		if kx.wins != ky.wins {
			return boolOrder(kx.wins)
		}
		if kx.wins {
			// Both win: the likelier survivor goes first
			if c := cmp.Compare(ky.survival, kx.survival); c != 0 {
				return c
			}
			return cmp.Compare(ky.intel, kx.intel)
		}
		if kx.hardy != ky.hardy {
			return boolOrder(kx.hardy)
		}
		if c := cmp.Compare(ky.intel, kx.intel); c != 0 {
			return c
		}
		return cmp.Compare(ky.survival, kx.survival)
	})
	return ids
}

// boolOrder sorts true before false.
func boolOrder(first bool) int {
	if first {
		return -1
	}
	return 1
}
