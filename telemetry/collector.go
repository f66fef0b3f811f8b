package telemetry

import (
	"github.com/pthm-cable/smartyplants/garden"
)

// Collector accumulates events within a season and produces SeasonStats.
type Collector struct {
	splices   int
	planted   int
	discarded int
	grown     int
	killed    int
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record counts an event toward the current season.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventSplice:
		c.splices++
	case EventPlant:
		c.planted++
	case EventDiscard:
		c.discarded++
	case EventGrow:
		c.grown++
	case EventPestKill:
		c.killed++
	}
}

// Flush produces SeasonStats from the garden at season end and resets the
// event counters for the next season.
func (c *Collector) Flush(season int, ps garden.Planters, seeds *garden.Seeds) SeasonStats {
	stats := SeasonStats{
		Season:    season,
		Living:    ps.Count(garden.Living),
		Dead:      ps.Count(garden.Dead),
		Seeded:    ps.Count(garden.Seeded),
		Empty:     ps.Count(garden.Empty),
		Splices:   c.splices,
		Planted:   c.planted,
		Discarded: c.discarded,
		Grown:     c.grown,
		Killed:    c.killed,
	}
	if seeds != nil {
		stats.SeedsHeld = seeds.Len()
	}

	var intelligence, pest []float64
	best := 0
	for _, p := range ps {
		plant, ok := p.LivingPlant()
		if !ok {
			continue
		}
		ph := plant.Phenotype()
		if len(intelligence) == 0 || ph.Intelligence > best {
			best = ph.Intelligence
			stats.Smartest = plant.Name.String()
		}
		intelligence = append(intelligence, float64(ph.Intelligence))
		pest = append(pest, float64(ph.PestResistance))
	}

	is := Summarize(intelligence)
	stats.IntelligenceMean = is.Mean
	stats.IntelligenceStd = is.Std
	stats.IntelligenceMax = is.Max

	pr := Summarize(pest)
	stats.PestMean = pr.Mean
	stats.PestStd = pr.Std
	stats.PestMin = pr.Min

	*c = Collector{}
	return stats
}
