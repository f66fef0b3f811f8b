package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeasonStats holds aggregated statistics for one season.
type SeasonStats struct {
	Season int `csv:"season"`

	// Garden counts at season end
	Living    int `csv:"living"`
	Dead      int `csv:"dead"`
	Seeded    int `csv:"seeded"`
	Empty     int `csv:"empty"`
	SeedsHeld int `csv:"seeds_held"`

	// Events during the season
	Splices   int `csv:"splices"`
	Planted   int `csv:"planted"`
	Discarded int `csv:"discarded"`
	Grown     int `csv:"grown"`
	Killed    int `csv:"killed"`

	// Phenotype distribution over living plants
	IntelligenceMean float64 `csv:"intelligence_mean"`
	IntelligenceStd  float64 `csv:"intelligence_std"`
	IntelligenceMax  float64 `csv:"intelligence_max"`
	PestMean         float64 `csv:"pest_mean"`
	PestStd          float64 `csv:"pest_std"`
	PestMin          float64 `csv:"pest_min"`

	Smartest string `csv:"smartest"`
}

// Summary holds mean, standard deviation and extremes of a sample.
type Summary struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Summarize computes a Summary. Empty input yields zeros; a single value has
// zero standard deviation.
func Summarize(values []float64) Summary {
	switch len(values) {
	case 0:
		return Summary{}
	case 1:
		return Summary{Mean: values[0], Min: values[0], Max: values[0]}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return Summary{
		Mean: mean,
		Std:  std,
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s SeasonStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("season", s.Season),
		slog.Int("living", s.Living),
		slog.Int("dead", s.Dead),
		slog.Int("seeded", s.Seeded),
		slog.Int("empty", s.Empty),
		slog.Int("seeds_held", s.SeedsHeld),
		slog.Int("splices", s.Splices),
		slog.Int("planted", s.Planted),
		slog.Int("discarded", s.Discarded),
		slog.Int("grown", s.Grown),
		slog.Int("killed", s.Killed),
		slog.Float64("intelligence_mean", s.IntelligenceMean),
		slog.Float64("intelligence_std", s.IntelligenceStd),
		slog.Float64("intelligence_max", s.IntelligenceMax),
		slog.Float64("pest_mean", s.PestMean),
		slog.Float64("pest_std", s.PestStd),
		slog.Float64("pest_min", s.PestMin),
		slog.String("smartest", s.Smartest),
	)
}

// LogStats logs the season stats using slog.
func (s SeasonStats) LogStats() {
	slog.Info("stats", "season_stats", s)
}
