package garden

import "github.com/pthm-cable/smartyplants/genetics"

// DefaultPlanterCount is the number of slots in the garden.
const DefaultPlanterCount = 4

// StartingPlants returns the three plants every game begins with.
func StartingPlants() []genetics.Plant {
	return []genetics.Plant{
		genetics.NewPlant(genetics.NewPlantName("ro", "ber", "to"),
			genetics.StemColorCategory(genetics.Green),
			genetics.StemColorCategory(genetics.Brown),
			genetics.StemStyleCategory(genetics.Curvy),
			genetics.StemStyleCategory(genetics.Loopy),
			genetics.FruitStyleCategory(genetics.Circle),
			genetics.FruitStyleCategory(genetics.Square),
			genetics.FruitColorCategory(genetics.Red),
			genetics.FruitColorCategory(genetics.Purple),
		),
		genetics.NewPlant(genetics.NewPlantName("jes", "si", "ca"),
			genetics.StemColorCategory(genetics.Brown),
			genetics.StemColorCategory(genetics.Blue),
			genetics.StemStyleCategory(genetics.Wiggly),
			genetics.StemStyleCategory(genetics.Loopy),
			genetics.FruitStyleCategory(genetics.Square),
			genetics.FruitStyleCategory(genetics.Triangle),
			genetics.FruitColorCategory(genetics.Red),
			genetics.FruitColorCategory(genetics.Yellow),
		),
		genetics.NewPlant(genetics.NewPlantName("fran", "cine"),
			genetics.StemColorCategory(genetics.Green),
			genetics.StemColorCategory(genetics.Blue),
			genetics.StemStyleCategory(genetics.Wiggly),
			genetics.StemStyleCategory(genetics.Angular),
			genetics.FruitStyleCategory(genetics.Circle),
			genetics.FruitStyleCategory(genetics.Triangle),
			genetics.FruitColorCategory(genetics.Purple),
			genetics.FruitColorCategory(genetics.Yellow),
		),
	}
}

// GenerateStartingPlants fills the first slots with the starting plants and
// leaves the rest empty. Starting plants that do not fit are dropped.
func GenerateStartingPlants(slots int) Planters {
	ps := NewPlanters(slots)
	for i, p := range StartingPlants() {
		if i >= slots {
			break
		}
		ps[i] = PlantPlanter(p)
	}
	return ps
}
