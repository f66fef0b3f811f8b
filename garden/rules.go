package garden

// Rules holds the tunable constants of the season and win checks.
type Rules struct {
	// Plants with pest resistance below this may be destroyed.
	PestDestructionThreshold int
	// Destruction chance per point of resistance below the threshold.
	PestDestructionChance float64
	// Intelligence a plant needs to win the game.
	GoalIntelligence int
}

// DefaultRules returns the rules of the reference game.
func DefaultRules() Rules {
	return Rules{
		PestDestructionThreshold: 5,
		PestDestructionChance:    0.1,
		GoalIntelligence:         10,
	}
}

// DestructionChance returns the chance that pests destroy a plant with the
// given resistance. It is not clamped and exceeds 1 at large deficits.
func (r Rules) DestructionChance(pestResistance int) float64 {
	if pestResistance >= r.PestDestructionThreshold {
		return 0
	}
	difference := r.PestDestructionThreshold - pestResistance
	return float64(difference) * r.PestDestructionChance
}
