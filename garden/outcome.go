package garden

import "github.com/pthm-cable/smartyplants/genetics"

// State is the result of evaluating the garden.
type State uint8

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Outcome is the evaluated game state. Winner and WinnerSlot are set when
// State is Won.
type Outcome struct {
	State      State
	Winner     *genetics.Plant
	WinnerSlot int
}

// IsLost reports whether no living plant, planted seed or stored seed remains.
func IsLost(ps Planters, seeds *Seeds) bool {
	return !ps.HasGrowth() && (seeds == nil || seeds.Empty())
}

// FindWinner returns the lowest-index living plant whose intelligence
// reaches the goal.
func FindWinner(ps Planters, rules Rules) (genetics.Plant, int, bool) {
	for id, p := range ps {
		if p.Kind != Living {
			continue
		}
		if p.Plant.Phenotype().Intelligence >= rules.GoalIntelligence {
			return p.Plant, id, true
		}
	}
	return genetics.Plant{}, -1, false
}

// Evaluate checks the lose condition and then the win condition. A win
// overrides a simultaneous loss.
func Evaluate(ps Planters, seeds *Seeds, rules Rules) Outcome {
	out := Outcome{State: Playing, WinnerSlot: -1}
	if IsLost(ps, seeds) {
		out.State = Lost
	}
	if plant, slot, ok := FindWinner(ps, rules); ok {
		out = Outcome{State: Won, Winner: &plant, WinnerSlot: slot}
	}
	return out
}
