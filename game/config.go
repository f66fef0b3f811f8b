package game

import (
	"github.com/pthm-cable/smartyplants/config"
	"github.com/pthm-cable/smartyplants/garden"
)

// RulesFromConfig maps the loaded rule settings onto garden rules.
func RulesFromConfig(cfg *config.Config) garden.Rules {
	return garden.Rules{
		PestDestructionThreshold: cfg.Rules.PestDestructionThreshold,
		PestDestructionChance:    cfg.Rules.PestDestructionChance,
		GoalIntelligence:         cfg.Rules.GoalIntelligence,
	}
}
