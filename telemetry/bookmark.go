package telemetry

import (
	"fmt"
	"log/slog"
)

// MilestoneType identifies the type of milestone.
type MilestoneType string

const (
	MilestoneIntelligenceRecord MilestoneType = "intelligence_record"
	MilestoneDieOff             MilestoneType = "die_off"
	MilestoneLastPlant          MilestoneType = "last_plant"
)

// Milestone is a notable moment detected from season stats.
type Milestone struct {
	Type        MilestoneType `csv:"type"`
	Season      int           `csv:"season"`
	Description string        `csv:"description"`
}

// LogMilestone logs the milestone using slog.
func (m Milestone) LogMilestone() {
	slog.Info("milestone",
		"type", string(m.Type),
		"season", m.Season,
		"description", m.Description,
	)
}

// MilestoneDetector detects notable moments across seasons.
type MilestoneDetector struct {
	bestIntelligence float64
	seen             bool
	lastPlantFlagged bool
}

// NewMilestoneDetector creates a detector.
func NewMilestoneDetector() *MilestoneDetector {
	return &MilestoneDetector{}
}

// Check analyzes the latest season and returns any triggered milestones.
func (md *MilestoneDetector) Check(stats SeasonStats) []Milestone {
	var milestones []Milestone

	// Intelligence record: smartest living plant beats every earlier season
	if stats.Living > 0 {
		if md.seen && stats.IntelligenceMax > md.bestIntelligence {
			milestones = append(milestones, Milestone{
				Type:        MilestoneIntelligenceRecord,
				Season:      stats.Season,
				Description: fmt.Sprintf("%s reached intelligence %.0f (previous best %.0f)", stats.Smartest, stats.IntelligenceMax, md.bestIntelligence),
			})
		}
		if !md.seen || stats.IntelligenceMax > md.bestIntelligence {
			md.bestIntelligence = stats.IntelligenceMax
			md.seen = true
		}
	}

	// Die-off: pests killed at least half of the plants alive before the pest pass
	if before := stats.Living + stats.Killed; stats.Killed > 0 && stats.Killed*2 >= before {
		milestones = append(milestones, Milestone{
			Type:        MilestoneDieOff,
			Season:      stats.Season,
			Description: fmt.Sprintf("pests destroyed %d of %d plants", stats.Killed, before),
		})
	}

	// Last plant: one living plant and nothing else to grow
	last := stats.Living == 1 && stats.Seeded == 0 && stats.SeedsHeld == 0
	if last && !md.lastPlantFlagged {
		milestones = append(milestones, Milestone{
			Type:        MilestoneLastPlant,
			Season:      stats.Season,
			Description: fmt.Sprintf("%s is the last plant standing", stats.Smartest),
		})
	}
	md.lastPlantFlagged = last

	return milestones
}
