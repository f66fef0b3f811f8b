package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/smartyplants/config"
)

// OutputManager handles structured game output with CSV logging.
type OutputManager struct {
	dir           string
	seasonsFile   *os.File
	milestoneFile *os.File

	// Track if headers have been written
	seasonsHeaderWritten   bool
	milestoneHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "seasons.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating seasons.csv: %w", err)
	}
	om.seasonsFile = f

	f, err = os.Create(filepath.Join(dir, "milestones.csv"))
	if err != nil {
		om.seasonsFile.Close()
		return nil, fmt.Errorf("creating milestones.csv: %w", err)
	}
	om.milestoneFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSeason writes a season stats record to seasons.csv.
func (om *OutputManager) WriteSeason(stats SeasonStats) error {
	if om == nil {
		return nil
	}

	records := []SeasonStats{stats}

	if !om.seasonsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.seasonsFile); err != nil {
			return fmt.Errorf("writing season stats: %w", err)
		}
		om.seasonsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.seasonsFile); err != nil {
			return fmt.Errorf("writing season stats: %w", err)
		}
	}

	return nil
}

// WriteMilestone writes a milestone record to milestones.csv.
func (om *OutputManager) WriteMilestone(m Milestone) error {
	if om == nil {
		return nil
	}

	records := []Milestone{m}

	if !om.milestoneHeaderWritten {
		if err := gocsv.Marshal(records, om.milestoneFile); err != nil {
			return fmt.Errorf("writing milestone: %w", err)
		}
		om.milestoneHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.milestoneFile); err != nil {
			return fmt.Errorf("writing milestone: %w", err)
		}
	}

	return nil
}

// WriteLineage writes every recorded plant to lineage.csv, replacing any earlier file.
func (om *OutputManager) WriteLineage(records []LineageRecord) error {
	if om == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(om.dir, "lineage.csv"))
	if err != nil {
		return fmt.Errorf("creating lineage.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing lineage: %w", err)
	}
	return nil
}

// WriteHallOfFame saves the hall of fame as JSON.
func (om *OutputManager) WriteHallOfFame(hof *HallOfFame) error {
	if om == nil || hof == nil {
		return nil
	}

	data, err := hof.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling hall of fame: %w", err)
	}

	if err := os.WriteFile(filepath.Join(om.dir, "hall_of_fame.json"), data, 0644); err != nil {
		return fmt.Errorf("writing hall_of_fame.json: %w", err)
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.seasonsFile != nil {
		if err := om.seasonsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.milestoneFile != nil {
		if err := om.milestoneFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
