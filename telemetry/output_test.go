package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// nil manager is a no-op
	if err := om.WriteSeason(SeasonStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for season := 1; season <= 3; season++ {
		if err := om.WriteSeason(SeasonStats{Season: season, Living: 3}); err != nil {
			t.Fatalf("WriteSeason: %v", err)
		}
	}
	if err := om.WriteMilestone(Milestone{Type: MilestoneDieOff, Season: 2, Description: "x"}); err != nil {
		t.Fatalf("WriteMilestone: %v", err)
	}
	if err := om.WriteLineage([]LineageRecord{{ID: 1, Name: "Roberto", BornSeason: 1}}); err != nil {
		t.Fatalf("WriteLineage: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "seasons.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("seasons.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "season,living,") {
		t.Errorf("header = %q", lines[0])
	}

	lineage, err := os.ReadFile(filepath.Join(dir, "lineage.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(lineage), "Roberto") {
		t.Errorf("lineage.csv = %q", lineage)
	}
}
