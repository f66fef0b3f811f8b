// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Rules     RulesConfig     `yaml:"rules"`
	Garden    GardenConfig    `yaml:"garden"`
	Autoplay  AutoplayConfig  `yaml:"autoplay"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// RulesConfig holds the pest and win rules.
type RulesConfig struct {
	PestDestructionThreshold int     `yaml:"pest_destruction_threshold"` // Resistance below this risks destruction
	PestDestructionChance    float64 `yaml:"pest_destruction_chance"`    // Chance per point of resistance deficit
	GoalIntelligence         int     `yaml:"goal_intelligence"`          // Intelligence needed to win
}

// GardenConfig holds the garden layout.
type GardenConfig struct {
	Planters     int `yaml:"planters"`      // Number of planter slots
	SeedCapacity int `yaml:"seed_capacity"` // Maximum seeds held in the inventory
}

// AutoplayConfig holds parameters for the headless breeding strategy.
type AutoplayConfig struct {
	MaxSeasons     int `yaml:"max_seasons"`      // Give up after this many seasons
	SplicesPerTurn int `yaml:"splices_per_turn"` // Splice attempts per season (0 = fill inventory)
	MinPestResist  int `yaml:"min_pest_resist"`  // Prefer seeds at or above this resistance when planting
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogStats bool `yaml:"log_stats"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CertainDeathResistance int // Pest resistance at or below which pests always destroy a plant
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

func (c *Config) validate() error {
	if c.Garden.Planters < 1 {
		return fmt.Errorf("garden.planters must be at least 1, got %d", c.Garden.Planters)
	}
	if c.Garden.SeedCapacity < 0 {
		return fmt.Errorf("garden.seed_capacity must not be negative, got %d", c.Garden.SeedCapacity)
	}
	if c.Rules.PestDestructionChance < 0 {
		return fmt.Errorf("rules.pest_destruction_chance must not be negative, got %v", c.Rules.PestDestructionChance)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Rules.PestDestructionChance <= 0 {
		c.Derived.CertainDeathResistance = math.MinInt
		return
	}
	deficit := int(math.Ceil(1 / c.Rules.PestDestructionChance))
	c.Derived.CertainDeathResistance = c.Rules.PestDestructionThreshold - deficit
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
