package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"macro-scenario-risk/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Optional: load the panel from a separate file (CSV or JSON by extension).
	Panel PanelConfig `yaml:"panel"`

	Constants  ConstantsConfig  `yaml:"constants"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scenarios  []string         `yaml:"scenarios"`

	Output OutputConfig `yaml:"output"`
}

type PanelConfig struct {
	Path string `yaml:"path"`
}

type ConstantsConfig struct {
	RStar  float64 `yaml:"r_star"`
	PiStar float64 `yaml:"pi_star"`
}

type SimulationConfig struct {
	Iterations      int     `yaml:"iterations"`
	Seed            *uint64 `yaml:"seed"`
	ConfidenceLevel float64 `yaml:"confidence_level"`
}

type OutputConfig struct {
	ReportPath      string `yaml:"report_path"`
	DistributionDir string `yaml:"distribution_dir"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// Interpret a relative panel path as relative to the config file directory
	// when a file exists there, falling back to cwd-relative otherwise.
	if c.Panel.Path != "" && !filepath.IsAbs(c.Panel.Path) {
		cand := filepath.Join(filepath.Dir(path), c.Panel.Path)
		if _, err := os.Stat(cand); err == nil {
			c.Panel.Path = cand
		}
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation.Iterations == 0 {
		c.Simulation.Iterations = 10000
	}
	if c.Simulation.ConfidenceLevel == 0 {
		c.Simulation.ConfidenceLevel = 0.05
	}
	if len(c.Scenarios) == 0 {
		for _, s := range model.Scenarios() {
			c.Scenarios = append(c.Scenarios, string(s))
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Panel.Path == "" {
		return errors.New("panel.path is required")
	}
	if c.Simulation.Iterations <= 0 {
		return errors.New("simulation.iterations must be > 0")
	}
	if c.Simulation.ConfidenceLevel <= 0 || c.Simulation.ConfidenceLevel >= 1 {
		return errors.New("simulation.confidence_level must be in (0, 1)")
	}
	for _, s := range c.Scenarios {
		if _, err := model.ParseScenario(s); err != nil {
			return fmt.Errorf("scenarios: %w", err)
		}
	}
	return nil
}

// Seed returns the configured seed, or a time-based one when unset. Runs that
// need byte-reproducible output should always configure an explicit seed.
func (c *Config) Seed() uint64 {
	if c.Simulation.Seed != nil {
		return *c.Simulation.Seed
	}
	return uint64(time.Now().UnixNano())
}

func (c *Config) TaylorConstants() model.TaylorRuleConstants {
	return model.TaylorRuleConstants{RStar: c.Constants.RStar, PiStar: c.Constants.PiStar}
}

// ScenarioList returns the configured scenarios as parsed values.
func (c *Config) ScenarioList() []model.Scenario {
	out := make([]model.Scenario, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		sc, err := model.ParseScenario(s)
		if err != nil {
			continue // Validate rejects these before use
		}
		out = append(out, sc)
	}
	return out
}
