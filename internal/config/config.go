// Package config loads and saves the mburn configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/mburn/internal/model"
)

// Config holds all mburn configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Scenario   ScenarioConfig   `toml:"scenario"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// Currency is the symbol prefixed to money values in output.
	Currency string `toml:"currency"`
	// Trials is the default simulation size.
	Trials int `toml:"trials"`
}

// ScenarioConfig holds the default cost estimates used when no saved
// scenario or flag overrides them.
type ScenarioConfig struct {
	Budget      float64 `toml:"budget"`
	Correlation float64 `toml:"correlation"`

	FoodMin  float64 `toml:"food_min"`
	FoodMode float64 `toml:"food_mode"`
	FoodMax  float64 `toml:"food_max"`

	TransportLo    float64 `toml:"transport_lo"`
	TransportWidth float64 `toml:"transport_width"`

	LifestyleMu    float64 `toml:"lifestyle_mu"`
	LifestyleSigma float64 `toml:"lifestyle_sigma"`

	ShockProb float64 `toml:"shock_prob"`
	ShockCost float64 `toml:"shock_cost"`

	HousingMean   float64 `toml:"housing_mean"`
	HousingStddev float64 `toml:"housing_stddev"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	p := model.DefaultParams()
	return Config{
		General: GeneralConfig{
			Currency: "Rp",
			Trials:   p.Trials,
		},
		Scenario:   scenarioFromParams(p),
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
	}
}

// Params assembles a full parameter set from the configured defaults.
func (c Config) Params() model.Params {
	s := c.Scenario
	return model.Params{
		Trials:         c.General.Trials,
		Correlation:    s.Correlation,
		FoodMin:        s.FoodMin,
		FoodMode:       s.FoodMode,
		FoodMax:        s.FoodMax,
		TransportLo:    s.TransportLo,
		TransportWidth: s.TransportWidth,
		LifestyleMu:    s.LifestyleMu,
		LifestyleSigma: s.LifestyleSigma,
		ShockProb:      s.ShockProb,
		ShockCost:      s.ShockCost,
		HousingMean:    s.HousingMean,
		HousingStddev:  s.HousingStddev,
		Budget:         s.Budget,
	}
}

// SetParams stores a parameter set as the configured defaults.
func (c *Config) SetParams(p model.Params) {
	c.General.Trials = p.Trials
	c.Scenario = scenarioFromParams(p)
}

func scenarioFromParams(p model.Params) ScenarioConfig {
	return ScenarioConfig{
		Budget:         p.Budget,
		Correlation:    p.Correlation,
		FoodMin:        p.FoodMin,
		FoodMode:       p.FoodMode,
		FoodMax:        p.FoodMax,
		TransportLo:    p.TransportLo,
		TransportWidth: p.TransportWidth,
		LifestyleMu:    p.LifestyleMu,
		LifestyleSigma: p.LifestyleSigma,
		ShockProb:      p.ShockProb,
		ShockCost:      p.ShockCost,
		HousingMean:    p.HousingMean,
		HousingStddev:  p.HousingStddev,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mburn")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// ScenarioDBPath returns the path of the scenario preset database.
func ScenarioDBPath() string {
	return filepath.Join(ConfigDir(), "scenarios.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
