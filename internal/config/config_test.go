package config

import (
	"testing"

	"github.com/theirongolddev/mburn/internal/model"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Fatalf("missing config loaded as %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists reported a config that was never saved")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "IDR"
	cfg.Scenario.Budget = 3_750_000
	cfg.Scenario.ShockProb = 0.12
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists did not see a saved config")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip changed config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestParamsRoundTrip(t *testing.T) {
	p := model.DefaultParams()
	p.Budget = 9_999_999
	p.Trials = 2000
	p.LifestyleMu = 13.1

	var cfg Config
	cfg.SetParams(p)
	got := cfg.Params()

	// Seed is intentionally not part of the config.
	p.Seed = 0
	if got != p {
		t.Fatalf("params round trip changed values:\n got %+v\nwant %+v", got, p)
	}
}
