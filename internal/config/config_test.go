package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tigrao/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTigrao(GetDefaultYAML("tigrao"))
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultTigraoConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultTigraoConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML() should return nil for unknown games")
	}
}

func TestLoadTigraoCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tigrao.yaml")
	data := []byte("board:\n  rows: 6\n  cols: 10\npace:\n  match_delay: 0.1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadTigrao(path)
	if err != nil {
		t.Fatalf("LoadTigrao() failed: %v", err)
	}
	if cfg.Board.Rows != 6 || cfg.Board.Cols != 10 {
		t.Errorf("board = %dx%d, want 6x10", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Pace.MatchDelay != 0.1 {
		t.Errorf("match_delay = %v, want 0.1", cfg.Pace.MatchDelay)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Pace.SettleDelay != 0.5 || cfg.Speed.Step != 0.1 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadTigraoErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		isValid bool
	}{
		{"bad yaml", "board: [1, 2", false},
		{"board too small", "board:\n  rows: 2\n  cols: 8\n", true},
		{"speed too fast", "speed:\n  max: 3.0\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			_, err := LoadTigrao(path)
			if err == nil {
				t.Fatal("LoadTigrao() expected error")
			}
			if tt.isValid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if _, err := LoadTigrao(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTigrao() of a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TigraoConfig)
		ok     bool
	}{
		{"defaults", func(c *TigraoConfig) {}, true},
		{"minimum board", func(c *TigraoConfig) { c.Board.Rows, c.Board.Cols = 3, 3 }, true},
		{"narrow board", func(c *TigraoConfig) { c.Board.Cols = 2 }, false},
		{"slow minimum", func(c *TigraoConfig) { c.Speed.Min = 0.4 }, false},
		{"inverted range", func(c *TigraoConfig) { c.Speed.Min, c.Speed.Max = 1.5, 1.0 }, false},
		{"initial outside range", func(c *TigraoConfig) { c.Speed.Initial = 1.9; c.Speed.Max = 1.5 }, false},
		{"zero step", func(c *TigraoConfig) { c.Speed.Step = 0 }, false},
		{"negative delay", func(c *TigraoConfig) { c.Pace.SettleDelay = -1 }, false},
		{"negative passes", func(c *TigraoConfig) { c.Engine.MaxChainPasses = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTigraoConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPacerFrames(t *testing.T) {
	p := NewPacer(DefaultTigraoConfig(), core.RuntimeConfig{TickRate: 60})

	tests := []struct {
		speed  float64
		match  int
		settle int
	}{
		{1.0, 18, 30},
		{2.0, 9, 15},
		{0.5, 36, 60},
		{5.0, 9, 15}, // clamped to 2.0
	}

	for _, tt := range tests {
		if got := p.MatchFrames(tt.speed); got != tt.match {
			t.Errorf("MatchFrames(%v) = %d, want %d", tt.speed, got, tt.match)
		}
		if got := p.SettleFrames(tt.speed); got != tt.settle {
			t.Errorf("SettleFrames(%v) = %d, want %d", tt.speed, got, tt.settle)
		}
	}
}

func TestPacerSteps(t *testing.T) {
	p := NewPacer(DefaultTigraoConfig(), core.DefaultConfig())

	if got := p.Faster(1.0); got != 1.1 {
		t.Errorf("Faster(1.0) = %v, want 1.1", got)
	}
	if got := p.Slower(1.0); got != 0.9 {
		t.Errorf("Slower(1.0) = %v, want 0.9", got)
	}
	if got := p.Faster(2.0); got != 2.0 {
		t.Errorf("Faster(2.0) = %v, want 2.0", got)
	}
	if got := p.Slower(0.5); got != 0.5 {
		t.Errorf("Slower(0.5) = %v, want 0.5", got)
	}

	speed := p.Initial()
	for range 10 {
		speed = p.Faster(speed)
	}
	if speed != 2.0 {
		t.Errorf("ten steps up from 1.0 = %v, want 2.0", speed)
	}
}
