package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded CrosserConfig
	if err := yaml.Unmarshal(defaultCrosserYAML, &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultCrosserConfig()) {
		t.Errorf("embedded defaults diverged from DefaultCrosserConfig():\nembedded: %+v\nhardcoded: %+v",
			embedded, DefaultCrosserConfig())
	}
}

func TestLoadCrosserCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
canvas:
  width: 800
  height: 400
gameplay:
  extra_lives: 9
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := LoadCrosser(path)
	if err != nil {
		t.Fatalf("LoadCrosser() failed: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 400 {
		t.Errorf("canvas = %vx%v, want 800x400", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Gameplay.ExtraLives != 9 {
		t.Errorf("extra lives = %d, want 9", cfg.Gameplay.ExtraLives)
	}
}

func TestLoadCrosserMissingCustomPath(t *testing.T) {
	if _, err := LoadCrosser("/nonexistent/crosser.yaml"); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestApplyCrosserPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLives int
		wantStep  float64
	}{
		{DifficultyEasy, 4, 0.25},
		{DifficultyNormal, 2, 0.5},
		{DifficultyHard, 1, 0.75},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultCrosserConfig()
			ApplyCrosserPreset(&cfg, tt.preset)
			if cfg.Gameplay.ExtraLives != tt.wantLives {
				t.Errorf("extra lives = %d, want %d", cfg.Gameplay.ExtraLives, tt.wantLives)
			}
			if cfg.Gameplay.DifficultyStep != tt.wantStep {
				t.Errorf("difficulty step = %v, want %v", cfg.Gameplay.DifficultyStep, tt.wantStep)
			}
		})
	}
}
