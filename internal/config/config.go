// Package config provides YAML-based game configuration loading and
// difficulty presets for the crosser platform.
package config

// CrosserConfig contains all configuration for the lane-crosser game.
type CrosserConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Actor    ActorConfig    `yaml:"actor"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Lanes    LanesConfig    `yaml:"lanes"`
	Swimmers SwimmerConfig  `yaml:"swimmers"`
}

// CanvasConfig defines the world dimensions in world units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the player entity and its movement steps.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	StepX  float64 `yaml:"step_x"`
	StepY  float64 `yaml:"step_y"`
}

// GameplayConfig defines lives, scoring and wave progression.
type GameplayConfig struct {
	ExtraLives     int     `yaml:"extra_lives"`
	WaveSeconds    float64 `yaml:"wave_seconds"`
	PointsPerZone  int     `yaml:"points_per_zone"`
	ZonesPerWave   int     `yaml:"zones_per_wave"`
	DifficultyStep float64 `yaml:"difficulty_step"`
}

// LanesConfig defines lane occupant counts, rows and per-tick speeds.
type LanesConfig struct {
	VehicleCount    int     `yaml:"vehicle_count"`
	VehicleRows     int     `yaml:"vehicle_rows"`
	VehicleFirstRow float64 `yaml:"vehicle_first_row"`
	RowSpacing      float64 `yaml:"row_spacing"`
	VehicleSpeed    float64 `yaml:"vehicle_speed"`

	FloaterCount    int     `yaml:"floater_count"`
	FloaterRows     int     `yaml:"floater_rows"`
	FloaterFirstRow float64 `yaml:"floater_first_row"`
	FloaterWidth    float64 `yaml:"floater_width"`
	FloaterSpeed    float64 `yaml:"floater_speed"`

	PredatorCount  int     `yaml:"predator_count"`
	PredatorRow    float64 `yaml:"predator_row"`
	PredatorWidth  float64 `yaml:"predator_width"`
	PredatorSpeed  float64 `yaml:"predator_speed"`
	PredatorHitbox float64 `yaml:"predator_hitbox"`

	SwimmerCount int     `yaml:"swimmer_count"`
	SwimmerRow   float64 `yaml:"swimmer_row"`
	SwimmerWidth float64 `yaml:"swimmer_width"`
	SwimmerSpeed float64 `yaml:"swimmer_speed"`
}

// SwimmerConfig defines the submersion cycle of turtle packs.
type SwimmerConfig struct {
	PhasePerTick  float64 `yaml:"phase_per_tick"`
	CycleLength   float64 `yaml:"cycle_length"`
	WarnPhase     float64 `yaml:"warn_phase"`
	SubmergePhase float64 `yaml:"submerge_phase"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyCrosserPreset adjusts the config based on a difficulty preset.
// Easy grants more lives and a gentler ramp; hard trims lives and steepens
// the per-wave speed step.
func ApplyCrosserPreset(cfg *CrosserConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.ExtraLives = 4
		cfg.Gameplay.DifficultyStep = 0.25
	case DifficultyHard:
		cfg.Gameplay.ExtraLives = 1
		cfg.Gameplay.DifficultyStep = 0.75
	}
}
