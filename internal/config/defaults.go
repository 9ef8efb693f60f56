package config

import (
	_ "embed"
)

//go:embed defaults/crosser.yaml
var defaultCrosserYAML []byte

// DefaultCrosserConfig returns the default lane-crosser configuration.
// Kept in sync with defaults/crosser.yaml as the hardcoded fallback.
func DefaultCrosserConfig() CrosserConfig {
	return CrosserConfig{
		Canvas: CanvasConfig{
			Width:  600,
			Height: 600,
		},
		Actor: ActorConfig{
			Width:  40,
			Height: 40,
			SpawnX: 280,
			SpawnY: 560,
			StepX:  20,
			StepY:  50,
		},
		Gameplay: GameplayConfig{
			ExtraLives:     2,
			WaveSeconds:    60,
			PointsPerZone:  100,
			ZonesPerWave:   5,
			DifficultyStep: 0.5,
		},
		Lanes: LanesConfig{
			VehicleCount:    8,
			VehicleRows:     4,
			VehicleFirstRow: 360,
			RowSpacing:      50,
			VehicleSpeed:    2,

			FloaterCount:    6,
			FloaterRows:     2,
			FloaterFirstRow: 110,
			FloaterWidth:    120,
			FloaterSpeed:    1.5,

			PredatorCount:  3,
			PredatorRow:    210,
			PredatorWidth:  120,
			PredatorSpeed:  -1.5,
			PredatorHitbox: 0.55,

			SwimmerCount: 4,
			SwimmerRow:   260,
			SwimmerWidth: 80,
			SwimmerSpeed: -2,
		},
		Swimmers: SwimmerConfig{
			PhasePerTick:  0.01,
			CycleLength:   7,
			WarnPhase:     4,
			SubmergePhase: 5,
		},
	}
}
