package core

// Rules holds every tunable constant of the simulation. A Rules value is
// fixed for the lifetime of a world; difficulty scaling happens through the
// world's multiplier, not by editing rules mid-game.
type Rules struct {
	// Canvas
	CanvasW float64
	CanvasH float64

	// Actor
	ActorW float64
	ActorH float64
	SpawnX float64
	SpawnY float64
	StepX  float64 // Horizontal move delta per command
	StepY  float64 // Vertical move delta per command

	// Gameplay
	ExtraLives     int
	WaveSeconds    float64
	TickSeconds    float64
	PointsPerZone  int
	ZonesPerWave   int
	DifficultyStep float64

	// Lane speeds, world units per tick before difficulty scaling.
	// Vehicle speed is a magnitude; direction comes from lane ordinal.
	VehicleSpeed  float64
	FloaterSpeed  float64
	PredatorSpeed float64
	SwimmerSpeed  float64

	// PredatorHitboxW scales the lethal width of a predator so the actor
	// is not flagged as colliding while visually past its jaws.
	PredatorHitboxW float64

	// Swimmer submersion cycle
	PhasePerTick  float64
	CycleLength   float64 // Phase wraps at this value
	WarnPhase     float64 // Phase at which swimmers show the warning color
	SubmergePhase float64 // Phase at which swimmers submerge

	// Lane layout
	VehicleCount    int
	VehicleRows     int
	VehicleFirstRow float64
	RowSpacing      float64
	FloaterCount    int
	FloaterRows     int
	FloaterFirstRow float64
	FloaterW        float64
	PredatorCount   int
	PredatorRow     float64
	PredatorW       float64
	SwimmerCount    int
	SwimmerRow      float64
	SwimmerW        float64
}

// DefaultRules returns the classic tuning: a 600x600 canvas, 40-unit grid,
// 60-second waves at 100 ticks per second, and two extra lives.
func DefaultRules() Rules {
	return Rules{
		CanvasW: 600,
		CanvasH: 600,

		ActorW: 40,
		ActorH: 40,
		SpawnX: 280,
		SpawnY: 560,
		StepX:  20,
		StepY:  50,

		ExtraLives:     2,
		WaveSeconds:    60,
		TickSeconds:    0.01,
		PointsPerZone:  100,
		ZonesPerWave:   5,
		DifficultyStep: 0.5,

		VehicleSpeed:  2,
		FloaterSpeed:  1.5,
		PredatorSpeed: -1.5,
		SwimmerSpeed:  -2,

		PredatorHitboxW: 0.55,

		PhasePerTick:  0.01,
		CycleLength:   7,
		WarnPhase:     4,
		SubmergePhase: 5,

		VehicleCount:    8,
		VehicleRows:     4,
		VehicleFirstRow: 360,
		RowSpacing:      50,
		FloaterCount:    6,
		FloaterRows:     2,
		FloaterFirstRow: 110,
		FloaterW:        120,
		PredatorCount:   3,
		PredatorRow:     210,
		PredatorW:       120,
		SwimmerCount:    4,
		SwimmerRow:      260,
		SwimmerW:        80,
	}
}

// MaxActorX is the right-edge actor position on the canvas.
func (r Rules) MaxActorX() float64 {
	return r.CanvasW - r.ActorW
}

// MaxActorY is the bottom-edge actor position on the canvas.
func (r Rules) MaxActorY() float64 {
	return r.CanvasH - r.ActorH
}
