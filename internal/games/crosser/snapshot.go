package crosser

// Snapshot captures the observable game state for determinism testing and
// replay comparison.
type Snapshot struct {
	Ticks            uint64
	ActorX           float64
	ActorY           float64
	Score            int
	TopScore         int
	Wave             int
	Lives            int
	ZonesClaimed     int
	ZonesRemaining   int
	Difficulty       float64
	WaveElapsed      float64
	SwimmerPhase     float64
	SwimmerSubmerged bool
	Paused           bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	return Snapshot{
		Ticks:            g.ticks,
		ActorX:           w.Actor.X,
		ActorY:           w.Actor.Y,
		Score:            w.Score,
		TopScore:         w.TopScore,
		Wave:             w.Wave,
		Lives:            w.Lives,
		ZonesClaimed:     w.ZonesClaimed,
		ZonesRemaining:   len(w.LandingZones),
		Difficulty:       w.Difficulty,
		WaveElapsed:      w.WaveElapsed,
		SwimmerPhase:     w.SwimmerPhase,
		SwimmerSubmerged: w.SwimmerSubmerged,
		Paused:           g.paused,
	}
}
