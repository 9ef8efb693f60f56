package core

import (
	platformcore "github.com/vovakirdan/tui-crosser/internal/core"
)

// Display colors per entity kind. Swimmer color is a function of the cycle
// phase, see swimmerFill.
const (
	fillActor      = platformcore.ColorBrightGreen
	fillRiver      = platformcore.ColorBlue
	fillRoad       = platformcore.ColorGray
	fillFloater    = platformcore.ColorOrange
	fillPredator   = platformcore.ColorGreen
	fillZone       = platformcore.ColorCyan
	fillZoneDone   = platformcore.ColorBrightYellow
	fillSwimNormal = platformcore.ColorBrightCyan
	fillSwimWarn   = platformcore.ColorYellow
	fillSwimUnder  = platformcore.ColorBlue
)

// vehicleFills cycles across vehicle ordinals for visual variety.
var vehicleFills = []platformcore.Color{
	platformcore.ColorBrightRed,
	platformcore.ColorBrightYellow,
	platformcore.ColorBrightMagenta,
	platformcore.ColorBrightWhite,
}

// World is the complete simulation snapshot: all entities, counters and
// timers that determine rendering and rule evaluation at one instant.
// A World is never mutated in place; every command produces a new value.
// Slices are treated as immutable - transitions build fresh slices rather
// than writing through shared backing arrays.
type World struct {
	Actor Entity
	River Entity
	Road  Entity

	Vehicles  []Entity
	Floaters  []Entity
	Predators []Entity
	Swimmers  []Entity

	LandingZones   []Entity // Unclaimed destinations for the current wave
	ClaimedZones   []Entity // Zones reached this wave, kept for display
	PendingRemoval []Entity // Ids a renderer must drop from its surface this step

	ZonesClaimed     int
	Difficulty       float64
	Score            int
	TopScore         int
	Wave             int
	SwimmerPhase     float64
	SwimmerSubmerged bool
	WaveElapsed      float64 // Seconds into the current wave
	Lives            int
}

// NewWorld builds the fixed initial layout: the actor at spawn, five
// landing zones across the top, the river and road bands, and lane
// occupants dealt into their rows.
func NewWorld(r Rules) World {
	w := World{
		Actor:      newEntity(KindActor, 0, r.SpawnX, r.SpawnY, r.ActorW, r.ActorH, fillActor),
		River:      newEntity(KindRiver, 0, 0, 100, r.CanvasW, 210, fillRiver),
		Road:       newEntity(KindRoad, 0, 0, 320, r.CanvasW, 240, fillRoad),
		Difficulty: 1,
		Wave:       1,
		Lives:      r.ExtraLives,
	}

	w.LandingZones = spawnZones(r)

	w.Vehicles = make([]Entity, 0, r.VehicleCount)
	for i := 0; i < r.VehicleCount; i++ {
		y := LaneRowOffset(r.VehicleRows, r.RowSpacing, r.VehicleFirstRow, i)
		x := float64(i) * (r.CanvasW / float64(r.VehicleCount))
		fill := vehicleFills[i%len(vehicleFills)]
		w.Vehicles = append(w.Vehicles, newEntity(KindVehicle, i, x, y, r.ActorW, r.ActorH, fill))
	}

	w.Floaters = make([]Entity, 0, r.FloaterCount)
	for i := 0; i < r.FloaterCount; i++ {
		y := LaneRowOffset(r.FloaterRows, r.RowSpacing, r.FloaterFirstRow, i)
		x := float64(i) * (r.CanvasW / float64(r.FloaterCount))
		w.Floaters = append(w.Floaters, newEntity(KindFloater, i, x, y, r.FloaterW, r.ActorH, fillFloater))
	}

	w.Predators = make([]Entity, 0, r.PredatorCount)
	for i := 0; i < r.PredatorCount; i++ {
		x := float64(i) * (r.CanvasW / float64(r.PredatorCount))
		w.Predators = append(w.Predators, newEntity(KindPredator, i, x, r.PredatorRow, r.PredatorW, r.ActorH, fillPredator))
	}

	w.Swimmers = make([]Entity, 0, r.SwimmerCount)
	for i := 0; i < r.SwimmerCount; i++ {
		x := float64(i) * (r.CanvasW / float64(r.SwimmerCount))
		w.Swimmers = append(w.Swimmers, newEntity(KindSwimmer, i, x, r.SwimmerRow, r.SwimmerW, r.ActorH, fillSwimNormal))
	}

	return w
}

// spawnZones lays out the per-wave landing zones across the top row.
func spawnZones(r Rules) []Entity {
	zones := make([]Entity, 0, r.ZonesPerWave)
	spacing := r.CanvasW / float64(r.ZonesPerWave)
	for i := 0; i < r.ZonesPerWave; i++ {
		x := float64(i)*spacing + (spacing-r.ActorW)/2
		zones = append(zones, newEntity(KindZone, i, x, 10, r.ActorW, r.ActorH, fillZone))
	}
	return zones
}

// swimmerFill maps a cycle phase to the swimmer display color: normal,
// warning just before submersion, then submerged.
func swimmerFill(phase float64, r Rules) platformcore.Color {
	switch {
	case phase >= r.SubmergePhase:
		return fillSwimUnder
	case phase >= r.WarnPhase:
		return fillSwimWarn
	default:
		return fillSwimNormal
	}
}

// respawned returns the actor moved back to the spawn cell.
func respawned(actor Entity, r Rules) Entity {
	actor.X = r.SpawnX
	actor.Y = r.SpawnY
	return actor
}
