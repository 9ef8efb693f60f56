package core

// Horizontal bound beyond which the actor is considered lost off-canvas.
const offCanvasMargin = 60

// resolve decides the actor's fate against an advanced world snapshot and
// produces the next one. All collision categories are computed against the
// actor's rectangle before any carried movement is applied. Rule priority
// is explicit:
//
//	carried movement: floater > predator > swimmer (first support wins)
//	death: vehicle hit, off-canvas, unsupported in river,
//	       riding a submerged swimmer, wave clock expired
//
// A death or a zone claim resets the actor to spawn; otherwise the actor
// keeps its row and drifts with whatever it is riding.
func resolve(w World, r Rules) World {
	actor := w.Actor.Rect()

	carHit := false
	for _, v := range w.Vehicles {
		if actor.Intersects(v.Rect()) {
			carHit = true
			break
		}
	}

	riverHit := actor.Intersects(w.River.Rect())

	onFloater := false
	for _, f := range w.Floaters {
		if actor.Intersects(f.Rect()) {
			onFloater = true
			break
		}
	}

	// Only the forward portion of a predator is lethal to stand off of;
	// the width factor excludes the jaw/tail overhang from the support
	// check so the actor is not flagged while visually past the mouth.
	onPredator := false
	for _, p := range w.Predators {
		if actor.IntersectsScaled(p.Rect(), r.PredatorHitboxW, 1) {
			onPredator = true
			break
		}
	}

	onSwimmer := false
	for _, s := range w.Swimmers {
		if actor.Intersects(s.Rect()) {
			onSwimmer = true
			break
		}
	}

	landing := -1
	landingCount := 0
	for i, z := range w.LandingZones {
		if actor.Intersects(z.Rect()) {
			landing = i
			landingCount++
		}
	}

	supported := onFloater || onPredator || onSwimmer || landingCount > 0

	dead := carHit ||
		actor.X < -offCanvasMargin || actor.X > r.CanvasW+offCanvasMargin ||
		(riverHit && !supported) ||
		(onSwimmer && w.SwimmerSubmerged) ||
		w.WaveElapsed >= r.WaveSeconds

	// Carried movement keeps the actor visually anchored to its ride.
	// Applied even when it is otherwise a no-op this tick.
	carriedX := w.Actor.X
	switch {
	case onFloater:
		carriedX += r.FloaterSpeed * w.Difficulty
	case onPredator:
		carriedX += r.PredatorSpeed * w.Difficulty
	case onSwimmer:
		carriedX += r.SwimmerSpeed * w.Difficulty
	}

	scored := landingCount == 1

	if scored || dead {
		w.Actor = respawned(w.Actor, r)
	} else {
		next := w.Actor
		next.X = carriedX
		w.Actor = next
	}

	w.PendingRemoval = nil
	if scored {
		zone := w.LandingZones[landing]
		remaining := make([]Entity, 0, len(w.LandingZones)-1)
		remaining = append(remaining, w.LandingZones[:landing]...)
		remaining = append(remaining, w.LandingZones[landing+1:]...)
		w.LandingZones = remaining

		zone.Fill = fillZoneDone
		claimed := make([]Entity, 0, len(w.ClaimedZones)+1)
		claimed = append(claimed, w.ClaimedZones...)
		claimed = append(claimed, zone)
		w.ClaimedZones = claimed

		w.PendingRemoval = []Entity{zone}
		w.ZonesClaimed++
		w.Score += r.PointsPerZone * w.Wave
		if w.Score > w.TopScore {
			w.TopScore = w.Score
		}
	}

	if dead && w.Lives > 0 {
		w.Lives--
	}

	// The expired clock already cost a life above; it wraps to zero as
	// part of the same resolution step.
	if w.WaveElapsed >= r.WaveSeconds {
		w.WaveElapsed = 0
	}

	if w.ZonesClaimed >= r.ZonesPerWave {
		w = nextWave(w, r)
	}

	return w
}

// nextWave resets the world to the initial layout while carrying forward
// score, top score, an incremented wave and difficulty, and the current
// dynamic lane occupants - traffic keeps flowing across the wave boundary
// instead of snapping back to its spawn columns.
func nextWave(w World, r Rules) World {
	next := NewWorld(r)
	next.Score = w.Score
	next.TopScore = w.TopScore
	next.Wave = w.Wave + 1
	next.Difficulty = w.Difficulty + r.DifficultyStep
	next.Vehicles = w.Vehicles
	next.Floaters = w.Floaters
	next.Predators = w.Predators
	next.Swimmers = w.Swimmers

	// The claimed-zone markers leave the display with the wave.
	next.PendingRemoval = w.ClaimedZones

	return next
}
