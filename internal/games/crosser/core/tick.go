package core

import "sort"

// stepTick advances the world by one fixed time step: moves every dynamic
// lane occupant, updates the swimmer cycle and the wave clock, then hands
// the advanced snapshot to collision resolution. Once lives are exhausted
// the tick is inert - the same world is returned unchanged until a Restart
// arrives.
func stepTick(w World, r Rules) World {
	if w.Lives == 0 {
		return w
	}

	// Vehicles are partitioned by lane direction, advanced per-lane, then
	// re-merged in ordinal order so downstream consumers always see the
	// same stable sequence.
	var leftward, rightward []Entity
	for _, v := range w.Vehicles {
		if laneDirection(v.Ord) < 0 {
			leftward = append(leftward, v)
		} else {
			rightward = append(rightward, v)
		}
	}
	vehicles := make([]Entity, 0, len(w.Vehicles))
	for _, v := range leftward {
		vehicles = append(vehicles, advance(v, -r.VehicleSpeed*w.Difficulty, r.CanvasW))
	}
	for _, v := range rightward {
		vehicles = append(vehicles, advance(v, r.VehicleSpeed*w.Difficulty, r.CanvasW))
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].Ord < vehicles[j].Ord })
	w.Vehicles = vehicles

	floaters := make([]Entity, 0, len(w.Floaters))
	for _, f := range w.Floaters {
		floaters = append(floaters, advance(f, r.FloaterSpeed*w.Difficulty, r.CanvasW))
	}
	w.Floaters = floaters

	predators := make([]Entity, 0, len(w.Predators))
	for _, p := range w.Predators {
		predators = append(predators, advance(p, r.PredatorSpeed*w.Difficulty, r.CanvasW))
	}
	w.Predators = predators

	// Swimmers move and take their color from the cycle phase. Color is
	// recomputed every tick, never persisted independently of the phase.
	swimmers := make([]Entity, 0, len(w.Swimmers))
	for _, s := range w.Swimmers {
		s = advance(s, r.SwimmerSpeed*w.Difficulty, r.CanvasW)
		s.Fill = swimmerFill(w.SwimmerPhase, r)
		swimmers = append(swimmers, s)
	}
	w.Swimmers = swimmers

	w.SwimmerPhase += r.PhasePerTick
	if w.SwimmerPhase >= r.CycleLength {
		w.SwimmerPhase -= r.CycleLength
	}
	w.SwimmerSubmerged = w.SwimmerPhase >= r.SubmergePhase

	w.WaveElapsed += r.TickSeconds

	return resolve(w, r)
}
