package core

// Wraparound thresholds for lane traffic, in world units relative to the
// canvas edges. The exit edge extends further off-screen than the entry
// edge on each side so a wrapped entity never pops in while any part of it
// is still visible. This asymmetry is deliberate; keep it.
const (
	wrapExitRight  = 60  // Leave rightward when x > canvasW + 60
	wrapEnterLeft  = -40 // ...and re-enter at x = -40
	wrapExitLeft   = -60 // Leave leftward when x < -60
	wrapEnterRight = 20  // ...and re-enter at x = canvasW + 20
)

// LaneRowOffset computes the y coordinate for a lane occupant: occupants
// are dealt round-robin into rowsNeeded rows spaced rowSpacing apart,
// starting at firstRowY. Used once at initial layout.
func LaneRowOffset(rowsNeeded int, rowSpacing, firstRowY float64, ordinal int) float64 {
	return float64(ordinal%rowsNeeded)*rowSpacing + firstRowY
}

// laneDirection derives a vehicle lane's direction from the vehicle's
// ordinal: odd ordinals drive leftward, even ordinals rightward.
func laneDirection(ordinal int) float64 {
	if ordinal%2 == 1 {
		return -1
	}
	return 1
}

// advance returns the entity translated by delta along x, wrapping around
// the canvas horizontally using the asymmetric thresholds above.
func advance(e Entity, delta, canvasW float64) Entity {
	x := e.X + delta
	switch {
	case x > canvasW+wrapExitRight:
		x = wrapEnterLeft
	case x < wrapExitLeft:
		x = canvasW + wrapEnterRight
	}
	e.X = x
	return e
}
