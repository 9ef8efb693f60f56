package core

// Reduce folds one command into the world, returning the next snapshot.
// It is a total, side-effect-free function: no command can fail, and the
// input world is never modified. Renderers observe only the returned
// values, so every snapshot they see is complete.
func Reduce(w World, r Rules, cmd Command) World {
	switch c := cmd.(type) {
	case MoveHorizontal:
		w.Actor = clampMoveX(w.Actor, r, c.Delta)
		return w
	case MoveVertical:
		w.Actor = clampMoveY(w.Actor, r, c.Delta)
		return w
	case Restart:
		next := NewWorld(r)
		next.TopScore = w.TopScore
		return next
	case Tick:
		return stepTick(w, r)
	default:
		return w
	}
}

// clampMoveX applies a horizontal move. The clamp is exact-equality on the
// two extreme coordinates (0 and canvasW-actorW): a move outward from an
// extreme is rejected whole, anything else passes. It is not a range clamp,
// so a mid-canvas move larger than the remaining distance still lands.
func clampMoveX(actor Entity, r Rules, delta float64) Entity {
	if actor.X == 0 && delta < 0 {
		return actor
	}
	if actor.X == r.MaxActorX() && delta > 0 {
		return actor
	}
	actor.X += delta
	return actor
}

// clampMoveY applies a vertical move with the same equality-based edge
// policy at 0 and canvasH-actorH.
func clampMoveY(actor Entity, r Rules, delta float64) Entity {
	if actor.Y == 0 && delta < 0 {
		return actor
	}
	if actor.Y == r.MaxActorY() && delta > 0 {
		return actor
	}
	actor.Y += delta
	return actor
}
