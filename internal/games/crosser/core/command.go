package core

// Command is the closed set of events the reducer folds over the world:
// player movement intents, a restart request, and the clock tick. The
// external event source is responsible for delivering commands as a single
// total order; the reducer processes them one at a time.
type Command interface {
	isCommand()
}

// MoveHorizontal shifts the actor along x by Delta world units, subject to
// the edge clamp.
type MoveHorizontal struct {
	Delta float64
}

// MoveVertical shifts the actor along y by Delta world units, subject to
// the edge clamp.
type MoveVertical struct {
	Delta float64
}

// Restart resets the world to the initial layout, preserving only the top
// score. It is the only command that can resume a world whose lives are
// exhausted.
type Restart struct{}

// Tick advances simulated time by one fixed step.
type Tick struct{}

func (MoveHorizontal) isCommand() {}
func (MoveVertical) isCommand()   {}
func (Restart) isCommand()        {}
func (Tick) isCommand()           {}
