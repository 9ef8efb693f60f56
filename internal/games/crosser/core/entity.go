// Package core implements the deterministic simulation engine for the
// lane-crosser game: an immutable world snapshot advanced by folding a
// stream of commands (player moves, restarts, clock ticks) through a pure
// reducer. Nothing in this package touches the terminal, the clock, or
// any other I/O.
package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-crosser/internal/core"
)

// Kind classifies a game entity.
type Kind int

const (
	KindActor    Kind = iota // The player-controlled hopper
	KindVehicle              // Road traffic, lethal on contact
	KindFloater              // River log, rideable
	KindRiver                // Static river band, lethal without support
	KindRoad                 // Static road band
	KindZone                 // Landing zone, claim to score
	KindPredator             // Croc-like obstacle, rideable but with a lethal bite zone
	KindSwimmer              // Turtle pack, rideable unless submerged
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindVehicle:
		return "vehicle"
	case KindFloater:
		return "floater"
	case KindRiver:
		return "river"
	case KindRoad:
		return "road"
	case KindZone:
		return "zone"
	case KindPredator:
		return "predator"
	case KindSwimmer:
		return "swimmer"
	default:
		return "unknown"
	}
}

// Entity is an immutable value describing one game object. Entities are
// never mutated after construction; movement produces a new value. ID is
// stable across ticks for a given logical object so a renderer can track
// its visual primitive. Ord is the entity's ordinal within its kind
// sequence; for vehicles it determines lane direction.
type Entity struct {
	ID      string
	Ord     int
	Created float64 // Simulated seconds at creation
	X, Y    float64
	W, H    float64
	Kind    Kind
	Fill    platformcore.Color
}

// newEntity builds an entity with an id derived from its kind and ordinal.
func newEntity(kind Kind, ord int, x, y, w, h float64, fill platformcore.Color) Entity {
	return Entity{
		ID:   fmt.Sprintf("%s-%d", kind, ord),
		Ord:  ord,
		X:    x,
		Y:    y,
		W:    w,
		H:    h,
		Kind: kind,
		Fill: fill,
	}
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() platformcore.RectF {
	return platformcore.NewRectF(e.X, e.Y, e.W, e.H)
}
