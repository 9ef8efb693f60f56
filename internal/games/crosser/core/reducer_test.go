package core

import (
	"reflect"
	"testing"
)

func TestClampMoveX(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name  string
		x     float64
		delta float64
		want  float64
	}{
		{"left edge rejects outward", 0, -r.StepX, 0},
		{"left edge allows inward", 0, r.StepX, 20},
		{"right edge rejects outward", r.MaxActorX(), r.StepX, r.MaxActorX()},
		{"right edge allows inward", r.MaxActorX(), -r.StepX, r.MaxActorX() - 20},
		{"mid canvas moves freely", 280, r.StepX, 300},
		{"near edge is not range-clamped", 550, r.StepX, 570},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(r)
			w.Actor.X = tt.x
			next := Reduce(w, r, MoveHorizontal{Delta: tt.delta})
			if next.Actor.X != tt.want {
				t.Errorf("actor x = %v, want %v", next.Actor.X, tt.want)
			}
		})
	}
}

func TestClampMoveY(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name  string
		y     float64
		delta float64
		want  float64
	}{
		{"top edge rejects outward", 0, -r.StepY, 0},
		{"top edge allows inward", 0, r.StepY, 50},
		{"bottom edge rejects outward", r.MaxActorY(), r.StepY, r.MaxActorY()},
		{"bottom edge allows inward", r.MaxActorY(), -r.StepY, 510},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(r)
			w.Actor.Y = tt.y
			next := Reduce(w, r, MoveVertical{Delta: tt.delta})
			if next.Actor.Y != tt.want {
				t.Errorf("actor y = %v, want %v", next.Actor.Y, tt.want)
			}
		})
	}
}

func TestMoveDoesNotTouchLanes(t *testing.T) {
	r := DefaultRules()
	w := NewWorld(r)
	next := Reduce(w, r, MoveHorizontal{Delta: r.StepX})
	if !reflect.DeepEqual(next.Vehicles, w.Vehicles) {
		t.Error("a movement command must not advance vehicles")
	}
	if next.WaveElapsed != w.WaveElapsed {
		t.Error("a movement command must not advance the wave clock")
	}
}

func TestRestartPreservesOnlyTopScore(t *testing.T) {
	r := DefaultRules()
	w := NewWorld(r)
	w.Score = 300
	w.TopScore = 500
	w.Wave = 3
	w.Difficulty = 2
	w.Lives = 0
	w.ZonesClaimed = 2

	next := Reduce(w, r, Restart{})

	if next.TopScore != 500 {
		t.Errorf("top score = %d, want 500", next.TopScore)
	}
	if next.Score != 0 || next.Wave != 1 || next.Difficulty != 1 {
		t.Errorf("score/wave/difficulty = %d/%d/%v, want 0/1/1",
			next.Score, next.Wave, next.Difficulty)
	}
	if next.Lives != r.ExtraLives {
		t.Errorf("lives = %d, want %d", next.Lives, r.ExtraLives)
	}
	if len(next.LandingZones) != r.ZonesPerWave || next.ZonesClaimed != 0 {
		t.Error("restart should lay out a full set of unclaimed zones")
	}
}

func TestRestartAcceptedWhileAlive(t *testing.T) {
	r := DefaultRules()
	w := NewWorld(r)
	w.Score = 100
	w.TopScore = 100
	next := Reduce(w, r, Restart{})
	if next.Score != 0 || next.TopScore != 100 {
		t.Errorf("restart mid-game: score/top = %d/%d, want 0/100", next.Score, next.TopScore)
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	r := DefaultRules()
	cmds := []Command{
		MoveVertical{Delta: -r.StepY},
		Tick{},
		MoveHorizontal{Delta: r.StepX},
		Tick{},
		Tick{},
		MoveVertical{Delta: -r.StepY},
		Tick{},
	}

	a := NewWorld(r)
	b := NewWorld(r)
	for _, c := range cmds {
		a = Reduce(a, r, c)
		b = Reduce(b, r, c)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical command sequences should produce identical worlds")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	r := DefaultRules()
	w := NewWorld(r)
	xs := make([]float64, len(w.Vehicles))
	for i, v := range w.Vehicles {
		xs[i] = v.X
	}

	Reduce(w, r, Tick{})

	for i, v := range w.Vehicles {
		if v.X != xs[i] {
			t.Fatalf("tick wrote through the input world's vehicle slice at %d", i)
		}
	}
}
