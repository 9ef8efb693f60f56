package crosser

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crosser/internal/core"
	sim "github.com/vovakirdan/tui-crosser/internal/games/crosser/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameMetadata(t *testing.T) {
	g := New()
	if g.ID() != "crosser" {
		t.Errorf("ID = %q, want %q", g.ID(), "crosser")
	}
	if g.Title() == "" {
		t.Error("Title should not be empty")
	}
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame()
	st := g.State()

	if st.Score != 0 || st.Wave != 1 || st.GameOver || st.Paused {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if st.Lives != g.Rules().ExtraLives {
		t.Errorf("lives = %d, want %d", st.Lives, g.Rules().ExtraLives)
	}
	w := g.World()
	if w.Actor.X != g.Rules().SpawnX || w.Actor.Y != g.Rules().SpawnY {
		t.Error("actor should start at spawn")
	}
}

func TestResetKeepsSessionTopScore(t *testing.T) {
	g := newTestGame()
	g.world.Score = 400
	g.world.TopScore = 400

	g.Reset(core.DefaultConfig())

	if g.State().TopScore != 400 {
		t.Errorf("top score = %d, want 400 across reset", g.State().TopScore)
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, want 0 after reset", g.State().Score)
	}
}

func TestStepMovesActor(t *testing.T) {
	g := newTestGame()
	startX := g.World().Actor.X
	startY := g.World().Actor.Y

	g.Step(frame(core.ActionUp))
	if g.World().Actor.Y != startY-g.Rules().StepY {
		t.Errorf("actor y = %v, want %v after up", g.World().Actor.Y, startY-g.Rules().StepY)
	}

	g.Step(frame(core.ActionLeft))
	if g.World().Actor.X != startX-g.Rules().StepX {
		t.Errorf("actor x = %v, want %v after left", g.World().Actor.X, startX-g.Rules().StepX)
	}
}

func TestStepAdvancesSimulation(t *testing.T) {
	g := newTestGame()
	before := g.World().Vehicles[0].X
	g.Step(frame())
	if g.World().Vehicles[0].X == before {
		t.Error("an empty frame should still advance the lanes")
	}
}

func TestOpposedMovesCancelOut(t *testing.T) {
	g := newTestGame()
	startX := g.World().Actor.X
	g.Step(frame(core.ActionLeft, core.ActionRight))
	if g.World().Actor.X != startX {
		t.Errorf("actor x = %v, want %v after opposed moves", g.World().Actor.X, startX)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.World()
	g.Step(frame())
	g.Step(frame(core.ActionUp))
	if g.World().Actor.Y != before.Actor.Y || g.World().Vehicles[0].X != before.Vehicles[0].X {
		t.Error("nothing should move while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("pause action should toggle back off")
	}
}

func TestRestartAction(t *testing.T) {
	g := newTestGame()
	g.world.Score = 150
	g.world.TopScore = 150
	g.world.Lives = 0

	if !g.State().GameOver {
		t.Fatal("zero lives should read as game over")
	}

	g.Step(frame(core.ActionRestart))
	st := g.State()
	if st.GameOver || st.Score != 0 || st.Lives != g.Rules().ExtraLives {
		t.Errorf("restart left state %+v", st)
	}
	if st.TopScore != 150 {
		t.Errorf("top score = %d, want 150 across restart", st.TopScore)
	}
}

func TestRestartWhilePaused(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRestart))
	if g.State().Paused {
		t.Error("restart should clear the paused state")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := [][]core.Action{
		{core.ActionUp}, {}, {core.ActionLeft}, {}, {},
		{core.ActionUp}, {core.ActionRight}, {}, {core.ActionDown}, {},
	}

	run := func() sim.World {
		g := newTestGame()
		for _, actions := range script {
			g.Step(frame(actions...))
		}
		return g.World()
	}

	a := run()
	b := run()
	if a.Actor != b.Actor || a.Score != b.Score || a.Lives != b.Lives {
		t.Error("identical input scripts should replay to identical worlds")
	}
	for i := range a.Vehicles {
		if a.Vehicles[i] != b.Vehicles[i] {
			t.Fatalf("vehicle %d diverged between replays", i)
		}
	}
}

func TestRenderShowsHUDAndActor(t *testing.T) {
	g := newTestGame()
	cfg := core.DefaultConfig()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Lives: 2") {
		t.Error("HUD should show remaining lives")
	}
	if !strings.ContainsRune(out, ActorChar) {
		t.Error("the actor should be drawn")
	}
	if !strings.ContainsRune(out, VehicleChar) {
		t.Error("vehicles should be drawn")
	}
	if !strings.ContainsRune(out, RiverChar) {
		t.Error("the river band should be drawn")
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	g := newTestGame()
	g.world.Lives = 0
	cfg := core.DefaultConfig()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestStateMirrorsWorld(t *testing.T) {
	g := newTestGame()
	g.world.Score = 200
	g.world.TopScore = 300
	g.world.Wave = 2
	g.world.Lives = 1

	st := g.State()
	if st.Score != 200 || st.TopScore != 300 || st.Wave != 2 || st.Lives != 1 {
		t.Errorf("state %+v does not mirror the world", st)
	}
	if st.GameOver {
		t.Error("one life left is not game over")
	}
}
