// Package crosser adapts the lane-crosser simulation core to the arcade
// platform: it maps input actions to simulation commands, folds them into
// the world, and renders world snapshots to the screen buffer.
package crosser

import (
	"fmt"

	"github.com/vovakirdan/tui-crosser/internal/config"
	"github.com/vovakirdan/tui-crosser/internal/core"
	sim "github.com/vovakirdan/tui-crosser/internal/games/crosser/core"
	"github.com/vovakirdan/tui-crosser/internal/registry"
)

// Visual characters for rendering
const (
	ActorChar       = '●'
	VehicleChar     = '█'
	FloaterChar     = '▓'
	PredatorChar    = '▒'
	SwimmerChar     = 'O'
	ZoneChar        = '░'
	ZoneClaimedChar = '★'
	RiverChar       = '~'
)

// HUD occupies the top rows of the screen; the playfield is scaled into
// the rest.
const hudRows = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game implements the lane-crosser game on top of the pure simulation
// core. The platform feeds it input frames at a fixed cadence; each frame
// is translated into an ordered burst of commands folded through the
// reducer.
type Game struct {
	rules   sim.Rules
	world   sim.World
	runtime core.RuntimeConfig
	paused  bool
	ticks   uint64
}

// New creates a new lane-crosser game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crosser"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Crosser"
}

// Reset initializes or restarts the game. The session top score survives
// resets; everything else returns to the initial layout.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCrosser(configPath)
	if err != nil {
		cfg = config.DefaultCrosserConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrosserPreset(&cfg, difficultyPreset)
	}

	g.rules = rulesFromConfig(cfg)
	topScore := g.world.TopScore
	g.world = sim.NewWorld(g.rules)
	g.world.TopScore = topScore
	g.paused = false
	g.ticks = 0
}

// rulesFromConfig maps the YAML config onto the simulation rules.
func rulesFromConfig(cfg config.CrosserConfig) sim.Rules {
	r := sim.DefaultRules()

	r.CanvasW = cfg.Canvas.Width
	r.CanvasH = cfg.Canvas.Height

	r.ActorW = cfg.Actor.Width
	r.ActorH = cfg.Actor.Height
	r.SpawnX = cfg.Actor.SpawnX
	r.SpawnY = cfg.Actor.SpawnY
	r.StepX = cfg.Actor.StepX
	r.StepY = cfg.Actor.StepY

	r.ExtraLives = cfg.Gameplay.ExtraLives
	r.WaveSeconds = cfg.Gameplay.WaveSeconds
	r.PointsPerZone = cfg.Gameplay.PointsPerZone
	r.ZonesPerWave = cfg.Gameplay.ZonesPerWave
	r.DifficultyStep = cfg.Gameplay.DifficultyStep

	r.VehicleCount = cfg.Lanes.VehicleCount
	r.VehicleRows = cfg.Lanes.VehicleRows
	r.VehicleFirstRow = cfg.Lanes.VehicleFirstRow
	r.RowSpacing = cfg.Lanes.RowSpacing
	r.VehicleSpeed = cfg.Lanes.VehicleSpeed

	r.FloaterCount = cfg.Lanes.FloaterCount
	r.FloaterRows = cfg.Lanes.FloaterRows
	r.FloaterFirstRow = cfg.Lanes.FloaterFirstRow
	r.FloaterW = cfg.Lanes.FloaterWidth
	r.FloaterSpeed = cfg.Lanes.FloaterSpeed

	r.PredatorCount = cfg.Lanes.PredatorCount
	r.PredatorRow = cfg.Lanes.PredatorRow
	r.PredatorW = cfg.Lanes.PredatorWidth
	r.PredatorSpeed = cfg.Lanes.PredatorSpeed
	r.PredatorHitboxW = cfg.Lanes.PredatorHitbox

	r.SwimmerCount = cfg.Lanes.SwimmerCount
	r.SwimmerRow = cfg.Lanes.SwimmerRow
	r.SwimmerW = cfg.Lanes.SwimmerWidth
	r.SwimmerSpeed = cfg.Lanes.SwimmerSpeed

	r.PhasePerTick = cfg.Swimmers.PhasePerTick
	r.CycleLength = cfg.Swimmers.CycleLength
	r.WarnPhase = cfg.Swimmers.WarnPhase
	r.SubmergePhase = cfg.Swimmers.SubmergePhase

	return r
}

// Step advances the game by one tick. Actions present in the frame are
// folded into the world in a fixed order (left, right, up, down, then the
// tick itself) so a frame always reduces deterministically.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.world = sim.Reduce(g.world, g.rules, sim.Restart{})
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.world = sim.Reduce(g.world, g.rules, sim.MoveHorizontal{Delta: -g.rules.StepX})
	}
	if in.Has(core.ActionRight) {
		g.world = sim.Reduce(g.world, g.rules, sim.MoveHorizontal{Delta: g.rules.StepX})
	}
	if in.Has(core.ActionUp) {
		g.world = sim.Reduce(g.world, g.rules, sim.MoveVertical{Delta: -g.rules.StepY})
	}
	if in.Has(core.ActionDown) {
		g.world = sim.Reduce(g.world, g.rules, sim.MoveVertical{Delta: g.rules.StepY})
	}

	g.world = sim.Reduce(g.world, g.rules, sim.Tick{})
	g.ticks++

	return core.StepResult{State: g.State()}
}

// World exposes the current snapshot for tests and external observers.
func (g *Game) World() sim.World {
	return g.world
}

// Rules exposes the active tuning for tests and external observers.
func (g *Game) Rules() sim.Rules {
	return g.rules
}

// Render draws the current world snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	// Static bands first, then rideables, hazards, zones and the actor on
	// top, so overlap resolves the same way every frame.
	g.renderRiver(dst)
	for _, z := range g.world.LandingZones {
		g.renderEntity(dst, z, ZoneChar)
	}
	for _, z := range g.world.ClaimedZones {
		g.renderEntity(dst, z, ZoneClaimedChar)
	}
	for _, f := range g.world.Floaters {
		g.renderEntity(dst, f, FloaterChar)
	}
	for _, p := range g.world.Predators {
		g.renderEntity(dst, p, PredatorChar)
	}
	for _, s := range g.world.Swimmers {
		g.renderEntity(dst, s, SwimmerChar)
	}
	for _, v := range g.world.Vehicles {
		g.renderEntity(dst, v, VehicleChar)
	}
	g.renderEntity(dst, g.world.Actor, ActorChar)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
	if g.world.Lives == 0 {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// renderHUD draws score, top score, wave, remaining time and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	timeLeft := g.rules.WaveSeconds - g.world.WaveElapsed
	if timeLeft < 0 {
		timeLeft = 0
	}
	hud := fmt.Sprintf(" Score: %d  Top: %d  Wave: %d  Time: %2.0f  Lives: %d",
		g.world.Score, g.world.TopScore, g.world.Wave, timeLeft, g.world.Lives)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderRiver fills the river band with water texture.
func (g *Game) renderRiver(dst *core.Screen) {
	x, y := g.toCell(g.world.River.X, g.world.River.Y)
	w, h := g.toSpan(g.world.River.W, g.world.River.H)
	dst.DrawRectColor(core.NewRect(x, y, w, h), RiverChar, g.world.River.Fill)
}

// renderEntity draws one entity as a filled block at its scaled position.
func (g *Game) renderEntity(dst *core.Screen, e sim.Entity, ch rune) {
	x, y := g.toCell(e.X, e.Y)
	w, h := g.toSpan(e.W, e.H)
	dst.DrawRectColor(core.NewRect(x, y, w, h), ch, e.Fill)
}

// toCell maps world coordinates to a screen cell inside the playfield.
func (g *Game) toCell(wx, wy float64) (int, int) {
	fieldH := g.runtime.ScreenH - hudRows
	x := int(wx * float64(g.runtime.ScreenW) / g.rules.CanvasW)
	y := hudRows + int(wy*float64(fieldH)/g.rules.CanvasH)
	return x, y
}

// toSpan maps world dimensions to a screen span, at least one cell each way.
func (g *Game) toSpan(ww, wh float64) (int, int) {
	fieldH := g.runtime.ScreenH - hudRows
	w := core.Max(1, int(ww*float64(g.runtime.ScreenW)/g.rules.CanvasW))
	h := core.Max(1, int(wh*float64(fieldH)/g.rules.CanvasH))
	return w, h
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		TopScore: g.world.TopScore,
		Wave:     g.world.Wave,
		Zones:    (g.world.Wave-1)*g.rules.ZonesPerWave + g.world.ZonesClaimed,
		Lives:    g.world.Lives,
		GameOver: g.world.Lives == 0,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("crosser", func() registry.Game {
		return New()
	})
}
