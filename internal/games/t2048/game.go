// Package t2048 implements the 2048 sliding-tile puzzle: the grid of tiles,
// the animated move engine and the game wrapper driven by the platform tick.
package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/core"
)

// Game implements the 2048 puzzle on top of the move engine.
// Each platform tick is one animation frame.
type Game struct {
	cfg    config.Config
	geom   Geometry
	engine *Engine
	logger *log.Logger

	rng  *rand.Rand
	tick uint64

	grid *Grid
	move *Move // In-flight move gesture, nil when idle

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	lost     bool // Last move left the grid full
	paused   bool
	tooSmall bool
	moves    int
}

// New creates a game using cfg. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	geom := GeometryFromConfig(cfg)
	return &Game{
		cfg:    cfg,
		geom:   geom,
		engine: NewEngine(geom, nil, logger), // The platform tick paces frames
		logger: logger,
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game with a fresh two-tile grid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.lost = false
	g.paused = false
	g.move = nil
	g.moves = 0

	g.grid = NewStartGrid(g.geom, g.rng)

	// Check screen size
	g.checkScreenSize()

	g.logger.Debug("new game", "seed", cfg.Seed, "screen_w", cfg.ScreenW, "screen_h", cfg.ScreenH)
}

// Resize adapts the layout to new screen dimensions without touching the grid.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	g.tooSmall = g.screenW < boardW || g.screenH < boardH+hudHeight
}

// Grid returns the live grid.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Step advances the game by one tick.
// While a move is animating, each tick runs one settle-loop frame and
// directional input is not observed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.move != nil {
		g.advanceMove()
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFromInput(in); ok {
		m, err := g.engine.Begin(g.grid, dir)
		if err != nil {
			// directionFromInput only yields valid directions
			g.logger.Error("cannot begin move", "direction", dir, "error", err)
			return core.StepResult{State: g.State()}
		}
		g.move = m
		g.advanceMove()
	}

	return core.StepResult{State: g.State()}
}

// directionFromInput maps the first directional action found to a Direction.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// advanceMove runs one frame of the in-flight move and finishes it once settled.
func (g *Game) advanceMove() {
	if g.move.Step() {
		return
	}

	outcome := g.move.Finish()
	stats := g.move.Stats()
	g.move = nil
	g.moves++

	wasLost := g.lost
	g.lost = outcome == OutcomeLost
	if g.lost && !wasLost {
		g.logger.Info("grid full", "moves", g.moves, "max_tile", MaxTile(g.grid.Board()))
	}
	if !g.lost && wasLost {
		g.logger.Info("space freed", "moves", g.moves, "merges", stats.Merges)
	}
}

// Sliding reports whether a move is animating.
func (g *Game) Sliding() bool {
	return g.move != nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.lost,
		Paused:   g.paused || g.tooSmall,
		Busy:     g.move != nil,
	}
}
