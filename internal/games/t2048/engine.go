package t2048

import (
	"cmp"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

// Outcome is the result of a completed move gesture.
type Outcome string

const (
	OutcomeContinue Outcome = "continue"
	OutcomeLost     Outcome = "lost"
)

// Presenter redraws the grid. ExecuteMove calls it once per settle-loop frame.
type Presenter interface {
	RedrawFrame(g *Grid)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(g *Grid)

// RedrawFrame calls f(g).
func (f PresenterFunc) RedrawFrame(g *Grid) {
	f(g)
}

// Pacer blocks until the next frame is due.
type Pacer interface {
	Wait()
}

// FramePacer paces a loop to a fixed frame rate, sleeping off whatever is
// left of the frame since the previous Wait.
type FramePacer struct {
	interval time.Duration
	last     time.Time
}

// NewFramePacer creates a pacer for the given frames per second.
func NewFramePacer(fps int) *FramePacer {
	if fps <= 0 {
		fps = 60
	}
	return &FramePacer{interval: time.Second / time.Duration(fps)}
}

// Wait sleeps until one frame interval has passed since the previous call.
func (p *FramePacer) Wait() {
	if !p.last.IsZero() {
		if remaining := p.interval - time.Since(p.last); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	p.last = time.Now()
}

// MoveStats summarises one move gesture.
type MoveStats struct {
	Frames  int // Settle-loop passes, including the final idle one
	Merges  int
	Spawned *Tile // Tile added by the post-move step, nil when lost
}

// Engine runs move gestures against a grid.
type Engine struct {
	geom   Geometry
	pacer  Pacer
	logger *log.Logger
}

// NewEngine creates a move engine. A nil pacer runs frames back to back;
// a nil logger discards output.
func NewEngine(geom Geometry, pacer Pacer, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		geom:   geom,
		pacer:  pacer,
		logger: logger,
	}
}

// Move is one move gesture in progress. The grid is owned by the move
// until Finish returns.
type Move struct {
	grid    *Grid
	policy  policy
	tiles   []*Tile
	merged  map[*Tile]bool
	stats   MoveStats
	settled bool
	outcome Outcome
	logger  *log.Logger
}

// Begin starts a move gesture on g toward dir.
func (e *Engine) Begin(g *Grid, dir Direction) (*Move, error) {
	p, err := policyFor(dir, e.geom)
	if err != nil {
		return nil, err
	}
	return &Move{
		grid:   g,
		policy: p,
		tiles:  g.Tiles(),
		merged: make(map[*Tile]bool),
		logger: e.logger,
	}, nil
}

// ExecuteMove runs a whole move gesture: it advances the settle loop one
// paced frame at a time, asks p to redraw after each frame, and returns once
// the tiles are at rest and the post-move step has run.
func (e *Engine) ExecuteMove(g *Grid, dir Direction, p Presenter) (Outcome, error) {
	m, err := e.Begin(g, dir)
	if err != nil {
		return "", err
	}

	for {
		if e.pacer != nil {
			e.pacer.Wait()
		}
		updated := m.Step()
		if p != nil {
			p.RedrawFrame(g)
		}
		if !updated {
			break
		}
	}

	return m.Finish(), nil
}

// Direction returns the direction of travel.
func (m *Move) Direction() Direction {
	return m.policy.dir
}

// Settled reports whether the last Step changed nothing.
func (m *Move) Settled() bool {
	return m.settled
}

// Stats returns the counters gathered so far.
func (m *Move) Stats() MoveStats {
	return m.stats
}

// Step runs one settle-loop pass and reports whether any tile moved or merged.
// Once a pass changes nothing the move is settled and Step keeps returning false.
func (m *Move) Step() bool {
	if m.settled {
		return false
	}

	p := m.policy
	slices.SortStableFunc(m.tiles, func(a, b *Tile) int {
		if p.descending {
			return cmp.Compare(p.sortKey(b), p.sortKey(a))
		}
		return cmp.Compare(p.sortKey(a), p.sortKey(b))
	})

	updated := false
	live := m.tiles[:0]
	for _, t := range m.tiles {
		if p.atBoundary(t) {
			live = append(live, t)
			continue
		}

		next := p.neighbor(m.grid, t)
		switch {
		case next == nil:
			t.move(p.delta)
			p.snap(t, nil)
			updated = true

		case next.Value == t.Value && !m.merged[t] && !m.merged[next]:
			if p.mergeOvershoot(t, next) {
				t.move(p.delta)
				p.snap(t, next)
				updated = true
				break
			}
			// t is absorbed; it leaves the grid now so nothing behind it
			// can see it again this pass.
			next.Value *= 2
			m.merged[next] = true
			m.grid.remove(t)
			m.stats.Merges++
			updated = true
			continue

		case p.moveOvershoot(t, next):
			t.move(p.delta)
			p.snap(t, next)
			updated = true
		}

		live = append(live, t)
	}
	clear(m.tiles[len(live):])
	m.tiles = live

	m.grid.Rekey(m.tiles)
	m.stats.Frames++

	if !updated {
		m.settled = true
	}
	return updated
}

// Finish runs the post-move step. Any remaining frames are run first.
// If the grid is full the result is OutcomeLost and nothing spawns;
// otherwise one 2 or 4 spawns at a random empty cell.
// Calling Finish again returns the same outcome.
func (m *Move) Finish() Outcome {
	if m.outcome != "" {
		return m.outcome
	}
	for m.Step() {
	}

	geom := m.grid.Geometry()
	for _, t := range m.tiles {
		t.settle(geom)
	}

	if m.grid.IsFull() {
		m.outcome = OutcomeLost
	} else {
		m.stats.Spawned = m.grid.SpawnRandomTile()
		m.outcome = OutcomeContinue
	}

	m.logger.Debug("move settled",
		"direction", m.policy.dir,
		"frames", m.stats.Frames,
		"merges", m.stats.Merges,
		"tiles", m.grid.Len(),
		"outcome", m.outcome,
	)
	return m.outcome
}
