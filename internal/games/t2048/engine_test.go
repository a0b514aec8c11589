package t2048

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

// runMove drives a move to its settled state without running the post-move
// step, failing if it takes more frames than a tile crossing the whole board.
func runMove(t *testing.T, g *Grid, dir Direction) *Move {
	t.Helper()
	m, err := NewEngine(g.Geometry(), nil, nil).Begin(g, dir)
	if err != nil {
		t.Fatalf("Begin(%v): %v", dir, err)
	}

	geom := g.Geometry()
	maxFrames := (Cols-1)*max(geom.CellWidth, geom.CellHeight)/geom.Velocity + 1
	for m.Step() {
		if m.Stats().Frames > maxFrames {
			t.Fatalf("move %v still updating after %d frames", dir, m.Stats().Frames)
		}
	}
	if !m.Settled() {
		t.Fatal("Settled = false after Step returned false")
	}
	return m
}

func TestExecuteMoveMergesPair(t *testing.T) {
	g := newTestGrid(t, testGeometry(), Board{{2, 2}})

	frames := 0
	outcome, err := NewEngine(g.Geometry(), nil, nil).ExecuteMove(g, DirLeft, PresenterFunc(func(*Grid) {
		frames++
	}))
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}

	if outcome != OutcomeContinue {
		t.Errorf("outcome = %v, want %v", outcome, OutcomeContinue)
	}
	if tile := g.At(0, 0); tile == nil || tile.Value != 4 {
		t.Fatalf("(0,0) = %v, want a 4:\n%v", tile, g.Board())
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d, want merged tile plus one spawn", g.Len())
	}
	if !g.AtRest() {
		t.Error("tiles not at rest after move")
	}
	// Nine frames of travel, the merge frame, then the idle pass
	if frames != 11 {
		t.Errorf("presenter called %d times, want 11", frames)
	}
}

func TestExecuteMoveNoShiftStillSpawns(t *testing.T) {
	board := Board{
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
		{2048, 4096, 8192, 16384},
		{32768, 65536, 131072, 0},
	}
	g := newTestGrid(t, testGeometry(), board)
	engine := NewEngine(g.Geometry(), nil, nil)

	outcome, err := engine.ExecuteMove(g, DirLeft, nil)
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Fatalf("outcome = %v, want %v", outcome, OutcomeContinue)
	}
	if !g.IsFull() {
		t.Fatalf("grid not full after spawn into the last cell:\n%v", g.Board())
	}
	spawned := g.At(3, 3)
	if spawned == nil || (spawned.Value != 2 && spawned.Value != 4) {
		t.Fatalf("(3,3) = %v, want a spawned 2 or 4", spawned)
	}

	before := g.Board()
	outcome, err = engine.ExecuteMove(g, DirLeft, nil)
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if outcome != OutcomeLost {
		t.Errorf("outcome = %v, want %v", outcome, OutcomeLost)
	}
	if g.Board() != before {
		t.Errorf("lost move changed the board:\n%v\nwant\n%v", g.Board(), before)
	}
}

func TestFullGridWithMergeContinues(t *testing.T) {
	board := Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	g := newTestGrid(t, testGeometry(), board)

	outcome, err := NewEngine(g.Geometry(), nil, nil).ExecuteMove(g, DirLeft, nil)
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Errorf("outcome = %v, want %v", outcome, OutcomeContinue)
	}
	if got := g.Board()[0]; got[0] != 4 || got[1] != 8 || got[2] != 16 {
		t.Errorf("row 0 = %v, want 4 8 16 then the spawn", got)
	}
	if !g.IsFull() {
		t.Errorf("Len = %d, want the freed cell refilled", g.Len())
	}
}

func TestMoveMergesOncePerTile(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		dir      Direction
		expected Board
		merges   int
	}{
		{
			name:     "three equal left",
			board:    Board{{2, 2, 2, 0}},
			dir:      DirLeft,
			expected: Board{{4, 2, 0, 0}},
			merges:   1,
		},
		{
			name:     "three equal right",
			board:    Board{{0, 2, 2, 2}},
			dir:      DirRight,
			expected: Board{{0, 0, 2, 4}},
			merges:   1,
		},
		{
			name:     "merged tile meets equal tile",
			board:    Board{{4, 4, 8, 0}},
			dir:      DirLeft,
			expected: Board{{8, 8, 0, 0}},
			merges:   1,
		},
		{
			name:     "four equal",
			board:    Board{{4, 4, 4, 4}},
			dir:      DirRight,
			expected: Board{{0, 0, 8, 8}},
			merges:   2,
		},
		{
			name:     "column up",
			board:    Board{{2}, {2}, {2}, {2}},
			dir:      DirUp,
			expected: Board{{4}, {4}},
			merges:   2,
		},
		{
			name:     "column down with gap",
			board:    Board{{8}, {}, {8}, {16}},
			dir:      DirDown,
			expected: Board{{}, {}, {16}, {16}},
			merges:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(t, testGeometry(), tt.board)
			m := runMove(t, g, tt.dir)

			if got := g.Board(); got != tt.expected {
				t.Errorf("got\n%v\nwant\n%v", got, tt.expected)
			}
			if m.Stats().Merges != tt.merges {
				t.Errorf("merges = %d, want %d", m.Stats().Merges, tt.merges)
			}
		})
	}
}

func TestMoveMatchesPreview(t *testing.T) {
	geometries := []Geometry{
		{CellWidth: 200, CellHeight: 200, Velocity: 20},
		{CellWidth: 200, CellHeight: 200, Velocity: 40},
		{CellWidth: 200, CellHeight: 200, Velocity: 200},
		{CellWidth: 200, CellHeight: 100, Velocity: 20},
		{CellWidth: 100, CellHeight: 200, Velocity: 50},
	}
	values := []int{0, 0, 2, 2, 4, 8}
	rng := rand.New(rand.NewSource(2048))

	for _, geom := range geometries {
		for range 300 {
			var board Board
			for row := range Rows {
				for col := range Cols {
					board[row][col] = values[rng.Intn(len(values))]
				}
			}

			for _, dir := range Directions {
				want, wantMerges, err := Preview(board, dir)
				if err != nil {
					t.Fatalf("Preview: %v", err)
				}

				g := newTestGrid(t, geom, board)
				count, sum := g.Len(), g.Sum()
				m := runMove(t, g, dir)

				if got := g.Board(); got != want {
					t.Fatalf("%+v %v from\n%v\ngot\n%v\nwant\n%v", geom, dir, board, got, want)
				}
				if m.Stats().Merges != wantMerges {
					t.Fatalf("%+v %v merges = %d, want %d", geom, dir, m.Stats().Merges, wantMerges)
				}
				// Every tile lands exactly on its cell before the final settle
				if !g.AtRest() {
					t.Fatalf("%+v %v: tiles off their cells from\n%v", geom, dir, board)
				}

				outcome := m.Finish()
				stats := m.Stats()
				switch outcome {
				case OutcomeContinue:
					if stats.Spawned == nil {
						t.Fatal("continue without a spawn")
					}
					if g.Len() != count-stats.Merges+1 {
						t.Fatalf("Len = %d, want %d", g.Len(), count-stats.Merges+1)
					}
					if g.Sum() != sum+stats.Spawned.Value {
						t.Fatalf("Sum = %d, want %d", g.Sum(), sum+stats.Spawned.Value)
					}
				case OutcomeLost:
					if !g.IsFull() || stats.Spawned != nil {
						t.Fatalf("lost with %d tiles, spawned %v", g.Len(), stats.Spawned)
					}
					if g.Sum() != sum {
						t.Fatalf("Sum = %d, want %d", g.Sum(), sum)
					}
				default:
					t.Fatalf("unknown outcome %q", outcome)
				}
			}
		}
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	g := newTestGrid(t, testGeometry(), Board{{0, 0, 0, 2}})
	m, err := NewEngine(g.Geometry(), nil, nil).Begin(g, DirLeft)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	m.Step()

	// Finish runs the remaining frames itself
	first := m.Finish()
	if g.At(0, 0) == nil || g.At(0, 0).Value != 2 {
		t.Fatalf("tile did not reach (0,0):\n%v", g.Board())
	}
	if second := m.Finish(); second != first {
		t.Errorf("second Finish = %v, want %v", second, first)
	}
	if g.Len() != 2 {
		t.Errorf("Len = %d, want exactly one spawn", g.Len())
	}
}

func TestInvalidDirection(t *testing.T) {
	board := Board{{2, 2}, {0, 4}}
	g := newTestGrid(t, testGeometry(), board)
	engine := NewEngine(g.Geometry(), nil, nil)

	if _, err := engine.Begin(g, Direction(42)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Begin error = %v, want ErrInvalidDirection", err)
	}

	called := false
	_, err := engine.ExecuteMove(g, Direction(-1), PresenterFunc(func(*Grid) { called = true }))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ExecuteMove error = %v, want ErrInvalidDirection", err)
	}
	if called {
		t.Error("presenter called for an invalid direction")
	}
	if g.Board() != board || g.Len() != 3 {
		t.Errorf("invalid direction changed the grid:\n%v", g.Board())
	}
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait() {
	p.waits++
}

func TestExecuteMovePacesEveryFrame(t *testing.T) {
	g := newTestGrid(t, testGeometry(), Board{{0, 0, 0, 4}})
	pacer := &countingPacer{}
	redraws := 0

	_, err := NewEngine(g.Geometry(), pacer, nil).ExecuteMove(g, DirLeft, PresenterFunc(func(*Grid) {
		redraws++
	}))
	if err != nil {
		t.Fatalf("ExecuteMove: %v", err)
	}

	// Three cells at 20px per frame, plus the idle pass
	if redraws != 31 {
		t.Errorf("redraws = %d, want 31", redraws)
	}
	if pacer.waits != redraws {
		t.Errorf("waits = %d, want one per frame (%d)", pacer.waits, redraws)
	}
}

func TestFramePacer(t *testing.T) {
	p := NewFramePacer(100)

	start := time.Now()
	for range 3 {
		p.Wait()
	}
	// The first Wait returns immediately; the next two wait 10ms each
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("three waits at 100fps took %v, want at least 15ms", elapsed)
	}
}
