package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slide2048/internal/core"
)

// fakeGame records what the frame loop asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	resizes [][2]int
	inputs  []core.InputFrame
	state   core.GameState
}

func (g *fakeGame) Title() string { return "fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }

func (g *fakeGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model clears its frame after each tick, so keep a copy
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelReservesHelpLine(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g)

	if len(g.resets) != 1 {
		t.Fatalf("resets = %d, want 1", len(g.resets))
	}
	if got := g.resets[0].ScreenH; got != 9 {
		t.Errorf("game height = %d, want 9", got)
	}
}

func TestModelKeyReachesNextTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first tick should carry the left action")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	g.state.Busy = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if len(g.resets) != 1 {
		t.Errorf("restart during a move: resets = %d, want 1", len(g.resets))
	}

	g.state.Busy = false
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})
	if len(g.resets) != 2 {
		t.Errorf("restart when idle: resets = %d, want 2", len(g.resets))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resets) != 1 {
		t.Errorf("resize reset the game: resets = %d", len(g.resets))
	}
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 29} {
		t.Errorf("resizes = %v, want [[100 29]]", g.resizes)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if view := next.View(); view != "" {
		t.Errorf("View after quit = %q, want empty", view)
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if !strings.Contains(view, "fake board") {
		t.Errorf("view missing game output:\n%s", view)
	}
	if !strings.Contains(view, "up") {
		t.Errorf("view missing help footer:\n%s", view)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	scr := core.NewScreen(6, 2)
	scr.DrawText(0, 0, "hello")
	scr.DrawStyledText(0, 1, "red", core.Style{Fg: core.ColorRed})

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "hello " {
		t.Errorf("line 0 = %q, want %q", lines[0], "hello ")
	}
	if !strings.Contains(lines[1], "red") {
		t.Errorf("line 1 = %q, want it to contain %q", lines[1], "red")
	}
}
