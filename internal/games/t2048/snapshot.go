package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSliding     GameStateType = "sliding"
	StateLost        GameStateType = "lost"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Moves   int   // Completed move gestures
	Board   Board // Cell values; mid-move this reflects the current frame's keys
	Tiles   int
	MaxTile int // Highest tile on board
	AtRest  bool
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.move != nil:
		state = StateSliding
	case g.lost:
		state = StateLost
	}

	board := g.grid.Board()
	return Snapshot{
		Tick:    g.tick,
		Moves:   g.moves,
		Board:   board,
		Tiles:   g.grid.Len(),
		MaxTile: MaxTile(board),
		AtRest:  g.grid.AtRest(),
		State:   state,
	}
}
