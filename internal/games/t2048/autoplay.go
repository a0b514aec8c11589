package t2048

import (
	"fmt"
	"math/rand"
)

// Strategy picks the next direction for a board.
type Strategy func(board Board, rng *rand.Rand) Direction

// Strategies lists the built-in strategies by name.
var Strategies = map[string]Strategy{
	"random": RandomStrategy,
	"greedy": GreedyStrategy,
}

// ParseStrategy looks up a built-in strategy.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := Strategies[name]
	if !ok {
		return nil, fmt.Errorf("t2048: unknown strategy %q", name)
	}
	return s, nil
}

// RandomStrategy picks any direction uniformly.
func RandomStrategy(_ Board, rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// GreedyStrategy picks the direction with the most merges, preferring
// directions that change the board. Ties go to the earlier direction.
func GreedyStrategy(board Board, rng *rand.Rand) Direction {
	best, bestMerges := Direction(-1), -1
	for _, d := range Directions {
		out, merges, err := Preview(board, d)
		if err != nil || out == board {
			continue
		}
		if merges > bestMerges {
			best, bestMerges = d, merges
		}
	}
	if best < 0 {
		return RandomStrategy(board, rng)
	}
	return best
}

// AutoPlayResult summarises a headless game.
type AutoPlayResult struct {
	Moves   int
	Frames  int
	Board   Board
	MaxTile int
	Stuck   bool // The grid is full with no merges left
}

// AutoPlay drives the grid with the blocking move API until maxMoves moves
// have run or the grid is full with nothing left to merge.
func (e *Engine) AutoPlay(g *Grid, strategy Strategy, rng *rand.Rand, maxMoves int, p Presenter) (AutoPlayResult, error) {
	var res AutoPlayResult
	counter := PresenterFunc(func(g *Grid) {
		res.Frames++
		if p != nil {
			p.RedrawFrame(g)
		}
	})

	for res.Moves < maxMoves {
		board := g.Board()
		if g.IsFull() && !CanMove(board) {
			res.Stuck = true
			break
		}

		dir := strategy(board, rng)
		outcome, err := e.ExecuteMove(g, dir, counter)
		if err != nil {
			return res, fmt.Errorf("move %d: %w", res.Moves+1, err)
		}
		res.Moves++
		e.logger.Debug("autoplay move", "n", res.Moves, "direction", dir, "outcome", outcome, "tiles", g.Len())
	}

	res.Board = g.Board()
	res.MaxTile = MaxTile(res.Board)
	e.logger.Info("autoplay finished", "moves", res.Moves, "frames", res.Frames, "max_tile", res.MaxTile, "stuck", res.Stuck)
	return res, nil
}
