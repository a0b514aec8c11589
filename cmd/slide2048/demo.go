package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
)

var (
	flagMoves    int
	flagStrategy string
	flagRealtime bool
	flagShow     bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Let the computer play headless",
	Long: `Plays a game without the TUI, driving the move engine one blocking
move at a time, and prints the final board.

Strategies:
  random - pick any direction
  greedy - pick the direction with the most merges

Examples:
  slide2048 demo
  slide2048 demo --strategy greedy --moves 1000 --seed 7
  slide2048 demo --show --realtime --moves 20`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagMoves, "moves", 500, "Maximum number of moves")
	demoCmd.Flags().StringVar(&flagStrategy, "strategy", "random", "Move strategy: random, greedy")
	demoCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the configured frame rate")
	demoCmd.Flags().BoolVar(&flagShow, "show", false, "Print every animation frame")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	strategy, err := t2048.ParseStrategy(flagStrategy)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var pacer t2048.Pacer
	if flagRealtime {
		pacer = t2048.NewFramePacer(cfg.Animation.FPS)
	}

	out := cmd.OutOrStdout()
	var presenter t2048.Presenter
	if flagShow {
		area := t2048.BoardRect(0, 0, cfg)
		screen := core.NewScreen(area.W, area.H)
		presenter = t2048.PresenterFunc(func(g *t2048.Grid) {
			t2048.RenderGrid(screen, g, area, cfg)
			fmt.Fprintln(out, screen.String())
		})
	}

	geom := t2048.GeometryFromConfig(cfg)
	grid := t2048.NewStartGrid(geom, rng)
	engine := t2048.NewEngine(geom, pacer, logger)

	logger.Info("demo started", "seed", seed, "strategy", flagStrategy, "max_moves", flagMoves)
	res, err := engine.AutoPlay(grid, strategy, rng, flagMoves, presenter)
	if err != nil {
		return err
	}

	fmt.Fprint(out, res.Board)
	fmt.Fprintf(out, "Moves: %d\n", res.Moves)
	fmt.Fprintf(out, "Frames: %d\n", res.Frames)
	fmt.Fprintf(out, "Max Tile: %d\n", res.MaxTile)
	if res.Stuck {
		fmt.Fprintln(out, "Grid full, no merges left")
	}
	return nil
}
