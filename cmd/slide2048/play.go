package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/core"
	"github.com/vovakirdan/slide2048/internal/games/t2048"
	"github.com/vovakirdan/slide2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P/Esc            - Pause
  R                - New game
  Q/Ctrl+C         - Quit

The game keeps going when the grid fills up; the status line shows
GRID FULL until a move frees a cell.

Examples:
  slide2048 play
  slide2048 play --seed 42 --fps 30
  slide2048 play --log-file /tmp/slide2048.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Animation.FPS
	rc.Seed = flagSeed

	// Get terminal size, keeping the defaults when stdout is not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game := t2048.New(cfg, logger)
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
