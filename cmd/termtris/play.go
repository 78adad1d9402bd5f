package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/registry"
)

const defaultMode = "classic"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (classic if omitted).

Controls:
  h/Left     - Move left
  l/Right    - Move right
  j/Down     - Rotate clockwise
  k/Up       - Rotate anticlockwise
  Enter      - Hard drop
  Space      - Soft drop (one row now)
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower gravity, progresses to max
  normal - Start at 20% difficulty, progresses to max
  hard   - Faster gravity, start at 50% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  termtris play
  termtris play marathon
  termtris play marathon --difficulty hard
  termtris play --seed 42 --log ./termtris.log
  termtris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := defaultMode
	if len(args) == 1 {
		modeID = args[0]
	}

	game, err := registry.Create(modeID)
	if errors.Is(err, registry.ErrUnknownMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'termtris modes' to see available modes.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	final, err := tui.Run(game, runtimeConfig(), logger)
	if err != nil {
		logger.Error("game aborted", "error", err)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	printSummary(game.Title(), final)
}
