package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg.WithDefaults()
}

// difficultyPreset parses --difficulty. An empty flag yields "".
func difficultyPreset() (config.DifficultyPreset, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return preset, nil
}

// applyGameFlags validates --config and --difficulty and hands them to the
// game package before any mode is created.
func applyGameFlags() error {
	if _, err := difficultyPreset(); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			return err
		}
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	return nil
}

// printSummary reports the final result once the alternate screen is gone.
func printSummary(title string, st core.GameState) {
	fmt.Printf("%s: score %d, lines %d, level %d\n", title, st.Score, st.Lines, st.Level)
}

// newLogger opens the --log file, or discards output when none is given.
// The alternate screen owns stdout, so logs never go to the terminal.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log %s: %w", flagLogPath, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "termtris",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
