package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
)

// setGameFlags sets --difficulty and --config for one test and restores
// them, and the game package state they feed, afterwards.
func setGameFlags(t *testing.T, difficulty, configPath string) {
	t.Helper()
	oldDifficulty, oldConfig := flagDifficulty, flagConfig
	flagDifficulty, flagConfig = difficulty, configPath
	t.Cleanup(func() {
		flagDifficulty, flagConfig = oldDifficulty, oldConfig
		tetris.SetConfigPath("")
		tetris.SetDifficultyPreset("")
	})
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func classicGravityTicks() int {
	g := tetris.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 1})
	return g.Snapshot().GravityTicks
}

func TestApplyGameFlags(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		config     string
		wantErr    string
	}{
		{"defaults", "", "", ""},
		{"preset", "hard", "", ""},
		{"unknown difficulty", "insane", "", `unknown difficulty "insane"`},
		{"difficulty is case sensitive", "Easy", "", "unknown difficulty"},
		{"missing config", "", filepath.Join("no", "such", "tetris.yaml"), "failed to read config"},
		{"invalid config", "", "progression", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := tt.config
			if path == "progression" {
				path = writeConfigFile(t, "difficulty:\n  progression:\n    type: level\n")
			}
			setGameFlags(t, tt.difficulty, path)

			err := applyGameFlags()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("applyGameFlags() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("applyGameFlags() error = %v, expected %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyGameFlagsRejectsWithoutApplying(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	setGameFlags(t, "easy", "")
	if err := applyGameFlags(); err != nil {
		t.Fatalf("applyGameFlags() error = %v", err)
	}
	if got := classicGravityTicks(); got != 36 {
		t.Fatalf("easy preset: GravityTicks = %d, expected 36", got)
	}

	flagDifficulty = "insane"
	if err := applyGameFlags(); err == nil {
		t.Fatal("applyGameFlags() should reject an unknown difficulty")
	}
	if got := classicGravityTicks(); got != 36 {
		t.Errorf("GravityTicks = %d after a rejected flag, expected the easy preset to stay", got)
	}
}
