package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "tetris.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadTetrisEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}

	def := DefaultTetrisConfig()
	if cfg.Board != def.Board || cfg.Timing != def.Timing {
		t.Errorf("embedded config = %+v, expected defaults %+v", cfg, def)
	}
	if len(cfg.Scoring.Points) != 4 || cfg.Scoring.Points[3] != 1200 {
		t.Errorf("Scoring.Points = %v, expected [40 100 300 1200]", cfg.Scoring.Points)
	}
	if cfg.Difficulty.Progression.Type != ProgressionLines {
		t.Errorf("Progression.Type = %q, expected lines", cfg.Difficulty.Progression.Type)
	}
}

func TestLoadTetrisCustomPartial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "board:\n  width: 10\ntiming:\n  gravity_ms: 300\n")

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("Board.Width = %d, expected 10", cfg.Board.Width)
	}
	if cfg.Board.Height != 22 {
		t.Errorf("Board.Height = %d, expected default 22", cfg.Board.Height)
	}
	if cfg.Timing.GravityMS != 300 || cfg.Timing.ClearPauseMS != 400 {
		t.Errorf("Timing = %+v, expected gravity 300 and default pause", cfg.Timing)
	}
}

func TestLoadTetrisCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", writeConfig(t, t.TempDir(), "board: [1, 2\n")},
		{"invalid board", writeConfig(t, t.TempDir(), "board:\n  width: 3\n")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadTetris(tc.path)
			if err == nil {
				t.Fatal("LoadTetris() expected error")
			}
			if cfg.Validate() != nil {
				t.Error("LoadTetris() should return usable defaults alongside an error")
			}
		})
	}
}

func TestLoadTetrisUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".termtris", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "scoring:\n  points: [1, 2, 3, 4]\n")

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Scoring.Points[0] != 1 || cfg.Scoring.Points[3] != 4 {
		t.Errorf("Scoring.Points = %v, expected [1 2 3 4]", cfg.Scoring.Points)
	}
}

func TestLoadTetrisSkipsInvalidUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".termtris", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "timing:\n  gravity_ms: -5\n")

	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Timing.GravityMS != 400 {
		t.Errorf("GravityMS = %d, expected embedded default 400", cfg.Timing.GravityMS)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		gravityMS  int
		initialLvl float64
	}{
		{DifficultyEasy, true, 600, 0.0},
		{DifficultyNormal, true, 400, 0.2},
		{DifficultyHard, true, 250, 0.5},
		{DifficultyFixed, false, 400, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Timing.GravityMS != tc.gravityMS {
				t.Errorf("GravityMS = %d, expected %d", cfg.Timing.GravityMS, tc.gravityMS)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLvl {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLvl)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestDefaultTetrisYAMLIsCopy(t *testing.T) {
	a := DefaultTetrisYAML()
	if len(a) == 0 {
		t.Fatal("embedded YAML is empty")
	}
	a[0] = 'X'
	if DefaultTetrisYAML()[0] == 'X' {
		t.Error("DefaultTetrisYAML should return a copy")
	}
}
