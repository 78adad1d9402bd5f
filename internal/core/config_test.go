package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, want 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, DefaultTickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		expected int
	}{
		{"unset", 0, DefaultTickRate},
		{"negative", -5, DefaultTickRate},
		{"explicit", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: tt.tickRate, Seed: 7}.WithDefaults()
			if cfg.TickRate != tt.expected {
				t.Errorf("TickRate = %d, want %d", cfg.TickRate, tt.expected)
			}
			if cfg.ScreenW != 10 || cfg.ScreenH != 5 || cfg.Seed != 7 {
				t.Errorf("other fields changed: %+v", cfg)
			}
		})
	}
}
