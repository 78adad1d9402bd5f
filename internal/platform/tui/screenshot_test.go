package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/termtris/internal/core"
)

func TestWriteScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)

	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	path, err := writeScreenshot(dir, "classic", at, s)
	if err != nil {
		t.Fatalf("writeScreenshot() error = %v", err)
	}
	if want := filepath.Join(dir, "classic_20260304_050607.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := string(data); got != "ab  \n    \n" {
		t.Errorf("contents = %q", got)
	}
}

func TestWriteScreenshotBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := writeScreenshot(filepath.Join(file, "sub"), "classic", time.Now(), core.NewScreen(1, 1)); err == nil {
		t.Error("writeScreenshot() should fail when the directory cannot be created")
	}
}

func TestScreenshotDirUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := screenshotDir()
	if err != nil {
		t.Fatalf("screenshotDir() error = %v", err)
	}
	if want := filepath.Join(home, ".termtris", "screenshots"); dir != want {
		t.Errorf("dir = %q, want %q", dir, want)
	}
}
