// Package tetris implements the falling-block game on top of the board
// engine: gravity cadence, the post-clear pause, scoring, levels and
// rendering into a core.Screen.
package tetris

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
	engine "github.com/vovakirdan/termtris/internal/tetris"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"  // Constant gravity interval
	ModeMarathon Mode = "marathon" // Gravity speeds up as lines are cleared
)

// Phase is the per-tick state of the game.
type Phase string

const (
	PhaseIdle       Phase = "idle"       // No piece active, about to spawn
	PhaseFalling    Phase = "falling"    // Active piece accepts input and gravity
	PhaseClearing   Phase = "clearing"   // Cleared rows are shown for the clear pause
	PhaseCompacting Phase = "compacting" // Empty rows are being closed
	PhaseGameOver   Phase = "game_over"  // Spawn was refused
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the falling-block game logic.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64
	// Unpaused ticks in play; drives time progression
	played uint64

	board      *engine.Board
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager

	phase Phase
	score int
	lines int
	level int

	// Cadence, in ticks
	tickRate       int
	gravityTicks   int // Ticks between gravity steps at the current level
	gravityCounter int // Ticks since the last gravity step
	clearTicks     int // Length of the clear pause
	clearCounter   int // Ticks left in the current clear pause
	clearFrom      int // Row passed to CompactRows when the pause ends
	clearedRows    []int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMarathon creates a marathon mode game.
func NewMarathon() *Game {
	return &Game{mode: ModeMarathon}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeMarathon), func() registry.Game {
		return NewMarathon()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeMarathon {
		return "Marathon"
	}
	return "Classic"
}

// Description summarizes the mode for the menu.
func (g *Game) Description() string {
	if g.mode == ModeMarathon {
		return "Gravity speeds up as you clear lines"
	}
	return "Steady gravity, play for score"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeClassic {
		cfg.Difficulty.Enabled = false
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tickRate = runtime.WithDefaults().TickRate

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	board, err := engine.NewBoard(cfg.Board.Width, cfg.Board.Height, g.rng)
	if err != nil {
		board, _ = engine.NewBoard(engine.DefaultWidth, engine.DefaultHeight, g.rng)
	}

	g.tick = 0
	g.played = 0
	g.score = 0
	g.lines = 0
	g.paused = false
	g.clearCounter = 0
	g.clearedRows = nil
	g.clearTicks = g.msToTicks(cfg.Timing.ClearPauseMS)

	g.start(board)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// start installs a fresh board and spawns the first piece.
func (g *Game) start(board *engine.Board) {
	g.board = board
	g.phase = PhaseIdle
	g.updateLevel()
	g.spawn()
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.played++
	g.updateLevel()

	if g.phase == PhaseClearing {
		g.clearCounter--
		if g.clearCounter <= 0 {
			g.compact()
		}
		return core.StepResult{State: g.State()}
	}

	action := in.First(
		core.ActionMoveLeft,
		core.ActionMoveRight,
		core.ActionRotateCW,
		core.ActionRotateCCW,
		core.ActionHardDrop,
		core.ActionSoftDrop,
	)

	switch action {
	case core.ActionMoveLeft:
		g.board.Move(engine.Left)
	case core.ActionMoveRight:
		g.board.Move(engine.Right)
	case core.ActionRotateCW:
		g.board.Rotate(engine.Clockwise)
	case core.ActionRotateCCW:
		g.board.Rotate(engine.Anticlockwise)
	case core.ActionHardDrop:
		g.board.HardDrop()
	}

	g.gravityCounter++
	due := g.gravityCounter >= g.gravityTicks ||
		action == core.ActionSoftDrop ||
		action == core.ActionHardDrop
	if !due {
		return core.StepResult{State: g.State()}
	}

	g.gravityCounter = 0
	if g.board.Move(engine.Down) {
		return core.StepResult{State: g.State()}
	}

	cleared := g.lock()
	return core.StepResult{State: g.State(), Cleared: cleared, Locked: true}
}

// lock handles a piece that could not fall any further and returns the
// number of rows it cleared.
func (g *Game) lock() int {
	from := g.board.ActiveRow()
	full := g.fullRowsFrom(from)
	cleared := g.board.ClearFullRows()
	if cleared == 0 {
		g.spawn()
		return 0
	}

	g.score += Points(g.cfg.Scoring.Points, cleared)
	g.lines += cleared
	g.updateLevel()

	g.clearFrom = from
	g.clearedRows = full
	if g.clearTicks <= 0 {
		g.compact()
		return cleared
	}
	g.phase = PhaseClearing
	g.clearCounter = g.clearTicks
	return cleared
}

// compact closes the cleared rows and spawns the next piece.
func (g *Game) compact() {
	g.phase = PhaseCompacting
	g.board.CompactRows(g.clearFrom)
	g.clearedRows = nil
	g.phase = PhaseIdle
	g.spawn()
}

// spawn activates the next piece or ends the game.
func (g *Game) spawn() {
	g.gravityCounter = 0
	if err := g.board.SpawnNext(); err != nil {
		if errors.Is(err, engine.ErrGameOver) {
			g.phase = PhaseGameOver
			return
		}
	}
	g.phase = PhaseFalling
}

// updateLevel recomputes the level and gravity cadence from progress.
func (g *Game) updateLevel() {
	p := config.Progress{Lines: g.lines, Score: g.score, Ticks: int(g.played)}
	g.level = g.difficulty.Stage(p)

	interval := g.difficulty.GravityInterval(
		time.Duration(g.cfg.Timing.GravityMS)*time.Millisecond,
		time.Duration(g.cfg.Timing.MinGravityMS)*time.Millisecond,
		p,
	)
	g.gravityTicks = max(1, g.durationToTicks(interval))
}

// fullRowsFrom lists the full rows in the window a clear scans, so they can
// be highlighted during the clear pause.
func (g *Game) fullRowsFrom(from int) []int {
	var rows []int
	end := min(from+engine.BitmapWidth, g.board.Height()-1)
	for row := max(from, 1); row < end; row++ {
		full := true
		for col := 1; col < g.board.Width()-1; col++ {
			if g.board.Cell(row, col) == engine.CellEmpty {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, row)
		}
	}
	return rows
}

func (g *Game) msToTicks(ms int) int {
	return g.durationToTicks(time.Duration(ms) * time.Millisecond)
}

// durationToTicks rounds d to the nearest whole number of ticks.
func (g *Game) durationToTicks(d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(g.tickRate)))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "h/l: Move | j/k: Rotate | Enter: Drop | Space: Down | P: Pause | Q: Quit"
}
