package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Phase   Phase
	Score   int
	Lines   int
	Level   int
	Paused  bool
	Spawned int

	// Grid in row-major order, border included
	Width  int
	Height int
	Cells  []int

	ActiveRow    int
	NextKind     string
	GravityTicks int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Phase:        g.phase,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Paused:       g.paused,
		Spawned:      g.board.Spawned(),
		Width:        g.board.Width(),
		Height:       g.board.Height(),
		Cells:        g.board.Cells(),
		ActiveRow:    g.board.ActiveRow(),
		NextKind:     g.board.Next().Kind.String(),
		GravityTicks: g.gravityTicks,
	}
}
