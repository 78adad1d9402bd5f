// Package tetris implements the board and piece simulation for the
// falling-block game: collision, movement, rotation, line clearing and row
// compaction. It has no terminal or timing dependencies.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/kamstrup/intmap"
)

// Cell values.
const (
	CellEmpty = 0
	CellWall  = 1

	firstPieceID = 2
)

// Default board dimensions, including the one-cell border on every side.
const (
	DefaultWidth  = 12
	DefaultHeight = 22

	// MinWidth and MinHeight keep the spawn box inside the border.
	MinWidth  = BitmapWidth + 2
	MinHeight = BitmapWidth + 2
)

// Board owns the grid and the active and next pieces. All mutation goes
// through the engine methods in engine.go.
type Board struct {
	width  int
	height int
	cells  []int

	active *Piece
	next   *Piece

	nextID  int
	spawned int // pieces that made it into the grid
	rng     *rand.Rand

	// kinds maps every piece id still present in the grid to its shape.
	kinds *intmap.Map[int, Kind]
}

// NewBoard creates a bordered board and generates the first "next" piece.
// No piece is active until SpawnNext is called.
func NewBoard(width, height int, rng *rand.Rand) (*Board, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("tetris: board %dx%d is smaller than %dx%d", width, height, MinWidth, MinHeight)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
		nextID: firstPieceID,
		rng:    rng,
		kinds:  intmap.New[int, Kind](64),
	}

	for col := range width {
		b.cells[b.Index(0, col)] = CellWall
		b.cells[b.Index(height-1, col)] = CellWall
	}
	for row := range height {
		b.cells[b.Index(row, 0)] = CellWall
		b.cells[b.Index(row, width-1)] = CellWall
	}

	b.next = b.newPiece()
	return b, nil
}

// Width returns the grid width including the border.
func (b *Board) Width() int {
	return b.width
}

// Height returns the grid height including the border.
func (b *Board) Height() int {
	return b.height
}

// Index maps (row, col) to the linear cell index. It panics on coordinates
// outside the grid.
func (b *Board) Index(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d board", row, col, b.width, b.height))
	}
	return col + row*b.width
}

// Cell returns the value at (row, col). Coordinates outside the grid read
// as wall.
func (b *Board) Cell(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return CellWall
	}
	return b.cells[col+row*b.width]
}

// Cells returns a copy of the grid in row-major order.
func (b *Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// Active returns a copy of the falling piece and whether one exists.
func (b *Board) Active() (Piece, bool) {
	if b.active == nil {
		return Piece{}, false
	}
	return *b.active, true
}

// Next returns a copy of the preview piece.
func (b *Board) Next() Piece {
	return *b.next
}

// ActiveRow returns the grid row of the active bitmap's top edge, or 0 when
// nothing is active.
func (b *Board) ActiveRow() int {
	if b.active == nil {
		return 0
	}
	return b.pieceRow(b.active)
}

// pieceRow returns the row of p's bitmap top edge. The top-left bitmap cell
// can sit left of column 0 when the shape's filled cells start at x > 0, in
// which case Pos/width lands on the previous row; a filled cell always has
// a valid column, so the row is derived from one.
func (b *Board) pieceRow(p *Piece) int {
	for y := range BitmapWidth {
		for x := range BitmapWidth {
			if p.Bitmap[x+y*BitmapWidth] {
				return (p.Pos+x+y*b.width)/b.width - y
			}
		}
	}
	return p.Pos / b.width
}

// KindOf returns the shape of the piece that wrote id into the grid.
func (b *Board) KindOf(id int) (Kind, bool) {
	if id < firstPieceID {
		return 0, false
	}
	return b.kinds.Get(id)
}

// Spawned returns how many pieces have been made active. A piece refused
// with ErrGameOver is not counted.
func (b *Board) Spawned() int {
	return b.spawned
}

// spawnPos is the index of the top-left bitmap cell for a new piece: the
// first interior row, horizontally centered.
func (b *Board) spawnPos() int {
	return b.width + b.width/2 - BitmapWidth/2
}

func (b *Board) newPiece() *Piece {
	p := newPiece(b.nextID, b.spawnPos(), b.rng)
	b.nextID++
	return p
}

// at returns the value at a linear index; indices outside the grid read as
// wall so a bitmap can never escape the board.
func (b *Board) at(idx int) int {
	if idx < 0 || idx >= len(b.cells) {
		return CellWall
	}
	return b.cells[idx]
}

// footprint calls fn with the grid index of every filled bitmap cell when
// the bitmap's top-left sits at pos.
func (b *Board) footprint(bm Bitmap, pos int, fn func(idx int)) {
	for y := range BitmapWidth {
		for x := range BitmapWidth {
			if bm[x+y*BitmapWidth] {
				fn(pos + x + y*b.width)
			}
		}
	}
}

// rowFull reports whether every interior column of row is occupied.
func (b *Board) rowFull(row int) bool {
	for col := 1; col < b.width-1; col++ {
		if b.cells[col+row*b.width] == CellEmpty {
			return false
		}
	}
	return true
}

// rowEmpty reports whether every interior column of row is empty.
func (b *Board) rowEmpty(row int) bool {
	for col := 1; col < b.width-1; col++ {
		if b.cells[col+row*b.width] != CellEmpty {
			return false
		}
	}
	return true
}
