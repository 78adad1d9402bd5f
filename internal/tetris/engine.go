package tetris

import (
	"errors"

	"github.com/kamstrup/intmap"
)

// ErrGameOver is returned by SpawnNext when the new piece overlaps the stack.
var ErrGameOver = errors.New("tetris: game over")

// Direction is a one-cell translation of the active piece.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// step converts a direction into a linear index delta.
func (b *Board) step(d Direction) int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	case Down:
		return b.width
	default:
		return 0
	}
}

// SpawnNext promotes the preview piece to active, generates a new preview
// and writes the active piece into the grid. If any target cell is taken the
// grid is left untouched and ErrGameOver is returned.
func (b *Board) SpawnNext() error {
	b.active = b.next
	b.next = b.newPiece()

	if b.colliding(b.active.Bitmap, b.active.Pos) {
		// The refused piece never entered the grid; keep it out of reach of
		// Move and Rotate, which would erase cells under its footprint.
		b.active = nil
		return ErrGameOver
	}
	b.write(b.active, b.active.ID)
	b.kinds.Put(b.active.ID, b.active.Kind)
	b.spawned++
	return nil
}

// Move shifts the active piece one cell. It returns false, leaving the grid
// unchanged, when the destination collides or nothing is active.
func (b *Board) Move(d Direction) bool {
	if b.active == nil {
		return false
	}
	delta := b.step(d)
	if delta == 0 || b.colliding(b.active.Bitmap, b.active.Pos+delta) {
		return false
	}
	b.write(b.active, CellEmpty)
	b.active.Pos += delta
	b.write(b.active, b.active.ID)
	return true
}

// Rotate turns the active piece in place. A rotation that would collide is
// reverted; either way the grid holds the piece's final bitmap afterwards.
func (b *Board) Rotate(r Rotation) bool {
	if b.active == nil {
		return false
	}
	b.write(b.active, CellEmpty)

	original := b.active.Bitmap
	b.active.Bitmap = original.Rotate(r)
	accepted := !b.colliding(b.active.Bitmap, b.active.Pos)
	if !accepted {
		b.active.Bitmap = b.active.Bitmap.Rotate(r.Inverse())
	}

	b.write(b.active, b.active.ID)
	return accepted
}

// HardDrop moves the active piece down until it rests and returns the
// number of rows travelled. The bottom wall guarantees termination.
func (b *Board) HardDrop() int {
	rows := 0
	for b.Move(Down) {
		rows++
	}
	return rows
}

// ClearFullRows empties every full row spanned by the active piece's bitmap
// and returns how many were cleared. Call it once the piece has come to
// rest; only those rows can have just become full.
func (b *Board) ClearFullRows() int {
	if b.active == nil {
		return 0
	}
	start := b.pieceRow(b.active)
	end := min(start+BitmapWidth, b.height-1)

	cleared := 0
	for row := max(start, 1); row < end; row++ {
		if !b.rowFull(row) {
			continue
		}
		for col := 1; col < b.width-1; col++ {
			b.cells[col+row*b.width] = CellEmpty
		}
		cleared++
	}
	return cleared
}

// CompactRows closes empty interior rows between the bottom of the board and
// fromRow. Each empty row pulls everything above it down by one and the top
// interior row is emptied; the same row is then examined again with the
// scan boundary lowered by one. Border columns are never touched.
func (b *Board) CompactRows(fromRow int) {
	start := max(fromRow, 1)
	for row := b.height - 2; row >= start; row-- {
		if !b.rowEmpty(row) {
			continue
		}
		for col := 1; col < b.width-1; col++ {
			for r := row; r > 1; r-- {
				b.cells[col+r*b.width] = b.cells[col+(r-1)*b.width]
			}
			b.cells[col+b.width] = CellEmpty
		}
		row++
		start++
	}
	b.pruneKinds()
}

// colliding reports whether bm placed at pos overlaps a wall or another
// piece. Cells owned by the active piece itself do not count.
func (b *Board) colliding(bm Bitmap, pos int) bool {
	own := CellEmpty
	if b.active != nil {
		own = b.active.ID
	}
	hit := false
	b.footprint(bm, pos, func(idx int) {
		if v := b.at(idx); v != CellEmpty && v != own {
			hit = true
		}
	})
	return hit
}

// write sets every cell of p's footprint to val.
func (b *Board) write(p *Piece, val int) {
	b.footprint(p.Bitmap, p.Pos, func(idx int) {
		b.cells[idx] = val
	})
}

// pruneKinds drops ids that no longer appear anywhere in the grid.
func (b *Board) pruneKinds() {
	next := intmap.New[int, Kind](b.kinds.Len())
	for _, v := range b.cells {
		if v < firstPieceID {
			continue
		}
		if _, seen := next.Get(v); seen {
			continue
		}
		if k, ok := b.kinds.Get(v); ok {
			next.Put(v, k)
		}
	}
	b.kinds = next
}
