package tetris

import (
	"math/rand"
	"strings"
)

// BitmapWidth is the side length of a piece bitmap.
const BitmapWidth = 4

// Bitmap is a 4x4 occupancy grid stored row-major: index = x + y*BitmapWidth.
type Bitmap [BitmapWidth * BitmapWidth]bool

// Kind identifies one of the seven canonical shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindT

	kindCount
)

// String returns the single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Kinds returns all shape kinds in canonical order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Rotation selects a quarter-turn direction.
type Rotation int

const (
	Clockwise Rotation = iota
	Anticlockwise
)

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	if r == Clockwise {
		return Anticlockwise
	}
	return Clockwise
}

func (r Rotation) String() string {
	if r == Clockwise {
		return "clockwise"
	}
	return "anticlockwise"
}

// shapes holds the spawn orientation of every kind.
var shapes = [kindCount]Bitmap{
	KindI: bitmapOf(
		"..#.",
		"..#.",
		"..#.",
		"..#.",
	),
	KindJ: bitmapOf(
		"..#.",
		"..#.",
		".##.",
		"....",
	),
	KindL: bitmapOf(
		".#..",
		".#..",
		".##.",
		"....",
	),
	KindO: bitmapOf(
		"....",
		".##.",
		".##.",
		"....",
	),
	KindS: bitmapOf(
		"....",
		"..##",
		".##.",
		"....",
	),
	KindZ: bitmapOf(
		"....",
		".##.",
		"..##",
		"....",
	),
	KindT: bitmapOf(
		"....",
		".###",
		"..#.",
		"....",
	),
}

// bitmapOf builds a Bitmap from four rows of '#' (filled) and '.' (empty).
func bitmapOf(rows ...string) Bitmap {
	var b Bitmap
	for y, row := range rows {
		for x, ch := range row {
			if x < BitmapWidth && y < BitmapWidth && ch == '#' {
				b[x+y*BitmapWidth] = true
			}
		}
	}
	return b
}

// Shape returns the spawn bitmap for a kind.
func Shape(k Kind) Bitmap {
	if k < 0 || k >= kindCount {
		return Bitmap{}
	}
	return shapes[k]
}

// At reports whether the cell at column x, row y is filled.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || x >= BitmapWidth || y < 0 || y >= BitmapWidth {
		return false
	}
	return b[x+y*BitmapWidth]
}

// Rotate returns the bitmap turned a quarter in the given direction.
// Rotation is about the bitmap's own 4x4 box; no offset is applied.
func (b Bitmap) Rotate(r Rotation) Bitmap {
	var dst Bitmap
	for y := range BitmapWidth {
		for x := range BitmapWidth {
			if r == Clockwise {
				dst[x+y*BitmapWidth] = b[y+(BitmapWidth-1-x)*BitmapWidth]
			} else {
				dst[x+y*BitmapWidth] = b[(BitmapWidth-1-y)+x*BitmapWidth]
			}
		}
	}
	return dst
}

// Count returns the number of filled cells.
func (b Bitmap) Count() int {
	n := 0
	for _, filled := range b {
		if filled {
			n++
		}
	}
	return n
}

// String renders the bitmap as four lines of '#' and '.'.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := range BitmapWidth {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range BitmapWidth {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Piece is a falling shape. Pos is the linear grid index of the bitmap's
// top-left cell.
type Piece struct {
	ID     int
	Kind   Kind
	Bitmap Bitmap
	Pos    int
}

// newPiece creates a piece with a uniformly random shape at pos.
func newPiece(id, pos int, rng *rand.Rand) *Piece {
	kind := Kind(rng.Intn(int(kindCount)))
	return &Piece{
		ID:     id,
		Kind:   kind,
		Bitmap: shapes[kind],
		Pos:    pos,
	}
}
