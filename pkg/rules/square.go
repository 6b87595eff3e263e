package rules

import "fmt"

// Square is a coordinate on the 8x8 board: File 0..7, Rank 0..7, with
// (0,0) at White's queenside rook square (bottom-left) and (7,7) at
// Black's kingside rook square.
type Square struct {
	File, Rank int
}

// NewSquare constructs a Square.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// IsValid returns true iff both coordinates lie on the board.
func (s Square) IsValid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// Index returns the destination index d = file + rank*8, as used by
// all_possible_moves and get_moves.
func (s Square) Index() int {
	return s.File + s.Rank*8
}

// SquareFromIndex recovers a Square from a destination index: col = d mod 8,
// row = d >> 3.
func SquareFromIndex(d int) Square {
	return Square{File: d % 8, Rank: d / 8}
}

// Offset returns the square obtained by applying a relative (dx,dy) step.
func (s Square) Offset(dx, dy int) Square {
	return Square{File: s.File + dx, Rank: s.Rank + dy}
}

// MirrorBoardPos mirrors a coordinate about the board midline (v becomes
// 7-v), as required when a PieceStatus.BoardPos is evaluated under a
// mirrored move template (§4.1 "Mirror semantics").
func MirrorBoardPos(v int, mirrored bool) int {
	if !mirrored {
		return v
	}
	return 7 - v
}

func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// Offset is a direction/displacement vector (dx,dy), distinct from Square
// so that signed deltas are never confused with absolute coordinates.
type Offset struct {
	DX, DY int
}

// Mirror returns the offset reflected under the given mirror mode.
func (o Offset) Mirror(m Mirror) Offset {
	dx, dy := o.DX, o.DY
	if m == Horizontally || m == VerAndHor {
		dx = -dx
	}
	if m == Vertically || m == VerAndHor {
		dy = -dy
	}
	return Offset{DX: dx, DY: dy}
}
