package rules

import "github.com/seekerror/stdlib/pkg/lang"

// Piece is a value bundling a rank, a color, and the move templates that
// govern it, plus the per-instance history the interpreter's
// requirements (has_moved, last_moved) can reference. See §3 "Piece".
//
// Piece is freely cloneable: Board stores copies, not pointers, so
// simulating a candidate move (§4.2) never aliases the live position.
type Piece struct {
	// Rank is one of {K,Q,R,B,N,p} in the default configuration. '0' is
	// reserved as the empty-square marker in board templates and never
	// appears as an actual Piece.Rank.
	Rank  rune
	Color Color

	// IsCrucial is true iff losing this piece to capture loses the game.
	IsCrucial bool
	// CanPromote is true iff the piece must promote on reaching its
	// owner's far rank.
	CanPromote bool

	LastMoved  lang.Optional[int]
	TimesMoved int

	Moves []MoveTemplate
}

// Clone returns a deep-enough copy of p: the Moves slice is shared (move
// templates are immutable data), but history fields are independent.
func (p Piece) Clone() Piece {
	return p
}
