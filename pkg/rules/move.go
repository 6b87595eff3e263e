package rules

import "github.com/seekerror/stdlib/pkg/lang"

// MoveTemplate is the declarative rule for one way a piece can move. See
// §3 "Move template fields" and §4.1 for the interpreter that consumes it.
type MoveTemplate struct {
	// Directions are the base vectors the template slides along. Mirror
	// duplicates them per Mirror's variants().
	Directions []Offset

	// MaximumSlide bounds the number of repetitions; unset means 8 (the
	// full board).
	MaximumSlide lang.Optional[int]

	// MinimumSlide is the lower bound on step count. The spec's stated
	// default is 1, but the zero value behaves identically: step 0 is
	// always the mover's own square and slideExpand never records it
	// regardless of MinimumSlide, so templates may leave this unset
	// unless they need a bound above 1 (e.g. the pawn double-step or
	// castling's two-square king travel, both MinimumSlide: 2).
	MinimumSlide int

	// CanCapture controls whether landing on an enemy piece is permitted
	// as the terminal step of the ray.
	CanCapture bool

	// Mirror duplicates the template across the horizontal/vertical axes.
	Mirror Mirror

	// Requirements must all hold (under the active mirror variant) for
	// the template to fire from the given origin.
	Requirements []PieceStatus

	// Effects fire, in order, whenever a destination from this template
	// is chosen.
	Effects []Effect

	// SafeThroughout requires every square the moving piece traverses --
	// including origin and destination -- to be safe for Color. Used for
	// castling: the king may not castle out of, through, or into check.
	SafeThroughout bool

	// Command is a symbolic name (e.g. "O-O"), unused by the interpreter
	// and exposed only for a notation layer.
	Command lang.Optional[string]

	// Color is the template's owning color, used by SafeThroughout and by
	// danger-zone computation. It must track the piece's own color (see
	// §9: the source hard-codes White on castling templates -- a bug we
	// do not repeat).
	Color Color
}

// defaultMaxSlide returns the effective maximum slide count.
func (m MoveTemplate) defaultMaxSlide() int {
	if n, ok := m.MaximumSlide.V(); ok {
		return n
	}
	return 8
}

// newPawn and friends live in factory.go; MoveTemplate itself
// carries no constructors beyond its zero value plus field literals, by
// design -- it is a data row, not a type with behavior beyond prune().
