package rules

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Game owns the board, turn bookkeeping, and overall game state. It is
// the only thing through which the board is mutated. See §3 "Game
// invariants".
type Game struct {
	board     Board
	turnOwner Color
	turnCount int
	state     GameState
}

// NewGame returns a Game set up in the standard starting position.
func NewGame() *Game {
	g, err := MakeBoard(StandardTemplate, StandardWhiteMask)
	if err != nil {
		// The standard template always has a crucial piece for both
		// sides; a failure here is a programming error in this package.
		panic(fmt.Sprintf("chessrules: standard template rejected: %v", err))
	}
	return g
}

// StandardTemplate is the 64-character board-template literal for the
// standard chess starting position, row-major with row 0 (White's back
// rank) first. See §6 "Board template literal format".
var StandardTemplate = [64]byte{
	'R', 'N', 'B', 'Q', 'K', 'B', 'N', 'R', // rank 0 (White back rank)
	'p', 'p', 'p', 'p', 'p', 'p', 'p', 'p', // rank 1
	'0', '0', '0', '0', '0', '0', '0', '0', // rank 2
	'0', '0', '0', '0', '0', '0', '0', '0', // rank 3
	'0', '0', '0', '0', '0', '0', '0', '0', // rank 4
	'0', '0', '0', '0', '0', '0', '0', '0', // rank 5
	'p', 'p', 'p', 'p', 'p', 'p', 'p', 'p', // rank 6
	'R', 'N', 'B', 'Q', 'K', 'B', 'N', 'R', // rank 7 (Black back rank)
}

// StandardWhiteMask marks squares 0..15 (ranks 0-1) as White.
const StandardWhiteMask uint64 = 0x000000000000FFFF

// MakeBoard builds a Game from a 64-character template ('0' for empty,
// one of {K,Q,R,B,N,p} otherwise) and a white_mask whose bit i set means
// square i is White. Fails if either colour ends up without a crucial
// piece, or the template names an unknown rank. See §6 and §7.
func MakeBoard(template [64]byte, whiteMask uint64) (*Game, error) {
	var b Board

	var whiteCrucial, blackCrucial bool

	for i := 0; i < 64; i++ {
		r := rune(template[i])
		if r == '0' {
			continue
		}

		color := Black
		if whiteMask>>uint(i)&1 == 1 {
			color = White
		}

		p, ok := NewPiece(color, r)
		if !ok {
			return nil, fmt.Errorf("chessrules: unknown rank %q at index %d", r, i)
		}
		if p.IsCrucial {
			if color == White {
				whiteCrucial = true
			} else {
				blackCrucial = true
			}
		}
		b.set(SquareFromIndex(i), p)
	}

	if !whiteCrucial || !blackCrucial {
		return nil, fmt.Errorf("chessrules: both sides need at least one crucial piece")
	}

	return &Game{
		board:     b,
		turnOwner: White,
		turnCount: 1,
		state:     Running,
	}, nil
}

// GetPieceAt returns the piece occupying (col,row), if any.
func (g *Game) GetPieceAt(col, row int) (Piece, bool) {
	return g.board.At(NewSquare(col, row))
}

// GetTurnOwner returns whose turn it is to move.
func (g *Game) GetTurnOwner() Color {
	return g.turnOwner
}

// GetGameState returns the current game state.
func (g *Game) GetGameState() GameState {
	return g.state
}

// TurnCount returns the current 1-based turn counter.
func (g *Game) TurnCount() int {
	return g.turnCount
}

// GetMoves returns the filtered destination->effects map for the piece at
// (col,row), or (nil,false) if no piece occupies that square.
func (g *Game) GetMoves(col, row int) (map[int][]Effect, bool) {
	sq := NewSquare(col, row)
	p, ok := g.board.At(sq)
	if !ok {
		return nil, false
	}
	return g.allPossibleMoves(p, sq), true
}

// allPossibleMoves aggregates every move template of p, then discards any
// destination that would leave one of the mover's own crucial pieces
// unsafe. See §4.2.
func (g *Game) allPossibleMoves(p Piece, origin Square) map[int][]Effect {
	merged := make(map[int][]Effect)
	for _, tpl := range p.Moves {
		for d, effects := range prune(tpl, g, origin) {
			merged[d] = effects
		}
	}

	out := make(map[int][]Effect)
	for d, effects := range merged {
		dest := SquareFromIndex(d)
		sim := g.clone()
		sim.justExecuteMove(origin, dest, effects)

		if sim.crucialPiecesSafe(p.Color) {
			out[d] = effects
		}
	}
	return out
}

// crucialPiecesSafe reports whether every crucial piece of color is on a
// safe square.
func (g *Game) crucialPiecesSafe(color Color) bool {
	safe := true
	g.board.forEach(func(sq Square, p Piece) {
		if !safe || !p.IsCrucial || p.Color != color {
			return
		}
		if !g.IsSafePosition(sq, color) {
			safe = false
		}
	})
	return safe
}

// clone returns an independent copy of g, scoped to a single legality
// check's lifetime (§5).
func (g *Game) clone() *Game {
	cp := *g
	return &cp
}

// Clone returns an independent copy of g. Exported for callers that walk
// the game tree themselves, such as a perft counter.
func (g *Game) Clone() *Game {
	return g.clone()
}

// LegalMoves returns every (origin,destination) pair currently available
// to the turn owner, without the composite effects (a perft counter only
// needs the count of reachable positions).
func (g *Game) LegalMoves() []struct{ From, To Square } {
	var out []struct{ From, To Square }
	g.board.forEach(func(sq Square, p Piece) {
		if p.Color != g.turnOwner {
			return
		}
		for d := range g.allPossibleMoves(p, sq) {
			out = append(out, struct{ From, To Square }{From: sq, To: SquareFromIndex(d)})
		}
	})
	return out
}

// justMove unconditionally relocates the piece at from to to, stamping
// its history. It panics if from is empty: callers must have already
// validated the move (§4.3).
func (g *Game) justMove(from, to Square) {
	p, ok := g.board.At(from)
	if !ok {
		panic(fmt.Sprintf("chessrules: justMove called on empty square %v", from))
	}

	p.LastMoved = lang.Some(g.turnCount)
	p.TimesMoved++

	if p.CanPromote && to.Rank == p.Color.FarRank() {
		g.state = Promote
	}

	g.board.set(to, p)
	g.board.clear(from)
}

// justExecuteMove applies the primary displacement plus every effect, in
// order, resolving Relative positions against origin. See §4.3.
func (g *Game) justExecuteMove(origin, dest Square, effects []Effect) {
	g.justMove(origin, dest)
	for _, e := range effects {
		switch e.Kind {
		case CaptureEffect:
			g.board.clear(e.Pos.Resolve(origin))
		case MoveEffect:
			from := e.From.Resolve(origin)
			to := e.To.Resolve(origin)
			if p, ok := g.board.At(from); ok {
				p.TimesMoved++
				p.LastMoved = lang.Some(g.turnCount)
				g.board.set(to, p)
				g.board.clear(from)
			}
		}
	}
}

// MakeMove attempts to move the piece at from to to, including every
// composite effect the chosen destination entails. Returns true iff the
// move was legal and applied. See §4.3.
func (g *Game) MakeMove(from, to Square) bool {
	if g.state != Running && g.state != Check {
		return false
	}

	p, ok := g.board.At(from)
	if !ok || p.Color != g.turnOwner {
		return false
	}

	moves := g.allPossibleMoves(p, from)
	effects, ok := moves[to.Index()]
	if !ok {
		return false
	}

	g.justExecuteMove(from, to, effects)

	if g.state != Promote {
		g.incrementTurn()
	}
	return true
}

// GetPromotion returns the square and piece waiting to be promoted, if any.
// White's far rank (7) is scanned by ascending file first, then Black's far
// rank (0); the first can-promote piece found is returned. It reports false
// whenever the game isn't currently waiting on a promotion. See §4.5, §6.
func (g *Game) GetPromotion() (Square, Piece, bool) {
	if g.state != Promote {
		return Square{}, Piece{}, false
	}

	for _, c := range []Color{White, Black} {
		rank := c.FarRank()
		for file := 0; file < 8; file++ {
			s := NewSquare(file, rank)
			if p, ok := g.board.At(s); ok && p.CanPromote && p.Color == c {
				return s, p, true
			}
		}
	}
	return Square{}, Piece{}, false
}

// Promote completes a pending promotion, replacing the pawn at sq with a
// freshly constructed piece of the given rank. It fails if the game is not
// waiting on a promotion at sq, or rank is not a legal promotion target.
// The turn only advances once GetPromotion reports no further piece
// pending; a template with several simultaneously-promotable pieces must
// be promoted one at a time. See §4.5.
func (g *Game) Promote(sq Square, rank rune) bool {
	if g.state != Promote {
		return false
	}

	p, ok := g.board.At(sq)
	if !ok || !p.CanPromote || sq.Rank != p.Color.FarRank() {
		return false
	}
	if rank == p.Rank {
		return false
	}

	next, ok := NewPiece(p.Color, rank)
	if !ok || next.IsCrucial || next.CanPromote {
		return false
	}
	next.LastMoved = p.LastMoved
	next.TimesMoved = p.TimesMoved

	g.board.set(sq, next)

	if _, _, pending := g.GetPromotion(); !pending {
		g.state = Running
		g.incrementTurn()
	}
	return true
}

// incrementTurn flips the turn owner, advances turn_count on White's
// turn beginning, and reclassifies the game state. See §4.4.
func (g *Game) incrementTurn() {
	g.turnOwner = g.turnOwner.Opponent()
	if g.turnOwner == White {
		g.turnCount++
	}

	wasAttacked := !g.crucialPiecesSafe(g.turnOwner)
	hasMove := g.sideHasAnyMove(g.turnOwner)

	switch {
	case !hasMove && wasAttacked:
		g.state = CheckMate
	case !hasMove:
		g.state = Stalemate
	case wasAttacked:
		g.state = Check
	default:
		g.state = Running
	}
}

// sideHasAnyMove reports whether color has at least one legal move
// anywhere on the board.
func (g *Game) sideHasAnyMove(color Color) bool {
	found := false
	g.board.forEach(func(sq Square, p Piece) {
		if found || p.Color != color {
			return
		}
		if len(g.allPossibleMoves(p, sq)) > 0 {
			found = true
		}
	})
	return found
}
