package rules

import "github.com/seekerror/stdlib/pkg/lang"

// RankRequirement replaces the load-bearing rank-sentinel inversion the
// original source used (rank == nil meaning "must be empty", rank ==
// Some('0') meaning "any piece of any rank"). See §9 "Rank sentinel
// asymmetry". Spelling the three states out removes the pitfall.
type RankRequirement uint8

const (
	// NoRankRequirement means the rank field imposes no constraint.
	NoRankRequirement RankRequirement = iota
	// MustBeEmpty means the referenced square must hold no piece.
	MustBeEmpty
	// AnyPiece means the referenced square must hold some piece, of any rank.
	AnyPiece
	// OfRank means the referenced square must hold a piece of the given rank.
	OfRank
)

// RankClause pairs a RankRequirement with the rank it names, when
// Requirement == OfRank.
type RankClause struct {
	Requirement RankRequirement
	Rank        rune
}

// EmptyClause constructs the "square must be empty" clause.
func EmptyClause() RankClause { return RankClause{Requirement: MustBeEmpty} }

// AnyPieceClause constructs the "any piece of any rank" clause.
func AnyPieceClause() RankClause { return RankClause{Requirement: AnyPiece} }

// OfRankClause constructs the "piece of this rank" clause.
func OfRankClause(rank rune) RankClause { return RankClause{Requirement: OfRank, Rank: rank} }

// PieceStatus is a declarative precondition on the occupant of a square
// referenced by absolute or move-relative coordinates. All present fields
// are ANDed together. See §3 "PieceStatus predicate fields".
type PieceStatus struct {
	// BoardFile/BoardRank optionally pin one or both absolute coordinates
	// of the referenced square. When RelativePos is also set, these
	// additionally constrain the relative square (they must agree).
	BoardFile lang.Optional[int]
	BoardRank lang.Optional[int]

	// RelativePos, when set, names the referenced square as origin+offset.
	RelativePos lang.Optional[Offset]

	// Rank constrains the occupant's rank per RankRequirement's three-way
	// split. The zero value (NoRankRequirement) imposes no constraint.
	Rank RankClause

	// Color constrains the occupant's color.
	Color lang.Optional[Color]

	// HasMoved constrains the occupant's times_moved counter.
	HasMoved lang.Optional[HasMovedClause]

	// LastMoved constrains the occupant's last_moved turn number. Positive
	// values are absolute turn numbers (last_moved == turn_number); zero
	// or negative values are offsets from the turn number on which the
	// previous move of the game (the opponent's) was made (0 == that
	// turn, -1 == the one before it). See §9 "last_moved semantics".
	LastMoved lang.Optional[int]
}

// referencedSquare resolves the square a status predicate names, under
// the given origin and mirror mode, honoring both RelativePos and any
// pinned BoardFile/BoardRank coordinates.
func (ps PieceStatus) referencedSquare(origin Square, m Mirror) (Square, bool) {
	if rel, ok := ps.RelativePos.V(); ok {
		pos := Position{Kind: RelativePos, Rel: rel}.Mirror(m)
		sq := pos.Resolve(origin)

		if f, ok := ps.BoardFile.V(); ok {
			want := MirrorBoardPos(f, m == Horizontally || m == VerAndHor)
			if sq.File != want {
				return Square{}, false
			}
		}
		if r, ok := ps.BoardRank.V(); ok {
			want := MirrorBoardPos(r, m == Vertically || m == VerAndHor)
			if sq.Rank != want {
				return Square{}, false
			}
		}
		return sq, true
	}

	f, fok := ps.BoardFile.V()
	r, rok := ps.BoardRank.V()
	if !fok || !rok {
		// A predicate with no relative position needs a fully specified
		// absolute square.
		return Square{}, false
	}
	file := MirrorBoardPos(f, m == Horizontally || m == VerAndHor)
	rank := MirrorBoardPos(r, m == Vertically || m == VerAndHor)
	return NewSquare(file, rank), true
}

// evaluate reports whether the predicate holds against board, given the
// origin of the triggering move and the active mirror variant, and the
// turn bookkeeping (turnCount, mover's color) needed for LastMoved.
func (ps PieceStatus) evaluate(b *Board, origin Square, m Mirror, turnCount int, mover Color) bool {
	sq, ok := ps.referencedSquare(origin, m)
	if !ok || !sq.IsValid() {
		return false
	}

	occ, present := b.At(sq)

	switch ps.Rank.Requirement {
	case MustBeEmpty:
		if present {
			return false
		}
	case AnyPiece:
		if !present {
			return false
		}
	case OfRank:
		if !present || occ.Rank != ps.Rank.Rank {
			return false
		}
	}

	if col, wantCol := ps.Color.V(); wantCol {
		if !present || occ.Color != col {
			return false
		}
	}

	if hm, wantHM := ps.HasMoved.V(); wantHM {
		if !present || !hm.Cmp.Compare(occ.TimesMoved, hm.N) {
			return false
		}
	}

	if lm, wantLM := ps.LastMoved.V(); wantLM {
		if !present {
			return false
		}
		last, hasLast := occ.LastMoved.V()
		if !hasLast {
			return false
		}

		var wantTurn int
		if lm > 0 {
			wantTurn = lm
		} else {
			// lm <= 0 is an offset from the turn just completed by mover.
			wantTurn = completedTurnFor(mover, turnCount) + lm
		}
		if last != wantTurn {
			return false
		}
	}

	return true
}

// completedTurnFor returns the turn_count value stamped on the most recent
// move of the game (the opponent's last move), given the current
// turn_count and assuming it is currently mover's turn to move.
func completedTurnFor(mover Color, turnCount int) int {
	if mover == White {
		// Black's last move was made during turn_count-1 (turn_count
		// advanced when it completed). On turn 1 this is 0, which no
		// piece carries.
		return turnCount - 1
	}
	// White's last move was made during the current turn_count.
	return turnCount
}
