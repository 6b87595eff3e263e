package rules

import "github.com/seekerror/stdlib/pkg/lang"

// NewPiece constructs a default-configuration piece of the given rank and
// color. rank is one of {K,Q,R,B,N,p}; ok is false for any other rune.
// See §4.6 "Piece factories (default chess)".
func NewPiece(color Color, rank rune) (Piece, bool) {
	switch rank {
	case 'K':
		return newKing(color), true
	case 'Q':
		return newQueen(color), true
	case 'R':
		return newRook(color), true
	case 'B':
		return newBishop(color), true
	case 'N':
		return newKnight(color), true
	case 'p':
		return newPawn(color), true
	default:
		return Piece{}, false
	}
}

func newRook(color Color) Piece {
	return Piece{
		Rank:  'R',
		Color: color,
		Moves: []MoveTemplate{
			{
				Directions: []Offset{{DX: 0, DY: 1}, {DX: 1, DY: 0}},
				Mirror:     VerAndHor,
				CanCapture: true,
				Color:      color,
			},
		},
	}
}

func newBishop(color Color) Piece {
	return Piece{
		Rank:  'B',
		Color: color,
		Moves: []MoveTemplate{
			{
				Directions: []Offset{{DX: 1, DY: 1}},
				Mirror:     VerAndHor,
				CanCapture: true,
				Color:      color,
			},
		},
	}
}

func newKnight(color Color) Piece {
	return Piece{
		Rank:  'N',
		Color: color,
		Moves: []MoveTemplate{
			{
				Directions:   []Offset{{DX: 2, DY: 1}, {DX: 1, DY: 2}},
				Mirror:       VerAndHor,
				MaximumSlide: lang.Some(1),
				MinimumSlide: 1,
				CanCapture:   true,
				Color:        color,
			},
		},
	}
}

func newQueen(color Color) Piece {
	return Piece{
		Rank:  'Q',
		Color: color,
		Moves: []MoveTemplate{
			{
				Directions: []Offset{{DX: 0, DY: 1}, {DX: 1, DY: 1}, {DX: 1, DY: 0}},
				Mirror:     VerAndHor,
				CanCapture: true,
				Color:      color,
			},
		},
	}
}

func newKing(color Color) Piece {
	// Kingside: rook starts 3 files to the right, travels to the square
	// the king crosses (just left of the king's destination).
	kingside := MoveTemplate{
		Directions:     []Offset{{DX: 1, DY: 0}},
		MinimumSlide:   2,
		MaximumSlide:   lang.Some(2),
		CanCapture:     false,
		SafeThroughout: true,
		Color:          color,
		Command:        lang.Some("O-O"),
		Requirements: []PieceStatus{
			{
				RelativePos: lang.Some(Offset{DX: 0, DY: 0}),
				HasMoved:    lang.Some(HasMovedClause{Cmp: Exactly, N: 0}),
			},
			{
				RelativePos: lang.Some(Offset{DX: 3, DY: 0}),
				Rank:        OfRankClause('R'),
				Color:       lang.Some(color),
				HasMoved:    lang.Some(HasMovedClause{Cmp: Exactly, N: 0}),
			},
		},
		Effects: []Effect{
			MoveTo(Relative(3, 0), Relative(1, 0)),
		},
	}

	// Queenside: rook starts 4 files to the left, travels to the square
	// the king crosses (just right of the king's destination).
	queenside := MoveTemplate{
		Directions:     []Offset{{DX: -1, DY: 0}},
		MinimumSlide:   2,
		MaximumSlide:   lang.Some(2),
		CanCapture:     false,
		SafeThroughout: true,
		Color:          color,
		Command:        lang.Some("O-O-O"),
		Requirements: []PieceStatus{
			{
				RelativePos: lang.Some(Offset{DX: 0, DY: 0}),
				HasMoved:    lang.Some(HasMovedClause{Cmp: Exactly, N: 0}),
			},
			{
				RelativePos: lang.Some(Offset{DX: -4, DY: 0}),
				Rank:        OfRankClause('R'),
				Color:       lang.Some(color),
				HasMoved:    lang.Some(HasMovedClause{Cmp: Exactly, N: 0}),
			},
		},
		Effects: []Effect{
			MoveTo(Relative(-4, 0), Relative(-1, 0)),
		},
	}

	return Piece{
		Rank:      'K',
		Color:     color,
		IsCrucial: true,
		Moves: []MoveTemplate{
			{
				Directions:   []Offset{{DX: 0, DY: 1}, {DX: 1, DY: 1}, {DX: 1, DY: 0}},
				Mirror:       VerAndHor,
				MaximumSlide: lang.Some(1),
				MinimumSlide: 1,
				CanCapture:   true,
				Color:        color,
			},
			kingside,
			queenside,
		},
	}
}

func newPawn(color Color) Piece {
	dir := 1
	enemy := Black
	enPassantRank := 4 // White: 5th rank (index 4)
	if color == Black {
		dir = -1
		enemy = White
		enPassantRank = 3 // Black: 4th rank (index 3)
	}

	forward := MoveTemplate{
		Directions:   []Offset{{DX: 0, DY: dir}},
		MaximumSlide: lang.Some(1),
		MinimumSlide: 1,
		CanCapture:   false,
		Color:        color,
	}

	double := MoveTemplate{
		Directions:   []Offset{{DX: 0, DY: dir}},
		MaximumSlide: lang.Some(2),
		MinimumSlide: 2,
		CanCapture:   false,
		Color:        color,
		Requirements: []PieceStatus{
			{
				RelativePos: lang.Some(Offset{DX: 0, DY: 0}),
				HasMoved:    lang.Some(HasMovedClause{Cmp: Exactly, N: 0}),
			},
		},
	}

	diagonalCapture := MoveTemplate{
		Directions:   []Offset{{DX: 1, DY: dir}},
		Mirror:       Horizontally,
		MaximumSlide: lang.Some(1),
		MinimumSlide: 1,
		CanCapture:   true,
		Color:        color,
		Requirements: []PieceStatus{
			{
				RelativePos: lang.Some(Offset{DX: 1, DY: dir}),
				Rank:        AnyPieceClause(),
				Color:       lang.Some(enemy),
			},
		},
	}

	enPassant := MoveTemplate{
		Directions:   []Offset{{DX: 1, DY: dir}},
		Mirror:       Horizontally,
		MaximumSlide: lang.Some(1),
		MinimumSlide: 1,
		CanCapture:   false,
		Color:        color,
		Requirements: []PieceStatus{
			{
				// The moving pawn itself must be on its en passant rank.
				RelativePos: lang.Some(Offset{DX: 0, DY: 0}),
				BoardRank:   lang.Some(enPassantRank),
			},
			{
				// A same-rank enemy pawn one file over, which moved
				// exactly once, on the turn that just ended.
				RelativePos: lang.Some(Offset{DX: 1, DY: 0}),
				Rank:        OfRankClause('p'),
				Color:       lang.Some(enemy),
				HasMoved:    lang.Some(HasMovedClause{Cmp: Exactly, N: 1}),
				LastMoved:   lang.Some(0),
			},
		},
		Effects: []Effect{
			Capture(Relative(1, 0)),
		},
	}

	return Piece{
		Rank:       'p',
		Color:      color,
		CanPromote: true,
		Moves:      []MoveTemplate{forward, double, diagonalCapture, enPassant},
	}
}
