package rules_test

import (
	"testing"

	"github.com/castling-labs/chessrules/pkg/rules"
	"github.com/castling-labs/chessrules/pkg/rules/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(file, rank int) rules.Square {
	return rules.NewSquare(file, rank)
}

func TestNewGameStartingPosition(t *testing.T) {
	g := rules.NewGame()
	assert.Equal(t, rules.White, g.GetTurnOwner())
	assert.Equal(t, rules.Running, g.GetGameState())
	assert.Equal(t, 1, g.TurnCount())

	p, ok := g.GetPieceAt(4, 0)
	require.True(t, ok)
	assert.Equal(t, 'K', p.Rank)
	assert.Equal(t, rules.White, p.Color)
	assert.True(t, p.IsCrucial)
}

func TestPawnSingleAndDoubleStep(t *testing.T) {
	g := rules.NewGame()

	moves, ok := g.GetMoves(4, 1) // e2
	require.True(t, ok)
	assert.Contains(t, moves, sq(4, 2).Index()) // e3
	assert.Contains(t, moves, sq(4, 3).Index()) // e4
}

func TestDoubleStepOnlyOnFirstMove(t *testing.T) {
	g := rules.NewGame()

	require.True(t, g.MakeMove(sq(4, 1), sq(4, 3))) // e2-e4
	require.True(t, g.MakeMove(sq(0, 6), sq(0, 5))) // a7-a6, harmless waiting move

	moves, ok := g.GetMoves(4, 3) // white pawn now on e4
	require.True(t, ok)
	assert.NotContains(t, moves, sq(4, 5).Index(), "pawn already moved once, no double step left")
	assert.Contains(t, moves, sq(4, 4).Index(), "single step forward still open")
}

func TestPawnCannotCaptureForward(t *testing.T) {
	// White king e1, white pawn e3, black pawn e4 (blocking), black king e8.
	g, err := notation.DecodeGame("4K3/8/4P3/4p3/8/8/8/4k3")
	require.NoError(t, err)

	moves, ok := g.GetMoves(4, 2) // e3 white pawn, blocked by black pawn on e4
	require.True(t, ok)
	assert.Empty(t, moves)
}

func TestPawnDiagonalCapture(t *testing.T) {
	// White king e1, white pawn e3, black pawn d4 (diagonal capture target).
	g, err := notation.DecodeGame("4K3/8/4P3/3p4/8/8/8/4k3")
	require.NoError(t, err)

	moves, ok := g.GetMoves(4, 2) // e3
	require.True(t, ok)
	assert.Contains(t, moves, sq(3, 3).Index()) // d4 capture
	assert.Contains(t, moves, sq(4, 3).Index()) // e4 forward still open
}

func TestEnPassant(t *testing.T) {
	g := rules.NewGame()
	require.True(t, g.MakeMove(sq(4, 1), sq(4, 3))) // e2-e4
	require.True(t, g.MakeMove(sq(0, 6), sq(0, 5))) // a7-a6, waiting move
	require.True(t, g.MakeMove(sq(4, 3), sq(4, 4))) // e4-e5
	require.True(t, g.MakeMove(sq(3, 6), sq(3, 4))) // d7-d5, double step

	moves, ok := g.GetMoves(4, 4) // white pawn on e5
	require.True(t, ok)
	assert.Contains(t, moves, sq(3, 5).Index()) // d6, the en passant square

	require.True(t, g.MakeMove(sq(4, 4), sq(3, 5)))
	_, stillOnD5 := g.GetPieceAt(3, 4)
	assert.False(t, stillOnD5, "captured pawn should be removed from d5")

	pawn, ok := g.GetPieceAt(3, 5)
	require.True(t, ok)
	assert.Equal(t, 'p', pawn.Rank)
	assert.Equal(t, rules.White, pawn.Color)
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	// White king e1, white rook e2, black rook e8 pinning it to the file,
	// black king a8.
	g, err := notation.DecodeGame("4K3/4R3/8/8/8/8/8/k3r3")
	require.NoError(t, err)

	moves, ok := g.GetMoves(4, 1) // rook on e2
	require.True(t, ok)
	require.NotEmpty(t, moves)
	for d := range moves {
		to := rules.SquareFromIndex(d)
		assert.Equal(t, 4, to.File, "pinned rook may only move along the e-file")
	}
}

func TestKingsideCastling(t *testing.T) {
	// White king e1, rook h1, black king e8.
	g, err := notation.DecodeGame("4K2R/8/8/8/8/8/8/4k3")
	require.NoError(t, err)

	moves, ok := g.GetMoves(4, 0) // king e1
	require.True(t, ok)
	assert.Contains(t, moves, sq(6, 0).Index()) // g1

	require.True(t, g.MakeMove(sq(4, 0), sq(6, 0)))
	rook, ok := g.GetPieceAt(5, 0) // f1
	require.True(t, ok)
	assert.Equal(t, 'R', rook.Rank)
	_, stillOnH1 := g.GetPieceAt(7, 0)
	assert.False(t, stillOnH1)
}

func TestCastlingDeniedThroughCheck(t *testing.T) {
	// Black rook on f8 attacks f1, the square the king must cross.
	g, err := notation.DecodeGame("4K2R/8/8/8/8/8/8/5r1k")
	require.NoError(t, err)

	moves, ok := g.GetMoves(4, 0)
	require.True(t, ok)
	assert.NotContains(t, moves, sq(6, 0).Index())
}

func TestPromotionGating(t *testing.T) {
	// White king e1, white pawn a7, black king h8.
	g, err := notation.DecodeGame("4K3/8/8/8/8/8/P7/7k")
	require.NoError(t, err)

	require.True(t, g.MakeMove(sq(0, 6), sq(0, 7)))
	assert.Equal(t, rules.Promote, g.GetGameState())

	// Turn should not have advanced yet, and no move is accepted until the
	// promotion is resolved.
	assert.Equal(t, rules.White, g.GetTurnOwner())
	assert.False(t, g.MakeMove(sq(4, 0), sq(4, 1)))

	require.True(t, g.Promote(sq(0, 7), 'Q'))
	queen, ok := g.GetPieceAt(0, 7)
	require.True(t, ok)
	assert.Equal(t, 'Q', queen.Rank)
	assert.Equal(t, rules.Black, g.GetTurnOwner())
}

func TestCheckEvasionByCapture(t *testing.T) {
	// White king b1, rook h1; black king e8, queen f6. The rook ladders up
	// to h8 to check along rank 8; the queen can capture it diagonally.
	g, err := notation.DecodeGame("0K5R/8/8/8/8/5q2/8/4k3")
	require.NoError(t, err)

	require.True(t, g.MakeMove(sq(7, 0), sq(7, 7))) // Rh1-h8+
	assert.Equal(t, rules.Black, g.GetTurnOwner())
	assert.Equal(t, rules.Check, g.GetGameState())

	moves, ok := g.GetMoves(5, 5) // queen f6
	require.True(t, ok)
	assert.Contains(t, moves, sq(7, 7).Index(), "queen must be able to capture the checking rook")
}

func TestCheckmate(t *testing.T) {
	// White king b1 and a spare pawn on g6, black king b3 and rook h8.
	// White shuffles the pawn, then black ladders the rook down to h1:
	// the black king covers a2/b2/c2, the rook covers the rest of rank 1,
	// and the spare pawn can neither block nor capture.
	g, err := notation.DecodeGame("0K000000/8/0k000000/8/8/000000P0/8/0000000r")
	require.NoError(t, err)

	require.True(t, g.MakeMove(sq(6, 5), sq(6, 6))) // g6-g7
	require.True(t, g.MakeMove(sq(7, 7), sq(7, 0))) // Rh8-h1+

	assert.Equal(t, rules.White, g.GetTurnOwner())
	assert.Equal(t, rules.CheckMate, g.GetGameState())
	assert.Empty(t, g.LegalMoves())
}
