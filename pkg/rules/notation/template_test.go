package notation_test

import (
	"testing"

	"github.com/castling-labs/chessrules/pkg/rules"
	"github.com/castling-labs/chessrules/pkg/rules/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInitial(t *testing.T) {
	arr, mask, err := notation.Decode(notation.Initial)
	require.NoError(t, err)
	assert.Equal(t, rules.StandardTemplate, arr)
	assert.Equal(t, rules.StandardWhiteMask, mask)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	arr, mask, err := notation.Decode(notation.Initial)
	require.NoError(t, err)

	out := notation.Encode(arr, mask)
	assert.Equal(t, notation.Initial, out)
}

func TestDecodeGame(t *testing.T) {
	g, err := notation.DecodeGame(notation.Initial)
	require.NoError(t, err)
	assert.Equal(t, rules.White, g.GetTurnOwner())

	p, ok := g.GetPieceAt(4, 0)
	require.True(t, ok)
	assert.Equal(t, 'K', p.Rank)
}

func TestDecodeRejectsMissingCrucialPiece(t *testing.T) {
	_, err := notation.DecodeGame("8/8/8/8/8/8/8/8")
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownRank(t *testing.T) {
	_, _, err := notation.Decode("rnbqXbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	assert.Error(t, err)
}

func TestDecodeRejectsWrongRowCount(t *testing.T) {
	_, _, err := notation.Decode("8/8/8/8/8/8/8")
	assert.Error(t, err)
}
