// Package notation contains utilities for reading and writing positions as
// FEN-style text (eight '/'-separated rows, row 0 first) and converting
// them to and from the board-template form Game.MakeBoard takes: 64 bytes
// in row-major order (row 0, White's back rank, first), '0' for empty
// squares, and a white_mask bitmask of which squares are White. It plays
// the same role here that FEN plays for a bitboard engine.
package notation

import (
	"fmt"
	"strings"

	"github.com/castling-labs/chessrules/pkg/rules"
)

// Initial is the standard starting position, spelled out the same way
// rules.StandardTemplate/rules.StandardWhiteMask are, for parity with a
// FEN package's "Initial" constant.
const Initial = "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr"

// Decode parses a template string into the 64-byte array and white_mask
// Game.MakeBoard expects. The string uses '/' to separate the eight rows
// (row 0 first) and digits 1-8 as run-length encoding of consecutive empty
// squares, mirroring FEN's piece-placement field. Uppercase letters are
// White, lowercase are Black; '0' inside a row is also accepted as a
// single empty square for parity with the literal 64-char array form used
// internally.
func Decode(template string) ([64]byte, uint64, error) {
	var out [64]byte
	var whiteMask uint64
	for i := range out {
		out[i] = '0'
	}

	rows := strings.Split(strings.TrimSpace(template), "/")
	if len(rows) != 8 {
		return out, 0, fmt.Errorf("notation: invalid number of rows in template: %q", template)
	}

	for rowIdx, row := range rows {
		col := 0
		for _, r := range row {
			switch {
			case r >= '1' && r <= '8':
				col += int(r - '0')
			case r == '0':
				col++
			default:
				if col >= 8 {
					return out, 0, fmt.Errorf("notation: row %d overflows in template: %q", rowIdx, template)
				}
				color, rank, ok := parsePiece(r)
				if !ok {
					return out, 0, fmt.Errorf("notation: unknown rank %q in template: %q", r, template)
				}
				idx := col + rowIdx*8
				out[idx] = byte(rank)
				if color == rules.White {
					whiteMask |= 1 << uint(idx)
				}
				col++
			}
		}
		if col != 8 {
			return out, 0, fmt.Errorf("notation: row %d has %d squares, want 8: %q", rowIdx, col, template)
		}
	}

	return out, whiteMask, nil
}

// Encode renders a template array and white_mask back to the row-major
// literal form Decode accepts.
func Encode(template [64]byte, whiteMask uint64) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		blanks := 0
		for col := 0; col < 8; col++ {
			idx := col + row*8
			rank := template[idx]
			if rank == '0' {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(fmt.Sprintf("%d", blanks))
				blanks = 0
			}
			color := rules.Black
			if whiteMask>>uint(idx)&1 == 1 {
				color = rules.White
			}
			sb.WriteRune(printPiece(color, rune(rank)))
		}
		if blanks > 0 {
			sb.WriteString(fmt.Sprintf("%d", blanks))
		}
		if row < 7 {
			sb.WriteString("/")
		}
	}
	return sb.String()
}

// DecodeGame is a convenience wrapper that decodes a template literal and
// constructs a Game from it in one call.
func DecodeGame(template string) (*rules.Game, error) {
	arr, mask, err := Decode(template)
	if err != nil {
		return nil, err
	}
	return rules.MakeBoard(arr, mask)
}

// EncodeGame renders a Game's current position back to a template literal.
func EncodeGame(g *rules.Game) string {
	var arr [64]byte
	var mask uint64
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			idx := file + rank*8
			arr[idx] = '0'
			p, ok := g.GetPieceAt(file, rank)
			if !ok {
				continue
			}
			arr[idx] = byte(p.Rank)
			if p.Color == rules.White {
				mask |= 1 << uint(idx)
			}
		}
	}
	return Encode(arr, mask)
}

func parsePiece(r rune) (rules.Color, rune, bool) {
	switch r {
	case 'P':
		return rules.White, 'p', true
	case 'B':
		return rules.White, 'B', true
	case 'N':
		return rules.White, 'N', true
	case 'R':
		return rules.White, 'R', true
	case 'Q':
		return rules.White, 'Q', true
	case 'K':
		return rules.White, 'K', true

	case 'p':
		return rules.Black, 'p', true
	case 'b':
		return rules.Black, 'B', true
	case 'n':
		return rules.Black, 'N', true
	case 'r':
		return rules.Black, 'R', true
	case 'q':
		return rules.Black, 'Q', true
	case 'k':
		return rules.Black, 'K', true

	default:
		return 0, 0, false
	}
}

func printPiece(c rules.Color, rank rune) rune {
	if c == rules.White {
		switch rank {
		case 'p':
			return 'P'
		default:
			return rank
		}
	}

	switch rank {
	case 'p':
		return 'p'
	default:
		return []rune(strings.ToLower(string(rank)))[0]
	}
}
