package rules

// dangerZone returns the set of destination indices a piece at sq
// threatens: not the set it can move to, but the set it attacks. See
// §4.2 "Danger zone of a piece" and the GLOSSARY entry of the same name.
//
// It is the union, over the piece's templates, of:
//   - prune()'s destinations, for templates where CanCapture is true;
//   - the absolute squares named by every CaptureEffect of every
//     template, resolved against the piece's own square.
//
// The distinction matters for en passant (which captures a square the
// pawn does not land on) and for plain forward pawn moves (which reach a
// square without threatening it).
func dangerZone(g *Game, sq Square, p Piece) map[int]bool {
	zone := make(map[int]bool)

	for _, tpl := range p.Moves {
		if tpl.CanCapture {
			for d := range prune(tpl, g, sq) {
				zone[d] = true
			}
		}
		for _, e := range tpl.Effects {
			if e.Kind == CaptureEffect {
				target := e.Pos.Resolve(sq)
				if target.IsValid() {
					zone[target.Index()] = true
				}
			}
		}
	}

	return zone
}

// IsSafePosition reports whether (sq) is safe for color: not attacked by
// any enemy piece's danger zone. If color is not the current turn owner,
// it trivially returns true -- this is the recursion-termination rule
// described in §5 and §9: it is what lets danger-zone computation call
// prune() (which may itself check SafeThroughout on a castling template)
// without re-entering king-safety filtering for the opponent's replies.
// The recursion is one level deep by construction.
func (g *Game) IsSafePosition(sq Square, color Color) bool {
	if color != g.turnOwner {
		return true
	}

	safe := true
	g.board.forEach(func(at Square, p Piece) {
		if !safe || p.Color == color {
			return
		}
		if dangerZone(g, at, p)[sq.Index()] {
			safe = false
		}
	})
	return safe
}
