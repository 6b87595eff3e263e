package rules

// prune is the move interpreter's core: given one move template and the
// origin of the moving piece, it returns a mapping from destination index
// (0..63) to the side-effects that destination triggers. Destinations
// absent from the map are not reachable via this template. See §4.1.
func prune(m MoveTemplate, g *Game, origin Square) map[int][]Effect {
	result := make(map[int][]Effect)

	if m.SafeThroughout && !g.IsSafePosition(origin, m.Color) {
		return result
	}

	maxSlide := m.defaultMaxSlide()

	for _, dir := range m.Directions {
		for _, variant := range m.Mirror.variants() {
			if !requirementsHold(m.Requirements, g, origin, variant, m.Color) {
				continue
			}

			d := dir.Mirror(variant)
			dests := slideExpand(g, origin, d, m.MinimumSlide, maxSlide, m.CanCapture, m.SafeThroughout, m.Color)

			effects := cloneEffects(m.Effects)
			for i := range effects {
				effects[i] = effects[i].Mirror(variant)
			}

			for _, dest := range dests {
				// Last writer wins on collision, per §4.1 tie-breaks.
				result[dest.Index()] = cloneEffects(effects)
			}
		}
	}

	return result
}

// requirementsHold evaluates every requirement of a template under one
// mirror variant; all must hold (logical AND).
func requirementsHold(reqs []PieceStatus, g *Game, origin Square, variant Mirror, mover Color) bool {
	for _, req := range reqs {
		if !req.evaluate(&g.board, origin, variant, g.turnCount, mover) {
			return false
		}
	}
	return true
}

// slideExpand is the 4.1.1 "slide expansion" ray walker: starting at step
// 0 (the origin itself, never recorded) and increasing to maxSlide, it
// walks origin+i*(dx,dy), stopping at the board edge, a same-color
// blocker, or the first enemy piece (recorded only if can_capture).
func slideExpand(g *Game, origin Square, dir Offset, minSlide, maxSlide int, canCapture, safeThroughout bool, color Color) []Square {
	var out []Square

	for i := 0; i <= maxSlide; i++ {
		sq := origin.Offset(i*dir.DX, i*dir.DY)
		if !sq.IsValid() {
			return out
		}
		if safeThroughout && !g.IsSafePosition(sq, color) {
			return out
		}

		occ, present := g.board.At(sq)
		switch {
		case !present:
			if i >= minSlide && i > 0 {
				out = append(out, sq)
			}
			// i == 0 is the mover's own square: benign, continue past it.
		case occ.Color == color:
			// Same-color blocker: never record, and the ray stops here.
			// i == 0 is the mover's own occupied square, which is this
			// same case (benign, but the ray can't continue past a real
			// blocker either way once i > 0).
			if i == 0 {
				continue
			}
			return out
		default:
			// Opposite color.
			if canCapture && i >= minSlide && i > 0 {
				out = append(out, sq)
			}
			return out
		}
	}

	return out
}
