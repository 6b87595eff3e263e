// perft is a movegen debugging tool: it counts leaf positions reachable
// from a starting template at a given depth. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/castling-labs/chessrules/pkg/rules"
	"github.com/castling-labs/chessrules/pkg/rules/notation"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	template = flag.String("template", "", "Start position template (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *template == "" {
		*template = notation.Initial
	}

	g, err := notation.DecodeGame(*template)
	if err != nil {
		logw.Exitf(ctx, "Invalid template '%v': %v", *template, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(g, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *template, i, nodes, duration.Microseconds()))
	}
}

func search(g *rules.Game, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range g.LegalMoves() {
		next := g.Clone()
		if !next.MakeMove(m.From, m.To) {
			continue
		}

		count := search(next, depth-1, false)
		if d {
			println(fmt.Sprintf("%v%v: %v", m.From, m.To, count))
		}
		nodes += count
	}
	return nodes
}
