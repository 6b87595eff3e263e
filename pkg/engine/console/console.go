// Package console implements a line-oriented console driver for debugging
// and manual play against a pkg/engine.Engine, grounded on morlock's own
// console driver but stripped of search/analyze commands the rules engine
// has no use for.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/castling-labs/chessrules/pkg/engine"
	"github.com/castling-labs/chessrules/pkg/rules"
	"github.com/castling-labs/chessrules/pkg/rules/notation"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				// reset [<template>]

				template := notation.Initial
				if len(args) > 0 {
					template = strings.Join(args, "/")
				}
				if err := d.e.Reset(ctx, template); err != nil {
					logw.Errorf(ctx, "Invalid template: %v: %v", line, err)
					break
				}
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "moves", "m":
				if len(args) != 1 {
					d.out <- "usage: moves <square>"
					break
				}
				sq, err := parseSquare(args[0])
				if err != nil {
					d.out <- err.Error()
					break
				}
				d.printMoves(ctx, sq)

			case "promote":
				// promote <square> <rank>
				if len(args) != 2 || len([]rune(args[1])) != 1 {
					d.out <- "usage: promote <square> <rank>"
					break
				}
				sq, err := parseSquare(args[0])
				if err != nil {
					d.out <- err.Error()
					break
				}
				rank := []rune(strings.ToUpper(args[1]))[0]
				if err := d.e.Promote(ctx, sq, rank); err != nil {
					d.out <- err.Error()
					break
				}
				d.printBoard(ctx)

			case "state", "s":
				d.out <- fmt.Sprintf("turn=%v turnCount=%v state=%v", d.e.Game().GetTurnOwner(), d.e.Game().TurnCount(), d.e.Game().GetGameState())

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume a two-square move, e.g. "e2e4".

				from, to, err := parseMove(cmd)
				if err != nil {
					d.out <- fmt.Sprintf("invalid move: %q: %v", cmd, err)
					break
				}
				if err := d.e.Move(ctx, from, to); err != nil {
					d.out <- err.Error()
				} else {
					d.printBoard(ctx)
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// parseSquare parses coordinate notation such as "e2" into a Square. This
// is console input convenience, not the algebraic/SAN move-notation
// parsing the rules engine itself deliberately leaves out.
func parseSquare(s string) (rules.Square, error) {
	if len(s) != 2 {
		return rules.Square{}, fmt.Errorf("invalid square: %q", s)
	}
	file := int(s[0] - 'a')
	rank, err := strconv.Atoi(string(s[1]))
	if err != nil {
		return rules.Square{}, fmt.Errorf("invalid square: %q", s)
	}
	sq := rules.NewSquare(file, rank-1)
	if !sq.IsValid() {
		return rules.Square{}, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

func parseMove(s string) (rules.Square, rules.Square, error) {
	if len(s) != 4 {
		return rules.Square{}, rules.Square{}, fmt.Errorf("expected 4 characters, e.g. e2e4")
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return rules.Square{}, rules.Square{}, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return rules.Square{}, rules.Square{}, err
	}
	return from, to, nil
}

func (d *Driver) printMoves(ctx context.Context, sq rules.Square) {
	moves, ok := d.e.Game().GetMoves(sq.File, sq.Rank)
	if !ok {
		d.out <- fmt.Sprintf("no piece at %v", sq)
		return
	}
	if len(moves) == 0 {
		d.out <- fmt.Sprintf("%v: no legal moves", sq)
		return
	}
	var dests []string
	for d := range moves {
		dests = append(dests, rules.SquareFromIndex(d).String())
	}
	logw.Debugf(ctx, "moves from %v: %v", sq, dests)
	d.out <- fmt.Sprintf("%v: %v", sq, strings.Join(dests, " "))
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

// printBoard dumps the board as plain ASCII text, grounded on morlock's own
// console renderer but adapted away from its ANSI ambitions.
func (d *Driver) printBoard(ctx context.Context) {
	g := d.e.Game()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for rank := 7; rank >= 0; rank-- {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(rank + 1))
		sb.WriteString(vertical)
		for file := 0; file < 8; file++ {
			if p, ok := g.GetPieceAt(file, rank); ok {
				sb.WriteString(printPiece(p))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("template: %v", d.e.Position())
	d.out <- fmt.Sprintf("state: %v, turn: %v, turnCount: %v", g.GetGameState(), g.GetTurnOwner(), g.TurnCount())
	d.out <- ""
}

func printPiece(p rules.Piece) string {
	if p.Color == rules.White {
		return strings.ToUpper(string(p.Rank))
	}
	return strings.ToLower(string(p.Rank))
}
