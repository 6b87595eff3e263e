package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/castling-labs/chessrules/pkg/rules"
	"github.com/castling-labs/chessrules/pkg/rules/notation"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options. Empty today, kept as a struct (not
// removed) so callers and the console driver have a stable place to grow
// runtime options the way morlock's Options grew Depth/Hash/Noise.
type Options struct {
}

func (o Options) String() string {
	return "{}"
}

// Engine wraps a rules.Game with the bookkeeping a driver expects: a name
// and author for banners, and a mutex since drivers may call concurrently
// with a background goroutine.
type Engine struct {
	name, author string

	opts Options

	g  *rules.Game
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
	}
	for _, fn := range opts {
		fn(e)
	}

	_ = e.Reset(ctx, notation.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// Game returns the live game. Callers must not mutate it outside of the
// engine's own methods; it is returned for inspection (GetMoves,
// GetGameState, and the like) by drivers.
func (e *Engine) Game() *rules.Game {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g
}

// Position renders the current position as a board template literal.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return notation.EncodeGame(e.g)
}

// Reset resets the engine to the position named by a board template
// literal (see pkg/rules/notation).
func (e *Engine) Reset(ctx context.Context, template string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v", template)

	g, err := notation.DecodeGame(template)
	if err != nil {
		return err
	}
	e.g = g

	logw.Infof(ctx, "New game: %v", notation.EncodeGame(e.g))
	return nil
}

// Move applies a move from -> to, including whatever composite effects the
// destination entails (castling, en passant, ...). Returns an error if the
// move is illegal.
func (e *Engine) Move(ctx context.Context, from, to rules.Square) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v%v", from, to)

	if !e.g.MakeMove(from, to) {
		return fmt.Errorf("illegal move: %v%v", from, to)
	}

	logw.Infof(ctx, "Move %v%v: state=%v", from, to, e.g.GetGameState())
	return nil
}

// Promote completes a pending promotion by replacing the pawn at sq with a
// newly constructed piece of the given rank.
func (e *Engine) Promote(ctx context.Context, sq rules.Square, rank rune) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Promote %v to %c", sq, rank)

	if !e.g.Promote(sq, rank) {
		return fmt.Errorf("invalid promotion: %v to %c", sq, rank)
	}
	return nil
}
