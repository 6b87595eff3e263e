// chessrules is a console front-end for the rules engine: it drives a
// pkg/rules.Game over stdin/stdout for manual play and debugging.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/castling-labs/chessrules/pkg/engine"
	"github.com/castling-labs/chessrules/pkg/engine/console"
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chessrules [options]

chessrules is a console driver for the chessrules engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "chessrules", "castling-labs")

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
