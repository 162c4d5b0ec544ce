// Command citynet loads a city road network and answers shortest-route queries.
//
//	citynet route --paths ukcitypaths.txt --pairs ukdijkstrapairs.txt
//	citynet connections --paths ukcitypaths.txt York Leeds
//	citynet generate --kind random --n 500 --p 0.02 --out paths.txt --pairs 1000 --pairs-out pairs.txt
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	// Minimal logger until the command configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "citynet:", err)
		os.Exit(1)
	}
}

// run executes the command line args against outW (reports) and errW (logs).
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	root := newRootCmd(outW, errW)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
