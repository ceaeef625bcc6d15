package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/dywi/stof/cmd/stof/internal/exitcode"
	"github.com/dywi/stof/cmd/stof/internal/logkit"
	"github.com/urfave/cli/v3"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var verbosity, quietness int

	cmd := &cli.Command{
		Name:    "stof",
		Usage:   "Format and lint the project sources with the configured tools",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "increase log verbosity (repeatable)",
				Config:  cli.BoolConfig{Count: &verbosity},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "decrease log verbosity (repeatable)",
				Config:  cli.BoolConfig{Count: &quietness},
			},
		},
		Commands: []*cli.Command{
			formatCmd(),
			checkCmd(),
			allCmd(),
			doctorCmd(),
			initCmd(),
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			logger := logkit.New(os.Stderr, verbosity, quietness)
			return logger.WithContext(ctx), nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitStatus(ctx, err)
	}

	return exitcode.OK
}

// exitStatus chooses the process exit status for a failed run. Tool exit
// codes surface verbatim via exitcode.From.
func exitStatus(ctx context.Context, err error) int {
	switch {
	case ctx.Err() != nil:
		return exitcode.Interrupt
	case errors.Is(err, syscall.EPIPE):
		return exitcode.BrokenPipe
	default:
		return exitcode.From(err)
	}
}
