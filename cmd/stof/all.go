package main

import (
	"context"

	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/urfave/cli/v3"
)

func allCmd() *cli.Command {
	return &cli.Command{
		Name:   "all",
		Usage:  "Run format then check, halting on the first failure",
		Action: config.WithConfig(runAll),
	}
}

// runAll formats before checking so the linter sees canonically formatted
// sources. A failed format halts the sequence; its exit status is the
// process exit status.
func runAll(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	if err := runFormat(ctx, cmd, cfg); err != nil {
		return err
	}

	return runCheck(ctx, cmd, cfg)
}
