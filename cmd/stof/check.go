package main

import (
	"context"

	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Report findings from the configured linter without modifying files",
		Action: config.WithConfig(runCheck),
	}
}

func runCheck(ctx context.Context, _ *cli.Command, cfg config.Config) error {
	return runTool(ctx, cfg, "check", cfg.Inner.Check)
}
