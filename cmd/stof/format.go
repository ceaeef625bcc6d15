package main

import (
	"context"

	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/urfave/cli/v3"
)

func formatCmd() *cli.Command {
	return &cli.Command{
		Name:   "format",
		Usage:  "Rewrite sources in place with the configured formatter",
		Action: config.WithConfig(runFormat),
	}
}

func runFormat(ctx context.Context, _ *cli.Command, cfg config.Config) error {
	return runTool(ctx, cfg, "format", cfg.Inner.Format)
}
