package main

import (
	"context"
	"os"

	"github.com/dywi/stof/cmd/stof/internal/cmdexec"
	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/dywi/stof/cmd/stof/internal/exitcode"
	"github.com/dywi/stof/cmd/stof/internal/pathcheck"
	"github.com/rs/zerolog"
)

// runTool invokes one configured tool over the source directory, streaming
// its output untouched. The tool runs from the project directory and is
// fully awaited; a non-zero exit surfaces verbatim through the returned
// error.
func runTool(ctx context.Context, cfg config.Config, target string, tool config.ToolConfig) error {
	if err := checkSourceDir(cfg); err != nil {
		return err
	}

	args := make([]string, 0, len(tool.Args)+1)
	args = append(args, tool.Args...)
	args = append(args, cfg.Inner.SourceDir)

	zerolog.Ctx(ctx).Debug().
		Str("target", target).
		Str("command", tool.Command).
		Strs("args", args).
		Msg("running tool")

	return cmdexec.New(cfg).WithOutput(os.Stdout, os.Stderr).Run(ctx, tool.Command, args...)
}

// checkSourceDir fails fast with a clear diagnostic when the configured
// source directory is missing, instead of deferring to the tool's own
// error output.
func checkSourceDir(cfg config.Config) error {
	if _, err := pathcheck.ExistingDir(cfg.SourceDirPath()); err != nil {
		return exitcode.Wrap(exitcode.Usage, err)
	}

	return nil
}
