package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/dywi/stof/cmd/stof/internal/initwizard"
	"github.com/urfave/cli/v3"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a starter " + config.FileName,
		ArgsUsage: "[directory]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-input",
				Usage: "write defaults without prompting",
			},
			&cli.BoolFlag{
				Name:  "accessible",
				Usage: "prompt in accessible (non-TUI) mode",
			},
		},
		Action: runInit,
	}
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get current working directory")
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(err, "failed to get absolute path")
	}
	dir = absDir

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("%s already exists", path)
	}

	inner := config.Default()

	if !cmd.Bool("no-input") {
		result, err := runWizard(cmd, inner.SourceDir)
		if err != nil {
			return err
		}

		inner.SourceDir = result.SourceDir
		inner.Format.Command = result.FormatCommand
		inner.Check.Command = result.CheckCommand
	}

	if err := config.WriteToFile(dir, inner, config.NewWriter()); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func runWizard(cmd *cli.Command, defaultSourceDir string) (initwizard.Result, error) {
	var runner initwizard.FormRunner = initwizard.NewInteractiveRunner()
	if cmd.Bool("accessible") {
		runner = initwizard.NewAccessibleRunner(os.Stdout, os.Stdin)
	}

	return initwizard.New(initwizard.NewFormBuilder(), runner).Run(defaultSourceDir)
}
