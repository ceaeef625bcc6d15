package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bitfield/script"
	"github.com/cockroachdb/errors"
	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/urfave/cli/v3"
)

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:   "doctor",
		Usage:  "Verify the configured tools are installed",
		Action: config.WithConfig(runDoctor),
	}
}

func runDoctor(ctx context.Context, _ *cli.Command, cfg config.Config) error {
	tools := []struct {
		target string
		tool   config.ToolConfig
	}{
		{"format", cfg.Inner.Format},
		{"check", cfg.Inner.Check},
	}

	var missing []string
	for _, t := range tools {
		path, err := exec.LookPath(t.tool.Command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s not found on PATH\n", t.target, t.tool.Command)
			missing = append(missing, t.tool.Command)
			continue
		}

		fmt.Printf("%s: %s %s\n", t.target, path, toolVersion(t.tool.Command))
	}

	if len(missing) > 0 {
		return errors.Newf("missing tools: %s", strings.Join(missing, ", "))
	}

	return nil
}

// toolVersion asks the tool itself; not every tool supports --version, so
// failures degrade to a placeholder rather than failing the doctor run.
func toolVersion(command string) string {
	version, err := script.Exec(command + " --version").First(1).String()
	if err != nil {
		return "(version unknown)"
	}

	return strings.TrimSpace(version)
}
