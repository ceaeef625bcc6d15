package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dywi/stof/cmd/stof/internal/config"
	"github.com/urfave/cli/v3"
)

func TestContextRoundtrip(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Inner:      config.Default(),
		ProjectDir: "/project",
	}

	ctx := config.WithContext(context.Background(), cfg)

	got, ok := config.FromContext(ctx)
	if !ok {
		t.Fatal("expected config in context")
	}
	if got.ProjectDir != "/project" {
		t.Errorf("expected project dir /project, got %s", got.ProjectDir)
	}
}

func TestFromContextMissing(t *testing.T) {
	t.Parallel()

	if _, ok := config.FromContext(context.Background()); ok {
		t.Fatal("expected no config in empty context")
	}
}

func TestSourceDirPath(t *testing.T) {
	t.Parallel()

	t.Run("joins relative paths with project dir", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Inner:      config.InnerConfig{SourceDir: "pym"},
			ProjectDir: "/project",
		}

		want := filepath.Join("/project", "pym")
		if got := cfg.SourceDirPath(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("keeps absolute paths", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Inner:      config.InnerConfig{SourceDir: "/elsewhere/src"},
			ProjectDir: "/project",
		}

		if got := cfg.SourceDirPath(); got != "/elsewhere/src" {
			t.Errorf("expected /elsewhere/src, got %s", got)
		}
	})
}

func TestWithConfigUsesContextConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Inner:      config.Default(),
		ProjectDir: "/project",
	}
	ctx := config.WithContext(context.Background(), cfg)

	var received config.Config
	action := config.WithConfig(func(_ context.Context, _ *cli.Command, cfg config.Config) error {
		received = cfg
		return nil
	})

	if err := action(ctx, &cli.Command{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received.ProjectDir != "/project" {
		t.Errorf("expected project dir /project, got %s", received.ProjectDir)
	}
}
