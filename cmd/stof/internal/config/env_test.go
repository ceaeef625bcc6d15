package config_test

import (
	"reflect"
	"testing"

	"github.com/dywi/stof/cmd/stof/internal/config"
)

func TestEnvKey(t *testing.T) {
	t.Parallel()

	for field, want := range map[string]string{
		"SourceDir":     "STOF_SOURCE_DIR",
		"FormatCommand": "STOF_FORMAT_COMMAND",
		"CheckCommand":  "STOF_CHECK_COMMAND",
	} {
		if got := config.EnvKey(field); got != want {
			t.Errorf("EnvKey(%q): expected %q, got %q", field, want, got)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("overrides set values", func(t *testing.T) {
		t.Parallel()
		env := map[string]string{
			"STOF_SOURCE_DIR":     "src",
			"STOF_FORMAT_COMMAND": "ruff",
		}

		cfg := config.Default()
		config.ApplyEnv(&cfg, func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		})

		if cfg.SourceDir != "src" {
			t.Errorf("expected source dir 'src', got %q", cfg.SourceDir)
		}
		if cfg.Format.Command != "ruff" {
			t.Errorf("expected format command 'ruff', got %q", cfg.Format.Command)
		}
		if cfg.Check.Command != "flake8" {
			t.Errorf("check command changed unexpectedly to %q", cfg.Check.Command)
		}
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		config.ApplyEnv(&cfg, func(string) (string, bool) {
			return "", true
		})

		if !reflect.DeepEqual(cfg, config.Default()) {
			t.Errorf("expected defaults untouched, got %+v", cfg)
		}
	})
}

func TestLoaderAppliesEnvOverrides(t *testing.T) {
	t.Setenv("STOF_CHECK_COMMAND", "pylint")

	path := writeConfig(t, t.TempDir(), validYAML)

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Check.Command != "pylint" {
		t.Errorf("expected check command 'pylint', got %q", cfg.Check.Command)
	}
}
