package exitcode_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dywi/stof/cmd/stof/internal/exitcode"
)

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("nil error is OK", func(t *testing.T) {
		t.Parallel()
		if got := exitcode.From(nil); got != exitcode.OK {
			t.Errorf("expected %d, got %d", exitcode.OK, got)
		}
	})

	t.Run("explicit code wins", func(t *testing.T) {
		t.Parallel()
		err := exitcode.Wrap(exitcode.Usage, errors.New("bad directory"))
		if got := exitcode.From(err); got != exitcode.Usage {
			t.Errorf("expected %d, got %d", exitcode.Usage, got)
		}
	})

	t.Run("explicit code survives wrapping", func(t *testing.T) {
		t.Parallel()
		err := errors.Wrap(exitcode.Wrap(exitcode.Usage, errors.New("bad directory")), "format")
		if got := exitcode.From(err); got != exitcode.Usage {
			t.Errorf("expected %d, got %d", exitcode.Usage, got)
		}
	})

	t.Run("tool exit status surfaces verbatim", func(t *testing.T) {
		t.Parallel()
		runErr := exec.CommandContext(context.Background(), "sh", "-c", "exit 9").Run()
		if runErr == nil {
			t.Fatal("expected command to fail")
		}

		err := errors.Wrap(runErr, "fake tool failed")
		if got := exitcode.From(err); got != 9 {
			t.Errorf("expected 9, got %d", got)
		}
	})

	t.Run("plain error maps to Err", func(t *testing.T) {
		t.Parallel()
		if got := exitcode.From(errors.New("boom")); got != exitcode.Err {
			t.Errorf("expected %d, got %d", exitcode.Err, got)
		}
	})
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	if err := exitcode.Wrap(exitcode.Usage, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
