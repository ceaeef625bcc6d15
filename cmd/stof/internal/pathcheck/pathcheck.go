// Package pathcheck validates filesystem path arguments before they are
// handed to external tools.
package pathcheck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// NonEmpty rejects empty path arguments.
func NonEmpty(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("path must not be empty")
	}

	return arg, nil
}

// Resolve expands a leading ~ and makes the path absolute.
func Resolve(arg string) (string, error) {
	if _, err := NonEmpty(arg); err != nil {
		return "", err
	}

	if arg == "~" || strings.HasPrefix(arg, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve home directory")
		}
		arg = filepath.Join(home, strings.TrimPrefix(arg, "~"))
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve path %q", arg)
	}

	return abs, nil
}

// ExistingPath resolves the path and requires it to exist.
func ExistingPath(arg string) (string, error) {
	path, err := Resolve(arg)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(err, "path does not exist: %s", path)
	}

	return path, nil
}

// ExistingDir resolves the path and requires it to be an existing directory.
func ExistingDir(arg string) (string, error) {
	path, err := Resolve(arg)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "directory does not exist: %s", path)
	}

	if !info.IsDir() {
		return "", errors.Newf("not a directory: %s", path)
	}

	return path, nil
}

// ExistingFile resolves the path and requires it to be an existing regular file.
func ExistingFile(arg string) (string, error) {
	path, err := Resolve(arg)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "file does not exist: %s", path)
	}

	if !info.Mode().IsRegular() {
		return "", errors.Newf("not a file: %s", path)
	}

	return path, nil
}
