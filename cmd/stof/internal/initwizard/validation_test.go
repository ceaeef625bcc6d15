package initwizard_test

import (
	"testing"

	"github.com/dywi/stof/cmd/stof/internal/initwizard"
)

func TestValidateToolCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "bare command", input: "black", wantErr: false},
		{name: "command path", input: "/usr/local/bin/flake8", wantErr: false},
		{name: "hyphenated command", input: "golangci-lint", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "embedded flag", input: "black --check", wantErr: true},
		{name: "tab separated", input: "black\t--check", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := initwizard.ValidateToolCommand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToolCommand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSourceDir(t *testing.T) {
	t.Parallel()

	if err := initwizard.ValidateSourceDir(""); err == nil {
		t.Error("expected error for empty source dir")
	}
	if err := initwizard.ValidateSourceDir("pym"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
