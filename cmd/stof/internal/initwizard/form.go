package initwizard

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

type FormBuilder interface {
	Build(defaultSourceDir string, result *Result) *huh.Form
}

type formBuilder struct{}

func NewFormBuilder() FormBuilder {
	return &formBuilder{}
}

func (b *formBuilder) Build(defaultSourceDir string, result *Result) *huh.Form {
	*result = DefaultResult(defaultSourceDir)
	return huh.NewForm(
		huh.NewGroup(
			b.sourceDirInput(&result.SourceDir),
			b.formatCommandInput(&result.FormatCommand),
			b.checkCommandInput(&result.CheckCommand),
		),
	)
}

func (b *formBuilder) sourceDirInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Source directory").
		Description("Directory the formatter and linter run over, relative to the project root").
		Value(value).
		Validate(ValidateSourceDir)
}

func (b *formBuilder) formatCommandInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Formatter command").
		Description("Tool that rewrites sources in place to a canonical style").
		Value(value).
		Validate(ValidateToolCommand)
}

func (b *formBuilder) checkCommandInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Linter command").
		Description("Tool that reports findings without modifying files").
		Value(value).
		Validate(ValidateToolCommand)
}

func ValidateSourceDir(s string) error {
	if s == "" {
		return errors.New("source directory is required")
	}
	return nil
}

// ValidateToolCommand accepts a bare command name or path. Arguments belong
// in the config file's args list, not here.
func ValidateToolCommand(s string) error {
	if s == "" {
		return errors.New("command is required")
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return errors.New("command must be a single executable name; put flags in args")
	}
	return nil
}
