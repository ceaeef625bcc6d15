package config

import "github.com/iancoleman/strcase"

// EnvPrefix prefixes every environment override key.
const EnvPrefix = "STOF_"

var envOverrides = []struct {
	field string
	apply func(*InnerConfig, string)
}{
	{"SourceDir", func(c *InnerConfig, v string) { c.SourceDir = v }},
	{"FormatCommand", func(c *InnerConfig, v string) { c.Format.Command = v }},
	{"CheckCommand", func(c *InnerConfig, v string) { c.Check.Command = v }},
}

// EnvKey derives the override key for a config field, e.g. "SourceDir"
// becomes "STOF_SOURCE_DIR".
func EnvKey(field string) string {
	return EnvPrefix + strcase.ToScreamingSnake(field)
}

// ApplyEnv overlays environment overrides onto cfg. Overrides apply after
// the file is decoded and before validation, so a bad override fails the
// same way a bad file value does.
func ApplyEnv(cfg *InnerConfig, lookup func(string) (string, bool)) {
	for _, o := range envOverrides {
		if v, ok := lookup(EnvKey(o.field)); ok && v != "" {
			o.apply(cfg, v)
		}
	}
}
