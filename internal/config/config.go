// Package config holds the analysis server's version/extension
// constants and its on-disk AnalyzerConfig, loaded with yaml.v3 the same
// way the teacher's tree reaches for YAML wherever a project file needs
// to be human-editable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current analysis server version.
var Version = "0.1.0"

const SourceFileExt = ".card"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".card", ".cardlang"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsLSPMode is set once at startup by cmd/cardlang-lsp so shared code can
// tell whether it is running under the editor protocol.
var IsLSPMode = false

// AnalyzerConfig is the project-level settings file, conventionally
// named cardlang.yaml, sitting next to the game sources it configures.
type AnalyzerConfig struct {
	// Entry names a source file. It is loaded from the file but no caller
	// reads it: the CLI always takes the file to analyze as an argument.
	Entry string `yaml:"entry"`

	// MaxDiagnostics is loaded from the file but no pass or caller reads
	// it; diagnostics are never truncated.
	MaxDiagnostics int `yaml:"maxDiagnostics"`

	// History configures the optional run-history store.
	History HistoryConfig `yaml:"history"`

	// SeverityOverrides remaps a diagnostic code (e.g. "SEM003") to a
	// severity string ("error", "warning", "information", "hint"),
	// overriding the default that defaultSeverities would otherwise give it.
	SeverityOverrides map[string]string `yaml:"severityOverrides"`
}

// defaultSeverities holds this repo's built-in severity for codes whose
// default isn't a plain error: MemoryMismatch is a warning by default
// (a shape mismatch a game may still run with), and the editor-services
// UnknownPlayerNameUsed supplement is a hint, not an error, since it
// never blocks analysis.
var defaultSeverities = map[string]string{
	"SEM003": "warning",
	"LSP001": "hint",
}

// Severity resolves the effective severity for a diagnostic code: an
// explicit override wins, falling back to this repo's built-in default,
// falling back to "error" for everything else.
func (c AnalyzerConfig) Severity(code string) string {
	if sev, ok := c.SeverityOverrides[code]; ok {
		return sev
	}
	if sev, ok := defaultSeverities[code]; ok {
		return sev
	}
	return "error"
}

// HistoryConfig controls the sqlite-backed analysis-run history.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no cardlang.yaml is
// present.
func Default() AnalyzerConfig {
	return AnalyzerConfig{
		Entry:          "",
		MaxDiagnostics: 0,
		History: HistoryConfig{
			Enabled: false,
			Path:    "cardlang-history.db",
		},
	}
}

// Load reads and parses a cardlang.yaml file at path. A missing file is
// not an error: Load returns the default configuration instead, the way
// a fresh project with no config file yet should still run.
func Load(path string) (AnalyzerConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
