package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("got %+v, want the default config", cfg)
	}
}

func TestLoadParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardlang.yaml")
	contents := `
entry: game.card
maxDiagnostics: 50
history:
  enabled: true
  path: runs.db
severityOverrides:
  SEM003: error
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Entry != "game.card" || cfg.MaxDiagnostics != 50 {
		t.Fatalf("got %+v, want entry game.card and maxDiagnostics 50", cfg)
	}
	if !cfg.History.Enabled || cfg.History.Path != "runs.db" {
		t.Fatalf("got history %+v, want enabled with path runs.db", cfg.History)
	}
	if cfg.Severity("SEM003") != "error" {
		t.Fatalf("got %q, want the configured override to promote MemoryMismatch to an error", cfg.Severity("SEM003"))
	}
}

func TestLoadReportsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardlang.yaml")
	if err := os.WriteFile(path, []byte("entry: [unterminated"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}

func TestSeverityDefaultsAndOverrides(t *testing.T) {
	cfg := Default()
	if got := cfg.Severity("SEM003"); got != "warning" {
		t.Fatalf("got %q, want warning for MemoryMismatch's default", got)
	}
	if got := cfg.Severity("LSP001"); got != "hint" {
		t.Fatalf("got %q, want hint for UnknownPlayerNameUsed's default", got)
	}
	if got := cfg.Severity("SYM001"); got != "error" {
		t.Fatalf("got %q, want error for an un-overridden code", got)
	}

	cfg.SeverityOverrides = map[string]string{"SEM003": "error"}
	if got := cfg.Severity("SEM003"); got != "error" {
		t.Fatalf("got %q, want the override to win over the built-in default", got)
	}
}

func TestTrimAndHasSourceExt(t *testing.T) {
	if !HasSourceExt("game.card") || !HasSourceExt("game.cardlang") {
		t.Fatalf("expected both recognized extensions to match")
	}
	if HasSourceExt("game.txt") {
		t.Fatalf("expected an unrecognized extension not to match")
	}
	if got := TrimSourceExt("game.card"); got != "game" {
		t.Fatalf("got %q, want %q", got, "game")
	}
	if got := TrimSourceExt("game.txt"); got != "game.txt" {
		t.Fatalf("got %q, want input returned unchanged", got)
	}
}
