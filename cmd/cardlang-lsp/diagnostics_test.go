package main

import (
	"testing"

	"github.com/cardlang/analysis/internal/config"
	"github.com/cardlang/analysis/internal/diagnostics"
)

func TestConvertDiagnosticsUsesConfiguredSeverity(t *testing.T) {
	cfg := config.Default()
	cfg.SeverityOverrides = map[string]string{"SYM001": "hint"}
	s := &Server{cfg: cfg}

	out := s.convertDiagnostics([]*diagnostics.Error{
		{Code: diagnostics.CodeNotInitialized, Span: diagnostics.Span{Line: 2, Column: 3}, Message: "x is used but never declared"},
		{Code: diagnostics.CodeMemoryMismatch, Span: diagnostics.Span{Line: 1, Column: 1}, Message: "shape mismatch"},
	})
	if len(out) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(out))
	}
	if out[0].Severity != SeverityHint {
		t.Fatalf("got severity %v, want SeverityHint for the overridden code", out[0].Severity)
	}
	if out[1].Severity != SeverityWarning {
		t.Fatalf("got severity %v, want SeverityWarning for MemoryMismatch's built-in default", out[1].Severity)
	}
	if out[0].Range.Start.Line != 1 || out[0].Range.Start.Character != 2 {
		t.Fatalf("got range %+v, want a 0-indexed line 1 col 2", out[0].Range)
	}
}

func TestSeverityForUnknownStringFallsBackToError(t *testing.T) {
	if got := severityFor("not-a-real-severity"); got != SeverityError {
		t.Fatalf("got %v, want SeverityError", got)
	}
}
