package main

import (
	"github.com/cardlang/analysis/internal/diagnostics"
	"github.com/cardlang/analysis/internal/pipeline"
)

func (s *Server) publishDiagnostics(uri string, ctx *pipeline.Context) error {
	return s.sendNotification(NotificationMessage{
		Jsonrpc: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: s.convertDiagnostics(ctx.Errs),
		},
	})
}

func (s *Server) convertDiagnostics(errs []*diagnostics.Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		line := e.Span.Line - 1
		if line < 0 {
			line = 0
		}
		col := e.Span.Column - 1
		if col < 0 {
			col = 0
		}
		out = append(out, Diagnostic{
			Range: Range{
				Start: Position{Line: line, Character: col},
				End:   Position{Line: line, Character: col + 1},
			},
			Severity: severityFor(s.cfg.Severity(string(e.Code))),
			Code:     string(e.Code),
			Message:  e.Message,
			Source:   "cardlang",
		})
	}
	return out
}

// severityFor maps the config package's severity strings onto the LSP's
// own numeric DiagnosticSeverity; an unrecognized string falls back to
// Error so a typo in cardlang.yaml never silently swallows a diagnostic.
func severityFor(sev string) DiagnosticSeverity {
	switch sev {
	case "warning":
		return SeverityWarning
	case "information":
		return SeverityInformation
	case "hint":
		return SeverityHint
	default:
		return SeverityError
	}
}
