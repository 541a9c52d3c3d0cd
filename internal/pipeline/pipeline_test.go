package pipeline

import "testing"

func TestStandardRunsParseThenValidateOnWellFormedSource(t *testing.T) {
	ctx := &Context{Source: `
player Alice, Bob
location Deck on table
stage Draw for current until end {
	move Deck face up to Deck of current
	end turn
}
`}
	out := Standard().Run(ctx)
	if out.Result.Game == nil {
		t.Fatalf("expected ParseStage to populate Result.Game")
	}
	if out.Result.Table == nil {
		t.Fatalf("expected ValidateStage to populate Result.Table")
	}
	if out.Result.Ir == nil {
		t.Fatalf("expected ValidateStage to populate Result.Ir")
	}
	if len(out.Errs) != 0 {
		t.Fatalf("got errors %+v, want none", out.Errs)
	}
}

func TestStandardSkipsValidateStageWhenParseProducesNoGame(t *testing.T) {
	// parser.Parse always recovers a *ast.Game even from malformed input
	// (see internal/parser's recover-and-continue discipline), so the
	// only way ValidateStage sees a nil game is a stage that sets one
	// directly; this pins down that ValidateStage's own nil guard holds.
	ctx := &Context{}
	out := ValidateStage{}.Process(ctx)
	if out.Result.Table != nil || out.Result.Ir != nil {
		t.Fatalf("got %+v, want ValidateStage to no-op on a nil Game", out.Result)
	}
}

func TestStandardCollectsSymbolDiagnosticsFromValidateStage(t *testing.T) {
	ctx := &Context{Source: `
move Hand face up to Discard
`}
	out := Standard().Run(ctx)
	if len(out.Errs) == 0 {
		t.Fatalf("expected symbol-resolution diagnostics for undeclared Hand/Discard")
	}
	if out.Result.Table != nil {
		t.Fatalf("got Table %+v, want nil once symbol resolution failed", out.Result.Table)
	}
}
