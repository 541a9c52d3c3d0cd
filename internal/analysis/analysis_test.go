package analysis

import "testing"

func TestValidateDocumentStopsAtFirstFailingStage(t *testing.T) {
	// "Hand" is only ever used, never declared with any setup rule, so
	// symbol resolution fails; the semantic pass should never run.
	result := ValidateDocument(`
move Hand face up to Discard
`)
	if len(result.Diagnostics) == 0 {
		t.Fatalf("expected symbol resolution diagnostics")
	}
	if result.Table != nil {
		t.Fatalf("expected no symbol table once resolution failed")
	}
}

func TestValidateDocumentSucceedsOnWellFormedProgram(t *testing.T) {
	result := ValidateDocument(`
player Alice, Bob
location Hand, Discard on table
stage Play for current until end {
	move Hand face up to Discard
	end turn
}
`)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("got diagnostics %+v, want none", result.Diagnostics)
	}
	if result.Table == nil {
		t.Fatalf("expected a symbol table")
	}
}

func TestValidateGameAlwaysProducesIrWithFlowDiagnostics(t *testing.T) {
	game, errs := ParseDocument(`
player Alice
location Hand on table
end turn
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	result := ValidateGame(game)
	if result.Ir == nil {
		t.Fatalf("expected ValidateGame to always produce an Ir")
	}
	found := false
	for _, e := range result.Diagnostics {
		if e.Code == "FLOW002" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got diagnostics %+v, want a FLOW002 (end turn outside any stage)", result.Diagnostics)
	}
}
