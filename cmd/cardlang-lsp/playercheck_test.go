package main

import (
	"testing"

	"github.com/cardlang/analysis/internal/diagnostics"
	"github.com/cardlang/analysis/internal/parser"
)

func TestUnknownPlayerNamesFlagsTurnorderEntryMissingFromCreatePlayer(t *testing.T) {
	game, errs := parser.Parse(`
player Alice, Bob
turnorder(Alice, Carol)
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	got := unknownPlayerNames(game)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(got), got)
	}
	if got[0].Code != diagnostics.CodeUnknownPlayerName {
		t.Fatalf("got code %v, want %v", got[0].Code, diagnostics.CodeUnknownPlayerName)
	}
}

func TestUnknownPlayerNamesAcceptsFullyDeclaredTurnorder(t *testing.T) {
	game, errs := parser.Parse(`
player Alice, Bob
turnorder(Alice, Bob)
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if got := unknownPlayerNames(game); len(got) != 0 {
		t.Fatalf("got %+v, want no diagnostics", got)
	}
}

func TestUnknownPlayerNamesIgnoresPlayerExprOutsideTurnorder(t *testing.T) {
	game, errs := parser.Parse(`
player Alice
score size of Hand of Alice to Pts of all
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if got := unknownPlayerNames(game); len(got) != 0 {
		t.Fatalf("got %+v, want a player literal outside turnorder to be ignored", got)
	}
}
