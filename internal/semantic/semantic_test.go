package semantic

import (
	"testing"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Game {
	t.Helper()
	game, errs := parser.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return game
}

func TestValidateReportsKeyNotFoundForUndeclaredPrecedence(t *testing.T) {
	game := mustParse(t, `
combo Pair where Rank adjacent using Seq
`)
	errs := Validate(game)
	found := false
	for _, e := range errs {
		if e.Kind == KeyNotFoundForType && e.Key.Name == "Rank" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got errors %+v, want a KeyNotFoundForType for Rank (no precedence named Seq declared)", errs)
	}
}

func TestValidateReportsNoCorrToTypeWhenKeysDisagree(t *testing.T) {
	game := mustParse(t, `
precedence Seq on Suit(Hearts, Spades)
combo Pair where Rank adjacent using Seq
`)
	errs := Validate(game)
	found := false
	for _, e := range errs {
		if e.Kind == NoCorrToType && e.Key.Name == "Rank" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got errors %+v, want a NoCorrToType (Seq is declared keyed on Suit, used keyed on Rank)", errs)
	}
}

func TestValidateAcceptsMatchingPrecedenceKey(t *testing.T) {
	game := mustParse(t, `
card on Deck: Rank(Ace, King, Queen)
precedence Seq on Rank(Ace, King, Queen)
combo Pair where Rank adjacent using Seq
`)
	errs := Validate(game)
	if len(errs) != 0 {
		t.Fatalf("got errors %+v, want none", errs)
	}
}

func TestValidateReportsMemoryShapeMismatch(t *testing.T) {
	game := mustParse(t, `
memory Pts with "pending"
score size of Hand of current to Pts of all
`)
	errs := Validate(game)
	found := false
	for _, e := range errs {
		if e.Kind == MemoryMismatch && e.Key.Name == "Pts" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got errors %+v, want a MemoryMismatch (Pts declared as string, scored into as int)", errs)
	}
}

func TestValidateAcceptsMatchingMemoryShape(t *testing.T) {
	game := mustParse(t, `
memory Pts with ints 0
score size of Hand of current to Pts of all
`)
	errs := Validate(game)
	if len(errs) != 0 {
		t.Fatalf("got errors %+v, want none", errs)
	}
}
