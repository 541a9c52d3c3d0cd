package symbols

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

func TestResolveBuildsTableForDeclaredNames(t *testing.T) {
	game := mustParse(t, `
player Alice, Bob
location Deck, Hand on table
`)
	table, errs := Resolve(game)
	if len(errs) != 0 {
		t.Fatalf("got errors %+v, want none", errs)
	}
	if table.NameToKind["Alice"] != ast.Player || table.NameToKind["Bob"] != ast.Player {
		t.Fatalf("got %+v, want Alice and Bob resolved as Player", table.NameToKind)
	}
	if table.NameToKind["Deck"] != ast.Location || table.NameToKind["Hand"] != ast.Location {
		t.Fatalf("got %+v, want Deck and Hand resolved as Location", table.NameToKind)
	}
	names := table.KindToName[ast.Player]
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Fatalf("got KindToName[Player] = %v, want [Alice Bob] (sorted)", names)
	}
}

func TestResolveReportsUseOfUndeclaredName(t *testing.T) {
	game := mustParse(t, `
player Alice
move Hand face up to Hand
`)
	table, errs := Resolve(game)
	if table != nil {
		t.Fatalf("got table %+v, want nil once resolution failed", table)
	}
	found := false
	for _, e := range errs {
		if e.Kind == NotInitialized && e.Var.Name == "Hand" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got errors %+v, want a NotInitialized for Hand", errs)
	}
}

func TestResolveReportsNameDeclaredWithConflictingKinds(t *testing.T) {
	// "Deck" is declared once as a player and once as a location: the same
	// name can't resolve to two different GameTypes.
	game := mustParse(t, `
player Deck
location Deck on table
`)
	table, errs := Resolve(game)
	if table != nil {
		t.Fatalf("got table %+v, want nil once resolution failed", table)
	}
	found := false
	for _, e := range errs {
		if e.Kind == DefinedMultipleTimes && e.Var.Name == "Deck" {
			found = true
		}
	}
	if !found {
		t.Fatalf("got errors %+v, want a DefinedMultipleTimes for Deck", errs)
	}
}
