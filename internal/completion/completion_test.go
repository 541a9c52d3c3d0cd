package completion

import (
	"testing"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/lexer"
	"github.com/cardlang/analysis/internal/symbols"
)

func TestItemsReturnsKeywordsOnlyWithoutATable(t *testing.T) {
	items := Items(nil)
	if len(items) != len(lexer.Keywords) {
		t.Fatalf("got %d items, want %d (one per keyword)", len(items), len(lexer.Keywords))
	}
	for _, it := range items {
		if it.Kind != ItemKeyword {
			t.Fatalf("got kind %v for %q, want ItemKeyword", it.Kind, it.Label)
		}
	}
}

func TestItemsAppendsDeclaredSymbolsAfterKeywords(t *testing.T) {
	table := &symbols.Table{
		NameToKind: map[string]ast.GameType{
			"Alice": ast.Player,
			"Deck":  ast.Location,
		},
		KindToName: map[ast.GameType][]string{
			ast.Player:   {"Alice"},
			ast.Location: {"Deck"},
		},
	}

	items := Items(table)
	if len(items) != len(lexer.Keywords)+2 {
		t.Fatalf("got %d items, want %d keywords plus 2 symbols", len(items), len(lexer.Keywords))
	}

	var found map[string]Item = make(map[string]Item)
	for _, it := range items[len(lexer.Keywords):] {
		found[it.Label] = it
	}
	alice, ok := found["Alice"]
	if !ok || alice.Kind != ItemClass || alice.Detail != "player" {
		t.Fatalf("got %+v, want Alice as ItemClass with detail %q", alice, "player")
	}
	deck, ok := found["Deck"]
	if !ok || deck.Kind != ItemClass || deck.Detail != "location" {
		t.Fatalf("got %+v, want Deck as ItemClass with detail %q", deck, "location")
	}
}

func TestItemsDedupesNamesThatCollideWithKeywords(t *testing.T) {
	// A declared name that happens to collide with a keyword (case
	// differences aside, this only matters if the literal label matches)
	// should not be listed twice.
	table := &symbols.Table{
		NameToKind: map[string]ast.GameType{"score": ast.Memory},
		KindToName: map[ast.GameType][]string{ast.Memory: {"score"}},
	}
	items := Items(table)
	count := 0
	for _, it := range items {
		if it.Label == "score" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("got %d items labeled %q, want exactly 1", count, "score")
	}
}
