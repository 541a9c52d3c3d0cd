// Package completion turns a resolved symbol table into editor
// completion items, the out-of-core counterpart to internal/symbols:
// it never affects diagnostics, only what an editor offers the author
// while they type.
package completion

import (
	"sort"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/lexer"
	"github.com/cardlang/analysis/internal/symbols"
)

// ItemKind mirrors the handful of LSP CompletionItemKind values this
// package's callers care about, without depending on any particular
// wire protocol package.
type ItemKind int

const (
	ItemKeyword ItemKind = iota
	ItemVariable
	ItemClass
)

// Item is one completion candidate.
type Item struct {
	Label  string
	Kind   ItemKind
	Detail string
}

// gameTypeLabel names the declared kind of a symbol for an item's
// Detail field.
func gameTypeLabel(t ast.GameType) string {
	switch t {
	case ast.Player:
		return "player"
	case ast.Team:
		return "team"
	case ast.Location:
		return "location"
	case ast.Token:
		return "token"
	case ast.Combo:
		return "combo"
	case ast.Memory:
		return "memory"
	case ast.Precedence:
		return "precedence"
	case ast.PointMap:
		return "pointmap"
	case ast.Stage:
		return "stage"
	case ast.Key:
		return "key"
	case ast.Value:
		return "value"
	default:
		return ""
	}
}

// Items returns every keyword and every resolved symbol name as a
// completion candidate. Keywords always come first since they are
// static and cheap to rank; declared names follow, sorted by label.
func Items(table *symbols.Table) []Item {
	var items []Item
	seen := make(map[string]bool)

	keywords := make([]string, 0, len(lexer.Keywords))
	for kw := range lexer.Keywords {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	for _, kw := range keywords {
		items = append(items, Item{Label: kw, Kind: ItemKeyword})
		seen[kw] = true
	}

	if table == nil {
		return items
	}

	names := make([]string, 0, len(table.NameToKind))
	for name := range table.NameToKind {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if seen[name] {
			continue
		}
		kind := table.NameToKind[name]
		items = append(items, Item{
			Label:  name,
			Kind:   ItemClass,
			Detail: gameTypeLabel(kind),
		})
		seen[name] = true
	}

	return items
}
