package walker

import (
	"testing"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/parser"
)

type countingVisitor struct {
	enters, exits int
}

func (c *countingVisitor) Enter(ast.Node) { c.enters++ }
func (c *countingVisitor) Exit(ast.Node)  { c.exits++ }

func TestWalkVisitsEveryNodeWithBalancedEnterExit(t *testing.T) {
	game, errs := parser.Parse(`
player Alice, Bob
location Deck on table
stage Draw for current until end {
	move Deck face up to Deck of current
	end turn
}
`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	v := &countingVisitor{}
	Walk(game, v)

	if v.enters == 0 {
		t.Fatalf("expected at least one Enter call")
	}
	if v.enters != v.exits {
		t.Fatalf("got %d Enter calls and %d Exit calls, want them equal", v.enters, v.exits)
	}
}

type identCollector struct {
	names []string
}

func (c *identCollector) Enter(n ast.Node) {
	if id, ok := any(n).(ast.Ident); ok {
		c.names = append(c.names, id.Node)
	}
}
func (c *identCollector) Exit(ast.Node) {}

func TestWalkDoesNotVisitIdentAsANode(t *testing.T) {
	// ast.Ident is a leaf value embedded in other nodes, not walked as a
	// node in its own right; the visitor only ever sees the owning node
	// (e.g. SetUpCreatePlayer) and reads the identifier off its fields.
	game, errs := parser.Parse(`player Alice`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	c := &identCollector{}
	Walk(game, c)
	if len(c.names) != 0 {
		t.Fatalf("got %v, want Walk to never call Enter with a bare ast.Ident", c.names)
	}
}
