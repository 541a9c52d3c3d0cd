// Package walker is the entry point for driving an ast.Visitor over a
// parsed Game. The mechanical per-node traversal lives on the AST types
// themselves (ast.Node.Walk); this package just starts it, the same way
// the reference implementation's AstPass trait is driven by a single top
// level game.walk(&mut pass) call.
package walker

import "github.com/cardlang/analysis/internal/ast"

// Walk runs v over every node reachable from game, in source order.
func Walk(game *ast.Game, v ast.Visitor) {
	game.Walk(v)
}
