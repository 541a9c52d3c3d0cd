package main

import (
	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/diagnostics"
	"github.com/cardlang/analysis/internal/walker"
)

// playerNameCollector gathers every name a CreatePlayer setup rule
// declares and every PlayerExprLiteral reached from inside a turnorder
// collection, so unknownPlayerNames can flag a turnorder entry that
// names a player the game never actually created.
type playerNameCollector struct {
	created     map[string]bool
	turnorderAt int
	uses        []ast.Ident
}

func (c *playerNameCollector) Enter(n ast.Node) {
	switch node := n.(type) {
	case ast.SetUpCreatePlayer:
		for _, name := range node.Names {
			c.created[name.Node] = true
		}
	case ast.SetUpCreateTurnorder:
		c.turnorderAt++
	case ast.SetUpCreateTurnorderRandom:
		c.turnorderAt++
	case ast.PlayerExprLiteral:
		if c.turnorderAt > 0 {
			c.uses = append(c.uses, node.Name)
		}
	}
}

func (c *playerNameCollector) Exit(n ast.Node) {
	switch n.(type) {
	case ast.SetUpCreateTurnorder:
		c.turnorderAt--
	case ast.SetUpCreateTurnorderRandom:
		c.turnorderAt--
	}
}

// unknownPlayerNames flags a name listed in a turnorder collection that
// no CreatePlayer setup rule ever declared. It is a supplement to the
// core symbol resolver, not a replacement: a name resolver-undeclared
// entirely already fails with CodeNotInitialized; this check also
// catches a turnorder entry that the resolver accepts because it is
// declared with some other kind (a location, say) without ever having
// been listed in a player statement.
func unknownPlayerNames(game *ast.Game) []*diagnostics.Error {
	if game == nil {
		return nil
	}
	c := &playerNameCollector{created: make(map[string]bool)}
	walker.Walk(game, c)

	var out []*diagnostics.Error
	for _, use := range c.uses {
		if c.created[use.Node] {
			continue
		}
		out = append(out, diagnostics.New(diagnostics.CodeUnknownPlayerName, diagnostics.Span{
			Line: use.Span.Line, Column: use.Span.Column,
		}, "%q is listed in a turnorder but was never created with a player statement", use.Node))
	}
	return out
}
