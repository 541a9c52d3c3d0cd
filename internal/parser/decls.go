package parser

import (
	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/lexer"
)

func (p *parser) parseSetUpRule() (ast.SetUpRule, bool) {
	switch {
	case p.curIsKeyword("player"):
		p.next()
		return ast.SetUpCreatePlayer{Names: p.identList()}, true
	case p.curIsKeyword("turnorder"):
		p.next()
		random := false
		p.expect(lexer.LPAREN, "'('")
		players := p.parsePlayerExprList()
		p.expect(lexer.RPAREN, "')'")
		if p.curIsKeyword("random") {
			p.next()
			random = true
		}
		collection := ast.PlayerCollectionLiteral{Players: players}
		if random {
			return ast.SetUpCreateTurnorderRandom{Players: collection}, true
		}
		return ast.SetUpCreateTurnorder{Players: collection}, true
	case p.curIsKeyword("team"):
		p.next()
		var teams []ast.TeamMember
		for {
			name := p.ident()
			p.expectKeyword("is")
			players := p.parsePlayerCollection()
			teams = append(teams, ast.TeamMember{Name: name, Players: players})
			if p.cur.Kind == lexer.COMMA {
				p.next()
				continue
			}
			break
		}
		return ast.SetUpCreateTeams{Teams: teams}, true
	case p.curIsKeyword("location"):
		p.next()
		names := p.identList()
		p.expectKeyword("on")
		owner := p.parseOwner()
		return ast.SetUpCreateLocation{Names: names, Owner: owner}, true
	case p.curIsKeyword("card"):
		p.next()
		p.expectKeyword("on")
		loc := p.ident()
		p.expect(lexer.COLON, "':'")
		types := p.parseTypes()
		return ast.SetUpCreateCardOnLocation{Location: loc, Types: types}, true
	case p.curIsKeyword("token"):
		p.next()
		count := p.parseIntExpr()
		token := p.ident()
		p.expectKeyword("on")
		loc := p.ident()
		return ast.SetUpCreateTokenOnLocation{Count: count, Token: token, Location: loc}, true
	case p.curIsKeyword("combo"):
		p.next()
		name := p.ident()
		p.expectKeyword("where")
		filter := p.parseFilterExpr()
		return ast.SetUpCreateCombo{Name: name, Filter: filter}, true
	case p.curIsKeyword("memory"):
		p.next()
		name := p.ident()
		owner := ast.Owner(ast.OwnerTable{})
		if p.curIsKeyword("owner") {
			p.next()
			owner = p.parseOwner()
		}
		if p.curIsKeyword("with") {
			p.next()
			mt := p.parseMemoryType()
			return ast.SetUpCreateMemoryWithMemoryType{Name: name, MemoryType: mt, Owner: owner}, true
		}
		return ast.SetUpCreateMemory{Name: name, Owner: owner}, true
	case p.curIsKeyword("precedence"):
		p.next()
		name := p.ident()
		p.expectKeyword("on")
		pairs := p.parsePrecedencePairs()
		return ast.SetUpCreatePrecedence{Name: name, Pairs: pairs}, true
	case p.curIsKeyword("points"), p.curIsKeyword("pointmap"):
		p.next()
		name := p.ident()
		p.expectKeyword("on")
		triples := p.parsePointMapTriples()
		return ast.SetUpCreatePointMap{Name: name, Triples: triples}, true
	default:
		p.unexpected("setup rule")
		return nil, false
	}
}

func (p *parser) parsePlayerExprList() []ast.PlayerExpr {
	var out []ast.PlayerExpr
	out = append(out, p.parsePlayerExpr())
	for p.cur.Kind == lexer.COMMA {
		p.next()
		out = append(out, p.parsePlayerExpr())
	}
	return out
}

// parseTypes parses one or more `Key(v1, v2, ...)` groups joined by
// `for`, e.g. `Rank(Ace, King) for Suite(Hearts, Spades)`.
func (p *parser) parseTypes() ast.Types {
	var entries []ast.TypeEntry
	entries = append(entries, p.parseTypeEntry())
	for p.curIsKeyword("for") {
		p.next()
		entries = append(entries, p.parseTypeEntry())
	}
	return ast.Types{Entries: entries}
}

func (p *parser) parseTypeEntry() ast.TypeEntry {
	key := p.ident()
	p.expect(lexer.LPAREN, "'('")
	values := p.identList()
	p.expect(lexer.RPAREN, "')'")
	return ast.TypeEntry{Key: key, Values: values}
}

// parsePrecedencePairs parses `Key(v1, v2, v3, ...)`: the key is
// repeated for each value so each pair can be built independently.
func (p *parser) parsePrecedencePairs() []ast.PrecedencePair {
	key := p.ident()
	p.expect(lexer.LPAREN, "'('")
	values := p.identList()
	p.expect(lexer.RPAREN, "')'")
	pairs := make([]ast.PrecedencePair, len(values))
	for i, v := range values {
		pairs[i] = ast.PrecedencePair{Key: key, Value: v}
	}
	return pairs
}

// parsePointMapTriples parses `Key(v1: n1, v2: n2, ...)`.
func (p *parser) parsePointMapTriples() []ast.PointMapTriple {
	key := p.ident()
	p.expect(lexer.LPAREN, "'('")
	var triples []ast.PointMapTriple
	for {
		value := p.ident()
		p.expect(lexer.COLON, "':'")
		points := p.parseIntExpr()
		triples = append(triples, ast.PointMapTriple{Key: key, Value: value, Points: points})
		if p.cur.Kind == lexer.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN, "')'")
	return triples
}

func (p *parser) parseMemoryType() ast.MemoryType {
	switch {
	case p.curIsKeyword("ints"):
		p.next()
		return ast.MemoryTypeInt{Int: p.parseIntExpr()}
	case p.cur.Kind == lexer.STRING:
		return ast.MemoryTypeString{Str: p.parseStringExpr()}
	default:
		return ast.MemoryTypeCardSet{Set: p.parseCardSet()}
	}
}
