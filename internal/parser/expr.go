package parser

import (
	"strconv"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/lexer"
)

func (p *parser) intLiteral() ast.IntExpr {
	tok := p.cur
	n, _ := strconv.Atoi(tok.Lexeme)
	p.expect(lexer.INT, "integer")
	return ast.IntExprLiteral{Value: n}
}

// parseIntExpr covers integer literals and the two aggregate forms the
// fixtures use: `sum of <cardset> using <key>` and `size of <cardset>`.
func (p *parser) parseIntExpr() ast.IntExpr {
	switch {
	case p.cur.Kind == lexer.INT:
		return p.intLiteral()
	case p.curIsKeyword("sum"):
		p.next()
		p.expectKeyword("of")
		set := p.parseCardSet()
		p.expectKeyword("using")
		key := p.ident()
		return ast.IntExprAggregate{Aggregate: ast.AggregateIntSumOfCardSet{Set: set, Key: key}}
	case p.curIsKeyword("size"):
		p.next()
		p.expectKeyword("of")
		set := p.parseCardSet()
		return ast.IntExprAggregate{Aggregate: ast.AggregateIntSizeOf{
			Collection: ast.CollectionCardSet{Set: set},
		}}
	default:
		p.unexpected("integer expression")
		return ast.IntExprLiteral{Value: 0}
	}
}

func (p *parser) parseIntCompare() ast.IntCompare {
	switch p.cur.Kind {
	case lexer.EQ:
		p.next()
		return ast.IntCmpEq
	case lexer.NEQ:
		p.next()
		return ast.IntCmpNeq
	case lexer.GT:
		p.next()
		return ast.IntCmpGt
	case lexer.LT:
		p.next()
		return ast.IntCmpLt
	case lexer.GE:
		p.next()
		return ast.IntCmpGe
	case lexer.LE:
		p.next()
		return ast.IntCmpLe
	default:
		p.unexpected("comparison operator")
		return ast.IntCmpEq
	}
}

// parseBoolExpr parses a disjunction of conjunctions of bool terms:
// `a and b or c`, left-associative, `and` binding tighter than `or`.
func (p *parser) parseBoolExpr() ast.BoolExpr {
	left := p.parseBoolAnd()
	for p.curIsKeyword("or") {
		p.next()
		right := p.parseBoolAnd()
		left = ast.BoolExprBinary{Left: left, Op: ast.BoolOr, Right: right}
	}
	return left
}

func (p *parser) parseBoolAnd() ast.BoolExpr {
	left := p.parseBoolTerm()
	for p.curIsKeyword("and") {
		p.next()
		right := p.parseBoolTerm()
		left = ast.BoolExprBinary{Left: left, Op: ast.BoolAnd, Right: right}
	}
	return left
}

func (p *parser) parseBoolTerm() ast.BoolExpr {
	switch {
	case p.curIsKeyword("not"):
		p.next()
		operand := p.parseBoolTerm()
		return ast.BoolExprUnary{Op: ast.UnaryNot, Operand: operand}
	case p.cur.Kind == lexer.LPAREN:
		p.next()
		inner := p.parseBoolExpr()
		p.expect(lexer.RPAREN, "')'")
		return inner
	default:
		return p.parseBoolAtom()
	}
}

// parseBoolAtom parses the leaf comparisons the fixtures use: integer
// comparisons and `<location> is empty`.
func (p *parser) parseBoolAtom() ast.BoolExpr {
	if p.cur.Kind == lexer.IDENT && p.peekIsKeyword("is") {
		set := p.parseCardSet()
		p.expectKeyword("is")
		p.expectKeyword("empty")
		return ast.BoolExprAggregate{Aggregate: ast.AggregateBoolCardSetEmpty{Set: set}}
	}

	left := p.parseIntExpr()
	op := p.parseIntCompare()
	right := p.parseIntExpr()
	return ast.BoolExprAggregate{Aggregate: ast.AggregateBoolCompare{
		Compare: ast.CompareBoolInt{Left: left, Op: op, Right: right},
	}}
}

// parseFilterExpr parses a combo body: a disjunction/conjunction of
// aggregate filters, e.g. `(size >= 3 and Suite same) and Rank adjacent
// using RankOrder`.
func (p *parser) parseFilterExpr() ast.FilterExpr {
	left := p.parseFilterTerm()
	for p.curIsKeyword("and") || p.curIsKeyword("or") {
		op := ast.FilterAnd
		if p.cur.Lexeme == "or" {
			op = ast.FilterOr
		}
		p.next()
		right := p.parseFilterTerm()
		left = ast.FilterExprBinary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *parser) parseFilterTerm() ast.FilterExpr {
	if p.cur.Kind == lexer.LPAREN {
		p.next()
		inner := p.parseFilterExpr()
		p.expect(lexer.RPAREN, "')'")
		return inner
	}
	if p.curIsKeyword("not") {
		p.next()
		combo := p.ident()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterNotCombo{Combo: combo}}
	}
	if p.curIsKeyword("size") {
		p.next()
		op := p.parseIntCompare()
		n := p.parseIntExpr()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterSize{Op: op, Count: n}}
	}
	// Remaining forms all start with an identifier: `Key same`, `Key
	// distinct`, `Key adjacent/higher/lower using Precedence`, or a bare
	// combo reference.
	key := p.ident()
	switch {
	case p.curIsKeyword("same"):
		p.next()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterSame{Key: key}}
	case p.curIsKeyword("distinct"):
		p.next()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterDistinct{Key: key}}
	case p.curIsKeyword("adjacent"):
		p.next()
		p.expectKeyword("using")
		prec := p.ident()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterAdjacent{Key: key, Precedence: prec}}
	case p.curIsKeyword("higher"):
		p.next()
		p.expectKeyword("using")
		prec := p.ident()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterHigher{Key: key, Precedence: prec}}
	case p.curIsKeyword("lower"):
		p.next()
		p.expectKeyword("using")
		prec := p.ident()
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterLower{Key: key, Precedence: prec}}
	default:
		return ast.FilterExprAggregate{Aggregate: ast.AggregateFilterCombo{Combo: key}}
	}
}

// parsePlayerExpr parses a runtime reference or a named player.
func (p *parser) parsePlayerExpr() ast.PlayerExpr {
	switch {
	case p.curIsKeyword("current"):
		p.next()
		return ast.PlayerExprRuntime{Runtime: ast.RuntimeCurrent}
	case p.curIsKeyword("next"):
		p.next()
		return ast.PlayerExprRuntime{Runtime: ast.RuntimeNext}
	case p.curIsKeyword("previous"):
		p.next()
		return ast.PlayerExprRuntime{Runtime: ast.RuntimePrevious}
	case p.curIsKeyword("competitor"):
		p.next()
		return ast.PlayerExprRuntime{Runtime: ast.RuntimeCompetitor}
	case p.curIsKeyword("owner"):
		p.next()
		p.expectKeyword("of")
		pos := p.parseCardPosition()
		return ast.PlayerExprAggregate{Aggregate: ast.AggregatePlayerOwnerOfCardPosition{Position: pos}}
	default:
		return ast.PlayerExprLiteral{Name: p.ident()}
	}
}

func (p *parser) parsePlayerCollection() ast.PlayerCollection {
	switch {
	case p.curIsKeyword("all"):
		p.next()
		return ast.PlayerCollectionAggregate{Aggregate: ast.AggregatePlayerCollectionQuantifier{Quantifier: ast.QuantifierAll}}
	case p.curIsKeyword("any"):
		p.next()
		return ast.PlayerCollectionAggregate{Aggregate: ast.AggregatePlayerCollectionQuantifier{Quantifier: ast.QuantifierAny}}
	case p.curIsKeyword("playersout"):
		p.next()
		return ast.PlayerCollectionRuntime{Runtime: ast.RuntimePlayersOut}
	case p.curIsKeyword("playersin"):
		p.next()
		return ast.PlayerCollectionRuntime{Runtime: ast.RuntimePlayersIn}
	case p.curIsKeyword("others"):
		p.next()
		return ast.PlayerCollectionRuntime{Runtime: ast.RuntimeOthers}
	case p.cur.Kind == lexer.LPAREN:
		p.next()
		var players []ast.PlayerExpr
		players = append(players, p.parsePlayerExpr())
		for p.cur.Kind == lexer.COMMA {
			p.next()
			players = append(players, p.parsePlayerExpr())
		}
		p.expect(lexer.RPAREN, "')'")
		return ast.PlayerCollectionLiteral{Players: players}
	default:
		p.unexpected("player collection")
		return ast.PlayerCollectionLiteral{}
	}
}

// parsePlayers parses the Players union: a collection keyword/paren
// form, or a single player expression.
func (p *parser) parsePlayers() ast.Players {
	switch {
	case p.curIsKeyword("all"), p.curIsKeyword("any"), p.curIsKeyword("playersout"),
		p.curIsKeyword("playersin"), p.curIsKeyword("others"), p.cur.Kind == lexer.LPAREN:
		return ast.PlayersCollection{Collection: p.parsePlayerCollection()}
	default:
		return ast.PlayersPlayer{Player: p.parsePlayerExpr()}
	}
}

func (p *parser) parseOwner() ast.Owner {
	switch {
	case p.curIsKeyword("all"):
		p.next()
		return ast.OwnerPlayerCollection{Collection: ast.PlayerCollectionAggregate{
			Aggregate: ast.AggregatePlayerCollectionQuantifier{Quantifier: ast.QuantifierAll},
		}}
	case p.curIsKeyword("table"):
		p.next()
		return ast.OwnerTable{}
	default:
		return ast.OwnerPlayer{Player: p.parsePlayerExpr()}
	}
}

func (p *parser) parseCardPosition() ast.CardPosition {
	loc := p.ident()
	switch {
	case p.curIsKeyword("top"):
		p.next()
		return ast.CardPositionQuery{Query: ast.QueryCardPositionTop{Location: loc}}
	case p.curIsKeyword("bottom"):
		p.next()
		return ast.CardPositionQuery{Query: ast.QueryCardPositionBottom{Location: loc}}
	case p.curIsKeyword("at"):
		p.next()
		idx := p.parseIntExpr()
		return ast.CardPositionQuery{Query: ast.QueryCardPositionAt{Location: loc, Index: idx}}
	default:
		return ast.CardPositionQuery{Query: ast.QueryCardPositionTop{Location: loc}}
	}
}

// parseCardSet parses a location (or location collection), optionally
// filtered by `where`/`in <combo>`/`not in <combo>`, optionally scoped
// to an owner with `of`.
func (p *parser) parseCardSet() ast.CardSet {
	group := p.parseGroup()
	if p.curIsKeyword("of") {
		p.next()
		owner := p.parseOwner()
		return ast.CardSetGroupOwner{Group: group, Owner: owner}
	}
	return ast.CardSetGroup{Group: group}
}

func (p *parser) parseGroup() ast.Group {
	if p.curIsKeyword("not") && p.peek.Kind == lexer.IDENT {
		p.next()
		combo := p.ident()
		p.expectKeyword("in")
		groupable := p.parseGroupable()
		return ast.GroupNotCombo{Combo: combo, Groupable: groupable}
	}

	name := p.ident()
	if p.curIsKeyword("in") {
		p.next()
		groupable := p.parseGroupable()
		return ast.GroupCombo{Combo: name, Groupable: groupable}
	}
	groupable := ast.GroupableLocation{Name: name}
	if p.curIsKeyword("where") {
		p.next()
		filter := p.parseFilterExpr()
		return ast.GroupWhere{Groupable: groupable, Filter: filter}
	}
	return ast.GroupGroupable{Groupable: groupable}
}

func (p *parser) parseGroupable() ast.Groupable {
	return ast.GroupableLocation{Name: p.ident()}
}

func (p *parser) parseStatus() ast.Status {
	switch {
	case p.curIsKeyword("face"):
		p.next()
		if p.curIsKeyword("up") {
			p.next()
			return ast.StatusFaceUp
		}
		p.expectKeyword("down")
		return ast.StatusFaceDown
	case p.curIsKeyword("private"):
		p.next()
		return ast.StatusPrivate
	default:
		p.unexpected("card status")
		return ast.StatusFaceUp
	}
}

// parseQuantity parses a bare integer amount or an all/any quantifier,
// used by bid actions and move counts.
func (p *parser) parseQuantity() ast.Quantity {
	switch {
	case p.curIsKeyword("all"):
		p.next()
		return ast.QuantityQuantifier{Value: ast.QuantifierAll}
	case p.curIsKeyword("any"):
		p.next()
		return ast.QuantityQuantifier{Value: ast.QuantifierAny}
	default:
		return ast.QuantityInt{Int: p.parseIntExpr()}
	}
}

func (p *parser) parseStringExpr() ast.StringExpr {
	tok := p.cur
	switch {
	case p.cur.Kind == lexer.STRING:
		p.next()
		return ast.StringExprLiteral{Value: ast.Ident{Node: tok.Lexeme, Span: spanOf(tok)}}
	default:
		return ast.StringExprLiteral{Value: p.ident()}
	}
}
