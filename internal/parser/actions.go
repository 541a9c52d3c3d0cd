package parser

import (
	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/lexer"
)

func (p *parser) parseAction() (ast.ActionRule, bool) {
	switch {
	case p.curIsKeyword("flip"):
		p.next()
		set := p.parseCardSet()
		status := p.parseStatus()
		return ast.ActionFlip{Set: set, Status: status}, true
	case p.curIsKeyword("shuffle"):
		p.next()
		return ast.ActionShuffle{Set: p.parseCardSet()}, true
	case p.curIsKeyword("set"):
		p.next()
		name := p.ident()
		p.expectKeyword("out")
		p.expectKeyword("of")
		return p.parseOutOfTail(ast.PlayersPlayer{Player: ast.PlayerExprLiteral{Name: name}})
	case p.curIsKeyword("reset"):
		p.next()
		return ast.ActionResetMemory{Name: p.ident()}, true
	case p.curIsKeyword("cycle"):
		p.next()
		p.expectKeyword("to")
		return ast.ActionCycle{Player: p.parsePlayerExpr()}, true
	case p.curIsKeyword("bid"):
		p.next()
		if p.cur.Kind == lexer.IDENT {
			name := p.ident()
			return ast.ActionBidMemory{Name: name, Quantity: p.parseQuantity()}, true
		}
		return ast.ActionBid{Quantity: p.parseQuantity()}, true
	case p.curIsKeyword("end"):
		p.next()
		return p.parseEndAction()
	case p.curIsKeyword("demand"):
		p.next()
		p.expectKeyword("position")
		pos := p.parseCardPosition()
		return ast.ActionDemand{DemandType: ast.DemandTypeCardPosition{Pos: pos}}, true
	case p.curIsKeyword("move"):
		p.next()
		move, ok := p.parseMoveCardSet()
		if !ok {
			return nil, false
		}
		return ast.ActionMove{Move: ast.MoveTypeClassic{Move: ast.ClassicMove{Move: move}}}, true
	case p.curIsKeyword("deal"):
		p.next()
		move, ok := p.parseMoveCardSet()
		if !ok {
			return nil, false
		}
		return ast.ActionMove{Move: ast.MoveTypeDeal{Move: ast.DealMove{Move: move}}}, true
	case p.curIsKeyword("exchange"):
		p.next()
		move, ok := p.parseMoveCardSet()
		if !ok {
			return nil, false
		}
		return ast.ActionMove{Move: ast.MoveTypeExchange{Move: ast.ExchangeMove{Move: move}}}, true
	case p.curIsKeyword("place"):
		p.next()
		return p.parseTokenPlace()
	default:
		players := p.parsePlayers()
		p.expectKeyword("out")
		p.expectKeyword("of")
		return p.parseOutOfTail(players)
	}
}

func (p *parser) parseOutOfTail(players ast.Players) (ast.ActionRule, bool) {
	switch {
	case p.curIsKeyword("stage"):
		p.next()
		return ast.ActionPlayerOutOfStage{Players: players}, true
	case p.curIsKeyword("game"):
		p.next()
		if p.curIsKeyword("fail") {
			p.next()
			return ast.ActionPlayerOutOfGameFail{Players: players}, true
		}
		p.expectKeyword("successful")
		return ast.ActionPlayerOutOfGameSucc{Players: players}, true
	default:
		p.unexpected("'out of' target")
		return nil, false
	}
}

func (p *parser) parseEndAction() (ast.ActionRule, bool) {
	switch {
	case p.curIsKeyword("turn"):
		p.next()
		return ast.ActionEnd{EndType: ast.EndTypeTurn{}}, true
	case p.curIsKeyword("stage"):
		p.next()
		return ast.ActionEnd{EndType: ast.EndTypeStage{}}, true
	case p.curIsKeyword("game"):
		p.next()
		p.expectKeyword("with")
		p.expectKeyword("winner")
		winners := p.parsePlayers()
		return ast.ActionEnd{EndType: ast.EndTypeGameWithWinner{Winners: winners}}, true
	default:
		p.unexpected("end target")
		return nil, false
	}
}

// parseMoveCardSet parses `[quantity] <cardset> <status> to <cardset>`,
// shared by move/deal/exchange.
func (p *parser) parseMoveCardSet() (ast.MoveCardSet, bool) {
	var quantity ast.Quantity
	if p.cur.Kind == lexer.INT || p.curIsKeyword("all") || p.curIsKeyword("any") {
		quantity = p.parseQuantity()
	}
	from := p.parseCardSet()
	status := p.parseStatus()
	p.expectKeyword("to")
	to := p.parseCardSet()
	if quantity != nil {
		return ast.MoveCardSetQuantity{Quantity: quantity, From: from, Status: status, To: to}, true
	}
	return ast.MoveCardSetPlain{From: from, Status: status, To: to}, true
}

func (p *parser) parseTokenLocExpr() ast.TokenLocExpr {
	groupable := p.parseGroupable()
	if p.curIsKeyword("of") {
		p.next()
		players := p.parsePlayers()
		return ast.TokenLocExprGroupablePlayers{Groupable: groupable, Players: players}
	}
	return ast.TokenLocExprGroupable{Groupable: groupable}
}

func (p *parser) parseTokenPlace() (ast.ActionRule, bool) {
	var quantity ast.Quantity
	if p.cur.Kind == lexer.INT || p.curIsKeyword("all") || p.curIsKeyword("any") {
		quantity = p.parseQuantity()
	}
	token := p.ident()
	p.expectKeyword("from")
	from := p.parseTokenLocExpr()
	p.expectKeyword("to")
	to := p.parseTokenLocExpr()
	if quantity != nil {
		return ast.ActionMove{Move: ast.MoveTypePlace{Move: ast.TokenMovePlaceQuantity{
			Quantity: quantity, Token: token, From: from, To: to,
		}}}, true
	}
	return ast.ActionMove{Move: ast.MoveTypePlace{Move: ast.TokenMovePlace{
		Token: token, From: from, To: to,
	}}}, true
}

func (p *parser) parseScoring() (ast.ScoringRule, bool) {
	p.expectKeyword("score")
	score := p.parseIntExpr()
	p.expectKeyword("to")
	name := p.ident()
	p.expectKeyword("of")
	players := p.parsePlayers()
	return ast.ScoringScore{Score: ast.ScoreRuleScoreMemory{Score: score, Name: name, Players: players}}, true
}

func (p *parser) parseWinnerScoring() (ast.ScoringRule, bool) {
	p.expectKeyword("winner")
	p.expectKeyword("is")
	switch {
	case p.curIsKeyword("highest"):
		p.next()
		name := p.ident()
		return ast.ScoringWinner{Winner: ast.WinnerRuleWinnerWith{
			Extrema: ast.ExtremaMax, WinnerType: ast.WinnerTypeMemory{Name: name},
		}}, true
	case p.curIsKeyword("lowest"):
		p.next()
		name := p.ident()
		return ast.ScoringWinner{Winner: ast.WinnerRuleWinnerWith{
			Extrema: ast.ExtremaMin, WinnerType: ast.WinnerTypeMemory{Name: name},
		}}, true
	default:
		players := p.parsePlayers()
		return ast.ScoringWinner{Winner: ast.WinnerRuleWinner{Players: players}}, true
	}
}
