// Package lexer turns cardlang source text into a flat token stream.
// The surface syntax here is reconstructed from the distillation's test
// fixtures (no .pest grammar file was part of the retrieved sources);
// see DESIGN.md for the scope this implies.
package lexer

// Kind identifies a token's lexical class.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	IDENT  // Capitalized or lowercase identifier, not a reserved word
	INT    // integer literal
	STRING // "quoted string"

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	COLON
	SEMI

	EQ  // ==
	NEQ // !=
	GE  // >=
	LE  // <=
	GT
	LT

	KEYWORD // any reserved word; Lexeme holds the exact text
)

// Token is one lexical unit with its source position.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

// Keywords is the reserved-word set, reconstructed verbatim from the
// distillation's keyword table.
var Keywords = map[string]bool{
	"position": true, "score": true, "choose": true, "optional": true,
	"next": true, "turn": true, "winner": true, "demand": true,
	"cycle": true, "bid": true, "successful": true, "fail": true,
	"set": true, "shuffle": true, "flip": true, "combo": true,
	"memory": true, "pointmap": true, "points": true, "precedence": true,
	"token": true, "random": true, "location": true, "table": true,
	"on": true, "card": true, "with": true, "place": true,
	"exchange": true, "deal": true, "range": true, "from": true,
	"to": true, "until": true, "end": true, "times": true, "in": true,
	"cards": true, "face": true, "down": true, "up": true,
	"private": true, "all": true, "any": true, "current": true,
	"previous": true, "owner": true, "of": true, "highest": true,
	"lowest": true, "competitor": true, "turnorder": true, "top": true,
	"bottom": true, "team": true, "at": true, "using": true,
	"prec": true, "point": true, "min": true, "max": true,
	"stageroundcounter": true, "size": true, "sum": true, "or": true,
	"and": true, "stage": true, "game": true, "not": true,
	"is": true, "empty": true, "out": true, "players": true,
	"playersin": true, "playersout": true, "others": true, "lower": true,
	"higher": true, "adjacent": true, "distinct": true, "same": true,
	"key": true, "other": true, "teams": true, "player": true,
	"locations": true, "ints": true, "for": true, "if": true,
	"else": true, "move": true, "where": true, "winnerwith": true,
	"reset": true, "playerturn": true,
}
