package lexer

import "testing"

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `( ) { } , : ; == != >= <= > <`
	want := []Kind{LPAREN, RPAREN, LBRACE, RBRACE, COMMA, COLON, SEMI, EQ, NEQ, GE, LE, GT, LT, EOF}

	l := New(input)
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: got kind %v, want %v (lexeme %q)", i, tok.Kind, k, tok.Lexeme)
		}
	}
}

func TestNextTokenKeywordsAreCaseInsensitive(t *testing.T) {
	l := New("Stage STAGE stage")
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if tok.Kind != KEYWORD {
			t.Fatalf("token %d: got kind %v, want KEYWORD", i, tok.Kind)
		}
		if tok.Lexeme != "stage" {
			t.Fatalf("token %d: got lexeme %q, want lowercased %q", i, tok.Lexeme, "stage")
		}
	}
}

func TestNextTokenIdentPreservesCase(t *testing.T) {
	l := New("GinRummy")
	tok := l.NextToken()
	if tok.Kind != IDENT {
		t.Fatalf("got kind %v, want IDENT", tok.Kind)
	}
	if tok.Lexeme != "GinRummy" {
		t.Fatalf("got lexeme %q, want original case preserved", tok.Lexeme)
	}
}

func TestNextTokenIntAndString(t *testing.T) {
	l := New(`42 "Hearts"`)
	tok := l.NextToken()
	if tok.Kind != INT || tok.Lexeme != "42" {
		t.Fatalf("got %+v, want INT 42", tok)
	}
	tok = l.NextToken()
	if tok.Kind != STRING || tok.Lexeme != "Hearts" {
		t.Fatalf("got %+v, want STRING Hearts", tok)
	}
}

func TestNextTokenSkipsLineComments(t *testing.T) {
	l := New("stage // a comment\nplayer")
	first := l.NextToken()
	if first.Kind != KEYWORD || first.Lexeme != "stage" {
		t.Fatalf("got %+v, want KEYWORD stage", first)
	}
	second := l.NextToken()
	if second.Kind != KEYWORD || second.Lexeme != "player" {
		t.Fatalf("got %+v, want KEYWORD player", second)
	}
	if second.Line != 2 {
		t.Fatalf("got line %d, want 2 after line comment", second.Line)
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Kind != ILLEGAL {
		t.Fatalf("got kind %v, want ILLEGAL", tok.Kind)
	}
}
