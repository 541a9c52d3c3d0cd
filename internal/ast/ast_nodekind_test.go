package ast

import "testing"

func TestNodeKindMatchesConcreteType(t *testing.T) {
	var n Node = Game{}
	if n.Kind() != NodeKindGame {
		t.Fatalf("got %v, want NodeKindGame", n.Kind())
	}

	n = SetUpCreatePlayer{Names: []Ident{{Node: "Alice"}}}
	if n.Kind() != NodeKindSetUpCreatePlayer {
		t.Fatalf("got %v, want NodeKindSetUpCreatePlayer", n.Kind())
	}
}

func TestNodeKindStringRoundTrips(t *testing.T) {
	if got := NodeKindGame.String(); got != "Game" {
		t.Fatalf("got %q, want %q", got, "Game")
	}
	if got := NodeKind(-1).String(); got != "Invalid" {
		t.Fatalf("got %q, want Invalid for an out-of-range kind", got)
	}
}
