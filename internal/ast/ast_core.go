// Package ast defines the spanned abstract syntax tree for cardlang: a
// tree of tagged variant nodes in which every identifier-bearing leaf
// carries a source span. Every node type implements Walk, the mechanical
// traversal contract consumed by the symbol resolver, semantic validator,
// and IR builder.
package ast

// Span is a byte-offset range into the source text, with an optional
// line/column pair attached for diagnostics. Spans survive every
// transformation performed downstream of parsing.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// Spanned pairs a node with the span of source text that produced it.
type Spanned[T any] struct {
	Node T
	Span Span
}

// Ident is an identifier occurrence: a name plus its source span. Every
// SID in the reference implementation is represented this way.
type Ident = Spanned[string]

// Node is implemented by every AST type, leaf or composite. Walk performs
// the mechanical traversal: call v.Enter(self), visit every field in
// declaration order, call v.Exit(self). Kind reports the NodeKind tag
// mirroring the reference implementation's discriminator, for callers that
// want to switch on it directly instead of a Go type switch.
type Node interface {
	Walk(v Visitor)
	Kind() NodeKind
}

// Visitor receives Enter/Exit callbacks for every node a walk visits.
// Symbol resolution and semantic validation are both single AstPass-style
// visitors implementing this interface; IR building does not walk the
// generic tree (it structurally recurses over FlowComponent itself, since
// the IR it produces has a different shape than the AST).
type Visitor interface {
	Enter(n Node)
	Exit(n Node)
}

// walkAll visits a slice of nodes left to right.
func walkAll[T Node](v Visitor, items []T) {
	for _, item := range items {
		item.Walk(v)
	}
}

// GameType is the closed set of semantic kinds an identifier may denote.
// NoType is the lattice bottom assigned to a use site pending inference.
type GameType int

const (
	NoType GameType = iota
	Player
	Team
	Location
	Precedence
	PointMap
	Combo
	Key
	Value
	Memory
	Token
	Stage
)

func (g GameType) String() string {
	switch g {
	case Player:
		return "Player"
	case Team:
		return "Team"
	case Location:
		return "Location"
	case Precedence:
		return "Precedence"
	case PointMap:
		return "PointMap"
	case Combo:
		return "Combo"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case Memory:
		return "Memory"
	case Token:
		return "Token"
	case Stage:
		return "Stage"
	default:
		return "NoType"
	}
}
