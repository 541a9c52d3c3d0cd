// Package semantic implements the semantic validator: a single AST walk
// that checks the cross-referential contract between precedence/point-map
// declarations and the keys/values that consume them, plus memory-shape
// consistency.
package semantic

import (
	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/symbols"
)

// ErrorKind distinguishes the three ways the semantic pass can fail.
type ErrorKind int

const (
	KeyNotFoundForType ErrorKind = iota
	NoCorrToType
	MemoryMismatch
)

// Error is a single semantic-validation failure, anchored at the use
// site so the editor highlights the misuse rather than the declaration.
type Error struct {
	Kind ErrorKind
	Type string
	Key  symbols.Var
}

// correspondenceType is the node a use claims a key belongs to: a named
// Precedence, PointMap, Value holder, or Key holder.
type correspondenceKind int

const (
	corrPrecedence correspondenceKind = iota
	corrPointMap
	corrValue
	corrKey
)

type correspondenceType struct {
	kind correspondenceKind
	node string
}

type corrInit struct {
	key  string
	span ast.Span
}

type corrUse struct {
	ty   correspondenceType
	key  string
	span ast.Span
}

type memoryShapeKind int

const (
	shapeInt memoryShapeKind = iota
	shapeString
	shapeCardSet
	shapeCollection
)

type shapeSite struct {
	shape memoryShapeKind
	span  ast.Span
}

type visitor struct {
	initCorr map[correspondenceType]corrInit
	usedCorr []corrUse

	memoryDeclared map[string]shapeSite
	memoryUses     []struct {
		name  string
		shape memoryShapeKind
		span  ast.Span
	}
}

func newVisitor() *visitor {
	return &visitor{
		initCorr:       make(map[correspondenceType]corrInit),
		memoryDeclared: make(map[string]shapeSite),
	}
}

func memoryTypeShape(m ast.MemoryType) (memoryShapeKind, bool) {
	switch m.(type) {
	case ast.MemoryTypeInt:
		return shapeInt, true
	case ast.MemoryTypeString:
		return shapeString, true
	case ast.MemoryTypeCardSet:
		return shapeCardSet, true
	case ast.MemoryTypeCollection:
		return shapeCollection, true
	default:
		return 0, false
	}
}

func (s *visitor) Exit(ast.Node) {}

func (s *visitor) Enter(n ast.Node) {
	switch node := n.(type) {
	case ast.SetUpCreatePrecedence:
		for _, pair := range node.Pairs {
			s.initCorr[correspondenceType{corrPrecedence, node.Name.Node}] = corrInit{
				key: pair.Key.Node, span: node.Name.Span,
			}
			s.usedCorr = append(s.usedCorr, corrUse{
				ty:   correspondenceType{corrValue, pair.Value.Node},
				key:  pair.Key.Node,
				span: pair.Value.Span,
			})
		}
	case ast.SetUpCreatePointMap:
		for _, triple := range node.Triples {
			s.initCorr[correspondenceType{corrPointMap, node.Name.Node}] = corrInit{
				key: triple.Key.Node, span: node.Name.Span,
			}
			s.usedCorr = append(s.usedCorr, corrUse{
				ty:   correspondenceType{corrValue, triple.Value.Node},
				key:  triple.Key.Node,
				span: triple.Value.Span,
			})
		}
	case ast.SetUpCreateCardOnLocation:
		for _, entry := range node.Types.Entries {
			for _, val := range entry.Values {
				s.initCorr[correspondenceType{corrValue, val.Node}] = corrInit{
					key: entry.Key.Node, span: val.Span,
				}
			}
		}
	case ast.AggregateFilterAdjacent:
		s.usedCorr = append(s.usedCorr, corrUse{
			ty:   correspondenceType{corrPrecedence, node.Precedence.Node},
			key:  node.Key.Node,
			span: node.Precedence.Span,
		})
	case ast.AggregateFilterHigher:
		s.usedCorr = append(s.usedCorr, corrUse{
			ty:   correspondenceType{corrPrecedence, node.Precedence.Node},
			key:  node.Key.Node,
			span: node.Precedence.Span,
		})
	case ast.AggregateFilterLower:
		s.usedCorr = append(s.usedCorr, corrUse{
			ty:   correspondenceType{corrPrecedence, node.Precedence.Node},
			key:  node.Key.Node,
			span: node.Precedence.Span,
		})
	case ast.AggregateFilterKeyString:
		switch str := node.String.(type) {
		case ast.StringExprQuery:
			if keyOf, ok := str.Query.(ast.QueryStringKeyOf); ok {
				s.initCorr[correspondenceType{corrKey, keyOf.Key.Node}] = corrInit{
					key: keyOf.Key.Node, span: keyOf.Key.Span,
				}
				s.usedCorr = append(s.usedCorr, corrUse{
					ty:   correspondenceType{corrKey, keyOf.Key.Node},
					key:  node.Key.Node,
					span: keyOf.Key.Span,
				})
			}
		case ast.StringExprLiteral:
			s.usedCorr = append(s.usedCorr, corrUse{
				ty:   correspondenceType{corrValue, str.Value.Node},
				key:  node.Key.Node,
				span: str.Value.Span,
			})
		}
	case ast.SetUpCreateMemoryWithMemoryType:
		if shape, ok := memoryTypeShape(node.MemoryType); ok {
			s.memoryDeclared[node.Name.Node] = shapeSite{shape: shape, span: node.Name.Span}
		}
	case ast.ActionSetMemory:
		if shape, ok := memoryTypeShape(node.MemoryType); ok {
			s.memoryUses = append(s.memoryUses, struct {
				name  string
				shape memoryShapeKind
				span  ast.Span
			}{node.Name.Node, shape, node.Name.Span})
		}
	case ast.ScoreRuleScoreMemory:
		s.memoryUses = append(s.memoryUses, struct {
			name  string
			shape memoryShapeKind
			span  ast.Span
		}{node.Name.Node, shapeInt, node.Name.Span})
	case ast.ActionBidMemory:
		s.memoryUses = append(s.memoryUses, struct {
			name  string
			shape memoryShapeKind
			span  ast.Span
		}{node.Name.Node, shapeInt, node.Name.Span})
	}
}

func (t correspondenceType) nodeName() string {
	return t.node
}

// check runs the validation rules described in component design §4.3 over
// the maps built during the walk.
func (s *visitor) check() []Error {
	var errs []Error

	for _, use := range s.usedCorr {
		init, ok := s.initCorr[use.ty]
		if !ok {
			errs = append(errs, Error{
				Kind: KeyNotFoundForType,
				Type: use.ty.nodeName(),
				Key:  symbols.Var{Name: use.key, Span: use.span},
			})
			continue
		}
		if init.key != use.key {
			errs = append(errs, Error{
				Kind: NoCorrToType,
				Type: use.ty.nodeName(),
				Key:  symbols.Var{Name: use.key, Span: use.span},
			})
		}
	}

	for _, use := range s.memoryUses {
		declared, ok := s.memoryDeclared[use.name]
		if !ok {
			continue
		}
		if declared.shape != use.shape {
			errs = append(errs, Error{
				Kind: MemoryMismatch,
				Type: "Memory",
				Key:  symbols.Var{Name: use.name, Span: use.span},
			})
		}
	}

	return errs
}

// Validate walks game and returns every semantic error found. A nil/empty
// result means the program is semantically valid.
func Validate(game *ast.Game) []Error {
	v := newVisitor()
	game.Walk(v)
	return v.check()
}
