// Package symbols implements the symbol resolver: a single AST walk that
// classifies every identifier occurrence as an initialization (with a
// known GameType) or a use (kind pending inference), then joins each
// name's occurrences into a single resolved kind or a diagnostic.
package symbols

import (
	"sort"

	"github.com/cardlang/analysis/internal/ast"
)

// Var is an identifier occurrence carrying the span it was found at.
type Var struct {
	Name string
	Span ast.Span
}

func varFromIdent(id ast.Ident) Var {
	return Var{Name: id.Node, Span: id.Span}
}

// ErrorKind distinguishes the two ways a name can fail to resolve.
type ErrorKind int

const (
	NotInitialized ErrorKind = iota
	DefinedMultipleTimes
)

// Error is a single symbol-resolution failure, anchored at the
// occurrence's own span so every offending site can be underlined.
type Error struct {
	Kind ErrorKind
	Var  Var
}

// Table maps resolved names to their kind, and kinds to the names
// declared with them (the latter is what editor completions and the
// Scenario 6 fixture check want: "all declared Player names", etc).
type Table struct {
	NameToKind map[string]ast.GameType
	KindToName map[ast.GameType][]string
}

func newTable() *Table {
	return &Table{
		NameToKind: make(map[string]ast.GameType),
		KindToName: make(map[ast.GameType][]string),
	}
}

type occurrence struct {
	ident ast.Ident
	kind  ast.GameType
}

// visitor collects every identifier occurrence during a single walk. It
// implements ast.Visitor; Enter dispatches on the concrete Go type of the
// node exactly as the reference implementation dispatches on NodeKind.
type visitor struct {
	occurrences []occurrence
}

func (r *visitor) use(id ast.Ident) {
	r.occurrences = append(r.occurrences, occurrence{ident: id, kind: ast.NoType})
}

func (r *visitor) init(id ast.Ident, kind ast.GameType) {
	r.occurrences = append(r.occurrences, occurrence{ident: id, kind: kind})
}

func (r *visitor) Exit(ast.Node) {}

func (r *visitor) Enter(n ast.Node) {
	switch node := n.(type) {
	case ast.OutOfStage:
		r.use(node.Name)
	case ast.GroupableLocation:
		r.use(node.Name)
	case ast.Types:
		for _, entry := range node.Entries {
			r.init(entry.Key, ast.Key)
			for _, val := range entry.Values {
				r.init(val, ast.Value)
			}
		}
	case ast.AggregatePlayerOwnerOfMemory:
		r.use(node.Memory)
	case ast.PlayerExprLiteral:
		r.use(node.Name)
	case ast.AggregateIntSumOfCardSet:
		r.use(node.Key)
	case ast.AggregateIntExtremaCardset:
		r.use(node.Key)
	case ast.QueryStringKeyOf:
		r.use(node.Key)
	case ast.StringExprLiteral:
		r.use(node.Value)
	case ast.TeamExprLiteral:
		r.use(node.Name)
	case ast.QueryCardPositionAt:
		r.use(node.Location)
	case ast.QueryCardPositionTop:
		r.use(node.Location)
	case ast.QueryCardPositionBottom:
		r.use(node.Location)
	case ast.AggregateCardPositionExtremaPointMap:
		r.use(node.Key)
	case ast.AggregateCardPositionExtremaPrecedence:
		r.use(node.Key)
	case ast.LocationCollection:
		for _, loc := range node.Locations {
			r.use(loc)
		}
	case ast.GroupNotCombo:
		r.use(node.Combo)
	case ast.GroupCombo:
		r.use(node.Combo)
	case ast.AggregateFilterSame:
		r.use(node.Key)
	case ast.AggregateFilterDistinct:
		r.use(node.Key)
	case ast.AggregateFilterAdjacent:
		r.use(node.Key)
		r.use(node.Precedence)
	case ast.AggregateFilterHigher:
		r.use(node.Key)
		r.use(node.Precedence)
	case ast.AggregateFilterLower:
		r.use(node.Key)
		r.use(node.Precedence)
	case ast.AggregateFilterKeyString:
		r.use(node.Key)
	case ast.AggregateFilterCombo:
		r.use(node.Combo)
	case ast.AggregateFilterNotCombo:
		r.use(node.Combo)
	case ast.SetUpCreatePlayer:
		for _, name := range node.Names {
			r.init(name, ast.Player)
		}
	case ast.SetUpCreateTeams:
		for _, t := range node.Teams {
			r.init(t.Name, ast.Team)
		}
	case ast.SetUpCreateLocation:
		for _, name := range node.Names {
			r.init(name, ast.Location)
		}
	case ast.SetUpCreateCardOnLocation:
		r.use(node.Location)
	case ast.SetUpCreateTokenOnLocation:
		r.init(node.Token, ast.Token)
		r.use(node.Location)
	case ast.SetUpCreateCombo:
		r.init(node.Name, ast.Combo)
	case ast.SetUpCreateMemory:
		r.init(node.Name, ast.Memory)
	case ast.SetUpCreateMemoryWithMemoryType:
		r.init(node.Name, ast.Memory)
	case ast.SetUpCreatePrecedence:
		r.init(node.Name, ast.Precedence)
		for _, pair := range node.Pairs {
			r.use(pair.Key)
			r.use(pair.Value)
		}
	case ast.SetUpCreatePointMap:
		r.init(node.Name, ast.PointMap)
		for _, triple := range node.Triples {
			r.use(triple.Key)
			r.use(triple.Value)
		}
	case ast.ActionSetMemory:
		r.use(node.Name)
	case ast.ActionResetMemory:
		r.use(node.Name)
	case ast.ActionBidMemory:
		r.use(node.Name)
	case ast.SeqStage:
		r.init(node.Stage, ast.Stage)
	case ast.TokenMovePlace:
		r.use(node.Token)
	case ast.TokenMovePlaceQuantity:
		r.use(node.Token)
	case ast.ScoreRuleScoreMemory:
		r.use(node.Name)
	case ast.WinnerTypeMemory:
		r.use(node.Name)
	}
}

// Resolve walks game and resolves every identifier occurrence into a
// Table, or a list of errors if any name fails to resolve.
func Resolve(game *ast.Game) (*Table, []Error) {
	v := &visitor{}
	game.Walk(v)
	return checkGameType(v.occurrences)
}

func checkGameType(occurrences []occurrence) (*Table, []Error) {
	groups := make(map[string][]occurrence)
	var order []string
	for _, occ := range occurrences {
		if _, ok := groups[occ.ident.Node]; !ok {
			order = append(order, occ.ident.Node)
		}
		groups[occ.ident.Node] = append(groups[occ.ident.Node], occ)
	}
	sort.Strings(order)

	var errs []Error
	table := newTable()

	for _, name := range order {
		occs := groups[name]

		allNoType := true
		for _, o := range occs {
			if o.kind != ast.NoType {
				allNoType = false
				break
			}
		}
		if allNoType {
			for _, o := range occs {
				errs = append(errs, Error{Kind: NotInitialized, Var: varFromIdent(o.ident)})
			}
			continue
		}

		var concrete []occurrence
		for _, o := range occs {
			if o.kind != ast.NoType {
				concrete = append(concrete, o)
			}
		}

		distinct := make(map[ast.GameType]bool)
		for _, o := range concrete {
			distinct[o.kind] = true
		}

		if len(distinct) > 1 {
			for _, o := range concrete {
				errs = append(errs, Error{Kind: DefinedMultipleTimes, Var: varFromIdent(o.ident)})
			}
			continue
		}

		kind := concrete[0].kind
		table.NameToKind[name] = kind
		table.KindToName[kind] = append(table.KindToName[kind], name)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	for kind := range table.KindToName {
		sort.Strings(table.KindToName[kind])
	}

	return table, nil
}
