package ast

// QueryInt reads an element out of an integer collection at a given
// index.
type QueryInt interface {
	Node
	isQueryInt()
}

type QueryIntCollectionAt struct {
	Collection IntCollection
	Index      IntExpr
}

func (QueryIntCollectionAt) isQueryInt() {}
func (q QueryIntCollectionAt) Walk(v Visitor) {
	v.Enter(q)
	q.Collection.Walk(v)
	q.Index.Walk(v)
	v.Exit(q)
}

// AggregateInt computes an integer from a collection or card set: its
// size, a sum, or an extremum.
type AggregateInt interface {
	Node
	isAggregateInt()
}

type AggregateIntSizeOf struct{ Collection Collection }

func (AggregateIntSizeOf) isAggregateInt() {}
func (a AggregateIntSizeOf) Walk(v Visitor) { v.Enter(a); a.Collection.Walk(v); v.Exit(a) }

type AggregateIntSumOfIntCollection struct{ Collection IntCollection }

func (AggregateIntSumOfIntCollection) isAggregateInt() {}
func (a AggregateIntSumOfIntCollection) Walk(v Visitor) {
	v.Enter(a)
	a.Collection.Walk(v)
	v.Exit(a)
}

// AggregateIntSumOfCardSet sums a point-map value over a card set by key;
// the key name is a use site.
type AggregateIntSumOfCardSet struct {
	Set CardSet
	Key Ident
}

func (AggregateIntSumOfCardSet) isAggregateInt() {}
func (a AggregateIntSumOfCardSet) Walk(v Visitor) { v.Enter(a); a.Set.Walk(v); v.Exit(a) }

// AggregateIntExtremaCardset finds the min/max value over a card set by
// key; the key name is a use site.
type AggregateIntExtremaCardset struct {
	Extrema Extrema
	Set     CardSet
	Key     Ident
}

func (AggregateIntExtremaCardset) isAggregateInt() {}
func (a AggregateIntExtremaCardset) Walk(v Visitor) { v.Enter(a); a.Set.Walk(v); v.Exit(a) }

type AggregateIntExtremaIntCollection struct {
	Extrema    Extrema
	Collection IntCollection
}

func (AggregateIntExtremaIntCollection) isAggregateInt() {}
func (a AggregateIntExtremaIntCollection) Walk(v Visitor) {
	v.Enter(a)
	a.Collection.Walk(v)
	v.Exit(a)
}

// RuntimeInt is a counter maintained by the runtime: the number of
// iterations of the enclosing stage or play.
type RuntimeInt int

const (
	RuntimeStageRoundCounter RuntimeInt = iota
	RuntimePlayRoundCounter
)

// IntExpr is any expression that denotes an integer.
type IntExpr interface {
	Node
	isIntExpr()
}

type IntExprLiteral struct{ Value int }

func (IntExprLiteral) isIntExpr() {}
func (e IntExprLiteral) Walk(v Visitor) { v.Enter(e); v.Exit(e) }

type IntExprBinary struct {
	Left  IntExpr
	Op    IntOp
	Right IntExpr
}

func (IntExprBinary) isIntExpr() {}
func (e IntExprBinary) Walk(v Visitor) {
	v.Enter(e)
	e.Left.Walk(v)
	e.Right.Walk(v)
	v.Exit(e)
}

type IntExprQuery struct{ Query QueryInt }

func (IntExprQuery) isIntExpr() {}
func (e IntExprQuery) Walk(v Visitor) { v.Enter(e); e.Query.Walk(v); v.Exit(e) }

type IntExprAggregate struct{ Aggregate AggregateInt }

func (IntExprAggregate) isIntExpr() {}
func (e IntExprAggregate) Walk(v Visitor) { v.Enter(e); e.Aggregate.Walk(v); v.Exit(e) }

type IntExprRuntime struct{ Runtime RuntimeInt }

func (IntExprRuntime) isIntExpr() {}
func (e IntExprRuntime) Walk(v Visitor) { v.Enter(e); v.Exit(e) }
