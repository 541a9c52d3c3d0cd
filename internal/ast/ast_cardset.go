package ast

// CardSet is a group of cards, optionally scoped to an owner.
type CardSet interface {
	Node
	isCardSet()
}

type CardSetGroup struct{ Group Group }

func (CardSetGroup) isCardSet() {}
func (c CardSetGroup) Walk(v Visitor) { v.Enter(c); c.Group.Walk(v); v.Exit(c) }

type CardSetGroupOwner struct {
	Group Group
	Owner Owner
}

func (CardSetGroupOwner) isCardSet() {}
func (c CardSetGroupOwner) Walk(v Visitor) {
	v.Enter(c)
	c.Group.Walk(v)
	c.Owner.Walk(v)
	v.Exit(c)
}

// Group is a groupable location (or locations), optionally filtered or
// restricted by combo membership.
type Group interface {
	Node
	isGroup()
}

type GroupGroupable struct{ Groupable Groupable }

func (GroupGroupable) isGroup() {}
func (g GroupGroupable) Walk(v Visitor) { v.Enter(g); g.Groupable.Walk(v); v.Exit(g) }

type GroupWhere struct {
	Groupable Groupable
	Filter    FilterExpr
}

func (GroupWhere) isGroup() {}
func (g GroupWhere) Walk(v Visitor) {
	v.Enter(g)
	g.Groupable.Walk(v)
	g.Filter.Walk(v)
	v.Exit(g)
}

// GroupNotCombo restricts to cards NOT matching a declared combo; the
// combo name is a use site.
type GroupNotCombo struct {
	Combo     Ident
	Groupable Groupable
}

func (GroupNotCombo) isGroup() {}
func (g GroupNotCombo) Walk(v Visitor) { v.Enter(g); g.Groupable.Walk(v); v.Exit(g) }

// GroupCombo restricts to cards matching a declared combo; the combo
// name is a use site.
type GroupCombo struct {
	Combo     Ident
	Groupable Groupable
}

func (GroupCombo) isGroup() {}
func (g GroupCombo) Walk(v Visitor) { v.Enter(g); g.Groupable.Walk(v); v.Exit(g) }

type GroupCardPosition struct{ Position CardPosition }

func (GroupCardPosition) isGroup() {}
func (g GroupCardPosition) Walk(v Visitor) { v.Enter(g); g.Position.Walk(v); v.Exit(g) }

// AggregateFilter is a single filter predicate over a card set. Several
// variants both use and seed the correspondence table (semantic.go).
type AggregateFilter interface {
	Node
	isAggregateFilter()
}

type AggregateFilterSize struct {
	Op    IntCompare
	Count IntExpr
}

func (AggregateFilterSize) isAggregateFilter() {}
func (a AggregateFilterSize) Walk(v Visitor) { v.Enter(a); a.Count.Walk(v); v.Exit(a) }

// AggregateFilterSame requires every card to share the same value for
// Key; the key name is a use site.
type AggregateFilterSame struct{ Key Ident }

func (AggregateFilterSame) isAggregateFilter() {}
func (a AggregateFilterSame) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

type AggregateFilterDistinct struct{ Key Ident }

func (AggregateFilterDistinct) isAggregateFilter() {}
func (a AggregateFilterDistinct) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

// AggregateFilterAdjacent requires the set's Key values to be adjacent
// under Precedence's declared order. Both names are use sites; Precedence
// also seeds a correspondence use against Key.
type AggregateFilterAdjacent struct {
	Key        Ident
	Precedence Ident
}

func (AggregateFilterAdjacent) isAggregateFilter() {}
func (a AggregateFilterAdjacent) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

type AggregateFilterHigher struct {
	Key        Ident
	Precedence Ident
}

func (AggregateFilterHigher) isAggregateFilter() {}
func (a AggregateFilterHigher) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

type AggregateFilterLower struct {
	Key        Ident
	Precedence Ident
}

func (AggregateFilterLower) isAggregateFilter() {}
func (a AggregateFilterLower) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

// AggregateFilterKeyString compares Key's string value against String.
// The key name is a use site; String is walked independently and may
// itself contribute a correspondence use or init (see semantic.go).
type AggregateFilterKeyString struct {
	Key    Ident
	Op     StringCompare
	String StringExpr
}

func (AggregateFilterKeyString) isAggregateFilter() {}
func (a AggregateFilterKeyString) Walk(v Visitor) { v.Enter(a); a.String.Walk(v); v.Exit(a) }

type AggregateFilterCombo struct{ Combo Ident }

func (AggregateFilterCombo) isAggregateFilter() {}
func (a AggregateFilterCombo) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

type AggregateFilterNotCombo struct{ Combo Ident }

func (AggregateFilterNotCombo) isAggregateFilter() {}
func (a AggregateFilterNotCombo) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

// FilterExpr is any expression that denotes a card-set filter predicate.
type FilterExpr interface {
	Node
	isFilterExpr()
}

type FilterExprAggregate struct{ Aggregate AggregateFilter }

func (FilterExprAggregate) isFilterExpr() {}
func (f FilterExprAggregate) Walk(v Visitor) { v.Enter(f); f.Aggregate.Walk(v); v.Exit(f) }

type FilterExprBinary struct {
	Left  FilterExpr
	Op    FilterOp
	Right FilterExpr
}

func (FilterExprBinary) isFilterExpr() {}
func (f FilterExprBinary) Walk(v Visitor) {
	v.Enter(f)
	f.Left.Walk(v)
	f.Right.Walk(v)
	v.Exit(f)
}
