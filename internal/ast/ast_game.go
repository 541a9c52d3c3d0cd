package ast

// Game is the root of the tree: a top-level ordered flow.
type Game struct {
	Flows []FlowComponent
}

func (g Game) Walk(v Visitor) {
	v.Enter(g)
	walkAll(v, g.Flows)
	v.Exit(g)
}

// FlowComponent is one element of an ordered flow: a rule, a stage, or a
// structured control construct.
type FlowComponent interface {
	Node
	isFlowComponent()
}

type FlowStage struct{ Stage SeqStage }

func (FlowStage) isFlowComponent() {}
func (f FlowStage) Walk(v Visitor) { v.Enter(f); f.Stage.Walk(v); v.Exit(f) }

type FlowRule struct{ Rule GameRule }

func (FlowRule) isFlowComponent() {}
func (f FlowRule) Walk(v Visitor) { v.Enter(f); f.Rule.Walk(v); v.Exit(f) }

type FlowIfRule struct{ If IfRule }

func (FlowIfRule) isFlowComponent() {}
func (f FlowIfRule) Walk(v Visitor) { v.Enter(f); f.If.Walk(v); v.Exit(f) }

type FlowChoiceRule struct{ Choice ChoiceRule }

func (FlowChoiceRule) isFlowComponent() {}
func (f FlowChoiceRule) Walk(v Visitor) { v.Enter(f); f.Choice.Walk(v); v.Exit(f) }

type FlowOptionalRule struct{ Optional OptionalRule }

func (FlowOptionalRule) isFlowComponent() {}
func (f FlowOptionalRule) Walk(v Visitor) { v.Enter(f); f.Optional.Walk(v); v.Exit(f) }

type FlowConditional struct{ Conditional Conditional }

func (FlowConditional) isFlowComponent() {}
func (f FlowConditional) Walk(v Visitor) { v.Enter(f); f.Conditional.Walk(v); v.Exit(f) }

// SetUpRule declares a game element: players, teams, turn order,
// locations, tokens, combos, memories, precedences, point-maps.
type SetUpRule interface {
	Node
	isSetUpRule()
}

// SetUpCreatePlayer initializes every name as Player.
type SetUpCreatePlayer struct{ Names []Ident }

func (SetUpCreatePlayer) isSetUpRule() {}
func (s SetUpCreatePlayer) Walk(v Visitor) { v.Enter(s); v.Exit(s) }

// TeamMember is one (team name, player-collection) pair of a CreateTeams
// rule.
type TeamMember struct {
	Name    Ident
	Players PlayerCollection
}

// SetUpCreateTeams initializes each team name as Team.
type SetUpCreateTeams struct{ Teams []TeamMember }

func (SetUpCreateTeams) isSetUpRule() {}
func (s SetUpCreateTeams) Walk(v Visitor) {
	v.Enter(s)
	for _, t := range s.Teams {
		t.Players.Walk(v)
	}
	v.Exit(s)
}

type SetUpCreateTurnorder struct{ Players PlayerCollection }

func (SetUpCreateTurnorder) isSetUpRule() {}
func (s SetUpCreateTurnorder) Walk(v Visitor) { v.Enter(s); s.Players.Walk(v); v.Exit(s) }

type SetUpCreateTurnorderRandom struct{ Players PlayerCollection }

func (SetUpCreateTurnorderRandom) isSetUpRule() {}
func (s SetUpCreateTurnorderRandom) Walk(v Visitor) { v.Enter(s); s.Players.Walk(v); v.Exit(s) }

// SetUpCreateLocation initializes each name as Location.
type SetUpCreateLocation struct {
	Names []Ident
	Owner Owner
}

func (SetUpCreateLocation) isSetUpRule() {}
func (s SetUpCreateLocation) Walk(v Visitor) { v.Enter(s); s.Owner.Walk(v); v.Exit(s) }

// SetUpCreateCardOnLocation declares the key/value shape of cards on an
// existing location; Location is a use, Types seeds Key/Value inits.
type SetUpCreateCardOnLocation struct {
	Location Ident
	Types    Types
}

func (SetUpCreateCardOnLocation) isSetUpRule() {}
func (s SetUpCreateCardOnLocation) Walk(v Visitor) { v.Enter(s); s.Types.Walk(v); v.Exit(s) }

// SetUpCreateTokenOnLocation initializes Token as Token; Location is a
// use.
type SetUpCreateTokenOnLocation struct {
	Count    IntExpr
	Token    Ident
	Location Ident
}

func (SetUpCreateTokenOnLocation) isSetUpRule() {}
func (s SetUpCreateTokenOnLocation) Walk(v Visitor) { v.Enter(s); s.Count.Walk(v); v.Exit(s) }

// SetUpCreateCombo initializes Name as Combo.
type SetUpCreateCombo struct {
	Name   Ident
	Filter FilterExpr
}

func (SetUpCreateCombo) isSetUpRule() {}
func (s SetUpCreateCombo) Walk(v Visitor) { v.Enter(s); s.Filter.Walk(v); v.Exit(s) }

// SetUpCreateMemoryWithMemoryType initializes Name as Memory, and records
// its declared shape for MemoryMismatch checking (semantic.go).
type SetUpCreateMemoryWithMemoryType struct {
	Name       Ident
	MemoryType MemoryType
	Owner      Owner
}

func (SetUpCreateMemoryWithMemoryType) isSetUpRule() {}
func (s SetUpCreateMemoryWithMemoryType) Walk(v Visitor) {
	v.Enter(s)
	s.MemoryType.Walk(v)
	s.Owner.Walk(v)
	v.Exit(s)
}

// SetUpCreateMemory initializes Name as Memory, with no declared shape.
type SetUpCreateMemory struct {
	Name  Ident
	Owner Owner
}

func (SetUpCreateMemory) isSetUpRule() {}
func (s SetUpCreateMemory) Walk(v Visitor) { v.Enter(s); s.Owner.Walk(v); v.Exit(s) }

// PrecedencePair is one (key, value) rank entry of a CreatePrecedence
// rule, e.g. `Rank: Ace`.
type PrecedencePair struct {
	Key   Ident
	Value Ident
}

// SetUpCreatePrecedence initializes Name as Precedence; every pair's key
// and value are uses and seed the correspondence table.
type SetUpCreatePrecedence struct {
	Name  Ident
	Pairs []PrecedencePair
}

func (SetUpCreatePrecedence) isSetUpRule() {}
func (s SetUpCreatePrecedence) Walk(v Visitor) { v.Enter(s); v.Exit(s) }

// PointMapTriple is one (key, value, points) entry of a CreatePointMap
// rule, e.g. `Rank: Ace = 1`.
type PointMapTriple struct {
	Key    Ident
	Value  Ident
	Points IntExpr
}

// SetUpCreatePointMap initializes Name as PointMap; every triple's key
// and value are uses and seed the correspondence table.
type SetUpCreatePointMap struct {
	Name    Ident
	Triples []PointMapTriple
}

func (SetUpCreatePointMap) isSetUpRule() {}
func (s SetUpCreatePointMap) Walk(v Visitor) {
	v.Enter(s)
	for _, t := range s.Triples {
		t.Points.Walk(v)
	}
	v.Exit(s)
}

// ActionRule performs a runtime action: flip, shuffle, remove a player,
// set/reset memory, cycle turn, bid, end something, demand input, or move
// cards/tokens.
type ActionRule interface {
	Node
	isActionRule()
}

type ActionFlip struct {
	Set    CardSet
	Status Status
}

func (ActionFlip) isActionRule() {}
func (a ActionFlip) Walk(v Visitor) { v.Enter(a); a.Set.Walk(v); v.Exit(a) }

type ActionShuffle struct{ Set CardSet }

func (ActionShuffle) isActionRule() {}
func (a ActionShuffle) Walk(v Visitor) { v.Enter(a); a.Set.Walk(v); v.Exit(a) }

type ActionPlayerOutOfStage struct{ Players Players }

func (ActionPlayerOutOfStage) isActionRule() {}
func (a ActionPlayerOutOfStage) Walk(v Visitor) { v.Enter(a); a.Players.Walk(v); v.Exit(a) }

type ActionPlayerOutOfGameSucc struct{ Players Players }

func (ActionPlayerOutOfGameSucc) isActionRule() {}
func (a ActionPlayerOutOfGameSucc) Walk(v Visitor) { v.Enter(a); a.Players.Walk(v); v.Exit(a) }

type ActionPlayerOutOfGameFail struct{ Players Players }

func (ActionPlayerOutOfGameFail) isActionRule() {}
func (a ActionPlayerOutOfGameFail) Walk(v Visitor) { v.Enter(a); a.Players.Walk(v); v.Exit(a) }

// ActionSetMemory assigns a value into an existing memory; Name is a use,
// and the assigned shape participates in MemoryMismatch checking.
type ActionSetMemory struct {
	Name       Ident
	MemoryType MemoryType
}

func (ActionSetMemory) isActionRule() {}
func (a ActionSetMemory) Walk(v Visitor) { v.Enter(a); a.MemoryType.Walk(v); v.Exit(a) }

type ActionResetMemory struct{ Name Ident }

func (ActionResetMemory) isActionRule() {}
func (a ActionResetMemory) Walk(v Visitor) { v.Enter(a); v.Exit(a) }

type ActionCycle struct{ Player PlayerExpr }

func (ActionCycle) isActionRule() {}
func (a ActionCycle) Walk(v Visitor) { v.Enter(a); a.Player.Walk(v); v.Exit(a) }

type ActionBid struct{ Quantity Quantity }

func (ActionBid) isActionRule() {}
func (a ActionBid) Walk(v Visitor) { v.Enter(a); a.Quantity.Walk(v); v.Exit(a) }

// ActionBidMemory binds the bid to an existing memory; Name is a use, and
// the implied Int shape participates in MemoryMismatch checking.
type ActionBidMemory struct {
	Name     Ident
	Quantity Quantity
}

func (ActionBidMemory) isActionRule() {}
func (a ActionBidMemory) Walk(v Visitor) { v.Enter(a); a.Quantity.Walk(v); v.Exit(a) }

type ActionEnd struct{ EndType EndType }

func (ActionEnd) isActionRule() {}
func (a ActionEnd) Walk(v Visitor) { v.Enter(a); a.EndType.Walk(v); v.Exit(a) }

type ActionDemand struct{ DemandType DemandType }

func (ActionDemand) isActionRule() {}
func (a ActionDemand) Walk(v Visitor) { v.Enter(a); a.DemandType.Walk(v); v.Exit(a) }

// ActionDemandMemory stores demanded input into an existing memory; Name
// is a use.
type ActionDemandMemory struct {
	DemandType DemandType
	Name       Ident
}

func (ActionDemandMemory) isActionRule() {}
func (a ActionDemandMemory) Walk(v Visitor) { v.Enter(a); a.DemandType.Walk(v); v.Exit(a) }

type ActionMove struct{ Move MoveType }

func (ActionMove) isActionRule() {}
func (a ActionMove) Walk(v Visitor) { v.Enter(a); a.Move.Walk(v); v.Exit(a) }

// ScoringRule is a score formula or a winner-selection rule.
type ScoringRule interface {
	Node
	isScoringRule()
}

type ScoringScore struct{ Score ScoreRule }

func (ScoringScore) isScoringRule() {}
func (s ScoringScore) Walk(v Visitor) { v.Enter(s); s.Score.Walk(v); v.Exit(s) }

type ScoringWinner struct{ Winner WinnerRule }

func (ScoringWinner) isScoringRule() {}
func (s ScoringWinner) Walk(v Visitor) { v.Enter(s); s.Winner.Walk(v); v.Exit(s) }

// GameRule is any atomic rule lowered to a single IR block.
type GameRule interface {
	Node
	isGameRule()
}

type GameRuleSetUp struct{ SetUp SetUpRule }

func (GameRuleSetUp) isGameRule() {}
func (g GameRuleSetUp) Walk(v Visitor) { v.Enter(g); g.SetUp.Walk(v); v.Exit(g) }

type GameRuleAction struct{ Action ActionRule }

func (GameRuleAction) isGameRule() {}
func (g GameRuleAction) Walk(v Visitor) { v.Enter(g); g.Action.Walk(v); v.Exit(g) }

type GameRuleScoring struct{ Scoring ScoringRule }

func (GameRuleScoring) isGameRule() {}
func (g GameRuleScoring) Walk(v Visitor) { v.Enter(g); g.Scoring.Walk(v); v.Exit(g) }

// SeqStage is a named, repeatable section of the game with its own end
// condition and nested flow. Stage initializes the name as Stage.
type SeqStage struct {
	Stage        Ident
	Player       PlayerExpr
	EndCondition EndCondition
	Flows        []FlowComponent
}

func (s SeqStage) Walk(v Visitor) {
	v.Enter(s)
	s.Player.Walk(v)
	s.EndCondition.Walk(v)
	walkAll(v, s.Flows)
	v.Exit(s)
}

// Case is one arm of a Conditional: a guarded body, a bare body (no
// condition - always runs if reached), or the trailing else.
type Case interface {
	Node
	isCase()
}

type CaseElse struct{ Flows []FlowComponent }

func (CaseElse) isCase() {}
func (c CaseElse) Walk(v Visitor) { v.Enter(c); walkAll(v, c.Flows); v.Exit(c) }

type CaseNoBool struct{ Flows []FlowComponent }

func (CaseNoBool) isCase() {}
func (c CaseNoBool) Walk(v Visitor) { v.Enter(c); walkAll(v, c.Flows); v.Exit(c) }

type CaseBool struct {
	Condition BoolExpr
	Flows     []FlowComponent
}

func (CaseBool) isCase() {}
func (c CaseBool) Walk(v Visitor) {
	v.Enter(c)
	c.Condition.Walk(v)
	walkAll(v, c.Flows)
	v.Exit(c)
}

// Conditional is an ordered case cascade ending in an optional else.
type Conditional struct {
	Cases []Case
}

func (c Conditional) Walk(v Visitor) { v.Enter(c); walkAll(v, c.Cases); v.Exit(c) }

// IfRule runs its body when Condition holds, otherwise falls through.
type IfRule struct {
	Condition BoolExpr
	Flows     []FlowComponent
}

func (r IfRule) Walk(v Visitor) {
	v.Enter(r)
	r.Condition.Walk(v)
	walkAll(v, r.Flows)
	v.Exit(r)
}

// OptionalRule may run its body or be skipped.
type OptionalRule struct {
	Flows []FlowComponent
}

func (r OptionalRule) Walk(v Visitor) { v.Enter(r); walkAll(v, r.Flows); v.Exit(r) }

// ChoiceRule runs exactly one of its unordered option flows.
type ChoiceRule struct {
	Options []FlowComponent
}

func (r ChoiceRule) Walk(v Visitor) { v.Enter(r); walkAll(v, r.Options); v.Exit(r) }

// MoveType is any card/token relocation action.
type MoveType interface {
	Node
	isMoveType()
}

type MoveTypeDeal struct{ Move DealMove }

func (MoveTypeDeal) isMoveType() {}
func (m MoveTypeDeal) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

type MoveTypeExchange struct{ Move ExchangeMove }

func (MoveTypeExchange) isMoveType() {}
func (m MoveTypeExchange) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

type MoveTypeClassic struct{ Move ClassicMove }

func (MoveTypeClassic) isMoveType() {}
func (m MoveTypeClassic) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

type MoveTypePlace struct{ Move TokenMove }

func (MoveTypePlace) isMoveType() {}
func (m MoveTypePlace) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

// MoveCardSet is the common shape of every card move: a source set moves
// (optionally a bounded quantity of it) face up/down/private into a
// destination set.
type MoveCardSet interface {
	Node
	isMoveCardSet()
}

type MoveCardSetPlain struct {
	From   CardSet
	Status Status
	To     CardSet
}

func (MoveCardSetPlain) isMoveCardSet() {}
func (m MoveCardSetPlain) Walk(v Visitor) {
	v.Enter(m)
	m.From.Walk(v)
	m.To.Walk(v)
	v.Exit(m)
}

type MoveCardSetQuantity struct {
	Quantity Quantity
	From     CardSet
	Status   Status
	To       CardSet
}

func (MoveCardSetQuantity) isMoveCardSet() {}
func (m MoveCardSetQuantity) Walk(v Visitor) {
	v.Enter(m)
	m.Quantity.Walk(v)
	m.From.Walk(v)
	m.To.Walk(v)
	v.Exit(m)
}

type ClassicMove struct{ Move MoveCardSet }

func (m ClassicMove) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

type DealMove struct{ Move MoveCardSet }

func (m DealMove) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

type ExchangeMove struct{ Move MoveCardSet }

func (m ExchangeMove) Walk(v Visitor) { v.Enter(m); m.Move.Walk(v); v.Exit(m) }

// TokenLocExpr is a placement target for a token move: a groupable
// location, optionally restricted to specific players' holdings.
type TokenLocExpr interface {
	Node
	isTokenLocExpr()
}

type TokenLocExprGroupable struct{ Groupable Groupable }

func (TokenLocExprGroupable) isTokenLocExpr() {}
func (t TokenLocExprGroupable) Walk(v Visitor) { v.Enter(t); t.Groupable.Walk(v); v.Exit(t) }

type TokenLocExprGroupablePlayers struct {
	Groupable Groupable
	Players   Players
}

func (TokenLocExprGroupablePlayers) isTokenLocExpr() {}
func (t TokenLocExprGroupablePlayers) Walk(v Visitor) {
	v.Enter(t)
	t.Groupable.Walk(v)
	t.Players.Walk(v)
	v.Exit(t)
}

// TokenMove places tokens from one location expression to another; Token
// is a use site in every variant.
type TokenMove interface {
	Node
	isTokenMove()
}

type TokenMovePlace struct {
	Token Ident
	From  TokenLocExpr
	To    TokenLocExpr
}

func (TokenMovePlace) isTokenMove() {}
func (t TokenMovePlace) Walk(v Visitor) {
	v.Enter(t)
	t.From.Walk(v)
	t.To.Walk(v)
	v.Exit(t)
}

type TokenMovePlaceQuantity struct {
	Quantity Quantity
	Token    Ident
	From     TokenLocExpr
	To       TokenLocExpr
}

func (TokenMovePlaceQuantity) isTokenMove() {}
func (t TokenMovePlaceQuantity) Walk(v Visitor) {
	v.Enter(t)
	t.Quantity.Walk(v)
	t.From.Walk(v)
	t.To.Walk(v)
	v.Exit(t)
}

// ScoreRule computes an integer score for a group of players, either
// directly or via an existing memory (Name is a use).
type ScoreRule interface {
	Node
	isScoreRule()
}

type ScoreRuleScore struct {
	Score   IntExpr
	Players Players
}

func (ScoreRuleScore) isScoreRule() {}
func (s ScoreRuleScore) Walk(v Visitor) {
	v.Enter(s)
	s.Score.Walk(v)
	s.Players.Walk(v)
	v.Exit(s)
}

type ScoreRuleScoreMemory struct {
	Score   IntExpr
	Name    Ident
	Players Players
}

func (ScoreRuleScoreMemory) isScoreRule() {}
func (s ScoreRuleScoreMemory) Walk(v Visitor) {
	v.Enter(s)
	s.Score.Walk(v)
	s.Players.Walk(v)
	v.Exit(s)
}

// WinnerType names what determines the winner: accumulated score, a
// memory's extremum (Name is a use), or table position.
type WinnerType interface {
	Node
	isWinnerType()
}

type WinnerTypeScore struct{}

func (WinnerTypeScore) isWinnerType() {}
func (w WinnerTypeScore) Walk(v Visitor) { v.Enter(w); v.Exit(w) }

type WinnerTypeMemory struct{ Name Ident }

func (WinnerTypeMemory) isWinnerType() {}
func (w WinnerTypeMemory) Walk(v Visitor) { v.Enter(w); v.Exit(w) }

type WinnerTypePosition struct{}

func (WinnerTypePosition) isWinnerType() {}
func (w WinnerTypePosition) Walk(v Visitor) { v.Enter(w); v.Exit(w) }

// WinnerRule declares the winner(s) outright, or by extremum of a
// WinnerType.
type WinnerRule interface {
	Node
	isWinnerRule()
}

type WinnerRuleWinner struct{ Players Players }

func (WinnerRuleWinner) isWinnerRule() {}
func (w WinnerRuleWinner) Walk(v Visitor) { v.Enter(w); w.Players.Walk(v); v.Exit(w) }

type WinnerRuleWinnerWith struct {
	Extrema    Extrema
	WinnerType WinnerType
}

func (WinnerRuleWinnerWith) isWinnerRule() {}
func (w WinnerRuleWinnerWith) Walk(v Visitor) { v.Enter(w); w.WinnerType.Walk(v); v.Exit(w) }
