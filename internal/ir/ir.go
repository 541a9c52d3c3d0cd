// Package ir lowers a cardlang Game's structured flow into a labeled
// directed control-flow graph: the IR builder of the analysis pipeline.
package ir

import "github.com/cardlang/analysis/internal/ast"

// BlockId is an opaque index into the flat block list; edges reference
// targets by id, never by owning pointer.
type BlockId int

// BlockKind tags a block as atomic (one rule) or one of the synthetic
// control shapes the builder introduces for branching, looping, and
// stage/game termination.
type BlockKind int

const (
	BlockAtomic BlockKind = iota
	BlockIfSplit
	BlockChoiceSplit
	BlockOptionalSplit
	BlockConditionalLadder
	BlockStageHeader
	BlockStageFooter
	BlockStageExit
	BlockGameExit
)

// EndPredicateKind records the shape of a stage's `until ...` clause on
// its loop back-edge, without evaluating it.
type EndPredicateKind int

const (
	PredicateNone EndPredicateKind = iota
	PredicateBool
	PredicateReps
	PredicateBoolAndReps
	PredicateBoolOrReps
	PredicateEndOnly
)

// Payload labels an edge's triggering condition.
type Payload struct {
	Label     string
	Predicate EndPredicateKind
}

// Edge is one outgoing transition of a block.
type Edge struct {
	To      BlockId
	Payload Payload
}

// FlowErrorKind distinguishes the four structural diagnostics the builder
// can emit.
type FlowErrorKind int

const (
	Unreachable FlowErrorKind = iota
	NoStageToEnd
	FlowNotConnected
	FlowNotConnectedWithControl
)

// FlowError is a single IR-level diagnostic. FlowNotConnectedWithControl
// is structural and carries no locatable span (HasSpan is false).
type FlowError struct {
	Kind    FlowErrorKind
	Span    ast.Span
	HasSpan bool
}

// Ir is the lowered control-flow graph: exactly one entry, a map from
// block to its outgoing edges, and the diagnostics produced while
// building it.
type Ir struct {
	Entry       BlockId
	States      map[BlockId][]Edge
	Kinds       map[BlockId]BlockKind
	Diagnostics []FlowError
}

func newIr() *Ir {
	return &Ir{
		States: make(map[BlockId][]Edge),
		Kinds:  make(map[BlockId]BlockKind),
	}
}

type builder struct {
	ir          *Ir
	nextID      BlockId
	stageStack  []BlockId // footer ids of enclosing stages, innermost last
	headerStack []BlockId // decision-block ids of enclosing stages, for "turn" ends
	gameExit    BlockId
}

func (b *builder) newBlock(kind BlockKind) BlockId {
	id := b.nextID
	b.nextID++
	b.ir.Kinds[id] = kind
	b.ir.States[id] = nil
	return id
}

func (b *builder) addEdge(from, to BlockId, payload Payload) {
	b.ir.States[from] = append(b.ir.States[from], Edge{To: to, Payload: payload})
}

// Build lowers game into a control-flow graph. Build never fails: every
// diagnostic it finds is recorded on the returned Ir's Diagnostics.
func Build(game *ast.Game) *Ir {
	b := &builder{ir: newIr()}
	b.gameExit = b.newBlock(BlockGameExit)
	entry := b.lowerSeq(game.Flows, b.gameExit)
	b.ir.Entry = entry

	b.ir.Diagnostics = append(b.ir.Diagnostics, checkReachability(b.ir)...)
	b.ir.Diagnostics = append(b.ir.Diagnostics, checkConnectedness(b.ir)...)
	b.ir.Diagnostics = append(b.ir.Diagnostics, checkWeaklyConnected(b.ir)...)

	return b.ir
}

// lowerSeq lowers an ordered flow list, threading each component's
// successor to the next component's entry, and the last component's
// successor to succ. An empty list collapses to succ directly.
func (b *builder) lowerSeq(flows []ast.FlowComponent, succ BlockId) BlockId {
	if len(flows) == 0 {
		return succ
	}
	restEntry := b.lowerSeq(flows[1:], succ)
	return b.lowerComponent(flows[0], restEntry)
}

func (b *builder) lowerComponent(fc ast.FlowComponent, succ BlockId) BlockId {
	switch c := fc.(type) {
	case ast.FlowRule:
		return b.lowerRule(c.Rule, succ)
	case ast.FlowIfRule:
		return b.lowerIf(c.If, succ)
	case ast.FlowOptionalRule:
		return b.lowerOptional(c.Optional, succ)
	case ast.FlowChoiceRule:
		return b.lowerChoice(c.Choice, succ)
	case ast.FlowConditional:
		return b.lowerConditional(c.Conditional, succ)
	case ast.FlowStage:
		return b.lowerStage(c.Stage, succ)
	default:
		return succ
	}
}

func (b *builder) lowerRule(rule ast.GameRule, succ BlockId) BlockId {
	if action, ok := rule.(ast.GameRuleAction); ok {
		if end, ok := action.Action.(ast.ActionEnd); ok {
			return b.lowerEnd(end.EndType, succ)
		}
	}
	block := b.newBlock(BlockAtomic)
	b.addEdge(block, succ, Payload{Label: actionLabel(rule)})
	return block
}

// lowerEnd wires an `end ...` action directly to its structural target
// instead of the normal sequential successor.
func (b *builder) lowerEnd(end ast.EndType, succ BlockId) BlockId {
	block := b.newBlock(BlockAtomic)
	switch end.(type) {
	case ast.EndTypeTurn:
		if len(b.headerStack) == 0 {
			b.ir.Diagnostics = append(b.ir.Diagnostics, FlowError{Kind: NoStageToEnd})
			b.addEdge(block, succ, Payload{Label: "turn-end"})
			return block
		}
		header := b.headerStack[len(b.headerStack)-1]
		b.addEdge(block, header, Payload{Label: "turn-end"})
	case ast.EndTypeStage:
		if len(b.stageStack) == 0 {
			b.ir.Diagnostics = append(b.ir.Diagnostics, FlowError{Kind: NoStageToEnd})
			b.addEdge(block, succ, Payload{Label: "end-stage"})
			return block
		}
		footer := b.stageStack[len(b.stageStack)-1]
		b.addEdge(block, footer, Payload{Label: "end-stage"})
	case ast.EndTypeGameWithWinner:
		b.addEdge(block, b.gameExit, Payload{Label: "end-game"})
	}
	return block
}

func (b *builder) lowerIf(rule ast.IfRule, succ BlockId) BlockId {
	split := b.newBlock(BlockIfSplit)
	bodyEntry := b.lowerSeq(rule.Flows, succ)
	b.addEdge(split, bodyEntry, Payload{Label: "true"})
	b.addEdge(split, succ, Payload{Label: "false"})
	return split
}

func (b *builder) lowerOptional(rule ast.OptionalRule, succ BlockId) BlockId {
	split := b.newBlock(BlockOptionalSplit)
	bodyEntry := b.lowerSeq(rule.Flows, succ)
	b.addEdge(split, bodyEntry, Payload{Label: "taken"})
	b.addEdge(split, succ, Payload{Label: "skipped"})
	return split
}

func (b *builder) lowerChoice(rule ast.ChoiceRule, succ BlockId) BlockId {
	split := b.newBlock(BlockChoiceSplit)
	for i, option := range rule.Options {
		optionEntry := b.lowerComponent(option, succ)
		b.addEdge(split, optionEntry, Payload{Label: choiceLabel(i)})
	}
	return split
}

func (b *builder) lowerConditional(cond ast.Conditional, succ BlockId) BlockId {
	return b.lowerCases(cond.Cases, succ)
}

// lowerCases builds the IfSplit chain described in component design
// §4.4: an else case is the fall-through of the final split. A case with
// an empty body (the "cases without a body" error condition) collapses
// straight to succ rather than allocating a dead block.
func (b *builder) lowerCases(cases []ast.Case, succ BlockId) BlockId {
	if len(cases) == 0 {
		return succ
	}
	first := cases[0]
	rest := cases[1:]

	switch c := first.(type) {
	case ast.CaseElse:
		if len(c.Flows) == 0 {
			return succ
		}
		return b.lowerSeq(c.Flows, succ)
	case ast.CaseNoBool:
		// A case missing its condition is treated as an unconditional
		// pass-through. Any cases chained after it still get lowered (so
		// their blocks exist and can be flagged), but nothing in the
		// graph points to them, so the reachability pass reports them on
		// its own instead of this builder inventing a fifth flow
		// diagnostic for "cases without a body are errors".
		b.lowerCases(rest, succ)
		if len(c.Flows) == 0 {
			return succ
		}
		return b.lowerSeq(c.Flows, succ)
	case ast.CaseBool:
		falseEntry := b.lowerCases(rest, succ)
		if len(c.Flows) == 0 {
			return falseEntry
		}
		bodyEntry := b.lowerSeq(c.Flows, succ)
		split := b.newBlock(BlockIfSplit)
		b.addEdge(split, bodyEntry, Payload{Label: "true"})
		b.addEdge(split, falseEntry, Payload{Label: "false"})
		b.ir.Kinds[split] = BlockConditionalLadder
		return split
	default:
		return succ
	}
}

func (b *builder) lowerStage(stage ast.SeqStage, succ BlockId) BlockId {
	header := b.newBlock(BlockStageHeader)
	footer := b.newBlock(BlockStageFooter)
	decision := b.newBlock(BlockStageHeader)

	b.addEdge(footer, succ, Payload{Label: "exit-stage"})

	b.stageStack = append(b.stageStack, footer)
	b.headerStack = append(b.headerStack, decision)

	bodyEntry := b.lowerSeq(stage.Flows, decision)

	b.headerStack = b.headerStack[:len(b.headerStack)-1]
	b.stageStack = b.stageStack[:len(b.stageStack)-1]

	predicate := endPredicateKind(stage.EndCondition)
	b.addEdge(decision, bodyEntry, Payload{Label: "iterate", Predicate: predicate})
	b.addEdge(decision, footer, Payload{Label: "exit", Predicate: predicate})
	b.addEdge(header, bodyEntry, Payload{Label: "enter"})

	return header
}

func endPredicateKind(cond ast.EndCondition) EndPredicateKind {
	switch c := cond.(type) {
	case ast.EndConditionUntilBool:
		return PredicateBool
	case ast.EndConditionUntilRep:
		return PredicateReps
	case ast.EndConditionUntilBoolRep:
		if c.Op == ast.LogicAnd {
			return PredicateBoolAndReps
		}
		return PredicateBoolOrReps
	case ast.EndConditionUntilEnd:
		return PredicateEndOnly
	default:
		return PredicateNone
	}
}

func choiceLabel(i int) string {
	return "chosen/" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

func actionLabel(rule ast.GameRule) string {
	switch r := rule.(type) {
	case ast.GameRuleSetUp:
		return setupLabel(r.SetUp)
	case ast.GameRuleAction:
		return actionRuleLabel(r.Action)
	case ast.GameRuleScoring:
		return scoringLabel(r.Scoring)
	default:
		return "rule"
	}
}

func setupLabel(s ast.SetUpRule) string {
	switch s.(type) {
	case ast.SetUpCreatePlayer:
		return "create-player"
	case ast.SetUpCreateTeams:
		return "create-teams"
	case ast.SetUpCreateTurnorder, ast.SetUpCreateTurnorderRandom:
		return "create-turnorder"
	case ast.SetUpCreateLocation:
		return "create-location"
	case ast.SetUpCreateCardOnLocation:
		return "create-card-on-location"
	case ast.SetUpCreateTokenOnLocation:
		return "create-token"
	case ast.SetUpCreateCombo:
		return "create-combo"
	case ast.SetUpCreateMemory, ast.SetUpCreateMemoryWithMemoryType:
		return "create-memory"
	case ast.SetUpCreatePrecedence:
		return "create-precedence"
	case ast.SetUpCreatePointMap:
		return "create-pointmap"
	default:
		return "setup"
	}
}

func actionRuleLabel(a ast.ActionRule) string {
	switch a.(type) {
	case ast.ActionFlip:
		return "flip"
	case ast.ActionShuffle:
		return "shuffle"
	case ast.ActionPlayerOutOfStage:
		return "out-of-stage"
	case ast.ActionPlayerOutOfGameSucc:
		return "out-of-game-success"
	case ast.ActionPlayerOutOfGameFail:
		return "out-of-game-fail"
	case ast.ActionSetMemory:
		return "set-memory"
	case ast.ActionResetMemory:
		return "reset-memory"
	case ast.ActionCycle:
		return "cycle"
	case ast.ActionBid, ast.ActionBidMemory:
		return "bid"
	case ast.ActionDemand, ast.ActionDemandMemory:
		return "demand"
	case ast.ActionMove:
		return "move"
	default:
		return "action"
	}
}

func scoringLabel(s ast.ScoringRule) string {
	switch s.(type) {
	case ast.ScoringScore:
		return "score"
	case ast.ScoringWinner:
		return "winner"
	default:
		return "scoring"
	}
}
