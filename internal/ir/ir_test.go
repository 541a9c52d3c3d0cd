package ir

import (
	"testing"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/parser"
)

func buildFrom(t *testing.T, src string) *Ir {
	t.Helper()
	game, errs := parser.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return Build(game)
}

func diagnosticKinds(ir *Ir) map[FlowErrorKind]int {
	counts := make(map[FlowErrorKind]int)
	for _, d := range ir.Diagnostics {
		counts[d.Kind]++
	}
	return counts
}

func TestBuildSimpleSequenceHasNoDiagnostics(t *testing.T) {
	ir := buildFrom(t, `
player Alice, Bob
location Deck on table
`)
	if len(ir.Diagnostics) != 0 {
		t.Fatalf("got diagnostics %+v, want none", ir.Diagnostics)
	}
	if len(ir.States[ir.Entry]) == 0 {
		t.Fatalf("entry block has no outgoing edges")
	}
}

func TestBuildEndTurnOutsideStageReportsNoStageToEnd(t *testing.T) {
	ir := buildFrom(t, `
end turn
`)
	counts := diagnosticKinds(ir)
	if counts[NoStageToEnd] == 0 {
		t.Fatalf("got diagnostics %+v, want a NoStageToEnd", ir.Diagnostics)
	}
}

func TestBuildEndStageOutsideStageReportsNoStageToEnd(t *testing.T) {
	ir := buildFrom(t, `
end stage
`)
	counts := diagnosticKinds(ir)
	if counts[NoStageToEnd] == 0 {
		t.Fatalf("got diagnostics %+v, want a NoStageToEnd", ir.Diagnostics)
	}
}

func TestBuildStageLoopsBackThroughDecisionBlock(t *testing.T) {
	ir := buildFrom(t, `
stage Draw for current until end {
	end turn
}
`)
	var headers, footers int
	for _, kind := range ir.Kinds {
		switch kind {
		case BlockStageHeader:
			headers++
		case BlockStageFooter:
			footers++
		}
	}
	// One header for the stage's external entry, one more reused for the
	// internal post-body decision point; one footer.
	if headers != 2 {
		t.Fatalf("got %d BlockStageHeader blocks, want 2 (entry + decision)", headers)
	}
	if footers != 1 {
		t.Fatalf("got %d BlockStageFooter blocks, want 1", footers)
	}
	if len(ir.Diagnostics) != 0 {
		t.Fatalf("got diagnostics %+v, want none", ir.Diagnostics)
	}
}

func TestBuildConditionalCaseNoBoolCausesUnreachableTail(t *testing.T) {
	// Hand-built since the concrete grammar the parser covers doesn't
	// surface a Conditional/Case flow component.
	unreachableRule := ast.FlowRule{Rule: ast.GameRuleAction{Action: ast.ActionShuffle{
		Set: ast.CardSetGroup{Group: ast.GroupGroupable{Groupable: ast.GroupableLocation{Name: ast.Ident{Node: "Deck"}}}},
	}}}

	game := &ast.Game{
		Flows: []ast.FlowComponent{
			ast.FlowConditional{Conditional: ast.Conditional{
				Cases: []ast.Case{
					ast.CaseNoBool{Flows: []ast.FlowComponent{
						ast.FlowRule{Rule: ast.GameRuleAction{Action: ast.ActionFlip{
							Set:    ast.CardSetGroup{Group: ast.GroupGroupable{Groupable: ast.GroupableLocation{Name: ast.Ident{Node: "Deck"}}}},
							Status: ast.StatusFaceUp,
						}}},
					}},
					ast.CaseBool{
						Condition: ast.BoolExprAggregate{Aggregate: ast.AggregateBoolCardSetEmpty{
							Set: ast.CardSetGroup{Group: ast.GroupGroupable{Groupable: ast.GroupableLocation{Name: ast.Ident{Node: "Deck"}}}},
						}},
						Flows: []ast.FlowComponent{unreachableRule},
					},
				},
			}},
		},
	}

	built := Build(game)
	counts := diagnosticKinds(built)
	if counts[Unreachable] == 0 {
		t.Fatalf("got diagnostics %+v, want an Unreachable (case chained after a no-condition case)", built.Diagnostics)
	}
}

func TestBuildDisconnectedComponentReportsFlowNotConnectedWithControl(t *testing.T) {
	b := &builder{ir: newIr()}
	b.gameExit = b.newBlock(BlockGameExit)
	entry := b.newBlock(BlockAtomic)
	b.addEdge(entry, b.gameExit, Payload{Label: "done"})
	b.ir.Entry = entry

	// An orphaned block with no connection to the rest of the graph.
	b.newBlock(BlockAtomic)

	b.ir.Diagnostics = append(b.ir.Diagnostics, checkWeaklyConnected(b.ir)...)
	counts := diagnosticKinds(b.ir)
	if counts[FlowNotConnectedWithControl] != 1 {
		t.Fatalf("got diagnostics %+v, want exactly one FlowNotConnectedWithControl", b.ir.Diagnostics)
	}
}
