package parser

import (
	"testing"

	"github.com/cardlang/analysis/internal/ast"
	"github.com/cardlang/analysis/internal/diagnostics"
)

func mustParse(t *testing.T, src string) *ast.Game {
	t.Helper()
	game, errs := Parse(src)
	if len(errs) != 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("unexpected parse errors: %v\nsource:\n%s", msgs, src)
	}
	if game == nil {
		t.Fatalf("expected a non-nil game")
	}
	return game
}

func TestParseSetupRules(t *testing.T) {
	src := `
player Alice, Bob
location Deck, Discard on table
card on Deck: Rank(Ace, King, Queen) for Suite(Hearts, Spades)
combo Pair where Rank same
`
	game := mustParse(t, src)
	if len(game.Flows) != 4 {
		t.Fatalf("got %d flows, want 4", len(game.Flows))
	}

	rule, ok := game.Flows[0].(ast.FlowRule)
	if !ok {
		t.Fatalf("flow 0: got %T, want ast.FlowRule", game.Flows[0])
	}
	setup, ok := rule.Rule.(ast.GameRuleSetUp)
	if !ok {
		t.Fatalf("rule 0: got %T, want ast.GameRuleSetUp", rule.Rule)
	}
	players, ok := setup.SetUp.(ast.SetUpCreatePlayer)
	if !ok {
		t.Fatalf("setup 0: got %T, want ast.SetUpCreatePlayer", setup.SetUp)
	}
	if len(players.Names) != 2 || players.Names[0].Node != "Alice" || players.Names[1].Node != "Bob" {
		t.Fatalf("got players %+v, want Alice, Bob", players.Names)
	}
}

func TestParseStageWithMoveAndEndTurn(t *testing.T) {
	src := `
stage Draw for current until end {
	move Deck face up to Hand of current
	end turn
}
`
	game := mustParse(t, src)
	if len(game.Flows) != 1 {
		t.Fatalf("got %d flows, want 1", len(game.Flows))
	}
	flowStage, ok := game.Flows[0].(ast.FlowStage)
	if !ok {
		t.Fatalf("flow 0: got %T, want ast.FlowStage", game.Flows[0])
	}
	if flowStage.Stage.Stage.Node != "Draw" {
		t.Fatalf("got stage name %q, want Draw", flowStage.Stage.Stage.Node)
	}
	if _, ok := flowStage.Stage.EndCondition.(ast.EndConditionUntilEnd); !ok {
		t.Fatalf("got end condition %T, want ast.EndConditionUntilEnd", flowStage.Stage.EndCondition)
	}
	if len(flowStage.Stage.Flows) != 2 {
		t.Fatalf("got %d body flows, want 2", len(flowStage.Stage.Flows))
	}
	if _, ok := flowStage.Stage.Flows[0].(ast.FlowRule); !ok {
		t.Fatalf("body flow 0: got %T, want ast.FlowRule (move)", flowStage.Stage.Flows[0])
	}
	endRule := flowStage.Stage.Flows[1].(ast.FlowRule).Rule.(ast.GameRuleAction).Action.(ast.ActionEnd)
	if _, ok := endRule.EndType.(ast.EndTypeTurn); !ok {
		t.Fatalf("got end type %T, want ast.EndTypeTurn", endRule.EndType)
	}
}

func TestParseIfChooseAndScoring(t *testing.T) {
	src := `
if (size of Hand of current > 0) {
	end stage
}
choose {
	end turn
	or
	end stage
}
score size of Hand of current to Pts of all
winner is highest Pts
`
	game := mustParse(t, src)
	if len(game.Flows) != 4 {
		t.Fatalf("got %d flows, want 4", len(game.Flows))
	}
	if _, ok := game.Flows[0].(ast.FlowIfRule); !ok {
		t.Fatalf("flow 0: got %T, want ast.FlowIfRule", game.Flows[0])
	}
	choice, ok := game.Flows[1].(ast.FlowChoiceRule)
	if !ok {
		t.Fatalf("flow 1: got %T, want ast.FlowChoiceRule", game.Flows[1])
	}
	if len(choice.Choice.Options) != 2 {
		t.Fatalf("got %d choice options, want 2", len(choice.Choice.Options))
	}
	scoreRule := game.Flows[2].(ast.FlowRule).Rule.(ast.GameRuleScoring).Scoring.(ast.ScoringScore)
	scoreMemory, ok := scoreRule.Score.(ast.ScoreRuleScoreMemory)
	if !ok {
		t.Fatalf("got score rule %T, want ast.ScoreRuleScoreMemory", scoreRule.Score)
	}
	if scoreMemory.Name.Node != "Pts" {
		t.Fatalf("got score memory name %q, want Pts", scoreMemory.Name.Node)
	}
	winnerRule := game.Flows[3].(ast.FlowRule).Rule.(ast.GameRuleScoring).Scoring.(ast.ScoringWinner)
	winnerWith, ok := winnerRule.Winner.(ast.WinnerRuleWinnerWith)
	if !ok {
		t.Fatalf("got winner rule %T, want ast.WinnerRuleWinnerWith", winnerRule.Winner)
	}
	if winnerWith.Extrema != ast.ExtremaMax {
		t.Fatalf("got extrema %v, want ExtremaMax", winnerWith.Extrema)
	}
}

func TestParseRecoversFromUnexpectedToken(t *testing.T) {
	src := `
player Alice
$$$
player Bob
`
	game, errs := Parse(src)
	if len(errs) == 0 {
		t.Fatalf("expected parse errors for malformed input")
	}
	if game == nil || len(game.Flows) != 2 {
		t.Fatalf("expected recovery to still yield 2 flows, got %v", game)
	}
}

func TestParseRejectsReservedKeywordAsIdentifier(t *testing.T) {
	_, errs := Parse("player stage\n")
	if len(errs) == 0 {
		t.Fatalf("expected a diagnostic for a reserved keyword in identifier position")
	}
	if errs[0].Code != diagnostics.CodeReservedKeyword {
		t.Fatalf("got code %v, want %v", errs[0].Code, diagnostics.CodeReservedKeyword)
	}
}

func TestParseFlagsLowercaseIdentifierButStillRecovers(t *testing.T) {
	game, errs := Parse("player alice\n")
	if len(errs) != 1 || errs[0].Code != diagnostics.CodeIdentifierCasing {
		t.Fatalf("got errs %+v, want a single %v", errs, diagnostics.CodeIdentifierCasing)
	}
	players, ok := game.Flows[0].(ast.FlowRule).Rule.(ast.GameRuleSetUp).SetUp.(ast.SetUpCreatePlayer)
	if !ok || len(players.Names) != 1 || players.Names[0].Node != "alice" {
		t.Fatalf("got flows %+v, want the lowercase name still consumed", game.Flows)
	}
}
