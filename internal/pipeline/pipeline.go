// Package pipeline sequences the CLI's processing stages over a single
// source file: parse, then validate. It keeps the teacher's own
// Pipeline/Processor shape, retargeted so each stage threads the
// analysis facade's result forward instead of stopping at the first
// failure, since the CLI wants every diagnostic it can report in one
// pass.
package pipeline

import (
	"github.com/cardlang/analysis/internal/analysis"
	"github.com/cardlang/analysis/internal/diagnostics"
)

// Context threads a document through the pipeline's stages.
type Context struct {
	File   string
	Source string
	Result analysis.Result
	Errs   []*diagnostics.Error
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages
		// (e.g. LSP needs both parse and semantic errors).
	}
	return ctx
}

// ParseStage lexes and parses ctx.Source into ctx.Result.Game.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) *Context {
	game, errs := analysis.ParseDocument(ctx.Source)
	ctx.Result.Game = game
	stampFile(errs, ctx.File)
	ctx.Errs = append(ctx.Errs, errs...)
	return ctx
}

// ValidateStage runs symbol resolution, semantic checking, and flow
// analysis over whatever game ParseStage produced. It is skipped when
// parsing failed to produce a game at all.
type ValidateStage struct{}

func (ValidateStage) Process(ctx *Context) *Context {
	if ctx.Result.Game == nil {
		return ctx
	}
	result := analysis.ValidateGame(ctx.Result.Game)
	ctx.Result.Table = result.Table
	ctx.Result.Ir = result.Ir
	stampFile(result.Diagnostics, ctx.File)
	ctx.Errs = append(ctx.Errs, result.Diagnostics...)
	return ctx
}

// stampFile fills in File on every diagnostic produced by a stage: the
// analysis facade itself never sees a file path, only the pipeline
// Context that drives it does.
func stampFile(errs []*diagnostics.Error, file string) {
	for _, e := range errs {
		e.File = file
	}
}

// Standard is the default pipeline used by both the CLI and the LSP
// server: parse, then validate.
func Standard() *Pipeline {
	return New(ParseStage{}, ValidateStage{})
}
