package main

import (
	"fmt"

	"github.com/cardlang/analysis/internal/pipeline"
)

func (s *Server) handleDidOpen(params DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	ctx := s.analyzeDocument(params.TextDocument.Text, uri)

	s.mu.Lock()
	s.documents[uri] = &DocumentState{Content: params.TextDocument.Text, Ctx: ctx}
	s.mu.Unlock()

	return s.publishDiagnostics(uri, ctx)
}

func (s *Server) handleDidChange(params DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	text := params.ContentChanges[0].Text

	s.mu.RLock()
	state, exists := s.documents[uri]
	s.mu.RUnlock()
	if !exists {
		return fmt.Errorf("document %s not found", uri)
	}

	ctx := s.analyzeDocument(text, uri)
	state.Mu.Lock()
	state.Content = text
	state.Ctx = ctx
	state.Mu.Unlock()

	return s.publishDiagnostics(uri, ctx)
}

func (s *Server) handleDidClose(params DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

func (s *Server) analyzeDocument(content, uri string) *pipeline.Context {
	ctx := &pipeline.Context{File: uriToPath(uri), Source: content}
	ctx = pipeline.Standard().Run(ctx)

	for _, e := range unknownPlayerNames(ctx.Result.Game) {
		e.File = ctx.File
		ctx.Errs = append(ctx.Errs, e)
	}
	return ctx
}
