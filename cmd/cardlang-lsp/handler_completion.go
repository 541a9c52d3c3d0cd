package main

import (
	"github.com/cardlang/analysis/internal/completion"
	"github.com/cardlang/analysis/internal/symbols"
)

func (s *Server) handleCompletion(id interface{}, params CompletionParams) error {
	s.mu.RLock()
	state, exists := s.documents[params.TextDocument.URI]
	s.mu.RUnlock()

	if !exists {
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: CompletionList{Items: []CompletionItem{}}})
	}

	state.Mu.RLock()
	ctx := state.Ctx
	state.Mu.RUnlock()

	var table *symbols.Table
	if ctx != nil {
		table = ctx.Result.Table
	}

	items := make([]CompletionItem, 0)
	for _, it := range completion.Items(table) {
		items = append(items, CompletionItem{
			Label:  it.Label,
			Kind:   completionKind(it.Kind),
			Detail: it.Detail,
		})
	}

	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  CompletionList{IsIncomplete: false, Items: items},
	})
}

func completionKind(k completion.ItemKind) CompletionItemKind {
	switch k {
	case completion.ItemKeyword:
		return CompletionItemKeyword
	case completion.ItemClass:
		return CompletionItemClass
	default:
		return CompletionItemVariable
	}
}
