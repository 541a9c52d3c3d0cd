package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cardlang/analysis/internal/config"
	"github.com/cardlang/analysis/internal/pipeline"
)

// DocumentState is the cached analysis result for one open document.
type DocumentState struct {
	Content string
	Ctx     *pipeline.Context
	Mu      sync.RWMutex
}

// Server implements a stdio JSON-RPC Language Server for cardlang,
// framed the same Content-Length way the teacher's own LSP server is.
type Server struct {
	documents map[string]*DocumentState
	mu        sync.RWMutex
	writer    io.Writer
	rootPath  string
	cfg       config.AnalyzerConfig
}

func NewServer(writer io.Writer) *Server {
	if writer == nil {
		writer = os.Stdout
	}
	cfg, err := config.Load("cardlang.yaml")
	if err != nil {
		log.Printf("loading config, falling back to defaults: %v", err)
		cfg = config.Default()
	}
	return &Server{
		documents: make(map[string]*DocumentState),
		writer:    writer,
		cfg:       cfg,
	}
}

func (s *Server) Start() {
	reader := bufio.NewReader(os.Stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("error reading header: %v", err)
			}
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "Content-Length: ") {
			continue
		}
		contentLength, err := strconv.Atoi(strings.TrimPrefix(line, "Content-Length: "))
		if err != nil {
			log.Printf("error parsing Content-Length: %v", err)
			continue
		}

		for {
			sep, err := reader.ReadString('\n')
			if err != nil {
				log.Printf("error reading header separator: %v", err)
				return
			}
			if strings.TrimRight(sep, "\r\n") == "" {
				break
			}
		}

		content := make([]byte, contentLength)
		if _, err := io.ReadFull(reader, content); err != nil {
			log.Printf("error reading message body: %v", err)
			break
		}

		if err := s.handleMessage(content); err != nil {
			log.Printf("error handling message: %v", err)
		}
	}
}

func (s *Server) handleMessage(content []byte) error {
	var base struct {
		Jsonrpc string      `json:"jsonrpc"`
		ID      interface{} `json:"id,omitempty"`
		Method  string      `json:"method"`
		Params  interface{} `json:"params,omitempty"`
	}
	if err := json.Unmarshal(content, &base); err != nil {
		return fmt.Errorf("unmarshaling message: %w", err)
	}

	if base.ID != nil {
		return s.handleRequest(base.ID, base.Method, content)
	}
	return s.handleNotification(base.Method, content)
}

func (s *Server) handleRequest(id interface{}, method string, content []byte) error {
	switch method {
	case "initialize":
		var params InitializeParams
		if err := json.Unmarshal(content, &RequestMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleInitialize(id, params)
	case "shutdown":
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: nil})
	case "textDocument/completion":
		var params CompletionParams
		if err := json.Unmarshal(content, &RequestMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleCompletion(id, params)
	default:
		return s.sendResponse(ResponseMessage{
			Jsonrpc: "2.0",
			ID:      id,
			Error:   &RPCError{Code: -32601, Message: fmt.Sprintf("method not found: %s", method)},
		})
	}
}

func (s *Server) handleNotification(method string, content []byte) error {
	switch method {
	case "initialized":
		return nil
	case "textDocument/didOpen":
		var params DidOpenTextDocumentParams
		if err := json.Unmarshal(content, &NotificationMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleDidOpen(params)
	case "textDocument/didChange":
		var params DidChangeTextDocumentParams
		if err := json.Unmarshal(content, &NotificationMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleDidChange(params)
	case "textDocument/didClose":
		var params DidCloseTextDocumentParams
		if err := json.Unmarshal(content, &NotificationMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleDidClose(params)
	case "exit":
		os.Exit(0)
		return nil
	default:
		return nil
	}
}

func (s *Server) handleInitialize(id interface{}, params InitializeParams) error {
	if params.RootURI != nil && *params.RootURI != "" {
		s.rootPath = uriToPath(*params.RootURI)
	} else if params.RootPath != nil {
		s.rootPath = *params.RootPath
	}

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: 1,
			CompletionProvider: &CompletionOptions{
				TriggerCharacters: []string{" "},
			},
		},
	}
	return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: result})
}

func (s *Server) sendResponse(response ResponseMessage) error {
	return s.sendMessage(response)
}

func (s *Server) sendNotification(notification NotificationMessage) error {
	return s.sendMessage(notification)
}

func (s *Server) sendMessage(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n%s", len(data), data)
	return err
}

func uriToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
