// Command cardlang-lsp is a stdio Language Server for cardlang,
// publishing diagnostics and completions backed by the analysis
// facade.
package main

import (
	"log"
	"os"

	"github.com/cardlang/analysis/internal/config"
)

func main() {
	config.IsLSPMode = true

	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	server := NewServer(os.Stdout)
	server.Start()
}
