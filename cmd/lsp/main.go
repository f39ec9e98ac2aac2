package main

import (
	"log"
	"os"

	"github.com/funvibe/typeassist/internal/config"
)

func main() {
	config.IsLSPMode = true

	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Log to stderr, not stdout (stdout is for LSP protocol)

	server := NewLanguageServer(os.Stdout)
	server.Start()
	os.Exit(server.ExitCode())
}
