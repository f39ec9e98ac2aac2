package main

import (
	"log"

	"github.com/funvibe/typeassist/internal/config"
)

func (s *LanguageServer) handleInitialize(id interface{}, params InitializeParams) error {
	log.Printf("Handling initialize request with ID: %v", id)

	s.mu.Lock()
	if params.RootURI != nil && *params.RootURI != "" {
		s.rootPath = uriToPath(*params.RootURI)
	} else if params.RootPath != nil && *params.RootPath != "" {
		s.rootPath = *params.RootPath
	}
	s.settings = s.loadSettings(params.InitializationOptions)

	if td := params.Capabilities.TextDocument; td != nil && td.CodeAction != nil && td.CodeAction.ResolveSupport != nil {
		for _, prop := range td.CodeAction.ResolveSupport.Properties {
			if prop == "edit" {
				s.lazyEdits = true
			}
		}
	}
	s.mu.Unlock()

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: 1, // Full sync
			HoverProvider:    true,
			CodeActionProvider: &CodeActionOptions{
				CodeActionKinds: []string{config.CodeActionKindRewrite},
				ResolveProvider: true,
			},
		},
		ServerInfo: &ServerInfo{Name: "typeassist"},
	}

	log.Printf("Sending initialize response")
	return s.sendResult(id, result)
}

// loadSettings prefers options sent by the client over a settings file in
// the workspace. Problems with the file are logged and the defaults used.
func (s *LanguageServer) loadSettings(options *config.Settings) *config.Settings {
	if options != nil {
		return options
	}
	if s.rootPath == "" {
		return nil
	}
	path, err := config.FindSettings(s.rootPath)
	if err != nil || path == "" {
		return nil
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		log.Printf("Ignoring settings: %v", err)
		return nil
	}
	log.Printf("Loaded settings from %s", path)
	return settings
}

func (s *LanguageServer) handleShutdown(id interface{}) error {
	s.shutdown = true
	s.actions.clear()
	return s.sendResult(id, nil)
}
