package main

import (
	"log"
	"sync"

	"github.com/pkg/errors"

	"github.com/funvibe/typeassist/internal/analyzer"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/textedit"
)

// DocumentState stores the state of a single open document
type DocumentState struct {
	Content string                    // Current file content
	Version int                       // Version reported by the client
	File    pipeline.FileID           // Stable for the lifetime of the document
	Context *pipeline.PipelineContext // Result of the last analysis (tree, diagnostics)
	Model   *analyzer.Model           // Semantic model of the last analysis
	Lines   *textedit.LineIndex       // Offset <-> position conversion for Content
	Mu      sync.RWMutex              // Mutex to protect access to state
}

// snapshot is a consistent view of a document taken under its lock.
type snapshot struct {
	content string
	version int
	context *pipeline.PipelineContext
	model   *analyzer.Model
	lines   *textedit.LineIndex
}

func (d *DocumentState) snapshot() snapshot {
	d.Mu.RLock()
	defer d.Mu.RUnlock()
	return snapshot{
		content: d.Content,
		version: d.Version,
		context: d.Context,
		model:   d.Model,
		lines:   d.Lines,
	}
}

func (d *DocumentState) update(content string, version int, ctx *pipeline.PipelineContext, model *analyzer.Model) {
	d.Mu.Lock()
	defer d.Mu.Unlock()
	d.Content = content
	d.Version = version
	d.Context = ctx
	d.Model = model
	d.Lines = textedit.NewLineIndex(content)
}

func (s *LanguageServer) handleDidOpen(params DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	content := params.TextDocument.Text

	s.mu.Lock()
	s.nextFile++
	docState := &DocumentState{File: s.nextFile}
	s.documents[uri] = docState
	s.mu.Unlock()

	ctx, model := s.analyzeDocument(content, uri, docState.File)
	docState.update(content, params.TextDocument.Version, ctx, model)

	log.Printf("Opened file: %s", uri)
	return s.publishDiagnostics(uri, docState.snapshot())
}

func (s *LanguageServer) handleDidChange(params DidChangeTextDocumentParams) error {
	// Full sync: the last change carries the whole text.
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	newContent := params.ContentChanges[len(params.ContentChanges)-1].Text

	docState, exists := s.document(uri)
	if !exists {
		return errors.Errorf("document %s not found", uri)
	}

	ctx, model := s.analyzeDocument(newContent, uri, docState.File)
	docState.update(newContent, params.TextDocument.Version, ctx, model)

	// Edits computed against the old text are stale now.
	s.actions.dropURI(uri)

	log.Printf("Changed file: %s", uri)
	return s.publishDiagnostics(uri, docState.snapshot())
}

func (s *LanguageServer) handleDidClose(params DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.documents, uri)
	s.mu.Unlock()
	s.actions.dropURI(uri)
	log.Printf("Closed file: %s", uri)

	// Clear the diagnostics of the closed file.
	return s.sendNotification(NotificationMessage{
		Jsonrpc: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: []Diagnostic{},
		},
	})
}

func (s *LanguageServer) document(uri string) (*DocumentState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[uri]
	return doc, ok
}

func (s *LanguageServer) analyzeDocument(content string, uri string, file pipeline.FileID) (*pipeline.PipelineContext, *analyzer.Model) {
	return analyzer.AnalyzeSource(content, uriToPath(uri), file)
}
