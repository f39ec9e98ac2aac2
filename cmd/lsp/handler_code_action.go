package main

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/typeassist/internal/assists"
	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/textedit"
)

// cachedAction is an offered assist waiting for codeAction/resolve.
type cachedAction struct {
	uri     string
	version int
	edit    WorkspaceEdit
}

// actionCache maps the token sent in CodeAction.data back to the edit it
// stands for. Entries die with the document text they were computed on.
type actionCache struct {
	mu      sync.Mutex
	entries map[string]cachedAction
}

func newActionCache() *actionCache {
	return &actionCache{entries: make(map[string]cachedAction)}
}

func (c *actionCache) put(action cachedAction) string {
	id := uuid.NewString()
	c.mu.Lock()
	c.entries[id] = action
	c.mu.Unlock()
	return id
}

func (c *actionCache) get(id string) (cachedAction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	action, ok := c.entries[id]
	return action, ok
}

func (c *actionCache) dropURI(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, action := range c.entries {
		if action.uri == uri {
			delete(c.entries, id)
		}
	}
}

func (c *actionCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]cachedAction)
	c.mu.Unlock()
}

func (c *actionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// wantsRewrite reports whether the client's kind filter admits
// refactor.rewrite actions. Kinds are hierarchical, so "refactor" does too.
func wantsRewrite(only []string) bool {
	if len(only) == 0 {
		return true
	}
	for _, kind := range only {
		if kind == config.CodeActionKindRewrite || strings.HasPrefix(config.CodeActionKindRewrite, kind+".") {
			return true
		}
	}
	return false
}

func (s *LanguageServer) handleCodeAction(id interface{}, params CodeActionParams) error {
	uri := params.TextDocument.URI
	log.Printf("Handling codeAction request for %s at line %d, char %d", uri, params.Range.Start.Line, params.Range.Start.Character)

	actions := []CodeAction{}
	docState, exists := s.document(uri)
	if !exists || !wantsRewrite(params.Context.Only) {
		return s.sendResult(id, actions)
	}
	snap := docState.snapshot()
	if snap.model == nil || snap.model.Root() == nil {
		return s.sendResult(id, actions)
	}

	ctx := &assists.AssistCtx{
		Root:   snap.model.Root(),
		File:   snap.model.File(),
		Offset: toOffset(snap.lines, params.Range.Start),
		Sema:   snap.model,
	}

	s.mu.RLock()
	settings := s.settings
	lazy := s.lazyEdits
	s.mu.RUnlock()

	// Only the latest lazy offer for a document can be resolved.
	if lazy {
		s.actions.dropURI(uri)
	}
	for _, a := range assists.Compute(ctx, settings) {
		edit, err := toWorkspaceEdit(uri, snap, a.Edit)
		if err != nil {
			log.Printf("Dropping assist %s: %v", a.ID, err)
			continue
		}
		action := CodeAction{
			Title: a.Label,
			Kind:  config.CodeActionKindRewrite,
			Data:  &CodeActionData{AssistID: a.ID, URI: uri},
		}
		if lazy {
			action.Data.ID = s.actions.put(cachedAction{uri: uri, version: snap.version, edit: edit})
		} else {
			action.Edit = &edit
		}
		actions = append(actions, action)
	}
	return s.sendResult(id, actions)
}

func (s *LanguageServer) handleCodeActionResolve(id interface{}, action CodeAction) error {
	if action.Edit != nil {
		return s.sendResult(id, action)
	}
	if action.Data == nil || action.Data.ID == "" {
		return s.sendError(id, CodeInvalidParams, "code action has no data")
	}
	cached, ok := s.actions.get(action.Data.ID)
	if !ok {
		return s.sendError(id, CodeInvalidParams, "code action is stale")
	}
	if doc, exists := s.document(cached.uri); !exists || doc.snapshot().version != cached.version {
		return s.sendError(id, CodeInvalidParams, "code action is stale")
	}
	edit := cached.edit
	action.Edit = &edit
	return s.sendResult(id, action)
}

func toWorkspaceEdit(uri string, snap snapshot, edit textedit.TextEdit) (WorkspaceEdit, error) {
	if err := edit.Validate(len(snap.content)); err != nil {
		return WorkspaceEdit{}, err
	}
	edits := make([]TextEdit, 0, len(edit.Insertions))
	for _, ins := range edit.Insertions {
		pos := toPosition(snap.lines, ins.Offset)
		edits = append(edits, TextEdit{
			Range:   Range{Start: pos, End: pos},
			NewText: ins.Text,
		})
	}
	return WorkspaceEdit{Changes: map[string][]TextEdit{uri: edits}}, nil
}
