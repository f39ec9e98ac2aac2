package typeassist

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/funvibe/typeassist/internal/analyzer"
	"github.com/funvibe/typeassist/internal/assists"
	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/textedit"
)

// Engine holds analyzed documents and offers assists on them. It provides
// a high-level embedding API for Go programs; all methods are safe for
// concurrent use.
type Engine struct {
	mu       sync.RWMutex
	docs     map[string]*document
	settings *config.Settings
	nextFile pipeline.FileID
}

type document struct {
	src   string
	ctx   *pipeline.PipelineContext
	model *analyzer.Model
}

// New creates an Engine with every assist enabled.
func New() *Engine {
	return &Engine{
		docs:     make(map[string]*document),
		settings: &config.Settings{},
	}
}

// LoadSettings replaces the engine settings with the contents of a YAML or
// JSON settings file.
func (e *Engine) LoadSettings(path string) error {
	s, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.settings = s
	e.mu.Unlock()
	return nil
}

// Disable turns the given assists off.
func (e *Engine) Disable(ids ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := *e.settings
	s.Disabled = append(append([]string(nil), s.Disabled...), ids...)
	e.settings = &s
}

// Set analyzes src and stores it under name, replacing any earlier
// version.
func (e *Engine) Set(name, src string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setLocked(name, src)
}

func (e *Engine) setLocked(name, src string) {
	e.nextFile++
	ctx, model := analyzer.AnalyzeSource(src, name, e.nextFile)
	e.docs[name] = &document{src: src, ctx: ctx, model: model}
}

// LoadFile reads and analyzes a file, storing it under its path.
func (e *Engine) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	e.Set(path, string(data))
	return nil
}

// Get returns the current text of a document.
func (e *Engine) Get(name string) (string, error) {
	d, _, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return d.src, nil
}

// Remove forgets a document.
func (e *Engine) Remove(name string) {
	e.mu.Lock()
	delete(e.docs, name)
	e.mu.Unlock()
}

func (e *Engine) lookup(name string) (*document, *config.Settings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	d, ok := e.docs[name]
	if !ok {
		return nil, nil, errors.Errorf("unknown document %q", name)
	}
	return d, e.settings, nil
}

// Diagnostics returns the syntax errors found in a document.
func (e *Engine) Diagnostics(name string) ([]Diagnostic, error) {
	d, _, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	return toDiagnostics(d.ctx.Errors), nil
}

// TypeAt returns the binding whose name covers offset together with its
// type as source text.
func (e *Engine) TypeAt(name string, offset int) (Binding, bool, error) {
	d, _, err := e.lookup(name)
	if err != nil {
		return Binding{}, false, err
	}
	n, t, ok := d.model.BindingTypeAt(offset)
	if !ok {
		return Binding{}, false, nil
	}
	r := n.Syntax().Range()
	return Binding{
		Name:  n.Text(),
		Type:  d.model.Display(t),
		Range: Range{Start: r.Start, End: r.End},
	}, true, nil
}

// Assists returns every enabled assist that applies at offset.
func (e *Engine) Assists(name string, offset int) ([]Assist, error) {
	d, settings, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset > len(d.src) {
		return nil, errors.Errorf("offset %d outside %s (%d bytes)", offset, name, len(d.src))
	}
	found := assists.Compute(d.assistCtx(offset), settings)
	out := make([]Assist, len(found))
	for i, a := range found {
		out[i] = toAssist(a)
	}
	return out, nil
}

// Apply runs one assist at offset, stores the rewritten document and
// returns its new text.
func (e *Engine) Apply(name, id string, offset int) (string, error) {
	h, ok := assists.ByID(id)
	if !ok {
		return "", errors.Errorf("unknown assist %q", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	d, ok := e.docs[name]
	if !ok {
		return "", errors.Errorf("unknown document %q", name)
	}
	if !e.settings.IsEnabled(id) {
		return "", errors.Errorf("assist %s is disabled", id)
	}
	if offset < 0 || offset > len(d.src) {
		return "", errors.Errorf("offset %d outside %s (%d bytes)", offset, name, len(d.src))
	}
	a, ok := h.Apply(d.assistCtx(offset))
	if !ok {
		return "", errors.Errorf("%s does not apply at offset %d", id, offset)
	}
	out, err := a.Edit.Apply(d.src)
	if err != nil {
		return "", errors.Wrapf(err, "applying %s", id)
	}
	e.setLocked(name, out)
	return out, nil
}

func (d *document) assistCtx(offset int) *assists.AssistCtx {
	return &assists.AssistCtx{
		Root:   d.ctx.Tree,
		File:   d.model.File(),
		Offset: offset,
		Sema:   d.model,
	}
}

// ApplyEdits applies the insertions of an assist to src.
func ApplyEdits(src string, edits []Insertion) (string, error) {
	var e textedit.TextEdit
	for _, ins := range edits {
		e.Insert(ins.Offset, ins.Text)
	}
	return e.Apply(src)
}
