package main

import (
	"fmt"
	"log"
)

func (s *LanguageServer) handleHover(id interface{}, params HoverParams) error {
	log.Printf("Handling hover request for %s at line %d, char %d", params.TextDocument.URI, params.Position.Line, params.Position.Character)

	docState, exists := s.document(params.TextDocument.URI)
	if !exists {
		return s.sendResult(id, nil)
	}
	snap := docState.snapshot()
	if snap.model == nil {
		return s.sendResult(id, nil)
	}

	offset := toOffset(snap.lines, params.Position)
	name, t, ok := snap.model.BindingTypeAt(offset)
	if !ok {
		return s.sendResult(id, nil)
	}

	rng := name.Syntax().Range()
	hoverRange := toRange(snap.lines, rng.Start, rng.End)
	return s.sendResult(id, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: fmt.Sprintf("```rust\n%s: %s\n```", name.Text(), snap.model.Display(t)),
		},
		Range: &hoverRange,
	})
}
