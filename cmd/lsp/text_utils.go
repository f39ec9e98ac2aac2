package main

import (
	"net/url"
	"strings"

	"github.com/funvibe/typeassist/internal/textedit"
)

func uriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	u, err := url.Parse(uri)
	if err != nil {
		return strings.TrimPrefix(uri, "file://")
	}
	return u.Path
}

func toPosition(lines *textedit.LineIndex, offset int) Position {
	line, char := lines.Position(offset)
	return Position{Line: line, Character: char}
}

func toRange(lines *textedit.LineIndex, start, end int) Range {
	return Range{Start: toPosition(lines, start), End: toPosition(lines, end)}
}

func toOffset(lines *textedit.LineIndex, pos Position) int {
	return lines.Offset(pos.Line, pos.Character)
}
