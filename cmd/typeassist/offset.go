package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/funvibe/typeassist/internal/textedit"
)

// parseOffset accepts either a byte offset or a 1-based LINE:COL pair.
// Columns count characters the way editors do.
func parseOffset(spec string, lines *textedit.LineIndex, size int) (int, error) {
	if spec == "" {
		return 0, errors.New("--offset is required")
	}

	if line, col, ok := strings.Cut(spec, ":"); ok {
		l, err := strconv.Atoi(line)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid line in offset %q", spec)
		}
		c, err := strconv.Atoi(col)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid column in offset %q", spec)
		}
		if l < 1 || c < 1 {
			return 0, errors.Errorf("offset %q: line and column start at 1", spec)
		}
		if l > lines.LineCount() {
			return 0, errors.Errorf("offset %q: file has %d lines", spec, lines.LineCount())
		}
		return lines.Offset(l-1, c-1), nil
	}

	n, err := strconv.Atoi(spec)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid offset %q", spec)
	}
	if n < 0 || n > size {
		return 0, errors.Errorf("offset %d outside file of %d bytes", n, size)
	}
	return n, nil
}
