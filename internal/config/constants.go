package config

import "strings"

const SourceFileExt = ".rs"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".rs"}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// IsLSPMode indicates the process serves the language server protocol.
// Set once at startup in cmd/lsp; stdout then belongs to the protocol.
var IsLSPMode = false

// IsTestMode indicates if the program is running under go test.
var IsTestMode = false

// Assist identifiers and labels
const (
	AddExplicitTypeID    = "add_explicit_type"
	AddExplicitTypeLabel = "add explicit type"
)

// MaxTypeDepth bounds the recursive usability check on inferred types.
// Types written by hand never come close; a deeper type is treated as
// unusable rather than walked.
const MaxTypeDepth = 64

// Settings file names, in lookup order
var SettingsFileNames = []string{"typeassist.yaml", "typeassist.yml", "typeassist.jsonc", "typeassist.json"}

// LSP code action kind used for every assist
const CodeActionKindRewrite = "refactor.rewrite"
