package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Settings is the user configuration shared by the CLI and the language
// server. The zero value enables every assist.
type Settings struct {
	// Disabled lists assist ids that must never be offered.
	Disabled []string `yaml:"disabled" json:"disabled"`

	// LogMessages makes the language server log every message it receives.
	LogMessages bool `yaml:"log_messages" json:"log_messages"`
}

// IsEnabled reports whether the assist with the given id may run.
func (s *Settings) IsEnabled(id string) bool {
	if s == nil {
		return true
	}
	for _, d := range s.Disabled {
		if d == id {
			return false
		}
	}
	return true
}

// LoadSettings reads a settings file. YAML and JSON with comments are
// accepted; the format follows the file extension.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading settings %s", path)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses settings content. The path argument selects the
// format and is used in error messages.
func ParseSettings(data []byte, path string) (*Settings, error) {
	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if err := json.Unmarshal(std, &s); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", path)
		}
	default:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
	}
	if err := s.validate(path); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate(path string) error {
	for i, id := range s.Disabled {
		if strings.TrimSpace(id) == "" {
			return errors.Errorf("%s: disabled[%d]: empty assist id", path, i)
		}
	}
	return nil
}

// FindSettings searches for a settings file starting from dir and walking
// up to parent directories. It returns "" and no error when none exists.
func FindSettings(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	for {
		for _, name := range SettingsFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
