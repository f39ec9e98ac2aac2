package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/funvibe/typeassist/internal/assists"
	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/utils"
)

func newApplyCmd(opts *options) *cobra.Command {
	var (
		offsetSpec string
		id         string
		write      bool
	)

	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply an assist at an offset and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if write && path == "-" {
				return errors.New("--write needs a file, not standard input")
			}

			handler, ok := assists.ByID(id)
			if !ok {
				return unknownAssistError(id)
			}

			s, err := opts.open(path)
			if err != nil {
				return err
			}
			if !s.settings.IsEnabled(handler.ID) {
				return errors.Errorf("assist %s is disabled by settings", handler.ID)
			}
			offset, err := parseOffset(offsetSpec, s.lines, len(s.src))
			if err != nil {
				return err
			}

			a, ok := handler.Apply(s.assistCtx(offset))
			if !ok {
				line, col := s.lines.Position(offset)
				return errors.Errorf("%s does not apply at %d:%d", handler.ID, line+1, col+1)
			}
			result, err := a.Edit.Apply(s.src)
			if err != nil {
				return errors.Wrapf(err, "applying %s", handler.ID)
			}

			if !write {
				_, err := fmt.Fprint(opts.out, result)
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return errors.Wrapf(err, "stat %s", path)
			}
			if err := os.WriteFile(path, []byte(result), info.Mode().Perm()); err != nil {
				return errors.Wrapf(err, "writing %s", path)
			}
			opts.logger.Printf("%s: applied %s", utils.RelativeTo(".", path), handler.Label)
			return nil
		},
	}
	cmd.Flags().StringVarP(&offsetSpec, "offset", "o", "", "Cursor as a byte offset or 1-based LINE:COL")
	cmd.Flags().StringVar(&id, "id", config.AddExplicitTypeID, "Assist to apply")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file instead of printing the result")
	return cmd
}

// suggestIDs returns registered assist ids that look like id, best first.
func suggestIDs(id string) []string {
	known := assists.IDs()
	seen := make(map[string]bool)
	var out []string

	ranks := fuzzy.RankFindFold(id, known)
	sort.Sort(ranks)
	for _, r := range ranks {
		seen[r.Target] = true
		out = append(out, r.Target)
	}

	// Typos break subsequence matching; fall back to edit distance.
	for _, k := range known {
		if !seen[k] && fuzzy.LevenshteinDistance(strings.ToLower(id), k) <= 3 {
			out = append(out, k)
		}
	}
	return out
}

func unknownAssistError(id string) error {
	suggestions := suggestIDs(id)
	if len(suggestions) == 0 {
		return errors.Errorf("unknown assist %q (available: %s)", id, strings.Join(assists.IDs(), ", "))
	}
	return errors.Errorf("unknown assist %q, did you mean %s?", id, strings.Join(suggestions, " or "))
}
