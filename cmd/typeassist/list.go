package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/funvibe/typeassist/internal/assists"
)

func newListCmd(opts *options) *cobra.Command {
	var offsetSpec string

	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "List the assists available at an offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(args[0])
			if err != nil {
				return err
			}
			offset, err := parseOffset(offsetSpec, s.lines, len(s.src))
			if err != nil {
				return err
			}

			found := assists.Compute(s.assistCtx(offset), s.settings)
			if len(found) == 0 {
				fmt.Fprintf(opts.errOut, "no assists available at offset %d\n", offset)
				return nil
			}

			color := opts.colorEnabled(opts.out)
			w := tabwriter.NewWriter(opts.out, 0, 4, 2, ' ', 0)
			for _, a := range found {
				startLine, startCol := s.lines.Position(a.Target.Start)
				endLine, endCol := s.lines.Position(a.Target.End)
				fmt.Fprintf(w, "%s\t%s\t%d:%d-%d:%d\n",
					paint(color, colorGreen, a.ID), a.Label,
					startLine+1, startCol+1, endLine+1, endCol+1)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&offsetSpec, "offset", "o", "", "Cursor as a byte offset or 1-based LINE:COL")
	return cmd
}
