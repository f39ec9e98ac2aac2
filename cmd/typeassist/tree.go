package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/funvibe/typeassist/internal/prettyprinter"
)

func newTreeCmd(opts *options) *cobra.Command {
	var (
		types  bool
		trivia bool
	)

	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(args[0])
			if err != nil {
				return err
			}

			p := prettyprinter.NewTreePrinter()
			p.ShowTrivia = trivia
			if types {
				p.Types = s.ctx.TypeMap
				p.Bindings = s.ctx.BindingMap
			}
			if opts.colorEnabled(opts.out) {
				p.Style = prettyprinter.Style{
					Kind:  func(k string) string { return paint(true, colorCyan, k) },
					Type:  func(t string) string { return paint(true, colorGreen, t) },
					Token: func(t string) string { return paint(true, colorDim, t) },
				}
			}
			_, err = fmt.Fprint(opts.out, p.Print(s.ctx.Tree))
			return err
		},
	}
	cmd.Flags().BoolVarP(&types, "types", "t", false, "Annotate nodes with inferred types")
	cmd.Flags().BoolVar(&trivia, "trivia", false, "Include whitespace and comments")
	return cmd
}
