package main

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/funvibe/typeassist/internal/analyzer"
	"github.com/funvibe/typeassist/internal/assists"
	"github.com/funvibe/typeassist/internal/config"
	"github.com/funvibe/typeassist/internal/pipeline"
	"github.com/funvibe/typeassist/internal/textedit"
	"github.com/funvibe/typeassist/internal/utils"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	noColor    bool
	verbose    bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{in: in, out: out, errOut: errOut, logger: log.New(io.Discard, "", 0)}

	rootCmd := &cobra.Command{
		Use:           "typeassist [command]",
		Short:         "Run code assists on source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOut := io.Discard
			if opts.verbose {
				logOut = errOut
			}
			opts.logger = log.New(logOut, "", 0)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a settings file (default: search upwards from the source file)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newListCmd(opts), newApplyCmd(opts), newTreeCmd(opts))
	return rootCmd
}

// session is one analyzed input file.
type session struct {
	path     string
	src      string
	ctx      *pipeline.PipelineContext
	model    *analyzer.Model
	lines    *textedit.LineIndex
	settings *config.Settings
}

// open reads and analyzes path; "-" reads standard input.
func (o *options) open(path string) (*session, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(o.in)
	} else {
		if !config.HasSourceExt(path) {
			o.logger.Printf("warning: %s does not have a %s extension", path, config.SourceFileExt)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", utils.DisplayName(path))
	}

	settings, err := o.loadSettings(path)
	if err != nil {
		return nil, err
	}

	src := string(data)
	ctx, model := analyzer.AnalyzeSource(src, path, 1)
	s := &session{
		path:     path,
		src:      src,
		ctx:      ctx,
		model:    model,
		lines:    textedit.NewLineIndex(src),
		settings: settings,
	}
	for _, diag := range ctx.Errors {
		line, col := s.lines.Position(diag.Range.Start)
		o.logger.Printf("%s:%d:%d: %s [%s]", utils.DisplayName(path), line+1, col+1, diag.Message, diag.Code)
	}
	return s, nil
}

func (o *options) loadSettings(path string) (*config.Settings, error) {
	settingsPath := o.configPath
	if settingsPath == "" {
		dir := "."
		if path != "-" {
			dir = utils.SourceDir(path)
		}
		found, err := config.FindSettings(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return nil, nil
		}
		settingsPath = found
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	o.logger.Printf("using settings %s", settingsPath)
	return settings, nil
}

func (s *session) assistCtx(offset int) *assists.AssistCtx {
	return &assists.AssistCtx{
		Root:   s.model.Root(),
		File:   s.model.File(),
		Offset: offset,
		Sema:   s.model,
	}
}

// colorEnabled reports whether output to w may use ANSI colours.
func (o *options) colorEnabled(w io.Writer) bool {
	if o.noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
