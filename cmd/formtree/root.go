package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"formtree/internal/codec"
	"formtree/internal/form"
	"formtree/internal/logging"
	"formtree/pathtree"
)

// app carries state shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCommand builds the formtree command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:   "formtree",
		Short: "Assemble path-addressed form answers into a nested tree",
		Long: `formtree turns flat (path, value) entries, such as answers to a form whose
fields declare dotted address paths, into one nested document.

Entries are applied in a canonical order, so the result does not depend on
the order they were written in.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logging.DefaultConfig(cmd.ErrOrStderr())
			cfg.Level = a.logLevel
			cfg.Format = a.logFormat

			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}

			a.logger = logger.With("command", cmd.Name())

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newBuildCommand(a),
		newFillCommand(a),
		newCheckCommand(a),
		newRenderCommand(a),
		newPromptCommand(a),
	)

	return rootCmd
}

// outputOptions are the flags shared by commands that print a tree.
type outputOptions struct {
	format   string
	ordering string
	digest   bool
	dump     bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "json", "output format: json, yaml, toml, cbor or entries")
	cmd.Flags().StringVar(&o.ordering, "ordering", "joined", "canonical ordering: joined or segmented")
	cmd.Flags().BoolVar(&o.digest, "digest", false, "print the BLAKE3 digest of the tree instead of the tree")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "print the Go structure of the tree (debugging)")
}

func (o *outputOptions) builder() (*pathtree.Builder, error) {
	ordering, err := pathtree.ParseOrdering(o.ordering)
	if err != nil {
		return nil, err
	}

	cfg := pathtree.DefaultConfig()
	cfg.Ordering = ordering

	return pathtree.New(cfg), nil
}

// build assembles entries and logs the outcome.
func (a *app) build(o *outputOptions, entries []pathtree.Entry) (pathtree.Node, error) {
	b, err := o.builder()
	if err != nil {
		return nil, err
	}

	tree, err := b.Build(entries)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("built tree", "entries", len(entries), "leaves", len(tree.Paths()), "ordering", o.ordering)

	return tree, nil
}

func (o *outputOptions) write(w io.Writer, tree pathtree.Node) error {
	switch {
	case o.dump:
		spew.Fdump(w, tree)
		return nil

	case o.digest:
		sum, err := codec.Digest(tree)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, sum+"\n")

		return err
	}

	format, err := codec.ParseFormat(o.format)
	if err != nil {
		return err
	}

	if format.IsBinary() && isTerminal(w) {
		return fmt.Errorf("refusing to write %s to a terminal; redirect the output to a file", format)
	}

	return codec.Encode(w, tree, format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// answerOptions are the flags shared by commands that read a form and answers.
type answerOptions struct {
	formPath      string
	answersPath   string
	includeHidden bool
	coerce        bool
}

func (o *answerOptions) register(cmd *cobra.Command, withAnswers bool) {
	cmd.Flags().StringVar(&o.formPath, "form", "", "form definition (YAML)")
	_ = cmd.MarkFlagRequired("form")

	if withAnswers {
		cmd.Flags().StringVar(&o.answersPath, "answers", "", "answers file (YAML, JSON or JSONC)")
		_ = cmd.MarkFlagRequired("answers")
	}

	cmd.Flags().BoolVar(&o.includeHidden, "include-hidden", false, "also extract hidden and disabled fields")
	cmd.Flags().BoolVar(&o.coerce, "coerce", false, `accept strings such as "true" or "42" for bool and number fields`)
}

func (o *answerOptions) extractConfig() form.ExtractConfig {
	cfg := form.DefaultExtractConfig()
	cfg.IncludeHidden = o.includeHidden
	cfg.IncludeDisabled = o.includeHidden
	cfg.CoerceStrings = o.coerce

	return cfg
}

// extract turns answers into entries, printing diagnostics to w.
func (a *app) extract(w io.Writer, f *form.Form, answers form.Answers, cfg form.ExtractConfig) ([]pathtree.Entry, error) {
	entries, res := form.Extract(f, answers, cfg)

	printDiagnostics(w, res, false)
	a.logger.Debug("extracted answers",
		"fields", len(f.Fields), "answers", len(answers), "entries", len(entries),
		"errors", len(res.Errors), "warnings", len(res.Warnings))

	if err := res.Error(); err != nil {
		return nil, err
	}

	return entries, nil
}

// fill loads the form and answers and returns the entries they produce.
func (a *app) fill(w io.Writer, o *answerOptions) (*form.Form, []pathtree.Entry, error) {
	f, err := form.LoadFile(o.formPath)
	if err != nil {
		return nil, nil, err
	}

	answers, err := form.LoadAnswers(o.answersPath)
	if err != nil {
		return nil, nil, err
	}

	entries, err := a.extract(w, f, answers, o.extractConfig())
	if err != nil {
		return nil, nil, err
	}

	return f, entries, nil
}
