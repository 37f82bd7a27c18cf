package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"formtree/internal/diagnostic"
	"formtree/internal/form"
)

func newCheckCommand(a *app) *cobra.Command {
	var (
		formPath string
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a form definition",
		Long: `Check reports structural problems in a form: duplicate or unnamed fields,
bad paths, unknown types, defaults of the wrong type, and fields whose values
would be overwritten by other fields. Diagnostics go to stderr; the command
exits non-zero when errors are found.

With --write a form without errors is rewritten in normalized form: the
version, every field type and every path are spelled out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := form.LoadFile(formPath)
			if err != nil {
				return err
			}

			res := form.Validate(f)
			a.logger.Debug("validated form", "fields", len(f.Fields), "errors", len(res.Errors), "warnings", len(res.Warnings))

			printDiagnostics(cmd.ErrOrStderr(), res, true)

			if res.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", formPath, len(res.Errors))
			}

			if !write {
				return nil
			}

			if err := form.WriteFile(f, formPath); err != nil {
				return err
			}

			a.logger.Info("normalized form", "path", formPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&formPath, "form", "", "form definition (YAML)")
	_ = cmd.MarkFlagRequired("form")
	cmd.Flags().BoolVar(&write, "write", false, "rewrite the form in normalized form when it has no errors")

	return cmd
}

// printDiagnostics writes one line per diagnostic. Infos are only shown
// when verbose is set.
func printDiagnostics(w io.Writer, res *diagnostic.Diagnostics, verbose bool) {
	r := lipgloss.NewRenderer(w)

	styles := map[diagnostic.DiagnosticSeverity]lipgloss.Style{
		diagnostic.DiagnosticError:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		diagnostic.DiagnosticWarning: r.NewStyle().Foreground(lipgloss.Color("11")),
		diagnostic.DiagnosticInfo:    r.NewStyle().Faint(true),
	}

	for _, d := range res.All() {
		if d.Severity == diagnostic.DiagnosticInfo && !verbose {
			continue
		}

		fmt.Fprintf(w, "%s %s\n", styles[d.Severity].Render(d.Severity.String()+":"), d.String())
	}

	if verbose && len(res.All()) == 0 {
		fmt.Fprintln(w, r.NewStyle().Foreground(lipgloss.Color("10")).Render("ok"))
	}
}
