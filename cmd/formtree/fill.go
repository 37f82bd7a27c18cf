package main

import (
	"github.com/spf13/cobra"
)

func newFillCommand(a *app) *cobra.Command {
	var (
		in  answerOptions
		out outputOptions
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Build a tree from a form and its answers",
		Long: `Fill applies answers to a form definition: every active field takes its answer
or its default and is placed at its path. Problems are printed to stderr;
any error aborts without output.`,
		Example: `  formtree fill --form form.yaml --answers answers.yaml
  formtree fill --form form.yaml --answers answers.jsonc --format yaml --include-hidden`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, entries, err := a.fill(cmd.ErrOrStderr(), &in)
			if err != nil {
				return err
			}

			tree, err := a.build(&out, entries)
			if err != nil {
				return err
			}

			return out.write(cmd.OutOrStdout(), tree)
		},
	}

	in.register(cmd, true)
	out.register(cmd)

	return cmd
}
