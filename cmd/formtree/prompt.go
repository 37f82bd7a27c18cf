package main

import (
	"github.com/spf13/cobra"

	"formtree/internal/form"
	"formtree/internal/prompt"
)

func newPromptCommand(a *app) *cobra.Command {
	var (
		in         answerOptions
		out        outputOptions
		accessible bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask a form on the terminal and print the resulting tree",
		Long: `Prompt asks every active field of the form, pre-filled with its default,
and prints the tree built from the answers. The questions are drawn on stderr
so stdout carries only the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := form.LoadFile(in.formPath)
			if err != nil {
				return err
			}

			if err := form.Validate(f).Error(); err != nil {
				return err
			}

			cfg := in.extractConfig()

			p := &prompt.Prompter{
				Input:      cmd.InOrStdin(),
				Output:     cmd.ErrOrStderr(),
				Accessible: accessible,
			}

			answers, err := p.Ask(f, cfg)
			if err != nil {
				return err
			}

			entries, err := a.extract(cmd.ErrOrStderr(), f, answers, cfg)
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

	in.register(cmd, false)
	out.register(cmd)
	cmd.Flags().BoolVar(&accessible, "accessible", false, "plain line-by-line prompts for screen readers")

	return cmd
}
