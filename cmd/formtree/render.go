package main

import (
	"os"

	"github.com/spf13/cobra"

	"formtree/internal/payload"
)

func newRenderCommand(a *app) *cobra.Command {
	var (
		in           answerOptions
		out          outputOptions
		templatePath string
		envPrefix    string
		userPairs    []string
		sessionPairs []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template against the filled form",
		Long: `Render fills the form like the fill command, then executes a Go text/template
with this data:

  .answers  the built tree
  .user     values from --user key=value
  .session  values from --session key=value
  .env      environment variables starting with --env-prefix, prefix removed

Referencing a missing key is an error.`,
		Example: `  formtree render --form form.yaml --answers answers.yaml --template gitconfig.tmpl \
    --user login=alice --env-prefix FORMTREE_`,
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

			user, err := payload.ParsePairs(userPairs)
			if err != nil {
				return err
			}

			session, err := payload.ParsePairs(sessionPairs)
			if err != nil {
				return err
			}

			text, err := os.ReadFile(templatePath)
			if err != nil {
				return err
			}

			tmpl, err := payload.Parse(templatePath, string(text))
			if err != nil {
				return err
			}

			env := payload.EnvFromOS(envPrefix)
			a.logger.Debug("rendering template", "template", templatePath, "env_vars", len(env))

			data := payload.Assemble(tree, payload.Context{
				User:    user,
				Session: session,
				Env:     env,
			})

			return payload.Render(cmd.OutOrStdout(), tmpl, data)
		},
	}

	in.register(cmd, true)
	cmd.Flags().StringVar(&out.ordering, "ordering", "joined", "canonical ordering: joined or segmented")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "text/template file")
	_ = cmd.MarkFlagRequired("template")
	cmd.Flags().StringVar(&envPrefix, "env-prefix", "", "expose environment variables with this prefix as .env")
	cmd.Flags().StringArrayVar(&userPairs, "user", nil, "user value as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&sessionPairs, "session", nil, "session value as key=value (repeatable)")

	return cmd
}
