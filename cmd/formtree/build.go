package main

import (
	"github.com/spf13/cobra"

	"formtree/internal/codec"
)

func newBuildCommand(a *app) *cobra.Command {
	var (
		entriesPath string
		out         outputOptions
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a tree from an entries file",
		Long: `Build reads a list of {path, value} entries (YAML, or JSON with comments when
the file ends in .json or .jsonc) and prints the nested tree they describe.

A path is a dotted string ("git.name") or a list of segments ([git, name]).`,
		Example: `  formtree build --entries entries.yaml
  formtree build --entries entries.jsonc --format toml
  formtree build --entries entries.yaml --digest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := codec.ReadEntries(entriesPath)
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

	cmd.Flags().StringVarP(&entriesPath, "entries", "e", "", "entries file")
	_ = cmd.MarkFlagRequired("entries")
	out.register(cmd)

	return cmd
}
