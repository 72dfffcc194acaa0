package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pkgpublish/internal/publish"
)

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the resolved steps as YAML without running them",
		Long: `Plan resolves configuration exactly as a publish run would and prints
each step's category, message, command and failure reason.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(publish.Steps(a.cfg)); err != nil {
				return fmt.Errorf("encoding plan: %w", err)
			}
			return enc.Close()
		},
	}
}
