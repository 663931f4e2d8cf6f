package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sparkshelf/config"
	"sparkshelf/projects"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Test the connection to the projects backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.FromEnv()
			if err != nil {
				return err
			}
			src, closeSource, err := openSource(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer closeSource()

			if err := projects.Check(cmd.Context(), src); err != nil {
				return fmt.Errorf("%s backend connection failed: %w", settings.Backend, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s backend connection successful\n", settings.Backend)
			return nil
		},
	}
}
