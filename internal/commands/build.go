package commands

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landing/internal/config"
)

func newBuildCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the page and its assets as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.app()
			if err != nil {
				return err
			}

			out := output(cmd)
			if _, err := app.Export(cmd.Context(), s.cfg.OutputDir, out); err != nil {
				out.PrintError("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("out", config.DefaultOutput, "output directory")

	return cmd
}
