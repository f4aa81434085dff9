package commands

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landing/internal/usecase"
)

func newDoctorCommand(s *state) *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that every file the page references can be served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output(cmd)

			if repair {
				if res := usecase.NewInitService(out).Repair(s.cfg.SiteDir); res.Error != nil {
					out.PrintError("%v", res.Error)
					return res.Error
				}
			}

			app, err := s.app()
			if err != nil {
				out.PrintError("%v", err)
				return err
			}
			return app.Check(cmd.Context(), out)
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "recreate a missing stylesheet and assets directory first")

	return cmd
}
