package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landing/internal/templates"
	"github.com/3-lines-studio/landing/internal/usecase"
)

func newInitCommand() *cobra.Command {
	var (
		format string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a new site directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			out := output(cmd)
			res := usecase.NewInitService(out).InitProject(usecase.InitInput{
				ProjectDir: dir,
				Format:     format,
				Name:       name,
			})
			if res.Error != nil {
				out.PrintError("%v", res.Error)
				return res.Error
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", fmt.Sprintf("content file format (%s)", strings.Join(templates.Formats(), ", ")))
	cmd.Flags().StringVar(&name, "name", "", "product name (default: directory name)")

	return cmd
}
