package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/landing"
	"github.com/3-lines-studio/landing/internal/adapters/cli"
	"github.com/3-lines-studio/landing/internal/adapters/env"
	"github.com/3-lines-studio/landing/internal/config"
	"github.com/3-lines-studio/landing/internal/logging"
)

// state is shared by every subcommand once the root's pre-run has loaded
// configuration.
type state struct {
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

func NewRootCommand(version string) *cobra.Command {
	s := &state{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "landing",
		Short: "Render and serve a single-page product landing site",
		Long: `landing renders a product landing page (hero, features, demo video, FAQ
and a contact form) from a content file, a stylesheet and an assets
directory. It can serve the page, export it as static files, or check that
every referenced file is present.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (default is ./landing.yaml)")
	flags.String("site", config.DefaultSiteDir, "site directory holding content, styles and assets")
	flags.String("content", "", "content file relative to the site directory (default: built-in content)")
	flags.String("styles", "", "stylesheet relative to the site directory")
	flags.String("assets", "", "assets directory relative to the site directory")
	flags.Bool("dev", false, "show render errors in the browser and reload on change")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		newServeCommand(s),
		newBuildCommand(s),
		newDoctorCommand(s),
		newInitCommand(),
		newVersionCommand(version),
	)

	return root
}

func (s *state) initialize(cmd *cobra.Command) error {
	if _, err := env.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	res, err := config.Load(config.LoadOptions{
		File:  s.cfgFile,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return err
	}
	s.cfg = res.Config

	logger, err := logging.New(s.cfg.LogLevel, s.cfg.LogFormat)
	if err != nil {
		return err
	}
	s.logger = logger

	if res.FileUsed != "" {
		s.logger.Debug("using config file", zap.String("file", res.FileUsed))
	}
	return nil
}

func (s *state) app() (*landing.App, error) {
	return landing.New(
		landing.WithSiteDir(s.cfg.SiteDir),
		landing.WithContentFile(s.cfg.ContentFile),
		landing.WithStylesFile(s.cfg.StylesFile),
		landing.WithAssetsDir(s.cfg.AssetsDir),
		landing.WithDev(s.cfg.Dev),
		landing.WithLogger(s.logger),
	)
}

func output(cmd *cobra.Command) *cli.Output {
	return cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
}
